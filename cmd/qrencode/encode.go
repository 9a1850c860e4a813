package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/qrencode/qrencode"
	"github.com/qrencode/qrencode/internal/config"
	"github.com/qrencode/qrencode/render"
)

var (
	encodeECC      string
	encodeVersion  int
	encodeMask     int
	encodeBoostECL bool
	encodeScale    int
	encodeBorder   int
	encodeSVG      bool
	encodeOut      string
	encodeOpen     bool
	encodeConfig   string
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text into a QR code symbol and write it as an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	flags := encodeCmd.Flags()
	flags.StringVar(&encodeECC, "ecc", "", `error correction level: L, M, Q, or H (default from config, usually "M")`)
	flags.IntVar(&encodeVersion, "version", 0, "pin the symbol version (1-40); 0 auto-selects the smallest that fits")
	flags.IntVar(&encodeMask, "mask", -1, "pin the mask pattern (0-7); -1 auto-selects by penalty score")
	flags.BoolVar(&encodeBoostECL, "boost-ecl", false, "raise the error correction level if the chosen version has room to spare")
	flags.IntVar(&encodeScale, "scale", 0, "pixels per module for PNG output (default from config)")
	flags.IntVar(&encodeBorder, "border", render.DefaultBorder, "quiet zone width, in modules")
	flags.BoolVar(&encodeSVG, "svg", false, "write an SVG instead of a PNG")
	flags.StringVar(&encodeOut, "out", "", "output file path (default from config's output directory, named after the symbol's version and mask)")
	flags.BoolVar(&encodeOpen, "open", false, "open the generated file in the default viewer")
	flags.StringVar(&encodeConfig, "config", "", "path to a YAML config file of defaults")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := config.Defaults()
	if encodeConfig != "" {
		loaded, err := config.Load(encodeConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	ecc, err := parseECC(firstNonEmpty(encodeECC, cfg.DefaultECC))
	if err != nil {
		return err
	}

	scale := encodeScale
	if scale == 0 {
		scale = cfg.Scale
	}

	border := encodeBorder
	if !cmd.Flags().Changed("border") {
		border = cfg.Border
	}

	opts := []qrencode.Option{qrencode.WithBoostECL(encodeBoostECL)}
	if encodeVersion != 0 {
		v, err := newOptionVersion(encodeVersion)
		if err != nil {
			return err
		}
		opts = append(opts, qrencode.WithVersion(v))
	}
	if encodeMask != -1 {
		opts = append(opts, qrencode.WithMask(qrencode.Mask(encodeMask)))
	}

	qr, err := qrencode.Encode([]byte(args[0]), ecc, opts...)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	out := encodeOut
	if out == "" {
		ext := "png"
		if encodeSVG {
			ext = "svg"
		}
		out = filepath.Join(cfg.OutputDir, fmt.Sprintf("qr-v%d-m%d.%s", qr.Version, qr.Mask, ext))
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if encodeSVG {
		svg, err := render.SVG(qr, border, true)
		if err != nil {
			return err
		}
		if _, err := f.WriteString(svg); err != nil {
			return err
		}
	} else {
		if err := render.PNG(f, qr, scale, border); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (version %d, mask %d, ecc %s)\n", out, qr.Version, qr.Mask, qr.ErrorCorrectionLevel)

	if encodeOpen {
		if err := browser.OpenFile(out); err != nil {
			return fmt.Errorf("opening %s: %w", out, err)
		}
	}

	return nil
}

func parseECC(s string) (qrencode.ECC, error) {
	switch s {
	case "L":
		return qrencode.Low, nil
	case "M":
		return qrencode.Medium, nil
	case "Q":
		return qrencode.Quartile, nil
	case "H":
		return qrencode.High, nil
	default:
		return 0, fmt.Errorf("invalid error correction level %q: want one of L, M, Q, H", s)
	}
}

func newOptionVersion(v int) (qrencode.Version, error) {
	if v < int(qrencode.MinVersion) || v > int(qrencode.MaxVersion) {
		return 0, &qrencode.InvalidVersionError{Version: v}
	}
	return qrencode.Version(v), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
