// Command colorconv prints every representation of a color and exports
// the picker rasters as PNG files.
//
// Usage:
//
//	colorconv [-hex #RRGGBB|name] [-square out.png] [-ramp out.png] [-swatch out.png]
//	          [-size N] [-scale N] [-model hsl|hsv] [-workers N] [-v]
//
// Without -hex the picker's default color is described. -hex also takes
// a color name such as "dark slate gray".
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/term"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/names"
	"github.com/gogpu/colorpick/picker"
	"github.com/gogpu/colorpick/swatch"
)

func main() {
	styled := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int on supported platforms
	err := run(os.Args[1:], os.Stdout, os.Stderr, styled)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("colorconv: %v", err)
	}
}

type config struct {
	hex     string
	square  string
	ramp    string
	swatch  string
	size    int
	scale   int
	model   string
	workers int
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("colorconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.hex, "hex", "", "color to describe as #RRGGBB or a color name (default: the picker default)")
	fs.StringVar(&cfg.square, "square", "", "write the saturation/brightness square to this PNG")
	fs.StringVar(&cfg.ramp, "ramp", "", "write the hue ramp to this PNG")
	fs.StringVar(&cfg.swatch, "swatch", "", "write a labelled swatch to this PNG")
	fs.IntVar(&cfg.size, "size", picker.DefaultSquareSize, "square side and ramp width in pixels")
	fs.IntVar(&cfg.scale, "scale", 1, "upscale exported rasters by this factor")
	fs.StringVar(&cfg.model, "model", "hsl", "square model: hsl or hsv")
	fs.IntVar(&cfg.workers, "workers", runtime.GOMAXPROCS(0), "render goroutines")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.size < 1 {
		return cfg, fmt.Errorf("-size must be positive, got %d", cfg.size)
	}
	if cfg.scale < 1 {
		return cfg, fmt.Errorf("-scale must be positive, got %d", cfg.scale)
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer, styled bool) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	model, err := picker.ParseModel(cfg.model)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	colorpick.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer colorpick.SetLogger(nil)

	s := picker.New(
		picker.WithSquareSize(cfg.size),
		picker.WithHueRamp(cfg.size, max(cfg.size/6, 1)),
		picker.WithModel(model),
		picker.WithWorkers(cfg.workers),
		picker.WithNamer(names.Lookup),
	)
	defer s.Close()

	if cfg.hex != "" {
		c, err := names.Resolve(cfg.hex)
		if err != nil {
			return err
		}
		s.SetRGB(c)
	}

	snap := s.Snapshot()
	if _, err := io.WriteString(stdout, formatTable(snap, styled)); err != nil {
		return err
	}

	if cfg.square != "" {
		if err := writePNG(cfg.square, scaled(s.RenderSquare(), cfg.scale)); err != nil {
			return err
		}
	}
	if cfg.ramp != "" {
		if err := writePNG(cfg.ramp, scaled(s.RenderHueRamp(), cfg.scale)); err != nil {
			return err
		}
	}
	if cfg.swatch != "" {
		img, err := swatch.Render(snap, swatch.Options{
			Width:    swatch.DefaultWidth * cfg.scale,
			Height:   swatch.DefaultHeight * cfg.scale,
			FontSize: swatch.DefaultFontSize * float64(cfg.scale),
		})
		if err != nil {
			return err
		}
		if err := writePNG(cfg.swatch, img); err != nil {
			return err
		}
	}
	return nil
}

func scaled(img image.Image, factor int) image.Image {
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	return swatch.Upscale(img, b.Dx()*factor, b.Dy()*factor)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // output path comes from the command line
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	b := img.Bounds()
	colorpick.Logger().Info("wrote png", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}
