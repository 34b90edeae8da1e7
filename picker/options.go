// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

// Option configures a Surface during creation.
//
// Example:
//
//	s := picker.New(
//	    picker.WithSquareSize(300),
//	    picker.WithHueRamp(300, 24),
//	    picker.WithModel(picker.ModelHSV),
//	)
type Option func(*options)

type options struct {
	squareSize int
	rampWidth  int
	rampHeight int
	hue        float64
	saturation float64
	brightness float64
	model      Model
	workers    int
	cacheSize  int
	display    Display
	namer      Namer
}

// Defaults: a deep red on a 256 pixel square.
const (
	DefaultSquareSize = 256
	DefaultRampWidth  = 256
	DefaultRampHeight = 40
	DefaultHue        = 0
	DefaultSaturation = 98
	DefaultBrightness = 24
	DefaultCacheSize  = 8
)

func defaultOptions() options {
	return options{
		squareSize: DefaultSquareSize,
		rampWidth:  DefaultRampWidth,
		rampHeight: DefaultRampHeight,
		hue:        DefaultHue,
		saturation: DefaultSaturation,
		brightness: DefaultBrightness,
		model:      ModelHSL,
		cacheSize:  DefaultCacheSize,
	}
}

// WithSquareSize sets the side of the saturation/brightness square in
// pixels. Non-positive sizes are ignored.
func WithSquareSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.squareSize = n
		}
	}
}

// WithHueRamp sets the hue slider raster size. Non-positive values keep
// the default for that dimension.
func WithHueRamp(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.rampWidth = width
		}
		if height > 0 {
			o.rampHeight = height
		}
	}
}

// WithHSB sets the initial hue (degrees), saturation and brightness
// (percent). Values are clamped to range.
func WithHSB(hue, saturation, brightness float64) Option {
	return func(o *options) {
		o.hue = clampRange(hue, 0, 360)
		o.saturation = clampRange(saturation, 0, 100)
		o.brightness = clampRange(brightness, 0, 100)
	}
}

// WithModel selects how the square's axes are turned into a color.
func WithModel(m Model) Option {
	return func(o *options) {
		o.model = m
	}
}

// WithWorkers renders rasters on n goroutines. Values of 1 or less
// render on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCacheSize sets how many rendered squares are kept.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithDisplay registers the collaborator that receives every update.
func WithDisplay(d Display) Option {
	return func(o *options) {
		o.display = d
	}
}

// WithNamer sets the function used to fill Snapshot.Name.
func WithNamer(n Namer) Option {
	return func(o *options) {
		o.namer = n
	}
}
