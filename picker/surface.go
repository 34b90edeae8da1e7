// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import (
	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/internal/cache"
	"github.com/gogpu/colorpick/internal/parallel"
)

// Display receives the result of every state change.
type Display interface {
	Show(Update)
}

// DisplayFunc adapts a function to the Display interface.
type DisplayFunc func(Update)

// Show calls f(u).
func (f DisplayFunc) Show(u Update) { f(u) }

// Namer returns the name of an exact "#RRGGBB" color, or "".
type Namer func(hex string) string

// Update is pushed to the Display after each state change.
type Update struct {
	// Color holds every format of the new color.
	Color colorpick.Snapshot

	// Handles are the indicator positions for the new state.
	Handles Handles

	// HueChanged reports that the square raster must be re-rendered.
	HueChanged bool
}

// Handles are the pixel positions of the two indicators: the circle on
// the square and the vertical bar on the hue slider.
type Handles struct {
	SquareX, SquareY float64
	HueX             float64
}

// squareKey identifies one rendered square.
type squareKey struct {
	hue   float64
	size  int
	model Model
}

// Surface is the picker state holder. Create it with New.
type Surface struct {
	hue        float64
	saturation float64
	brightness float64

	draggingSquare bool
	draggingHue    bool

	squareSize int
	rampWidth  int
	rampHeight int
	model      Model

	display Display
	namer   Namer

	squares *cache.Cache[squareKey, *Raster]
	ramp    *Raster
	pool    *parallel.WorkerPool
}

// New creates a Surface at the default deep red unless options say
// otherwise.
func New(opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{
		hue:        o.hue,
		saturation: o.saturation,
		brightness: o.brightness,
		squareSize: o.squareSize,
		rampWidth:  o.rampWidth,
		rampHeight: o.rampHeight,
		model:      o.model,
		display:    o.display,
		namer:      o.namer,
		squares:    cache.New[squareKey, *Raster](o.cacheSize),
	}
	if o.workers > 1 {
		s.pool = parallel.NewWorkerPool(o.workers)
	}
	return s
}

// Close stops the render workers. The surface stays usable and renders
// inline afterwards.
func (s *Surface) Close() {
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

// HSB returns the current hue (degrees), saturation and brightness
// (percent).
func (s *Surface) HSB() (hue, saturation, brightness float64) {
	return s.hue, s.saturation, s.brightness
}

// Model returns the square model.
func (s *Surface) Model() Model {
	return s.model
}

// SquareSize returns the side of the square raster.
func (s *Surface) SquareSize() int {
	return s.squareSize
}

// RampSize returns the hue ramp raster dimensions.
func (s *Surface) RampSize() (width, height int) {
	return s.rampWidth, s.rampHeight
}

// RGB computes the current color.
func (s *Surface) RGB() colorpick.RGB {
	return s.model.Color(s.hue, s.saturation, s.brightness)
}

// Snapshot derives every display format from one computation of the
// current color.
func (s *Surface) Snapshot() colorpick.Snapshot {
	snap := colorpick.Describe(s.RGB())
	if s.namer != nil {
		snap.Name = s.namer(snap.Hex)
	}
	return snap
}

// Handles returns the indicator positions for the current state.
func (s *Surface) Handles() Handles {
	n := float64(s.squareSize)
	return Handles{
		SquareX: s.saturation / 100 * n,
		SquareY: (100 - s.brightness) / 100 * n,
		HueX:    s.hue / 360 * float64(s.rampWidth),
	}
}

// SetFromHex parses a "#RRGGBB" string and moves the state to that
// color. Invalid input leaves the state untouched and returns an error
// wrapping colorpick.ErrInvalidHex.
func (s *Surface) SetFromHex(hex string) error {
	c, err := colorpick.ParseHex(hex)
	if err != nil {
		colorpick.Logger().Debug("picker: ignored hex edit", "input", hex)
		return err
	}
	s.SetRGB(c)
	return nil
}

// SetRGB moves the state to c. The stored coordinates are unrounded, so
// Snapshot reproduces c exactly.
func (s *Surface) SetRGB(c colorpick.RGB) {
	h, sat, b := s.model.coords(c)
	s.set(h, sat, b)
}

// SetHSB moves the state to the given coordinates, clamped to range.
func (s *Surface) SetHSB(hue, saturation, brightness float64) {
	s.set(clampRange(hue, 0, 360), clampRange(saturation, 0, 100), clampRange(brightness, 0, 100))
}

// Refresh pushes the current state to the display again.
func (s *Surface) Refresh() {
	s.notify(true)
}

// Resize changes the raster sizes. Handle positions follow, the color
// does not change. Non-positive values keep the current size. Squares
// cached at the old size are dropped.
func (s *Surface) Resize(squareSize, rampWidth int) {
	changed := false
	if squareSize > 0 && squareSize != s.squareSize {
		s.squareSize = squareSize
		s.squares.Clear()
		changed = true
	}
	if rampWidth > 0 && rampWidth != s.rampWidth {
		s.rampWidth = rampWidth
		s.ramp = nil
		changed = true
	}
	if changed {
		s.notify(true)
	}
}

func (s *Surface) set(hue, saturation, brightness float64) {
	hueChanged := hue != s.hue
	s.hue, s.saturation, s.brightness = hue, saturation, brightness
	s.notify(hueChanged)
}

func (s *Surface) notify(hueChanged bool) {
	if s.display == nil {
		return
	}
	colorpick.Logger().Debug("picker: state",
		"hue", s.hue, "saturation", s.saturation, "brightness", s.brightness)
	s.display.Show(Update{
		Color:      s.Snapshot(),
		Handles:    s.Handles(),
		HueChanged: hueChanged,
	})
}
