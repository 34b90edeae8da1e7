// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/colorpick"
)

func TestRenderSquare_Corners(t *testing.T) {
	white := colorpick.RGB{R: 255, G: 255, B: 255}

	hsl := New(WithSquareSize(256), WithHSB(0, 50, 50))
	r := hsl.RenderSquare()
	if r.Width() != 256 || r.Height() != 256 {
		t.Fatalf("square is %d×%d", r.Width(), r.Height())
	}
	if got := r.RGBAt(0, 0); got != white {
		t.Errorf("hsl top left = %v, want white", got)
	}
	// The HSL square is white along its whole top edge.
	if got := r.RGBAt(255, 0); got != white {
		t.Errorf("hsl top right = %v, want white", got)
	}

	hsv := New(WithSquareSize(256), WithModel(ModelHSV))
	r = hsv.RenderSquare()
	if got := r.RGBAt(0, 0); got != white {
		t.Errorf("hsv top left = %v, want white", got)
	}
	if got := r.RGBAt(255, 0); got != (colorpick.RGB{R: 255, G: 1, B: 1}) {
		t.Errorf("hsv top right = %v, want #FF0101", got)
	}
}

func TestRenderSquare_ParallelMatchesSerial(t *testing.T) {
	serial := New(WithSquareSize(97), WithHSB(210, 0, 0))
	par := New(WithSquareSize(97), WithHSB(210, 0, 0), WithWorkers(4))
	defer par.Close()

	a, b := serial.RenderSquare(), par.RenderSquare()
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("parallel square differs from serial square")
	}

	// After Close the surface renders inline.
	par.Close()
	par.SetHSB(30, 0, 0)
	serial.SetHSB(30, 0, 0)
	if !bytes.Equal(serial.RenderSquare().Pix(), par.RenderSquare().Pix()) {
		t.Error("square rendered after Close differs")
	}
}

func TestRenderSquare_Cache(t *testing.T) {
	s := New(WithSquareSize(32), WithCacheSize(2))

	first := s.RenderSquare()
	if again := s.RenderSquare(); again != first {
		t.Error("second render at the same hue was not cached")
	}
	hits, misses := s.SquareCacheStats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses, want 1, 1", hits, misses)
	}

	// Square samples do not invalidate the raster.
	s.PointerDown(TargetSquare, 5, 5)
	if s.RenderSquare() != first {
		t.Error("saturation change re-rendered the square")
	}

	s.SetHSB(120, 50, 50)
	if s.RenderSquare() == first {
		t.Error("hue change reused the old raster")
	}
}

func TestRenderSquare_CacheHitLogged(t *testing.T) {
	var buf bytes.Buffer
	colorpick.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { colorpick.SetLogger(nil) })

	s := New(WithSquareSize(16))
	s.RenderSquare()
	if strings.Contains(buf.String(), "square cache hit") {
		t.Error("first render logged a cache hit")
	}
	s.RenderSquare()
	if n := strings.Count(buf.String(), "square cache hit"); n != 1 {
		t.Errorf("logged %d cache hits, want 1", n)
	}
}

func TestRenderSquare_ResizeDropsCache(t *testing.T) {
	s := New(WithSquareSize(32), WithCacheSize(4))
	first := s.RenderSquare()

	s.Resize(16, 0)
	if r := s.RenderSquare(); r.Width() != 16 {
		t.Errorf("square width = %d after Resize(16)", r.Width())
	}
	s.Resize(32, 0)
	if s.RenderSquare() == first {
		t.Error("square from before the resize was reused")
	}
	if _, misses := s.SquareCacheStats(); misses != 3 {
		t.Errorf("misses = %d, want 3", misses)
	}
}

func TestRenderHueRamp(t *testing.T) {
	s := New(WithHueRamp(360, 12))
	r := s.RenderHueRamp()
	if r.Width() != 360 || r.Height() != 12 {
		t.Fatalf("ramp is %d×%d", r.Width(), r.Height())
	}
	for x, want := range map[int]colorpick.RGB{
		0:   {R: 255},
		120: {G: 255},
		240: {B: 255},
	} {
		for y := range r.Height() {
			if got := r.RGBAt(x, y); got != want {
				t.Errorf("ramp (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	// The ramp does not depend on the current color.
	s.SetHSB(200, 10, 90)
	if !bytes.Equal(s.RenderHueRamp().Pix(), New(WithHueRamp(360, 12)).RenderHueRamp().Pix()) {
		t.Error("ramp depends on saturation/brightness")
	}
}
