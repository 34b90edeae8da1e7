// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import (
	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/internal/parallel"
)

// RenderSquare returns the saturation/brightness square at the current
// hue. Rasters are cached per hue, size and model; callers must not
// modify the result.
func (s *Surface) RenderSquare() *Raster {
	key := squareKey{hue: s.hue, size: s.squareSize, model: s.model}
	rendered := false
	r := s.squares.GetOrCreate(key, func() *Raster {
		rendered = true
		return renderSquare(s.pool, key.model, key.hue, key.size)
	})
	if !rendered {
		colorpick.Logger().Debug("picker: square cache hit", "hue", key.hue, "size", key.size)
	}
	return r
}

// RenderHueRamp returns the hue slider raster. Every row is identical.
func (s *Surface) RenderHueRamp() *Raster {
	if s.ramp == nil {
		s.ramp = renderHueRamp(s.rampWidth, s.rampHeight)
	}
	return s.ramp
}

// SquareCacheStats reports the square raster cache counters.
func (s *Surface) SquareCacheStats() (hits, misses uint64) {
	st := s.squares.Stats()
	return st.Hits, st.Misses
}

// renderSquare fills a size×size raster, splitting rows over pool. Bands
// write disjoint rows, so no locking is needed.
func renderSquare(pool *parallel.WorkerPool, m Model, hue float64, size int) *Raster {
	r := NewRaster(size, size)
	pool.Rows(size, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range size {
				r.Set(x, y, SquareColor(m, hue, x, y, size))
			}
		}
	})
	return r
}

func renderHueRamp(width, height int) *Raster {
	r := NewRaster(width, height)
	if height == 0 {
		return r
	}
	for x := range width {
		r.Set(x, 0, HueColor(x, width))
	}
	row := r.pix[:width*4]
	for y := 1; y < height; y++ {
		copy(r.pix[y*width*4:], row)
	}
	return r
}
