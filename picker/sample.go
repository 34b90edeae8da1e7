// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import (
	"fmt"

	"github.com/gogpu/colorpick"
)

// Model selects the color model the square's axes are fed into.
type Model uint8

const (
	// ModelHSL treats the vertical axis as HSL lightness. This matches
	// the original picker: the square looks like an HSV field but its top
	// edge is white.
	ModelHSL Model = iota

	// ModelHSV treats the axes as HSV saturation and value.
	ModelHSV
)

// String returns "hsl" or "hsv".
func (m Model) String() string {
	switch m {
	case ModelHSL:
		return "hsl"
	case ModelHSV:
		return "hsv"
	default:
		return fmt.Sprintf("Model(%d)", uint8(m))
	}
}

// ParseModel parses "hsl" or "hsv".
func ParseModel(s string) (Model, error) {
	switch s {
	case "hsl", "HSL":
		return ModelHSL, nil
	case "hsv", "HSV":
		return ModelHSV, nil
	default:
		return ModelHSL, fmt.Errorf("picker: unknown model %q", s)
	}
}

// Color converts a (hue, saturation, brightness) triple under model m.
func (m Model) Color(hue, saturation, brightness float64) colorpick.RGB {
	if m == ModelHSV {
		return colorpick.HSVToRGB(colorpick.HSV{H: hue, S: saturation, V: brightness})
	}
	return colorpick.HSLToRGB(colorpick.HSL{H: hue, S: saturation, L: brightness})
}

// coords returns the unrounded model coordinates of c, so that feeding
// them back through Color reproduces c.
func (m Model) coords(c colorpick.RGB) (hue, saturation, brightness float64) {
	if m == ModelHSV {
		v := colorpick.ExactHSV(c)
		return v.H, v.S, v.V
	}
	v := colorpick.ExactHSL(c)
	return v.H, v.S, v.L
}

// SquareColor returns the color of pixel (x, y) in a size×size square at
// the given hue. Saturation grows left to right, brightness falls top to
// bottom.
func SquareColor(m Model, hue float64, x, y, size int) colorpick.RGB {
	n := float64(size)
	s := float64(x) / n * 100
	v := 100 - float64(y)/n*100
	return m.Color(hue, s, v)
}

// HueColor returns the color of column x in a hue ramp of the given
// width: the pure hue at full saturation and half lightness, independent
// of the current saturation and brightness.
func HueColor(x, width int) colorpick.RGB {
	h := float64(x) / float64(width) * 360
	return colorpick.HSLToRGB(colorpick.HSL{H: h, S: 100, L: 50})
}

// PointerToSquare maps a pointer position relative to the square's top
// left corner to (saturation, brightness), both clamped to [0, 100]. The
// mapping depends only on the position's fraction of size, so the corners
// map to the same values at every size. A non-positive size maps
// everything to the top-left corner.
func PointerToSquare(px, py float64, size int) (saturation, brightness float64) {
	if size <= 0 {
		return 0, 100
	}
	n := float64(size)
	saturation = clampRange(px/n*100, 0, 100)
	brightness = clampRange(100-py/n*100, 0, 100)
	return saturation, brightness
}

// PointerToHue maps a horizontal pointer position on the hue slider to a
// hue clamped to [0, 360]. The right edge yields 360, not 0.
func PointerToHue(px float64, width int) float64 {
	if width <= 0 {
		return 0
	}
	return clampRange(px/float64(width)*360, 0, 360)
}

func clampRange(x, lo, hi float64) float64 {
	if x < lo || x != x {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
