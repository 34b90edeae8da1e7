package colorpick

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBModel converts any color.Color to RGB, dropping alpha.
var RGBModel = color.ModelFunc(rgbModel)

// RGB is the canonical interchange color. Every other representation is
// derived from or converted back to an RGB value.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// String returns the channels as "r, g, b".
func (c RGB) String() string {
	return joinComponents(float64(c.R), float64(c.G), float64(c.B))
}

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: nc.R, G: nc.G, B: nc.B}
}

// HSL is a hue/saturation/lightness triple. H is in degrees [0, 360],
// S and L are percentages [0, 100].
type HSL struct {
	H, S, L float64
}

// String returns the components as "h, s, l".
func (c HSL) String() string { return joinComponents(c.H, c.S, c.L) }

// HSV is a hue/saturation/value triple. H is in degrees [0, 360],
// S and V are percentages [0, 100].
type HSV struct {
	H, S, V float64
}

// String returns the components as "h, s, v".
func (c HSV) String() string { return joinComponents(c.H, c.S, c.V) }

// HWB is a hue/whiteness/blackness triple. H is shared with HSL,
// W and B are percentages [0, 100].
type HWB struct {
	H, W, B float64
}

// String returns the components as "h, w, b".
func (c HWB) String() string { return joinComponents(c.H, c.W, c.B) }

// CMYK holds process ink coverage percentages in [0, 100].
type CMYK struct {
	C, M, Y, K float64
}

// String returns the components as "c, m, y, k".
func (c CMYK) String() string { return joinComponents(c.C, c.M, c.Y, c.K) }

// XYZ is a CIE 1931 tristimulus value relative to D65, scaled so that
// the white point has Y = 100.
type XYZ struct {
	X, Y, Z float64
}

// String returns the components as "x, y, z".
func (c XYZ) String() string { return joinComponents(c.X, c.Y, c.Z) }

// LAB is a CIE L*a*b* color relative to D65.
type LAB struct {
	L, A, B float64
}

// String returns the components as "l, a, b".
func (c LAB) String() string { return joinComponents(c.L, c.A, c.B) }

// LUV is a CIE L*u*v* color relative to D65.
type LUV struct {
	L, U, V float64
}

// String returns the components as "l, u, v".
func (c LUV) String() string { return joinComponents(c.L, c.U, c.V) }

// joinComponents formats numbers in their shortest form, so 95.0 prints
// as "95" and 7.9 as "7.9".
func joinComponents(vals ...float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		if v == 0 {
			v = 0 // drop the sign of negative zero
		}
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	if places == 0 {
		return math.Round(x)
	}
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// clamp restricts x to [lo, hi]. NaN becomes lo.
func clamp(x, lo, hi float64) float64 {
	if x < lo || x != x {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// toByte converts a unit-range channel to [0, 255] with rounding.
func toByte(x float64) uint8 {
	return uint8(math.Round(clamp(x, 0, 1) * 255))
}
