// Package srgb implements the sRGB transfer function used before and after
// the primaries matrix in CIE XYZ conversions.
//
// Decoding (display value to linear light) uses the IEC 61966-2-1 piecewise
// curve with its breakpoint at 0.04045. Encoded bytes are decoded through a
// 256-entry table because every caller starts from 8-bit channels.
package srgb

import "math"

// decodeLUT maps an 8-bit sRGB channel to linear light in [0, 1].
var decodeLUT [256]float64

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = Decode(float64(i) / 255)
	}
}

// Decode converts an encoded sRGB component in [0, 1] to linear light.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func Decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// Encode converts linear light in [0, 1] back to an encoded sRGB component.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func Encode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// DecodeByte returns the linear light value of an 8-bit sRGB channel.
func DecodeByte(v uint8) float64 {
	return decodeLUT[v]
}

// EncodeByte converts linear light to an 8-bit sRGB channel.
// The input is clamped to [0, 1] and the result rounded to nearest.
func EncodeByte(l float64) uint8 {
	if l <= 0 {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return uint8(math.Round(Encode(l) * 255))
}
