// Package colorpick converts colors between the representations a color
// picker displays: HEX, RGB, HSL, HSV, HWB, CMYK, CIE XYZ, CIE L*a*b* and
// CIE L*u*v*.
//
// # Overview
//
// RGB is the interchange format. Every other representation is derived
// from an RGB value and, where it makes sense, converts back to one:
//
//	c, err := colorpick.ParseHex("#FF0000")
//	if err != nil {
//	    return err // wraps colorpick.ErrInvalidHex
//	}
//	hsl := colorpick.RGBToHSL(c)     // {0 100 50}
//	lab := colorpick.RGBToLAB(c)     // {53 80 68}
//	back := colorpick.HSLToRGB(hsl)  // {255 0 0}
//
// Describe computes all formats at once from a single RGB value, which is
// what a display should use so that no two fields disagree:
//
//	snap := colorpick.Describe(c)
//	for _, f := range snap.Formats() {
//	    fmt.Println(f.Label, f.Value)
//	}
//
// # Precision
//
// Forward conversions round as their last step: HSL, HSV, HWB, CMYK, LAB
// and LUV to integers, XYZ to one decimal. Chained conversions round once
// per step and accumulate that error; ExactHSL and ExactHSV skip rounding
// for callers that must reproduce an RGB value exactly.
//
// # Ranges
//
// Inverse conversions clamp their inputs to the documented ranges (hue to
// [0, 360], percentages to [0, 100]) and clip linear RGB to [0, 1]. There
// is no gamut mapping.
//
// # Reference White
//
// XYZ, LAB and LUV are relative to D65 with the sRGB primaries.
//
// The interactive surface lives in package picker.
package colorpick
