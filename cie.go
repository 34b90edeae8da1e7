package colorpick

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/colorpick/internal/srgb"
)

// WhiteD65 is the D65 reference white in XYZ, scaled to Y = 100.
var WhiteD65 = XYZ{X: 95.047, Y: 100, Z: 108.883}

// Reference white chromaticity used by the L*u*v* conversion.
const (
	refU = 0.197839824213
	refV = 0.468336302932
)

// CIE constants for the cube-root / linear split of L*.
const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116
)

var (
	// rgbToXYZ holds the sRGB primaries relative to D65, one row per
	// output coordinate.
	rgbToXYZ = mat.NewDense(3, 3, []float64{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	})

	// xyzToRGB is the inverse of rgbToXYZ.
	xyzToRGB = mustInverse(rgbToXYZ)
)

func mustInverse(m mat.Matrix) *mat.Dense {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		panic("colorpick: primaries matrix is singular: " + err.Error())
	}
	return &inv
}

// RGBToXYZ converts c to CIE XYZ, each coordinate rounded to one decimal.
// Channels are linearized with the sRGB curve before the primaries matrix
// is applied.
func RGBToXYZ(c RGB) XYZ {
	x, y, z := exactXYZ(c)
	return XYZ{X: roundTo(x, 1), Y: roundTo(y, 1), Z: roundTo(z, 1)}
}

func exactXYZ(c RGB) (x, y, z float64) {
	lin := mat.NewVecDense(3, []float64{
		srgb.DecodeByte(c.R) * 100,
		srgb.DecodeByte(c.G) * 100,
		srgb.DecodeByte(c.B) * 100,
	})
	var out mat.VecDense
	out.MulVec(rgbToXYZ, lin)
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}

// XYZToRGB converts an XYZ value back to RGB. Linear channels outside
// [0, 1] are clipped, so out-of-gamut colors land on the gamut boundary.
func XYZToRGB(c XYZ) RGB {
	var out mat.VecDense
	out.MulVec(xyzToRGB, mat.NewVecDense(3, []float64{c.X / 100, c.Y / 100, c.Z / 100}))
	return RGB{
		R: srgb.EncodeByte(out.AtVec(0)),
		G: srgb.EncodeByte(out.AtVec(1)),
		B: srgb.EncodeByte(out.AtVec(2)),
	}
}

// XYZToLAB converts an XYZ value to L*a*b*, rounding to integers.
func XYZToLAB(c XYZ) LAB {
	fx := labF(c.X / WhiteD65.X)
	fy := labF(c.Y / WhiteD65.Y)
	fz := labF(c.Z / WhiteD65.Z)
	return LAB{
		L: math.Round(116*fy - 16),
		A: math.Round(500 * (fx - fy)),
		B: math.Round(200 * (fy - fz)),
	}
}

// RGBToLAB converts c to L*a*b* through the rounded XYZ value.
func RGBToLAB(c RGB) LAB {
	return XYZToLAB(RGBToXYZ(c))
}

// LABToXYZ inverts XYZToLAB without rounding.
func LABToXYZ(c LAB) XYZ {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200
	return XYZ{
		X: labFInv(fx) * WhiteD65.X,
		Y: labFInv(fy) * WhiteD65.Y,
		Z: labFInv(fz) * WhiteD65.Z,
	}
}

// LABToRGB converts L*a*b* to RGB, clipping out-of-gamut colors.
func LABToRGB(c LAB) RGB {
	return XYZToRGB(LABToXYZ(c))
}

// RGBToLUV converts c to L*u*v* through the rounded XYZ value, rounding
// each component to an integer. Black has no chromaticity and maps to
// the origin.
func RGBToLUV(c RGB) LUV {
	xyz := RGBToXYZ(c)
	x, y, z := xyz.X/100, xyz.Y/100, xyz.Z/100

	den := x + 15*y + 3*z
	if den == 0 {
		return LUV{}
	}
	u := 4 * x / den
	v := 9 * y / den
	l := 116*labF(y) - 16
	return LUV{
		L: math.Round(l),
		U: math.Round(13 * l * (u - refU)),
		V: math.Round(13 * l * (v - refV)),
	}
}

// LUVToXYZ inverts the L*u*v* conversion without rounding.
func LUVToXYZ(c LUV) XYZ {
	if c.L <= 0 {
		return XYZ{}
	}
	y := labFInv((c.L + 16) / 116)
	u := c.U/(13*c.L) + refU
	v := c.V/(13*c.L) + refV
	if v == 0 {
		return XYZ{Y: y * 100}
	}
	x := y * 9 * u / (4 * v)
	z := y * (12 - 3*u - 20*v) / (4 * v)
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}

// LUVToRGB converts L*u*v* to RGB, clipping out-of-gamut colors.
func LUVToRGB(c LUV) RGB {
	return XYZToRGB(LUVToXYZ(c))
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1.0/3)
	}
	return labKappa*t + labOffset
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (t - labOffset) / labKappa
}
