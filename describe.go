package colorpick

import "fmt"

// Format labels in display order.
const (
	LabelHex  = "HEX"
	LabelHSL  = "HSL"
	LabelRGB  = "RGB"
	LabelXYZ  = "XYZ"
	LabelCMYK = "CMYK"
	LabelLUV  = "LUV"
	LabelLAB  = "LAB"
	LabelHWB  = "HWB"
)

// Format is one row of the display table: a label and the value string
// shown next to it (and copied to the clipboard).
type Format struct {
	Label string
	Value string
}

// Snapshot holds every representation of one color. All fields are
// derived from the single RGB value, so they never disagree.
type Snapshot struct {
	RGB  RGB
	Hex  string
	HSL  HSL
	HSV  HSV
	CMYK CMYK
	XYZ  XYZ
	LAB  LAB
	LUV  LUV
	HWB  HWB

	// Name is the exact-match color name, if a namer supplied one.
	Name string
}

// Describe derives every display format from c.
func Describe(c RGB) Snapshot {
	return Snapshot{
		RGB:  c,
		Hex:  c.Hex(),
		HSL:  RGBToHSL(c),
		HSV:  RGBToHSV(c),
		CMYK: RGBToCMYK(c),
		XYZ:  RGBToXYZ(c),
		LAB:  RGBToLAB(c),
		LUV:  RGBToLUV(c),
		HWB:  RGBToHWB(c),
	}
}

// Formats returns the display table in the order
// HEX, HSL, RGB, XYZ, CMYK, LUV, LAB, HWB.
func (s Snapshot) Formats() []Format {
	return []Format{
		{LabelHex, s.Hex},
		{LabelHSL, s.HSL.String()},
		{LabelRGB, s.RGB.String()},
		{LabelXYZ, s.XYZ.String()},
		{LabelCMYK, s.CMYK.String()},
		{LabelLUV, s.LUV.String()},
		{LabelLAB, s.LAB.String()},
		{LabelHWB, s.HWB.String()},
	}
}

// Value returns the value string for one format label.
func (s Snapshot) Value(label string) (string, error) {
	for _, f := range s.Formats() {
		if f.Label == label {
			return f.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, label)
}

// IsLight reports whether the mean channel value exceeds 128. Displays
// use it to pick dark text over light colors.
func (s Snapshot) IsLight() bool {
	return (float64(s.RGB.R)+float64(s.RGB.G)+float64(s.RGB.B))/3 > 128
}
