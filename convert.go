package colorpick

import "math"

// ExactHSL converts c to HSL without rounding. Use it where an HSL value
// must convert back to the same RGB; RGBToHSL is the display form.
//
// When the maximum channel is ambiguous the hue sector is chosen in the
// order red, green, blue. Achromatic colors have H = S = 0.
func ExactHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}
	return HSL{H: hueOf(r, g, b, maxC, d) * 360, S: s * 100, L: l * 100}
}

// RGBToHSL converts c to HSL with every component rounded to an integer.
func RGBToHSL(c RGB) HSL {
	h := ExactHSL(c)
	return HSL{H: math.Round(h.H), S: math.Round(h.S), L: math.Round(h.L)}
}

// HSLToRGB converts an HSL triple to RGB. Components are clamped to their
// documented ranges first; S = 0 takes the achromatic path.
func HSLToRGB(c HSL) RGB {
	r, g, b := hslChannels(c)
	return RGB{R: toByte(r), G: toByte(g), B: toByte(b)}
}

// hslChannels returns the unit-range channels of an HSL color.
func hslChannels(c HSL) (r, g, b float64) {
	h := clamp(c.H, 0, 360) / 360
	s := clamp(c.S, 0, 100) / 100
	l := clamp(c.L, 0, 100) / 100

	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToChannel(p, q, h+1.0/3), hueToChannel(p, q, h), hueToChannel(p, q, h-1.0/3)
}

// hueToChannel projects a hue fraction onto one channel of the
// lightness band [p, q].
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// hueOf returns the six-sector hue in [0, 1) for a chromatic color with
// the given maximum channel and chroma d.
func hueOf(r, g, b, maxC, d float64) float64 {
	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

// ExactHSV converts c to HSV without rounding.
func ExactHSV(c RGB) HSV {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	d := maxC - minC

	hsv := HSV{V: maxC * 100}
	if maxC > 0 {
		hsv.S = d / maxC * 100
	}
	if d > 0 {
		hsv.H = hueOf(r, g, b, maxC, d) * 360
	}
	return hsv
}

// RGBToHSV converts c to HSV with every component rounded to an integer.
func RGBToHSV(c RGB) HSV {
	h := ExactHSV(c)
	return HSV{H: math.Round(h.H), S: math.Round(h.S), V: math.Round(h.V)}
}

// HSVToRGB converts an HSV triple to RGB after clamping it to range.
func HSVToRGB(c HSV) RGB {
	h := clamp(c.H, 0, 360) / 360
	s := clamp(c.S, 0, 100) / 100
	v := clamp(c.V, 0, 100) / 100

	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{R: toByte(r), G: toByte(g), B: toByte(b)}
}

// RGBToHWB converts c to HWB. The hue is the rounded HSL hue; whiteness
// and blackness are the minimum channel and the complement of the maximum.
func RGBToHWB(c RGB) HWB {
	minC := min(c.R, c.G, c.B)
	maxC := max(c.R, c.G, c.B)
	return HWB{
		H: RGBToHSL(c).H,
		W: math.Round(float64(minC) / 255 * 100),
		B: math.Round((1 - float64(maxC)/255) * 100),
	}
}

// HWBToRGB converts an HWB triple to RGB. When whiteness and blackness
// sum to 100 or more the result is the gray they normalize to.
func HWBToRGB(c HWB) RGB {
	w := clamp(c.W, 0, 100) / 100
	bl := clamp(c.B, 0, 100) / 100
	if w+bl >= 1 {
		g := toByte(w / (w + bl))
		return RGB{R: g, G: g, B: g}
	}

	r, g, b := hslChannels(HSL{H: c.H, S: 100, L: 50})
	scale := 1 - w - bl
	return RGB{
		R: toByte(r*scale + w),
		G: toByte(g*scale + w),
		B: toByte(b*scale + w),
	}
}

// RGBToCMYK converts c to CMYK percentages. Pure black is reported as
// K = 100 with no colored ink.
func RGBToCMYK(c RGB) CMYK {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}
	return CMYK{
		C: math.Round((1 - r - k) / (1 - k) * 100),
		M: math.Round((1 - g - k) / (1 - k) * 100),
		Y: math.Round((1 - b - k) / (1 - k) * 100),
		K: math.Round(k * 100),
	}
}

// CMYKToRGB converts CMYK percentages to RGB after clamping them to range.
func CMYKToRGB(c CMYK) RGB {
	k := 1 - clamp(c.K, 0, 100)/100
	return RGB{
		R: toByte((1 - clamp(c.C, 0, 100)/100) * k),
		G: toByte((1 - clamp(c.M, 0, 100)/100) * k),
		B: toByte((1 - clamp(c.Y, 0, 100)/100) * k),
	}
}
