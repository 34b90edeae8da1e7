package colorpick

import (
	"fmt"
)

// ParseHex parses a color of the form "#RRGGBB" or "RRGGBB".
// Digits are case-insensitive. Any other input, including the 3-digit
// shorthand, fails with an error wrapping ErrInvalidHex.
func ParseHex(s string) (RGB, error) {
	h := s
	if h != "" && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	var ch [3]uint8
	for i := range ch {
		hi, ok1 := hexDigit(h[2*i])
		lo, ok2 := hexDigit(h[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		ch[i] = hi<<4 | lo
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level tables of known colors.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	const digits = "0123456789ABCDEF"
	buf := [7]byte{'#'}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		buf[1+2*i] = digits[v>>4]
		buf[2+2*i] = digits[v&0x0f]
	}
	return string(buf[:])
}

// hexDigit decodes a single hexadecimal digit.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
