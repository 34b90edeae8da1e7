package swatch

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Upscale scales src to w×h with nearest-neighbour sampling, keeping
// pixel edges crisp. Non-positive sizes keep the source dimension.
func Upscale(src image.Image, w, h int) *image.RGBA {
	sb := src.Bounds()
	if w <= 0 {
		w = sb.Dx()
	}
	if h <= 0 {
		h = sb.Dy()
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}
