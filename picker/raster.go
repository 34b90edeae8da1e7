// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/colorpick"
)

// Raster is an opaque RGBA pixel buffer. It implements image.Image.
type Raster struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel, alpha always 255
}

// NewRaster creates a black raster with the given dimensions.
func NewRaster(width, height int) *Raster {
	width, height = max(width, 0), max(height, 0)
	r := &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
	for i := 3; i < len(r.pix); i += 4 {
		r.pix[i] = 0xff
	}
	return r
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Pix returns the raw pixel data in RGBA order.
func (r *Raster) Pix() []uint8 {
	return r.pix
}

// Set sets the color of a single pixel. Out-of-bounds writes are ignored.
func (r *Raster) Set(x, y int, c colorpick.RGB) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 4
	r.pix[i+0] = c.R
	r.pix[i+1] = c.G
	r.pix[i+2] = c.B
}

// RGBAt returns the color of a single pixel, or black out of bounds.
func (r *Raster) RGBAt(x, y int) colorpick.RGB {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return colorpick.RGB{}
	}
	i := (y*r.width + x) * 4
	return colorpick.RGB{R: r.pix[i+0], G: r.pix[i+1], B: r.pix[i+2]}
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	return r.RGBAt(x, y)
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return colorpick.RGBModel
}

// ToImage copies the raster into a new image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(r.Bounds())
	copy(img.Pix, r.pix)
	return img
}

// EncodePNG writes the raster as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.ToImage())
}

// SavePNG writes the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
