// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/colorpick"
)

func TestRaster_SetAndAt(t *testing.T) {
	r := NewRaster(4, 3)
	if got := r.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", got)
	}
	if got := r.RGBAt(1, 1); got != (colorpick.RGB{}) {
		t.Errorf("new raster pixel = %v, want black", got)
	}

	c := colorpick.RGB{R: 10, G: 20, B: 30}
	r.Set(2, 1, c)
	r.Set(-1, 0, c)
	r.Set(4, 0, c)
	if got := r.RGBAt(2, 1); got != c {
		t.Errorf("RGBAt(2, 1) = %v, want %v", got, c)
	}
	if got := r.RGBAt(9, 9); got != (colorpick.RGB{}) {
		t.Errorf("out of bounds = %v, want black", got)
	}

	cr, cg, cb, ca := r.At(2, 1).RGBA()
	if cr != 10*0x101 || cg != 20*0x101 || cb != 30*0x101 || ca != 0xffff {
		t.Errorf("At(2, 1).RGBA() = %d %d %d %d", cr, cg, cb, ca)
	}
	if r.ColorModel() != colorpick.RGBModel {
		t.Error("ColorModel is not RGBModel")
	}
}

func TestRaster_PNG(t *testing.T) {
	r := New(WithSquareSize(16), WithHSB(45, 0, 0)).RenderSquare()

	path := filepath.Join(t.TempDir(), "square.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Error("SavePNG and EncodePNG disagree")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for y := range 16 {
		for x := range 16 {
			got := colorpick.RGBModel.Convert(img.At(x, y))
			if got != r.RGBAt(x, y) {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, r.RGBAt(x, y))
			}
		}
	}
}

func TestRaster_SavePNGError(t *testing.T) {
	r := NewRaster(1, 1)
	if err := r.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
