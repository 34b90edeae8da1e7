// Package swatch renders preview images of a color: a filled swatch with
// its hex code centered in an ink that contrasts with the fill.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/colorpick"
)

// Default swatch geometry.
const (
	DefaultWidth    = 240
	DefaultHeight   = 120
	DefaultFontSize = 20
)

// Options controls the swatch geometry. Zero fields take the defaults.
type Options struct {
	Width    int
	Height   int
	FontSize float64

	// NoLabel renders the fill only.
	NoLabel bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	return o
}

// fonts holds Go Regular parsed twice: once for shaping, once for
// rasterizing glyphs. Both parsed forms are safe for concurrent use.
type fonts struct {
	shape  *gtfont.Font
	raster *opentype.Font
	err    error
}

var (
	fontsOnce sync.Once
	goRegular fonts
)

func loadFonts() (*fonts, error) {
	fontsOnce.Do(func() {
		face, err := gtfont.ParseTTF(bytes.NewReader(goregular.TTF))
		if err != nil {
			goRegular.err = fmt.Errorf("swatch: parse font for shaping: %w", err)
			return
		}
		otf, err := opentype.Parse(goregular.TTF)
		if err != nil {
			goRegular.err = fmt.Errorf("swatch: parse font: %w", err)
			return
		}
		goRegular.shape = face.Font
		goRegular.raster = otf
	})
	return &goRegular, goRegular.err
}

// shaperPool pools HarfbuzzShaper instances, which are not safe for
// concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// LabelWidth returns the shaped advance of text in Go Regular at size
// pixels, kerning included.
func LabelWidth(text string, size float64) (float64, error) {
	if text == "" {
		return 0, nil
	}
	f, err := loadFonts()
	if err != nil {
		return 0, err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(f.shape),
		Size:      fixed.Int26_6(size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	return float64(out.Advance) / 64, nil
}

// Ink returns the label color for snap: black on light fills, white on
// dark ones.
func Ink(snap colorpick.Snapshot) colorpick.RGB {
	if snap.IsLight() {
		return colorpick.RGB{}
	}
	return colorpick.RGB{R: 0xff, G: 0xff, B: 0xff}
}

// Render fills a new image with snap's color and draws snap.Hex centered
// on it.
func Render(snap colorpick.Snapshot, opts Options) (*image.RGBA, error) {
	o := opts.withDefaults()
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(snap.RGB), image.Point{}, draw.Src)
	if o.NoLabel || snap.Hex == "" {
		return img, nil
	}

	width, err := LabelWidth(snap.Hex, o.FontSize)
	if err != nil {
		return nil, err
	}
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f.raster, &opentype.FaceOptions{
		Size:    o.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("swatch: face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	// Center the advance box horizontally and the ascent/descent box
	// vertically.
	m := face.Metrics()
	x := (float64(o.Width) - width) / 2
	y := (float64(o.Height) + float64(m.Ascent-m.Descent)/64) / 2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Ink(snap)),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(snap.Hex)

	colorpick.Logger().Debug("swatch: rendered", "hex", snap.Hex, "width", o.Width, "height", o.Height)
	return img, nil
}
