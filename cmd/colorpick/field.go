package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/colorpick/picker"
)

const markerSize = 14

// field shows one picker raster and turns pointer events on it into
// picker state changes. The marker sits at (hx, hy), given as fractions
// of the widget size.
type field struct {
	widget.BaseWidget

	target  picker.Target
	gate    *surfaceGate
	minSize fyne.Size

	img    *canvas.Image
	marker fyne.CanvasObject
	hx, hy float32

	onResize func(fyne.Size)
}

var (
	_ fyne.Draggable    = (*field)(nil)
	_ fyne.Tappable     = (*field)(nil)
	_ desktop.Mouseable = (*field)(nil)
	_ desktop.Hoverable = (*field)(nil)
)

func newField(target picker.Target, minSize fyne.Size) *field {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels

	var marker fyne.CanvasObject
	if target == picker.TargetHue {
		bar := canvas.NewRectangle(color.Transparent)
		bar.StrokeColor = color.White
		bar.StrokeWidth = 2
		marker = bar
	} else {
		ring := canvas.NewCircle(color.Transparent)
		ring.StrokeColor = color.White
		ring.StrokeWidth = 2
		marker = ring
	}

	f := &field{target: target, minSize: minSize, img: img, marker: marker}
	f.ExtendBaseWidget(f)
	return f
}

// rasterSize returns the pixel size of the raster this field shows.
func (f *field) rasterSize(s *picker.Surface) (w, h int) {
	if f.target == picker.TargetHue {
		return s.RampSize()
	}
	n := s.SquareSize()
	return n, n
}

// scalePos maps a position in a widget of the given size onto a w×h
// raster.
func scalePos(pos fyne.Position, size fyne.Size, w, h int) (x, y float64) {
	x, y = float64(pos.X), float64(pos.Y)
	if size.Width > 0 {
		x = x / float64(size.Width) * float64(w)
	}
	if size.Height > 0 {
		y = y / float64(size.Height) * float64(h)
	}
	return x, y
}

func (f *field) toRaster(s *picker.Surface, pos fyne.Position) (x, y float64) {
	w, h := f.rasterSize(s)
	return scalePos(pos, f.Size(), w, h)
}

// use runs fn on the surface once the field is bound.
func (f *field) use(fn func(*picker.Surface)) {
	if f.gate != nil {
		f.gate.do(fn)
	}
}

func (f *field) MouseDown(ev *desktop.MouseEvent) {
	f.use(func(s *picker.Surface) {
		x, y := f.toRaster(s, ev.Position)
		s.PointerDown(f.target, x, y)
	})
}

func (f *field) MouseUp(*desktop.MouseEvent) {
	f.use((*picker.Surface).PointerUp)
}

func (f *field) Dragged(ev *fyne.DragEvent) {
	f.use(func(s *picker.Surface) {
		x, y := f.toRaster(s, ev.Position)
		s.PointerMove(f.target, x, y)
	})
}

func (f *field) DragEnd() {
	f.use((*picker.Surface).PointerUp)
}

// Tapped covers touch input, which has no MouseDown.
func (f *field) Tapped(ev *fyne.PointEvent) {
	f.use(func(s *picker.Surface) {
		x, y := f.toRaster(s, ev.Position)
		s.PointerDown(f.target, x, y)
		s.PointerUp()
	})
}

func (f *field) MouseIn(*desktop.MouseEvent)    {}
func (f *field) MouseMoved(*desktop.MouseEvent) {}

func (f *field) MouseOut() {
	f.use((*picker.Surface).PointerLeave)
}

// Resize lets the picker re-render its rasters at the new size.
func (f *field) Resize(size fyne.Size) {
	f.BaseWidget.Resize(size)
	if f.onResize != nil {
		f.onResize(size)
	}
}

func (f *field) setRaster(r *picker.Raster) {
	if f.img.Image == r {
		return
	}
	f.img.Image = r
	f.img.Refresh()
}

func (f *field) setHandle(hx, hy float32) {
	f.hx, f.hy = hx, hy
	f.Refresh()
}

func (f *field) MinSize() fyne.Size {
	return f.minSize
}

func (f *field) CreateRenderer() fyne.WidgetRenderer {
	return &fieldRenderer{f: f, objects: []fyne.CanvasObject{f.img, f.marker}}
}

type fieldRenderer struct {
	f       *field
	objects []fyne.CanvasObject
}

func (r *fieldRenderer) Layout(size fyne.Size) {
	r.f.img.Move(fyne.NewPos(0, 0))
	r.f.img.Resize(size)

	cx, cy := r.f.hx*size.Width, r.f.hy*size.Height
	if r.f.target == picker.TargetHue {
		r.f.marker.Resize(fyne.NewSize(4, size.Height))
		r.f.marker.Move(fyne.NewPos(cx-2, 0))
		return
	}
	r.f.marker.Resize(fyne.NewSize(markerSize, markerSize))
	r.f.marker.Move(fyne.NewPos(cx-markerSize/2, cy-markerSize/2))
}

func (r *fieldRenderer) MinSize() fyne.Size {
	return r.f.minSize
}

func (r *fieldRenderer) Refresh() {
	r.Layout(r.f.Size())
	canvas.Refresh(r.f.marker)
}

func (r *fieldRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *fieldRenderer) Destroy() {}
