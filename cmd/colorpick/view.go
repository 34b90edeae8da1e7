package main

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/colorpick"
	"github.com/gogpu/colorpick/names"
	"github.com/gogpu/colorpick/picker"
	"github.com/gogpu/colorpick/swatch"
)

// formatRow is one line of the format table with its copy button.
type formatRow struct {
	label  string
	value  *widget.Label
	button *widget.Button

	mu  sync.Mutex
	ack picker.Ack
}

// view is the window content. It implements picker.Display.
type view struct {
	clip    picker.Clipboard
	themes  *themeSwitch
	surface *picker.Surface
	gate    *surfaceGate
	snap    colorpick.Snapshot

	square *field
	ramp   *field

	preview    *canvas.Rectangle
	previewHex *canvas.Text
	name       *widget.Label
	hex        *widget.Entry
	refresh    *widget.Button
	themeBtn   *widget.Button
	rows       []*formatRow

	// updating is set while Show writes the hex entry, so the entry's
	// change callback does not feed the value back.
	updating bool

	// Clock hooks for copy acknowledgments.
	now   func() time.Time
	after func(time.Duration, func())
}

var _ picker.Display = (*view)(nil)

func newView(clip picker.Clipboard, themes *themeSwitch) *view {
	v := &view{
		clip:   clip,
		themes: themes,
		now:    time.Now,
		after:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}

	v.square = newField(picker.TargetSquare, fyne.NewSize(picker.DefaultSquareSize, picker.DefaultSquareSize))
	v.ramp = newField(picker.TargetHue, fyne.NewSize(picker.DefaultRampWidth, picker.DefaultRampHeight))

	v.preview = canvas.NewRectangle(color.Black)
	v.preview.SetMinSize(fyne.NewSize(200, 80))
	v.previewHex = canvas.NewText("", color.White)
	v.previewHex.TextSize = 22
	v.previewHex.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	v.name = widget.NewLabel("")

	v.hex = widget.NewEntry()
	v.hex.SetPlaceHolder("#RRGGBB")
	v.hex.OnChanged = v.hexChanged
	v.hex.OnSubmitted = v.hexSubmitted

	v.refresh = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		if v.gate != nil {
			v.gate.do((*picker.Surface).Refresh)
		}
	})
	v.themeBtn = widget.NewButton(themes.label(), v.toggleTheme)

	labels := []string{
		colorpick.LabelHex, colorpick.LabelHSL, colorpick.LabelRGB, colorpick.LabelXYZ,
		colorpick.LabelCMYK, colorpick.LabelLUV, colorpick.LabelLAB, colorpick.LabelHWB,
	}
	for i, l := range labels {
		row := &formatRow{label: l, value: widget.NewLabel("")}
		row.button = widget.NewButtonWithIcon("", theme.ContentCopyIcon(), func() { v.copy(i) })
		v.rows = append(v.rows, row)
	}
	return v
}

// bind connects the view to the surface it displays. Show runs under
// the gate, so it reads v.surface directly.
func (v *view) bind(s *picker.Surface) {
	v.surface = s
	v.gate = newSurfaceGate(s)
	v.square.gate = v.gate
	v.ramp.gate = v.gate
	v.square.onResize = func(size fyne.Size) {
		v.gate.resize(int(min(size.Width, size.Height)), 0)
	}
	v.ramp.onResize = func(size fyne.Size) {
		v.gate.resize(0, int(size.Width))
	}
}

func (v *view) content() fyne.CanvasObject {
	left := container.NewVBox(v.square, v.ramp)

	hexRow := container.NewBorder(nil, nil, nil, v.refresh, v.hex)
	table := container.NewVBox()
	for _, row := range v.rows {
		label := widget.NewLabelWithStyle(row.label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		table.Add(container.NewBorder(nil, nil, label, row.button, row.value))
	}
	right := container.NewVBox(
		container.NewStack(v.preview, container.NewCenter(v.previewHex)),
		v.name,
		hexRow,
		table,
		v.themeBtn,
	)
	return container.NewPadded(container.NewBorder(nil, nil, left, nil, right))
}

// Show implements picker.Display.
func (v *view) Show(u picker.Update) {
	v.snap = u.Color
	s := v.surface

	if u.HueChanged || v.square.img.Image == nil {
		v.square.setRaster(s.RenderSquare())
	}
	v.ramp.setRaster(s.RenderHueRamp())

	n := float32(s.SquareSize())
	rw, _ := s.RampSize()
	v.square.setHandle(float32(u.Handles.SquareX)/n, float32(u.Handles.SquareY)/n)
	v.ramp.setHandle(float32(u.Handles.HueX)/float32(rw), 0.5)

	v.preview.FillColor = u.Color.RGB
	v.preview.Refresh()
	v.previewHex.Text = u.Color.Hex
	v.previewHex.Color = swatch.Ink(u.Color)
	v.previewHex.Refresh()

	if u.Color.Name != "" {
		v.name.SetText("≈ " + u.Color.Name)
	} else {
		v.name.SetText("")
	}

	if v.hex.Text != u.Color.Hex {
		v.updating = true
		v.hex.SetText(u.Color.Hex)
		v.updating = false
	}

	for _, f := range u.Color.Formats() {
		for _, row := range v.rows {
			if row.label == f.Label {
				row.value.SetText(f.Value)
			}
		}
	}
}

// hexChanged applies a typed hex value. Partial or invalid input is
// ignored until it parses.
func (v *view) hexChanged(text string) {
	if v.updating || v.gate == nil {
		return
	}
	v.gate.do(func(s *picker.Surface) {
		_ = s.SetFromHex(text)
	})
}

// hexSubmitted accepts a color name when the entry does not hold hex.
func (v *view) hexSubmitted(text string) {
	if v.gate == nil {
		return
	}
	c, err := names.Resolve(text)
	if err != nil {
		colorpick.Logger().Debug("hex entry rejected", "text", text, "err", err)
		return
	}
	v.gate.do(func(s *picker.Surface) {
		s.SetRGB(c)
	})
}

// copy puts row i's value on the clipboard and shows a check mark for
// picker.AckDuration.
func (v *view) copy(i int) {
	row := v.rows[i]
	if _, err := picker.Copy(v.clip, v.snap, row.label); err != nil {
		colorpick.Logger().Warn("copy failed", "label", row.label, "err", err)
		return
	}

	row.mu.Lock()
	row.ack.Mark(v.now())
	row.mu.Unlock()
	row.button.SetIcon(theme.ConfirmIcon())

	v.after(picker.AckDuration, func() {
		row.mu.Lock()
		active := row.ack.Active(v.now())
		row.mu.Unlock()
		if !active {
			row.button.SetIcon(theme.ContentCopyIcon())
		}
	})
}

func (v *view) toggleTheme() {
	v.themes.toggle()
	v.themeBtn.SetText(v.themes.label())
}
