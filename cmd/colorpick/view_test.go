package main

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"github.com/gogpu/colorpick/picker"
)

type fakeClipboard struct {
	content string
}

func (c *fakeClipboard) Content() string        { return c.content }
func (c *fakeClipboard) SetContent(text string) { c.content = text }

func newTestView(t *testing.T, opts ...picker.Option) (*view, *picker.Surface, *fakeClipboard) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	clip := &fakeClipboard{}
	v := newView(clip, newThemeSwitch(&fakeSettings{}, fakePrefs{}))
	s := picker.New(append(opts, picker.WithDisplay(v))...)
	t.Cleanup(s.Close)
	v.bind(s)
	s.Refresh()
	return v, s, clip
}

func mouseAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestView_Initial(t *testing.T) {
	v, _, _ := newTestView(t)

	if v.hex.Text != "#790101" {
		t.Errorf("hex entry = %q", v.hex.Text)
	}
	if v.previewHex.Text != "#790101" {
		t.Errorf("preview = %q", v.previewHex.Text)
	}
	want := map[string]string{
		"HEX": "#790101",
		"HSL": "0, 98, 24",
		"LAB": "24, 46, 36",
		"HWB": "0, 0, 53",
	}
	for _, row := range v.rows {
		if w, ok := want[row.label]; ok && row.value.Text != w {
			t.Errorf("%s row = %q, want %q", row.label, row.value.Text, w)
		}
	}
	if v.name.Text != "" {
		t.Errorf("name = %q, want empty", v.name.Text)
	}
	if v.square.img.Image == nil || v.ramp.img.Image == nil {
		t.Error("rasters not set")
	}
}

func TestView_HexEntry(t *testing.T) {
	v, s, _ := newTestView(t)

	v.hexChanged("#78")
	if got := s.Snapshot().Hex; got != "#790101" {
		t.Errorf("partial input changed color to %s", got)
	}

	v.hexChanged("#780101")
	if got := s.Snapshot().Hex; got != "#780101" {
		t.Errorf("color = %s", got)
	}
	if v.name.Text != "≈ Japanese Maple" {
		t.Errorf("name = %q", v.name.Text)
	}
	if v.hex.Text != "#780101" {
		t.Errorf("hex entry = %q", v.hex.Text)
	}
}

func TestView_HexSubmitName(t *testing.T) {
	v, s, _ := newTestView(t)

	v.hexSubmitted("dark slate gray")
	if got := s.Snapshot().Hex; got != "#2F4F4F" {
		t.Errorf("color = %s, want #2F4F4F", got)
	}
	if v.hex.Text != "#2F4F4F" {
		t.Errorf("hex entry = %q", v.hex.Text)
	}

	v.hexSubmitted("ultraviolet")
	if got := s.Snapshot().Hex; got != "#2F4F4F" {
		t.Errorf("unknown name changed color to %s", got)
	}
}

func TestView_ResizeFollowsField(t *testing.T) {
	v, s, _ := newTestView(t, picker.WithSquareSize(200))
	v.square.Resize(fyne.NewSize(180, 150))
	if got := s.SquareSize(); got != 150 {
		t.Errorf("SquareSize() = %d, want 150", got)
	}
	v.ramp.Resize(fyne.NewSize(300, 20))
	if w, _ := s.RampSize(); w != 300 {
		t.Errorf("ramp width = %d, want 300", w)
	}
	if v.square.img.Image.Bounds().Dx() != 150 {
		t.Errorf("square raster not re-rendered at the new size")
	}
}

func TestView_SquareDrag(t *testing.T) {
	v, s, _ := newTestView(t, picker.WithSquareSize(200))
	v.square.Resize(fyne.NewSize(200, 200))

	v.square.MouseDown(mouseAt(0, 0))
	if _, sat, b := s.HSB(); sat != 0 || b != 100 {
		t.Fatalf("after down: s=%v b=%v", sat, b)
	}
	v.square.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 150)}})
	if _, sat, b := s.HSB(); sat != 50 || b != 25 {
		t.Errorf("after drag: s=%v b=%v", sat, b)
	}
	if v.square.hx != 0.5 || v.square.hy != 0.75 {
		t.Errorf("marker at (%v, %v)", v.square.hx, v.square.hy)
	}

	v.square.MouseOut()
	v.square.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)}})
	if _, sat, b := s.HSB(); sat != 50 || b != 25 {
		t.Errorf("drag after leave moved to s=%v b=%v", sat, b)
	}
}

func TestView_HueTap(t *testing.T) {
	v, s, _ := newTestView(t, picker.WithHueRamp(360, 20))
	v.ramp.Resize(fyne.NewSize(360, 20))

	before := v.square.img.Image
	v.ramp.Tapped(&fyne.PointEvent{Position: fyne.NewPos(120, 10)})
	if h, _, _ := s.HSB(); h != 120 {
		t.Errorf("hue = %v, want 120", h)
	}
	if v.square.img.Image == before {
		t.Error("square not re-rendered after a hue change")
	}
	if sq, hue := s.Dragging(); sq || hue {
		t.Error("tap left a drag in progress")
	}
}

func TestView_Copy(t *testing.T) {
	v, _, clip := newTestView(t)

	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := t0
	var pending func()
	v.now = func() time.Time { return now }
	v.after = func(d time.Duration, f func()) {
		if d != picker.AckDuration {
			t.Errorf("ack scheduled for %v", d)
		}
		pending = f
	}

	v.copy(6) // LAB
	if clip.content != "24, 46, 36" {
		t.Errorf("clipboard = %q", clip.content)
	}
	row := v.rows[6]
	if row.button.Icon.Name() != theme.ConfirmIcon().Name() {
		t.Error("copy button does not show the check mark")
	}

	now = t0.Add(picker.AckDuration)
	pending()
	if row.button.Icon.Name() != theme.ContentCopyIcon().Name() {
		t.Error("check mark not cleared after a second")
	}
}

func TestView_ToggleTheme(t *testing.T) {
	v, _, _ := newTestView(t)
	v.toggleTheme()
	if !v.themes.dark() || v.themeBtn.Text != "Light mode" {
		t.Errorf("dark=%v button=%q", v.themes.dark(), v.themeBtn.Text)
	}
}

func TestScalePos(t *testing.T) {
	x, y := scalePos(fyne.NewPos(50, 25), fyne.NewSize(100, 100), 256, 256)
	if x != 128 || y != 64 {
		t.Errorf("scalePos = (%v, %v), want (128, 64)", x, y)
	}
	x, y = scalePos(fyne.NewPos(7, 9), fyne.Size{}, 256, 256)
	if x != 7 || y != 9 {
		t.Errorf("zero size scalePos = (%v, %v)", x, y)
	}
}
