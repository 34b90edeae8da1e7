package main

import (
	"sync"
	"testing"

	"github.com/gogpu/colorpick/picker"
)

func TestSurfaceGate_ResizeWhileDragging(t *testing.T) {
	s := picker.New(picker.WithSquareSize(200))
	t.Cleanup(s.Close)
	g := newSurfaceGate(s)
	g.do(func(s *picker.Surface) { s.PointerDown(picker.TargetSquare, 10, 10) })

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 100 {
			g.resize(100+i, 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := range 100 {
			g.do(func(s *picker.Surface) {
				s.PointerMove(picker.TargetSquare, float64(i), float64(i))
			})
		}
	}()
	wg.Wait()
	g.do((*picker.Surface).PointerUp)

	if got := s.SquareSize(); got != 199 {
		t.Errorf("SquareSize() = %d, want the last queued 199", got)
	}
}

func TestSurfaceGate_ResizeFromShow(t *testing.T) {
	var g *surfaceGate
	shows := 0
	s := picker.New(
		picker.WithSquareSize(200),
		picker.WithDisplay(picker.DisplayFunc(func(picker.Update) {
			shows++
			// Layout reacting to a redraw asks for a new size.
			if shows == 1 {
				g.resize(120, 0)
			}
		})),
	)
	t.Cleanup(s.Close)
	g = newSurfaceGate(s)

	g.do((*picker.Surface).Refresh)

	if got := s.SquareSize(); got != 120 {
		t.Errorf("SquareSize() = %d, want 120", got)
	}
	if shows != 2 {
		t.Errorf("Show ran %d times, want 2", shows)
	}
}

func TestSurfaceGate_ResizeWhenIdle(t *testing.T) {
	s := picker.New(picker.WithSquareSize(200), picker.WithHueRamp(300, 30))
	t.Cleanup(s.Close)
	g := newSurfaceGate(s)

	g.resize(0, 240)
	if w, h := s.RampSize(); w != 240 || h != 30 {
		t.Errorf("RampSize() = %d×%d, want 240×30", w, h)
	}
	if got := s.SquareSize(); got != 200 {
		t.Errorf("SquareSize() = %d, want 200", got)
	}
}
