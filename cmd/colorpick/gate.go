package main

import (
	"sync"

	"github.com/gogpu/colorpick/picker"
)

// surfaceGate serializes calls into a picker.Surface, which is not safe
// for concurrent use. fyne lays out widgets on the driver goroutine and
// delivers pointer input on its event queue.
type surfaceGate struct {
	s  *picker.Surface
	mu sync.Mutex

	pendingMu sync.Mutex
	square    int // queued sizes, 0 when none
	ramp      int
}

func newSurfaceGate(s *picker.Surface) *surfaceGate {
	return &surfaceGate{s: s}
}

// do runs fn with exclusive access to the surface.
func (g *surfaceGate) do(fn func(*picker.Surface)) {
	g.mu.Lock()
	fn(g.s)
	g.release()
}

// resize queues new raster sizes; non-positive values keep the current
// size. The resize runs now when the surface is idle, otherwise the
// caller holding it applies it before letting go. This also covers a
// resize reached from inside Display.Show.
func (g *surfaceGate) resize(square, ramp int) {
	g.pendingMu.Lock()
	if square > 0 {
		g.square = square
	}
	if ramp > 0 {
		g.ramp = ramp
	}
	g.pendingMu.Unlock()

	if g.mu.TryLock() {
		g.release()
	}
}

// release applies queued resizes and unlocks mu. A resize queued
// between the last drain and the unlock is picked up by the re-check.
func (g *surfaceGate) release() {
	for {
		if square, ramp := g.takePending(); square > 0 || ramp > 0 {
			g.s.Resize(square, ramp)
			continue
		}
		g.mu.Unlock()
		if !g.hasPending() || !g.mu.TryLock() {
			return
		}
	}
}

func (g *surfaceGate) takePending() (square, ramp int) {
	g.pendingMu.Lock()
	defer g.pendingMu.Unlock()
	square, ramp = g.square, g.ramp
	g.square, g.ramp = 0, 0
	return square, ramp
}

func (g *surfaceGate) hasPending() bool {
	g.pendingMu.Lock()
	defer g.pendingMu.Unlock()
	return g.square > 0 || g.ramp > 0
}
