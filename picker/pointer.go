// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

// Target identifies the raster a pointer event landed on.
type Target uint8

const (
	// TargetSquare is the saturation/brightness square.
	TargetSquare Target = iota

	// TargetHue is the hue slider.
	TargetHue
)

// PointerDown starts a drag on target and applies the sample at (x, y),
// given in the target raster's pixel coordinates. It reports whether the
// state changed.
func (s *Surface) PointerDown(target Target, x, y float64) bool {
	switch target {
	case TargetSquare:
		s.draggingSquare = true
	case TargetHue:
		s.draggingHue = true
	default:
		return false
	}
	return s.sample(target, x, y)
}

// PointerMove applies the sample at (x, y) while a drag on target is in
// progress. Moves without a preceding PointerDown are ignored.
func (s *Surface) PointerMove(target Target, x, y float64) bool {
	switch {
	case target == TargetSquare && s.draggingSquare:
	case target == TargetHue && s.draggingHue:
	default:
		return false
	}
	return s.sample(target, x, y)
}

// PointerUp ends any drag. The last applied sample stands.
func (s *Surface) PointerUp() {
	s.draggingSquare = false
	s.draggingHue = false
}

// PointerLeave ends any drag, like PointerUp.
func (s *Surface) PointerLeave() {
	s.PointerUp()
}

// Dragging reports which drags are in progress.
func (s *Surface) Dragging() (square, hue bool) {
	return s.draggingSquare, s.draggingHue
}

func (s *Surface) sample(target Target, x, y float64) bool {
	h, sat, b := s.hue, s.saturation, s.brightness
	if target == TargetHue {
		h = PointerToHue(x, s.rampWidth)
	} else {
		sat, b = PointerToSquare(x, y, s.squareSize)
	}
	if h == s.hue && sat == s.saturation && b == s.brightness {
		return false
	}
	s.set(h, sat, b)
	return true
}
