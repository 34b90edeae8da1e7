// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import "testing"

func assertHSB(t *testing.T, s *Surface, h, sat, b float64) {
	t.Helper()
	gh, gs, gb := s.HSB()
	if gh != h || gs != sat || gb != b {
		t.Errorf("HSB() = (%v, %v, %v), want (%v, %v, %v)", gh, gs, gb, h, sat, b)
	}
}

func TestPointer_MoveWithoutDown(t *testing.T) {
	s := New()
	if s.PointerMove(TargetSquare, 10, 10) {
		t.Error("move without down changed state")
	}
	if s.PointerMove(TargetHue, 100, 0) {
		t.Error("move without down changed state")
	}
	assertHSB(t, s, 0, 98, 24)
}

func TestPointer_SquareDrag(t *testing.T) {
	s := New(WithSquareSize(200))

	if !s.PointerDown(TargetSquare, 0, 0) {
		t.Fatal("PointerDown reported no change")
	}
	assertHSB(t, s, 0, 0, 100)

	if !s.PointerMove(TargetSquare, 100, 100) {
		t.Fatal("PointerMove reported no change")
	}
	assertHSB(t, s, 0, 50, 50)

	// A move on the other target is not part of this drag.
	if s.PointerMove(TargetHue, 50, 0) {
		t.Error("hue moved during a square drag")
	}

	// Outside the square the sample clamps.
	s.PointerMove(TargetSquare, 500, -30)
	assertHSB(t, s, 0, 100, 100)

	s.PointerLeave()
	if s.PointerMove(TargetSquare, 0, 200) {
		t.Error("move after leave changed state")
	}
	assertHSB(t, s, 0, 100, 100)
}

func TestPointer_HueDrag(t *testing.T) {
	s := New(WithHueRamp(360, 20))

	s.PointerDown(TargetHue, 400, 10)
	assertHSB(t, s, 360, 98, 24)
	if got := s.Snapshot().Hex; got != "#790101" {
		t.Errorf("hue 360 hex = %q, want #790101", got)
	}

	s.PointerMove(TargetHue, 180, 10)
	assertHSB(t, s, 180, 98, 24)

	s.PointerMove(TargetHue, -1, 10)
	assertHSB(t, s, 0, 98, 24)

	if s.PointerMove(TargetHue, -50, 10) {
		t.Error("clamped repeat sample reported a change")
	}

	s.PointerUp()
	if sq, hue := s.Dragging(); sq || hue {
		t.Error("PointerUp left a drag flag set")
	}
	s.PointerMove(TargetHue, 90, 10)
	assertHSB(t, s, 0, 98, 24)
}

func TestPointer_UnknownTarget(t *testing.T) {
	s := New()
	if s.PointerDown(Target(7), 1, 1) {
		t.Error("unknown target changed state")
	}
	if sq, hue := s.Dragging(); sq || hue {
		t.Error("unknown target started a drag")
	}
}

func TestPointer_HueChangedOnlyForHue(t *testing.T) {
	rec := &recorder{}
	s := New(WithDisplay(rec), WithSquareSize(100), WithHueRamp(360, 10))

	s.PointerDown(TargetSquare, 10, 10)
	if rec.last(t).HueChanged {
		t.Error("square sample reported HueChanged")
	}
	s.PointerUp()

	s.PointerDown(TargetHue, 45, 0)
	if !rec.last(t).HueChanged {
		t.Error("hue sample not reported as HueChanged")
	}
}
