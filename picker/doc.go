// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package picker holds the interactive state of a color picker: a hue
// slider and a saturation/brightness square.
//
// A Surface owns the (hue, saturation, brightness) triple and two drag
// flags. Hosts feed it pointer events and hex edits, paint the rasters it
// renders, and show the Snapshot it derives:
//
//	s := picker.New(picker.WithSquareSize(256), picker.WithDisplay(view))
//	defer s.Close()
//
//	s.PointerDown(picker.TargetSquare, x, y)
//	s.PointerMove(picker.TargetSquare, x, y)
//	s.PointerUp()
//
//	square := s.RenderSquare()
//	snap := s.Snapshot() // every format, derived from one RGB value
//
// # Square Model
//
// By default the square feeds its axes into the HSL formula even though
// it is laid out like an HSV saturation/value field. The top edge is
// therefore white rather than the pure hue. WithModel(ModelHSV) switches
// to a true HSV square.
//
// # Threading
//
// A Surface is driven by one event at a time and is not safe for
// concurrent use. Rendering may fan out over a worker pool internally
// (see WithWorkers); the pool never touches surface state.
package picker
