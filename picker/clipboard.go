// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import (
	"time"

	"github.com/gogpu/colorpick"
)

// Clipboard is the system clipboard as seen by the picker.
// fyne.Clipboard satisfies it.
type Clipboard interface {
	SetContent(content string)
}

// Copy places the value of one format row of snap on cb and returns the
// copied text. Unknown labels return an error wrapping
// colorpick.ErrUnknownFormat and leave cb untouched.
func Copy(cb Clipboard, snap colorpick.Snapshot, label string) (string, error) {
	v, err := snap.Value(label)
	if err != nil {
		return "", err
	}
	cb.SetContent(v)
	colorpick.Logger().Debug("picker: copied", "label", label, "value", v)
	return v, nil
}

// AckDuration is how long a copy acknowledgment stays visible.
const AckDuration = time.Second

// Ack tracks the short-lived "copied" mark shown next to a copy button.
// Times are passed in explicitly so hosts decide the clock.
// The zero value is inactive.
type Ack struct {
	until time.Time
}

// Mark starts an acknowledgment at now, replacing any active one.
func (a *Ack) Mark(now time.Time) {
	a.until = now.Add(AckDuration)
}

// Active reports whether the acknowledgment is still visible at now.
func (a *Ack) Active(now time.Time) bool {
	return now.Before(a.until)
}

// Remaining returns how long the acknowledgment stays visible after now.
func (a *Ack) Remaining(now time.Time) time.Duration {
	return max(a.until.Sub(now), 0)
}
