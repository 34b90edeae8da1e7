package colorpick

import "errors"

// ErrInvalidHex is returned when a string is not a 6-digit hex color.
// Callers editing a color are expected to ignore the edit and keep the
// previous value.
var ErrInvalidHex = errors.New("colorpick: invalid hex color")

// ErrUnknownFormat is returned when a format label is not one of the
// labels produced by Snapshot.Formats.
var ErrUnknownFormat = errors.New("colorpick: unknown color format")
