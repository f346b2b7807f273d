package aleph

import "errors"

// ErrInvalidUTF8 indicates input that is not well-formed UTF-8.
var ErrInvalidUTF8 = errors.New("aleph: invalid UTF-8")

// Contract violation messages used by panics. These mirror the assertion
// taxonomy of the public surface: they fire on programmer error, never on
// data.
const (
	panicNotOnBoundary  = "aleph: byte offset is not on a code point boundary"
	panicOutOfCodespace = "aleph: code point outside the Unicode codespace"
	panicOutOfRange     = "aleph: offset out of range"
)
