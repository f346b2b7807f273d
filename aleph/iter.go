package aleph

import (
	"github.com/david-schor/LibAleph/aleph/segment"
	"github.com/david-schor/LibAleph/internal/scalar"
)

// Iter is a bidirectional walker over a String, advancing by code point
// or by extended grapheme cluster in O(1) amortized per step. An Iter is
// invalidated by any mutation of the underlying String.
type Iter struct {
	s   *String
	off int
}

// Iter returns a walker positioned at the start of s.
func (s *String) Iter() *Iter { return &Iter{s: s} }

// IterAt returns a walker positioned at byte offset off, which must lie
// on a code point boundary.
func (s *String) IterAt(off int) *Iter {
	if s == nil {
		return s.Iter()
	}
	s.assertBoundary(off)
	return &Iter{s: s, off: off}
}

// Offset returns the current byte offset.
func (it *Iter) Offset() int { return it.off }

// AtStart reports whether the walker is at the start of the buffer.
func (it *Iter) AtStart() bool { return it.off == 0 }

// AtEnd reports whether the walker is at the end of the buffer.
func (it *Iter) AtEnd() bool { return it.s == nil || it.off >= it.s.size }

// SeekStart repositions the walker at the start.
func (it *Iter) SeekStart() *Iter { it.off = 0; return it }

// SeekEnd repositions the walker at the end.
func (it *Iter) SeekEnd() *Iter {
	if it.s != nil {
		it.off = it.s.size
	}
	return it
}

// PeekCP returns the code point at the current position without
// advancing.
func (it *Iter) PeekCP() (rune, bool) {
	if it.AtEnd() {
		return 0, false
	}
	cp, _ := scalar.Decode(it.s.buf[it.off:it.s.size])
	return cp, true
}

// NextCP returns the code point at the current position and advances
// past it.
func (it *Iter) NextCP() (rune, bool) {
	if it.AtEnd() {
		return 0, false
	}
	cp, w := scalar.Decode(it.s.buf[it.off:it.s.size])
	it.off += w
	return cp, true
}

// PrevCP moves back one code point and returns it.
func (it *Iter) PrevCP() (rune, bool) {
	if it.s == nil || it.off == 0 {
		return 0, false
	}
	it.off = scalar.PrevBoundary(it.s.buf[:it.s.size], it.off)
	cp, _ := scalar.Decode(it.s.buf[it.off:it.s.size])
	return cp, true
}

// NextGrapheme returns the extended grapheme cluster at the current
// position and advances past it. The returned slice aliases the buffer.
func (it *Iter) NextGrapheme() ([]byte, bool) {
	if it.AtEnd() {
		return nil, false
	}
	end := segment.NextBoundary(it.s.buf[:it.s.size], it.off)
	g := it.s.buf[it.off:end]
	it.off = end
	return g, true
}

// PrevGrapheme moves back one extended grapheme cluster and returns it.
func (it *Iter) PrevGrapheme() ([]byte, bool) {
	if it.s == nil || it.off == 0 {
		return nil, false
	}
	start := segment.PrevBoundary(it.s.buf[:it.s.size], it.off)
	g := it.s.buf[start:it.off]
	it.off = start
	return g, true
}
