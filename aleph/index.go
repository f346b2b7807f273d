package aleph

import (
	"github.com/david-schor/LibAleph/aleph/segment"
	"github.com/david-schor/LibAleph/internal/scalar"
)

// NotFound is returned by the index conversions and searches when the
// requested position or needle does not exist.
const NotFound = -1

// CharOffset returns the byte offset of the code point at index, walking
// forward from the start. CharOffset(Len()) is Size(); a larger index
// returns NotFound. O(n).
func (s *String) CharOffset(index int) int {
	if s == nil || index < 0 || index > s.n {
		return NotFound
	}
	off := 0
	for ; index > 0; index-- {
		off += scalar.SeqLen(s.buf[off])
	}
	return off
}

// CharOffsetRev returns the byte offset of the code point index
// positions before the end: CharOffsetRev(0) addresses the last code
// point. Walks backward from the end. O(n).
func (s *String) CharOffsetRev(index int) int {
	if s == nil || index < 0 || index >= s.n {
		return NotFound
	}
	off := s.size
	for ; index >= 0; index-- {
		off = scalar.PrevBoundary(s.buf[:s.size], off)
	}
	return off
}

// CharIndex returns the code point index of the given byte offset, which
// must lie on a code point boundary. O(n).
func (s *String) CharIndex(offset int) int {
	if s == nil || offset < 0 || offset > s.size {
		return NotFound
	}
	s.assertBoundary(offset)
	n := 0
	for off := 0; off < offset; off += scalar.SeqLen(s.buf[off]) {
		n++
	}
	return n
}

// CharIndexRev returns how many code points lie at or after the given
// byte offset. O(n).
func (s *String) CharIndexRev(offset int) int {
	if s == nil || offset < 0 || offset > s.size {
		return NotFound
	}
	s.assertBoundary(offset)
	n := 0
	for off := offset; off < s.size; off += scalar.SeqLen(s.buf[off]) {
		n++
	}
	return n
}

// CharAt returns the code point at index. O(n).
func (s *String) CharAt(index int) rune {
	off := s.CharOffset(index)
	if off == NotFound || off == s.size {
		panic(panicOutOfRange)
	}
	cp, _ := scalar.Decode(s.buf[off:s.size])
	return cp
}

// GLen returns the number of extended grapheme clusters. Unlike Len this
// is not cached; each call walks the buffer. O(n).
func (s *String) GLen() int {
	if s == nil {
		return 0
	}
	return segment.Count(s.buf[:s.size])
}

// GCharOffset returns the byte offset of grapheme cluster index, or
// NotFound. GCharOffset(GLen()) is Size(). O(n).
func (s *String) GCharOffset(index int) int {
	if s == nil || index < 0 {
		return NotFound
	}
	off := 0
	for ; index > 0; index-- {
		if off >= s.size {
			return NotFound
		}
		off = segment.NextBoundary(s.buf[:s.size], off)
	}
	if off > s.size {
		return NotFound
	}
	return off
}

// GCharIndex returns the grapheme cluster index containing the given
// byte offset, which must lie on a cluster boundary. O(n).
func (s *String) GCharIndex(offset int) int {
	if s == nil || offset < 0 || offset > s.size {
		return NotFound
	}
	n := 0
	for off := 0; off < offset; n++ {
		off = segment.NextBoundary(s.buf[:s.size], off)
	}
	return n
}

func nextGrapheme(s *String, off int) int {
	return segment.NextBoundary(s.buf[:s.size], off)
}

// GCharAt returns the grapheme cluster at index as a fresh string.
func (s *String) GCharAt(index int) string {
	off := s.GCharOffset(index)
	if off == NotFound || off == s.size {
		panic(panicOutOfRange)
	}
	end := segment.NextBoundary(s.buf[:s.size], off)
	return string(s.buf[off:end])
}
