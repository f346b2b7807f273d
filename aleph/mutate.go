package aleph

import (
	"fmt"
	"strconv"

	"github.com/david-schor/LibAleph/internal/scalar"
)

// assertContent validates bytes handed to a mutator and returns their
// code point count. Malformed input is a contract violation.
func assertContent(b []byte) int {
	n, bad := countValid(b)
	if bad != len(b) {
		panic(fmt.Sprintf("aleph: invalid UTF-8 at byte %d", bad))
	}
	return n
}

// insertRaw splices b (cps code points) into s at byte offset off.
// Callers have already checked boundaries and validity.
func (s *String) insertRaw(off int, b []byte, cps int) *String {
	s.Reserve(s.size + len(b))
	copy(s.buf[off+len(b):], s.buf[off:s.size])
	copy(s.buf[off:], b)
	s.size += len(b)
	s.n += cps
	s.terminate()
	return s
}

// deleteRaw removes nbytes bytes at off. Callers have already checked
// boundaries.
func (s *String) deleteRaw(off, nbytes int) *String {
	removed, _ := countValid(s.buf[off : off+nbytes])
	copy(s.buf[off:], s.buf[off+nbytes:s.size])
	s.size -= nbytes
	s.n -= removed
	s.terminate()
	return s
}

// Cat appends t.
func (s *String) Cat(t *String) *String {
	if s == nil {
		return nil
	}
	if t == nil || t.size == 0 {
		return s
	}
	return s.insertRaw(s.size, t.buf[:t.size], t.n)
}

// CatString appends str, which must be valid UTF-8.
func (s *String) CatString(str string) *String { return s.CatBytes([]byte(str)) }

// CatBytes appends b, which must be valid UTF-8.
func (s *String) CatBytes(b []byte) *String {
	if s == nil {
		return nil
	}
	if len(b) == 0 {
		return s
	}
	return s.insertRaw(s.size, b, assertContent(b))
}

// CatCP appends a single code point.
func (s *String) CatCP(codepoint rune) *String {
	if s == nil {
		return nil
	}
	assertScalar(codepoint)
	var enc [scalar.MaxBytes]byte
	w := scalar.Encode(enc[:], codepoint)
	return s.insertRaw(s.size, enc[:w], 1)
}

// CatLong appends the decimal representation of val.
func (s *String) CatLong(val int64) *String {
	return s.CatString(strconv.FormatInt(val, 10))
}

// CatULong appends the decimal representation of val.
func (s *String) CatULong(val uint64) *String {
	return s.CatString(strconv.FormatUint(val, 10))
}

// Set replaces the content of s with that of t.
func (s *String) Set(t *String) *String {
	if s == nil {
		return nil
	}
	return s.Clear().Cat(t)
}

// SetString replaces the content of s with str.
func (s *String) SetString(str string) *String {
	if s == nil {
		return nil
	}
	return s.Clear().CatString(str)
}

// InsOffset inserts t at byte offset offset, which must lie on a code
// point boundary.
func (s *String) InsOffset(t *String, offset int) *String {
	if s == nil {
		return nil
	}
	s.assertBoundary(offset)
	if t == nil || t.size == 0 {
		return s
	}
	return s.insertRaw(offset, t.buf[:t.size], t.n)
}

// InsOffsetString inserts str at byte offset offset.
func (s *String) InsOffsetString(str string, offset int) *String {
	if s == nil {
		return nil
	}
	s.assertBoundary(offset)
	b := []byte(str)
	if len(b) == 0 {
		return s
	}
	return s.insertRaw(offset, b, assertContent(b))
}

// InsOffsetCP inserts a single code point at byte offset offset.
func (s *String) InsOffsetCP(codepoint rune, offset int) *String {
	if s == nil {
		return nil
	}
	s.assertBoundary(offset)
	assertScalar(codepoint)
	var enc [scalar.MaxBytes]byte
	w := scalar.Encode(enc[:], codepoint)
	return s.insertRaw(offset, enc[:w], 1)
}

// Ins inserts t before the code point at index.
func (s *String) Ins(t *String, index int) *String {
	if s == nil {
		return nil
	}
	off := s.CharOffset(index)
	if off == NotFound {
		panic(panicOutOfRange)
	}
	return s.InsOffset(t, off)
}

// InsString inserts str before the code point at index.
func (s *String) InsString(str string, index int) *String {
	if s == nil {
		return nil
	}
	off := s.CharOffset(index)
	if off == NotFound {
		panic(panicOutOfRange)
	}
	return s.InsOffsetString(str, off)
}

// InsCP inserts a code point before the code point at index.
func (s *String) InsCP(codepoint rune, index int) *String {
	if s == nil {
		return nil
	}
	off := s.CharOffset(index)
	if off == NotFound {
		panic(panicOutOfRange)
	}
	return s.InsOffsetCP(codepoint, off)
}

// DelOffset removes nbytes bytes at byte offset offset. Both ends of the
// removed range must lie on code point boundaries.
func (s *String) DelOffset(offset, nbytes int) *String {
	if s == nil {
		return nil
	}
	s.assertBoundary(offset)
	if nbytes < 0 || offset+nbytes > s.size {
		panic(panicOutOfRange)
	}
	s.assertBoundary(offset + nbytes)
	if nbytes == 0 {
		return s
	}
	return s.deleteRaw(offset, nbytes)
}

// Del removes length code points starting at code point index start.
// A length that runs past the end is clamped.
func (s *String) Del(start, length int) *String {
	if s == nil {
		return nil
	}
	off := s.CharOffset(start)
	if off == NotFound {
		panic(panicOutOfRange)
	}
	if length < 0 {
		panic(panicOutOfRange)
	}
	end := off
	for ; length > 0 && end < s.size; length-- {
		end += scalar.SeqLen(s.buf[end])
	}
	if end == off {
		return s
	}
	return s.deleteRaw(off, end-off)
}

// SubstrOffset returns a new String holding nbytes bytes starting at
// byte offset offset; both ends must lie on code point boundaries.
func (s *String) SubstrOffset(offset, nbytes int) *String {
	if s == nil {
		return nil
	}
	s.assertBoundary(offset)
	if nbytes < 0 || offset+nbytes > s.size {
		panic(panicOutOfRange)
	}
	s.assertBoundary(offset + nbytes)
	return NewBytes(s.buf[offset : offset+nbytes])
}

// Substr returns a new String holding length code points starting at
// code point index start. A length that runs past the end is clamped.
func (s *String) Substr(start, length int) *String {
	if s == nil {
		return nil
	}
	off := s.CharOffset(start)
	if off == NotFound || length < 0 {
		panic(panicOutOfRange)
	}
	end := off
	for ; length > 0 && end < s.size; length-- {
		end += scalar.SeqLen(s.buf[end])
	}
	return NewBytes(s.buf[off:end])
}

// GSubstr returns a new String holding count grapheme clusters starting
// at cluster index start. A count that runs past the end is clamped.
func (s *String) GSubstr(start, count int) *String {
	if s == nil {
		return nil
	}
	off := s.GCharOffset(start)
	if off == NotFound || count < 0 {
		panic(panicOutOfRange)
	}
	end := off
	for ; count > 0 && end < s.size; count-- {
		end = nextGrapheme(s, end)
	}
	return NewBytes(s.buf[off:end])
}
