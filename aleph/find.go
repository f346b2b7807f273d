package aleph

import (
	"bytes"

	"github.com/david-schor/LibAleph/internal/scalar"
)

// FindOffset returns the byte offset of the first occurrence of sub,
// or NotFound.
func (s *String) FindOffset(sub *String) int {
	return bytes.Index(s.Bytes(), sub.Bytes())
}

// FindOffsetString returns the byte offset of the first occurrence of sub.
func (s *String) FindOffsetString(sub string) int {
	return bytes.Index(s.Bytes(), []byte(sub))
}

// FindOffsetFrom returns the byte offset of the first occurrence of sub
// at or after byte offset offset.
func (s *String) FindOffsetFrom(sub *String, offset int) int {
	if s == nil {
		return NotFound
	}
	s.assertBoundary(offset)
	i := bytes.Index(s.buf[offset:s.size], sub.Bytes())
	if i == NotFound {
		return NotFound
	}
	return offset + i
}

// Find returns the code point index of the first occurrence of sub,
// or NotFound.
func (s *String) Find(sub *String) int {
	off := s.FindOffset(sub)
	if off == NotFound {
		return NotFound
	}
	return s.CharIndex(off)
}

// FindString returns the code point index of the first occurrence of sub.
func (s *String) FindString(sub string) int {
	off := s.FindOffsetString(sub)
	if off == NotFound {
		return NotFound
	}
	return s.CharIndex(off)
}

// FindFrom returns the code point index of the first occurrence of sub
// at or after code point index index.
func (s *String) FindFrom(sub *String, index int) int {
	if s == nil {
		return NotFound
	}
	off := s.CharOffset(index)
	if off == NotFound {
		return NotFound
	}
	at := s.FindOffsetFrom(sub, off)
	if at == NotFound {
		return NotFound
	}
	return s.CharIndex(at)
}

// FindCP returns the code point index of the first occurrence of
// codepoint, or NotFound.
func (s *String) FindCP(codepoint rune) int {
	if s == nil {
		return NotFound
	}
	assertScalar(codepoint)
	var enc [scalar.MaxBytes]byte
	w := scalar.Encode(enc[:], codepoint)
	off := bytes.Index(s.Bytes(), enc[:w])
	if off == NotFound {
		return NotFound
	}
	return s.CharIndex(off)
}

// ifindFrom locates the first case-insensitive occurrence of needle at
// or after byte offset off, matching by full case folding. It returns
// the byte offset and the matched byte length in s.
func (s *String) ifindFrom(needle []byte, off int) (pos, nbytes int) {
	if s == nil {
		return NotFound, 0
	}
	p := s.buf[:s.size]
	for pos = off; ; {
		if n, ok := foldPrefixLen(p[pos:], needle); ok {
			return pos, n
		}
		if pos >= len(p) {
			return NotFound, 0
		}
		pos += scalar.SeqLen(p[pos])
	}
}

// IFindOffset returns the byte offset of the first case-insensitive
// occurrence of sub, or NotFound.
func (s *String) IFindOffset(sub *String) int {
	pos, _ := s.ifindFrom(sub.Bytes(), 0)
	return pos
}

// IFindOffsetString returns the byte offset of the first
// case-insensitive occurrence of sub.
func (s *String) IFindOffsetString(sub string) int {
	pos, _ := s.ifindFrom([]byte(sub), 0)
	return pos
}

// IFind returns the code point index of the first case-insensitive
// occurrence of sub, or NotFound.
func (s *String) IFind(sub *String) int {
	pos, _ := s.ifindFrom(sub.Bytes(), 0)
	if pos == NotFound {
		return NotFound
	}
	return s.CharIndex(pos)
}

// IFindString returns the code point index of the first
// case-insensitive occurrence of sub.
func (s *String) IFindString(sub string) int {
	pos, _ := s.ifindFrom([]byte(sub), 0)
	if pos == NotFound {
		return NotFound
	}
	return s.CharIndex(pos)
}

// StartsWith reports whether s begins with sub.
func (s *String) StartsWith(sub *String) bool {
	return bytes.HasPrefix(s.Bytes(), sub.Bytes())
}

// StartsWithString reports whether s begins with sub.
func (s *String) StartsWithString(sub string) bool {
	return bytes.HasPrefix(s.Bytes(), []byte(sub))
}

// EndsWith reports whether s ends with sub.
func (s *String) EndsWith(sub *String) bool {
	return bytes.HasSuffix(s.Bytes(), sub.Bytes())
}

// EndsWithString reports whether s ends with sub.
func (s *String) EndsWithString(sub string) bool {
	return bytes.HasSuffix(s.Bytes(), []byte(sub))
}

// Contains reports whether sub occurs in s.
func (s *String) Contains(sub *String) bool { return s.FindOffset(sub) != NotFound }

// ContainsString reports whether sub occurs in s.
func (s *String) ContainsString(sub string) bool {
	return s.FindOffsetString(sub) != NotFound
}
