package aleph

import "github.com/david-schor/LibAleph/internal/scalar"

// Split cuts s on every code point contained in delimiters, returning
// the pieces. Adjacent delimiters yield empty pieces; a string with no
// delimiter yields a single piece.
func (s *String) Split(delimiters string) []*String {
	if s == nil {
		return nil
	}
	delims := []rune(delimiters)
	var out []*String
	p := s.buf[:s.size]
	start := 0
	for i := 0; i < len(p); {
		cp, w := scalar.Decode(p[i:])
		if inCutset(cp, delims) {
			out = append(out, NewBytes(p[start:i]))
			start = i + w
		}
		i += w
	}
	return append(out, NewBytes(p[start:]))
}

// SplitCP cuts s on a single delimiter code point.
func (s *String) SplitCP(codepoint rune) []*String {
	assertScalar(codepoint)
	return s.Split(string(codepoint))
}

// Join appends every part to s in order.
func (s *String) Join(parts ...*String) *String {
	if s == nil {
		return nil
	}
	for _, p := range parts {
		s.Cat(p)
	}
	return s
}

// JoinOn appends every part to s, inserting glue between consecutive
// parts (but not before the first).
func (s *String) JoinOn(glue string, parts ...*String) *String {
	if s == nil {
		return nil
	}
	for i, p := range parts {
		if i > 0 {
			s.CatString(glue)
		}
		s.Cat(p)
	}
	return s
}
