package aleph

import "github.com/david-schor/LibAleph/internal/scalar"

// ReverseCodepoints reverses the order of the code points in place.
// Combining marks end up before their base, so text with marks comes out
// visually deformed; use ReverseGraphemes to keep user-perceived
// characters intact.
func (s *String) ReverseCodepoints() *String {
	if s == nil {
		return nil
	}
	out := make([]byte, s.size)
	w := s.size
	for i := 0; i < s.size; {
		n := scalar.SeqLen(s.buf[i])
		w -= n
		copy(out[w:], s.buf[i:i+n])
		i += n
	}
	copy(s.buf, out)
	return s
}

// ReverseGraphemes reverses the order of the extended grapheme clusters
// in place, preserving each cluster's internal byte order.
func (s *String) ReverseGraphemes() *String {
	if s == nil {
		return nil
	}
	out := make([]byte, s.size)
	w := s.size
	for i := 0; i < s.size; {
		end := nextGrapheme(s, i)
		w -= end - i
		copy(out[w:], s.buf[i:end])
		i = end
	}
	copy(s.buf, out)
	return s
}
