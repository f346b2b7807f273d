package aleph

import (
	"github.com/david-schor/LibAleph/aleph/ucd"
	"github.com/david-schor/LibAleph/internal/scalar"
)

func inCutset(cp rune, cutset []rune) bool {
	for _, c := range cutset {
		if c == cp {
			return true
		}
	}
	return false
}

func (s *String) trim(left, right bool, match func(rune) bool) *String {
	if s == nil || s.size == 0 {
		return s
	}
	p := s.buf[:s.size]
	start, end := 0, s.size
	if left {
		for start < end {
			cp, w := scalar.Decode(p[start:])
			if !match(cp) {
				break
			}
			start += w
		}
	}
	if right {
		for end > start {
			j := scalar.PrevBoundary(p[:end], end)
			cp, _ := scalar.Decode(p[j:])
			if !match(cp) {
				break
			}
			end = j
		}
	}
	if end < s.size {
		s.deleteRaw(end, s.size-end)
	}
	if start > 0 {
		s.deleteRaw(0, start)
	}
	return s
}

// Trim removes White_Space code points from both ends.
func (s *String) Trim() *String { return s.trim(true, true, ucd.IsWhiteSpace) }

// TrimLeft removes leading White_Space code points.
func (s *String) TrimLeft() *String { return s.trim(true, false, ucd.IsWhiteSpace) }

// TrimRight removes trailing White_Space code points.
func (s *String) TrimRight() *String { return s.trim(false, true, ucd.IsWhiteSpace) }

// TrimSet removes code points contained in cutset from both ends.
func (s *String) TrimSet(cutset string) *String {
	set := []rune(cutset)
	return s.trim(true, true, func(cp rune) bool { return inCutset(cp, set) })
}

// TrimLeftSet removes leading code points contained in cutset.
func (s *String) TrimLeftSet(cutset string) *String {
	set := []rune(cutset)
	return s.trim(true, false, func(cp rune) bool { return inCutset(cp, set) })
}

// TrimRightSet removes trailing code points contained in cutset.
func (s *String) TrimRightSet(cutset string) *String {
	set := []rune(cutset)
	return s.trim(false, true, func(cp rune) bool { return inCutset(cp, set) })
}
