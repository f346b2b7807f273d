package aleph

// Grapheme-cluster-indexed mutators. These are compositions: locate the
// cluster boundary, then call the byte-offset core. The original API
// family multiplies every base operation by indexing mode and argument
// kind the same way.

// GIns inserts t before grapheme cluster index.
func (s *String) GIns(t *String, index int) *String {
	if s == nil {
		return nil
	}
	off := s.GCharOffset(index)
	if off == NotFound {
		panic(panicOutOfRange)
	}
	return s.InsOffset(t, off)
}

// GInsString inserts str before grapheme cluster index.
func (s *String) GInsString(str string, index int) *String {
	if s == nil {
		return nil
	}
	off := s.GCharOffset(index)
	if off == NotFound {
		panic(panicOutOfRange)
	}
	return s.InsOffsetString(str, off)
}

// GInsCP inserts a code point before grapheme cluster index.
func (s *String) GInsCP(codepoint rune, index int) *String {
	if s == nil {
		return nil
	}
	off := s.GCharOffset(index)
	if off == NotFound {
		panic(panicOutOfRange)
	}
	return s.InsOffsetCP(codepoint, off)
}

// GDel removes count grapheme clusters starting at cluster index start.
// A count that runs past the end is clamped.
func (s *String) GDel(start, count int) *String {
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
	if end == off {
		return s
	}
	return s.deleteRaw(off, end-off)
}

// CatCPRepeat appends codepoint repeat times.
func (s *String) CatCPRepeat(codepoint rune, repeat int) *String {
	if s == nil {
		return nil
	}
	for ; repeat > 0; repeat-- {
		s.CatCP(codepoint)
	}
	return s
}
