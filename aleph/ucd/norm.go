package ucd

// Decomposition and composition accessors. Stored decompositions are full
// (already recursively expanded) except that compatibility mappings may
// contain Hangul syllables, which AppendDecomposition expands
// algorithmically per UAX #15 §3.12.

// MaxDecompExpansion bounds the code points a single decomposition step
// can produce (U+FDFA expands to 18 under NFKD).
const MaxDecompExpansion = 18

func isHangulSyllable(cp rune) bool { return cp >= HangulSBase && cp <= HangulSEnd }

func appendHangulDecomposition(dst []rune, cp rune) []rune {
	s := cp - HangulSBase
	l := HangulLBase + s/HangulNCount
	v := HangulVBase + s%HangulNCount/HangulTCount
	t := s % HangulTCount
	dst = append(dst, l, v)
	if t > 0 {
		dst = append(dst, HangulTBase+t)
	}
	return dst
}

// HasDecomposition reports whether cp decomposes under the given
// compatibility setting.
func HasDecomposition(cp rune, compatibility bool) bool {
	if isHangulSyllable(cp) {
		return true
	}
	r := Lookup(cp)
	if compatibility {
		return r.Compat != 0 || r.Canon != 0
	}
	return r.Canon != 0
}

// AppendDecomposition appends the full decomposition of cp to dst:
// canonical when compatibility is false, compatibility otherwise. A code
// point with no decomposition appends itself.
func AppendDecomposition(dst []rune, cp rune, compatibility bool) []rune {
	if isHangulSyllable(cp) {
		return appendHangulDecomposition(dst, cp)
	}
	r := Lookup(cp)
	ref := r.Canon
	if compatibility && r.Compat != 0 {
		ref = r.Compat
	}
	if ref == 0 {
		return append(dst, cp)
	}
	for _, d := range seqOf(decompPool, ref) {
		if isHangulSyllable(d) {
			dst = appendHangulDecomposition(dst, d)
			continue
		}
		dst = append(dst, d)
	}
	return dst
}

// Compose returns the primary composite of the pair (a, b), or false.
// Hangul LV and LVT composition is algorithmic.
func Compose(a, b rune) (rune, bool) {
	// L + V -> LV
	if a >= HangulLBase && a < HangulLBase+HangulLCount &&
		b >= HangulVBase && b < HangulVBase+HangulVCount {
		l := a - HangulLBase
		v := b - HangulVBase
		return HangulSBase + (l*HangulVCount+v)*HangulTCount, true
	}
	// LV + T -> LVT
	if isHangulSyllable(a) && (a-HangulSBase)%HangulTCount == 0 &&
		b > HangulTBase && b < HangulTBase+HangulTCount {
		return a + b - HangulTBase, true
	}
	cp, ok := composePairs[composeKey(a, b)]
	return cp, ok
}
