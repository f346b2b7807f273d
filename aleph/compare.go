package aleph

import (
	"bytes"

	"github.com/david-schor/LibAleph/aleph/ucd"
	"github.com/david-schor/LibAleph/internal/scalar"
)

// foldStream yields the case folding of a byte sequence one code point
// at a time. A single source code point folds to at most three code
// points; the expansion is held in a small pending buffer so the source
// is never materialized in folded form.
type foldStream struct {
	p      []byte
	off    int
	pend   [ucd.MaxCaseExpansion]rune
	n, i   int
	simple bool
}

// next returns the next folded code point. Malformed bytes (possible
// only on raw external input) pass through one byte at a time so the
// stream always terminates.
func (f *foldStream) next() (rune, bool) {
	if f.i < f.n {
		cp := f.pend[f.i]
		f.i++
		return cp, true
	}
	if f.off >= len(f.p) {
		return 0, false
	}
	cp, w := scalar.Decode(f.p[f.off:])
	if w == 0 {
		cp, w = rune(f.p[f.off]), 1
	}
	f.off += w
	if f.simple {
		return ucd.SimpleFold(cp), true
	}
	out := ucd.FullFold(f.pend[:0], cp)
	f.n = len(out)
	f.i = 1
	return out[0], true
}

// drained reports whether the stream sits on a source code point
// boundary with no pending expansion.
func (f *foldStream) drained() bool { return f.i >= f.n }

func foldCompare(a, b []byte, simple bool, limit int) int {
	fa := foldStream{p: a, simple: simple}
	fb := foldStream{p: b, simple: simple}
	for n := 0; limit < 0 || n < limit; n++ {
		ca, oka := fa.next()
		cb, okb := fb.next()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return 1
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
	return 0
}

// Cmp compares s and t byte-wise, returning -1, 0 or 1.
func (s *String) Cmp(t *String) int { return bytes.Compare(s.Bytes(), t.Bytes()) }

// CmpString compares s and str byte-wise.
func (s *String) CmpString(str string) int {
	return bytes.Compare(s.Bytes(), []byte(str))
}

// Icmp compares s and t under full case folding: strings that differ
// only by case (including expansions like ß vs SS) compare equal.
func (s *String) Icmp(t *String) int {
	return foldCompare(s.Bytes(), t.Bytes(), false, -1)
}

// IcmpString compares s and str under full case folding.
func (s *String) IcmpString(str string) int {
	return foldCompare(s.Bytes(), []byte(str), false, -1)
}

// IcmpSimple compares under simple (1:1) case folding, which is faster
// but does not equate expanding folds.
func (s *String) IcmpSimple(t *String) int {
	return foldCompare(s.Bytes(), t.Bytes(), true, -1)
}

// IcmpN compares at most n folded code points.
func (s *String) IcmpN(t *String, n int) int {
	return foldCompare(s.Bytes(), t.Bytes(), false, n)
}

// IcmpNString compares at most n folded code points against str.
func (s *String) IcmpNString(str string, n int) int {
	return foldCompare(s.Bytes(), []byte(str), false, n)
}

// foldPrefixLen matches the full fold of needle against the fold of a
// prefix of p. On success it returns the number of source bytes of p the
// match consumed. The match must end on a source code point boundary: a
// needle that covers only part of one code point's expansion (half of an
// "ss" from ß) does not match.
func foldPrefixLen(p, needle []byte) (int, bool) {
	fp := foldStream{p: p}
	fn := foldStream{p: needle}
	for {
		cn, okn := fn.next()
		if !okn {
			if !fp.drained() {
				return 0, false
			}
			return fp.off, true
		}
		cp, okp := fp.next()
		if !okp || cp != cn {
			return 0, false
		}
	}
}
