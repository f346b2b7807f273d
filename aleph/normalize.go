package aleph

import (
	"github.com/david-schor/LibAleph/aleph/ucd"
	"github.com/david-schor/LibAleph/internal/scalar"
)

// Form selects one of the four standard Unicode normalization forms.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

func (f Form) String() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	default:
		return "NFKD"
	}
}

func (f Form) ucd() ucd.Form {
	switch f {
	case NFC:
		return ucd.FormNFC
	case NFD:
		return ucd.FormNFD
	case NFKC:
		return ucd.FormNFKC
	default:
		return ucd.FormNFKD
	}
}

func (f Form) composed() bool { return f == NFC || f == NFKC }
func (f Form) compat() bool   { return f == NFKC || f == NFKD }

// QC is a normalization quick-check answer.
type QC int

const (
	QCYes QC = iota
	QCNo
	QCMaybe
)

func (q QC) String() string {
	switch q {
	case QCNo:
		return "No"
	case QCMaybe:
		return "Maybe"
	default:
		return "Yes"
	}
}

// QuickCheck scans s once and reports whether it is in form f: QCYes and
// QCNo are definitive; on QCMaybe only the full algorithm can tell.
func (s *String) QuickCheck(f Form) QC {
	if s == nil {
		return QCYes
	}
	uf := f.ucd()
	result := QCYes
	lastCCC := uint8(0)
	p := s.buf[:s.size]
	for i := 0; i < len(p); {
		cp, w := scalar.Decode(p[i:])
		i += w
		row := ucd.Lookup(cp)
		if row.CCC != 0 && lastCCC > row.CCC {
			return QCNo // combining marks out of canonical order
		}
		lastCCC = row.CCC
		switch ucd.QuickCheck(cp, uf) {
		case ucd.QCNo:
			return QCNo
		case ucd.QCMaybe:
			result = QCMaybe
		}
	}
	return result
}

// IsNormalized reports whether s is in form f, running the full
// algorithm when the quick check is inconclusive.
func (s *String) IsNormalized(f Form) bool {
	switch s.QuickCheck(f) {
	case QCYes:
		return true
	case QCNo:
		return false
	}
	return s.Dup().Normalize(f).Equal(s)
}

// decomposeRunes fully decomposes p into code points.
func decomposeRunes(p []byte, compat bool) []rune {
	out := make([]rune, 0, len(p))
	for i := 0; i < len(p); {
		cp, w := scalar.Decode(p[i:])
		i += w
		out = ucd.AppendDecomposition(out, cp, compat)
	}
	return out
}

// canonicalOrder sorts each maximal run of nonzero-CCC code points by
// combining class. Insertion sort: runs are short and the sort must be
// stable.
func canonicalOrder(rs []rune) {
	for i := 1; i < len(rs); i++ {
		cc := ucd.CCCOf(rs[i])
		if cc == 0 {
			continue
		}
		for j := i; j > 0; j-- {
			pc := ucd.CCCOf(rs[j-1])
			if pc == 0 || pc <= cc {
				break
			}
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}

// composeRunes runs canonical composition over a decomposed, canonically
// ordered sequence, in place.
func composeRunes(rs []rune) []rune {
	out := rs[:0]
	lastStarter := -1
	for _, cp := range rs {
		if lastStarter >= 0 {
			cc := ucd.CCCOf(cp)
			prevCC := ucd.CCCOf(out[len(out)-1])
			// cp is blocked when a code point between the starter and cp
			// has a combining class >= cc (starters block everything).
			blocked := len(out)-1 != lastStarter && prevCC >= cc
			if !blocked {
				if comp, ok := ucd.Compose(out[lastStarter], cp); ok {
					out[lastStarter] = comp
					continue
				}
			}
		}
		out = append(out, cp)
		if ucd.CCCOf(cp) == 0 {
			lastStarter = len(out) - 1
		}
	}
	return out
}

// Normalize converts s to normalization form f in place.
func (s *String) Normalize(f Form) *String {
	if s == nil || s.size == 0 {
		return s
	}
	if s.QuickCheck(f) == QCYes {
		return s
	}
	rs := decomposeRunes(s.buf[:s.size], f.compat())
	canonicalOrder(rs)
	if f.composed() {
		rs = composeRunes(rs)
	}

	need := 0
	for _, cp := range rs {
		need += scalar.EncodedLen(cp)
	}
	out := newWithCapacity(need)
	w := 0
	for _, cp := range rs {
		w += scalar.Encode(out.buf[w:], cp)
	}
	s.buf = out.buf
	s.size = w
	s.n = len(rs)
	s.terminate()
	return s
}

// NewNormalize creates a String holding str normalized to form f.
func NewNormalize(str string, f Form) *String { return New(str).Normalize(f) }

// CatNorm appends t and renormalizes the window around the join. No
// normalization form is closed under concatenation, so appending to a
// normalized string must go through this entry point to preserve the
// form.
func (s *String) CatNorm(t *String, f Form) *String {
	if s == nil {
		return nil
	}
	join := s.size
	if s.Cat(t) == nil || s.size == join {
		return s
	}

	// Back up to a safe point: the last starter before the join that is
	// unaffected by what follows.
	w := join
	p := s.buf[:s.size]
	for w > 0 {
		w = scalar.PrevBoundary(p, w)
		cp, _ := scalar.Decode(p[w:])
		if ucd.CCCOf(cp) == 0 && ucd.QuickCheck(cp, f.ucd()) == ucd.QCYes {
			break
		}
	}

	tail := NewBytes(s.buf[w:s.size]).Normalize(f)
	s.size = w
	s.n, _ = countValid(s.buf[:w])
	s.terminate()
	return s.Cat(tail)
}
