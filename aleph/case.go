package aleph

import (
	"github.com/david-schor/LibAleph/aleph/ucd"
	"github.com/david-schor/LibAleph/internal/scalar"
)

type caseMode int

const (
	modeUpper caseMode = iota
	modeLower
	modeTitle
	modeFold
	modeUpperSimple
	modeLowerSimple
	modeTitleSimple
	modeFoldSimple
)

// finalSigma reports whether the sigma whose encoding starts at byte at
// (width w) is in Final_Sigma context: preceded by a cased code point and
// not followed by one, skipping case-ignorable code points on both sides.
func finalSigma(p []byte, at, w int) bool {
	before := false
	for i := at; i > 0; {
		i = scalar.PrevBoundary(p, i)
		cp, _ := scalar.Decode(p[i:])
		row := ucd.Lookup(cp)
		if row.CaseIgnorable() {
			continue
		}
		before = row.HasCase()
		break
	}
	if !before {
		return false
	}
	for j := at + w; j < len(p); {
		cp, n := scalar.Decode(p[j:])
		if n == 0 {
			break
		}
		j += n
		row := ucd.Lookup(cp)
		if row.CaseIgnorable() {
			continue
		}
		return !row.HasCase()
	}
	return true
}

// caseWalk runs the case transform over the buffer, calling emit for
// every output code point. Running it twice with the same mode yields
// identical output; the measuring pass and the emitting pass share it.
func (s *String) caseWalk(mode caseMode, emit func(rune)) {
	p := s.buf[:s.size]
	var tmp [ucd.MaxCaseExpansion]rune
	prevCased := false

	emitAll := func(rs []rune) {
		for _, r := range rs {
			emit(r)
		}
	}
	lowerOne := func(cp rune, at, w int) {
		if cp == 'Σ' && finalSigma(p, at, w) {
			emit('ς')
			return
		}
		emitAll(ucd.FullLower(tmp[:0], cp))
	}

	for i := 0; i < len(p); {
		at := i
		cp, w := scalar.Decode(p[i:])
		i += w

		switch mode {
		case modeUpper:
			emitAll(ucd.FullUpper(tmp[:0], cp))
		case modeFold:
			emitAll(ucd.FullFold(tmp[:0], cp))
		case modeLower:
			lowerOne(cp, at, w)
		case modeTitle:
			row := ucd.Lookup(cp)
			switch {
			case row.HasCase() && !prevCased:
				emitAll(ucd.FullTitle(tmp[:0], cp))
				prevCased = true
			case row.HasCase():
				lowerOne(cp, at, w)
			default:
				emit(cp)
				if !row.CaseIgnorable() {
					prevCased = false
				}
			}
		case modeUpperSimple:
			emit(ucd.SimpleUpper(cp))
		case modeLowerSimple:
			emit(ucd.SimpleLower(cp))
		case modeTitleSimple:
			emit(ucd.SimpleTitle(cp))
		case modeFoldSimple:
			emit(ucd.SimpleFold(cp))
		}
	}
}

// mapCase sizes the output with a measuring pass, emits into a fresh
// buffer, then swaps the buffers.
func (s *String) mapCase(mode caseMode) *String {
	if s == nil || s.size == 0 {
		return s
	}
	need := 0
	s.caseWalk(mode, func(cp rune) { need += scalar.EncodedLen(cp) })

	out := newWithCapacity(need)
	w, n := 0, 0
	s.caseWalk(mode, func(cp rune) {
		w += scalar.Encode(out.buf[w:], cp)
		n++
	})
	s.buf = out.buf
	s.size = w
	s.n = n
	s.terminate()
	return s
}

// ToUpper transforms s to uppercase using full case mapping; both the
// byte size and the code point length may change.
func (s *String) ToUpper() *String { return s.mapCase(modeUpper) }

// ToLower transforms s to lowercase using full case mapping, applying
// the Final_Sigma context rule.
func (s *String) ToLower() *String { return s.mapCase(modeLower) }

// ToTitle transforms s to titlecase: the first cased code point after
// every non-cased boundary is titlecased, the rest are lowercased.
func (s *String) ToTitle() *String { return s.mapCase(modeTitle) }

// ToFold transforms s to its full case folding, the canonical form for
// caseless matching.
func (s *String) ToFold() *String { return s.mapCase(modeFold) }

// ToUpperSimple transforms s with the 1:1 simple uppercase mapping.
func (s *String) ToUpperSimple() *String { return s.mapCase(modeUpperSimple) }

// ToLowerSimple transforms s with the 1:1 simple lowercase mapping.
func (s *String) ToLowerSimple() *String { return s.mapCase(modeLowerSimple) }

// ToTitleSimple transforms s with the 1:1 simple titlecase mapping.
func (s *String) ToTitleSimple() *String { return s.mapCase(modeTitleSimple) }

// ToFoldSimple transforms s with the 1:1 simple case folding.
func (s *String) ToFoldSimple() *String { return s.mapCase(modeFoldSimple) }

// allFixpoint reports whether every code point is a fixpoint of map1.
func (s *String) allFixpoint(map1 func(rune) rune) bool {
	if s == nil {
		return true
	}
	p := s.buf[:s.size]
	for i := 0; i < len(p); {
		cp, w := scalar.Decode(p[i:])
		i += w
		if map1(cp) != cp {
			return false
		}
	}
	return true
}

// IsUpper reports whether s is already uppercase: every code point maps
// to itself under the simple uppercase mapping. Uncased code points
// satisfy every case predicate.
func (s *String) IsUpper() bool { return s.allFixpoint(ucd.SimpleUpper) }

// IsLower reports whether s is already lowercase.
func (s *String) IsLower() bool { return s.allFixpoint(ucd.SimpleLower) }

// IsTitle reports whether s is already titlecase code point by code
// point.
func (s *String) IsTitle() bool { return s.allFixpoint(ucd.SimpleTitle) }

// IsFolded reports whether s is already case folded.
func (s *String) IsFolded() bool { return s.allFixpoint(ucd.SimpleFold) }
