package ucd

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/david-schor/LibAleph/internal/scalar"
)

func init() { buildTables() }

// catBitIndex maps a two-letter general category to its bit position,
// in the order of the Category constants.
var catBitIndex = map[string]uint8{
	"Lu": 0, "Ll": 1, "Lt": 2, "Lm": 3, "Lo": 4,
	"Mn": 5, "Mc": 6, "Me": 7,
	"Nd": 8, "Nl": 9, "No": 10,
	"Pc": 11, "Pd": 12, "Ps": 13, "Pe": 14, "Pi": 15, "Pf": 16, "Po": 17,
	"Sm": 18, "Sc": 19, "Sk": 20, "So": 21,
	"Zs": 22, "Zl": 23, "Zp": 24,
	"Cc": 25, "Cf": 26, "Cs": 27, "Co": 28,
}

const cnBit = 29

// eachRange visits every code point range of a stdlib range table,
// flattening strides.
func eachRange(rt *unicode.RangeTable, f func(lo, hi rune)) {
	for _, r := range rt.R16 {
		if r.Stride == 1 {
			f(rune(r.Lo), rune(r.Hi))
			continue
		}
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			f(cp, cp)
		}
	}
	for _, r := range rt.R32 {
		if r.Stride == 1 {
			f(rune(r.Lo), rune(r.Hi))
			continue
		}
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			f(cp, cp)
		}
	}
}

func paintBool(dst []bool, rt *unicode.RangeTable) {
	eachRange(rt, func(lo, hi rune) {
		for cp := lo; cp <= hi; cp++ {
			dst[cp] = true
		}
	})
}

func paintRangesGCB(dst []uint8, rs []cpRange, v GCB) {
	for _, r := range rs {
		for cp := r.Lo; cp <= r.Hi; cp++ {
			dst[cp] = uint8(v)
		}
	}
}

// wordMedialPunct lists the word-medial punctuation that counts as
// Case_Ignorable beyond the {Mn,Me,Cf,Lm,Sk} categories
// (Word_Break MidLetter, MidNumLet, and Single_Quote).
var wordMedialPunct = []rune{
	0x0027, 0x002E, 0x003A, 0x00B7, 0x0387, 0x05F4, 0x2018, 0x2019,
	0x2024, 0x2027, 0xFE13, 0xFE52, 0xFE55, 0xFF07, 0xFF0E, 0xFF1A,
}

// Decomposition and full-case-mapping sequence pools. Slot zero of each
// pool is reserved so a zero reference means "none".
var (
	decompPool = []rune{0}
	casePool   = []rune{0}

	composePairs map[uint64]rune

	caseRows []caseRow
)

type caseRow struct {
	su, sl, st, sf rune   // simple mappings
	fu, fl, ft, ff uint32 // packed full mappings; zero means same as simple
}

func composeKey(a, b rune) uint64 { return uint64(a)<<32 | uint64(uint32(b)) }

func packSeq(pool *[]rune, index map[string]uint32, s string) uint32 {
	if ref, ok := index[s]; ok {
		return ref
	}
	off := len(*pool)
	n := 0
	for _, r := range s {
		*pool = append(*pool, r)
		n++
	}
	ref := uint32(off)<<decompLenBits | uint32(n)
	index[s] = ref
	return ref
}

func seqOf(pool []rune, ref uint32) []rune {
	off := ref >> decompLenBits
	n := ref & decompLenMask
	return pool[off : off+n]
}

// buildTables constructs the property trie. See the package comment for
// the data sources; the shape is paint, derive, deduplicate.
func buildTables() {
	cat := make([]uint8, NumCP)
	for i := range cat {
		cat[i] = cnBit
	}
	for name, bit := range catBitIndex {
		rt, ok := unicode.Categories[name]
		if !ok {
			continue
		}
		b := bit
		eachRange(rt, func(lo, hi rune) {
			for cp := lo; cp <= hi; cp++ {
				cat[cp] = b
			}
		})
	}

	whiteSpace := make([]bool, NumCP)
	oge := make([]bool, NumCP)
	oLower := make([]bool, NumCP)
	oUpper := make([]bool, NumCP)
	nonchar := make([]bool, NumCP)
	paintBool(whiteSpace, unicode.White_Space)
	paintBool(oge, unicode.Other_Grapheme_Extend)
	paintBool(oLower, unicode.Other_Lowercase)
	paintBool(oUpper, unicode.Other_Uppercase)
	paintBool(nonchar, unicode.Noncharacter_Code_Point)

	extPict := make([]bool, NumCP)
	for _, r := range extendedPictographic {
		for cp := r.Lo; cp <= r.Hi; cp++ {
			extPict[cp] = true
		}
	}

	ccc, canon, compat := scanNormProperties()
	harvestCompositions(canon)
	qcp := deriveQuickCheck(canon, compat)
	gcb := deriveGCB(cat, oge)
	caseID := deriveCasing(cat)

	// Assemble the two-stage trie, deduplicating rows and pages.
	rows = []Row{defaultRow}
	rowIndex := map[Row]uint16{defaultRow: 0}
	pageIndex := make(map[[pageSize]uint16]uint16)
	stage2 = stage2[:0]

	for p := 0; p < NumCP>>pageBits; p++ {
		var page [pageSize]uint16
		for i := 0; i < pageSize; i++ {
			cp := rune(p<<pageBits | i)

			var flags uint8
			if extPict[cp] {
				flags |= flagExtPict
			}
			cb := Category(1) << cat[cp]
			if cb.Is(CasedLetter) || oLower[cp] || oUpper[cp] {
				flags |= flagCased
			}
			if cb.Is(Mn|Me|Cf|Lm|Sk) || isWordMedial(cp) {
				flags |= flagCaseIgnorable
			}
			if whiteSpace[cp] {
				flags |= flagWhiteSpace
			}
			if nonchar[cp] {
				flags |= flagNoncharacter
			}

			row := Row{
				Cat:    cb,
				GCB:    GCB(gcb[cp]),
				CCC:    ccc[cp],
				QC:     qcp[cp],
				Flags:  flags,
				Block:  int16(BlockIndex(cp)),
				CaseID: caseID[cp],
				Canon:  canon[cp],
				Compat: compat[cp],
			}
			idx, ok := rowIndex[row]
			if !ok {
				idx = uint16(len(rows))
				rows = append(rows, row)
				rowIndex[row] = idx
			}
			page[i] = idx
		}
		pi, ok := pageIndex[page]
		if !ok {
			pi = uint16(len(stage2) >> pageBits)
			stage2 = append(stage2, page[:]...)
			pageIndex[page] = pi
		}
		stage1[p] = pi
	}
}

func isWordMedial(cp rune) bool {
	for _, w := range wordMedialPunct {
		if w == cp {
			return true
		}
	}
	return false
}

// scanNormProperties reads combining classes and full canonical and
// compatibility decompositions out of the x/text normalization tables.
// Hangul syllables are skipped; they decompose algorithmically.
func scanNormProperties() (ccc []uint8, canon, compat []uint32) {
	ccc = make([]uint8, NumCP)
	canon = make([]uint32, NumCP)
	compat = make([]uint32, NumCP)
	index := make(map[string]uint32)

	var buf [scalar.MaxBytes]byte
	for cp := rune(0); cp < NumCP; cp++ {
		if !scalar.IsScalar(cp) {
			continue
		}
		if cp >= HangulSBase && cp <= HangulSEnd {
			continue
		}
		n := scalar.Encode(buf[:], cp)
		pd := norm.NFD.Properties(buf[:n])
		ccc[cp] = pd.CCC()
		if d := pd.Decomposition(); d != nil {
			canon[cp] = packSeq(&decompPool, index, string(d))
		}
		pkd := norm.NFKD.Properties(buf[:n])
		if d := pkd.Decomposition(); d != nil {
			compat[cp] = packSeq(&decompPool, index, string(d))
		}
	}
	return ccc, canon, compat
}

// harvestCompositions inverts the canonical decompositions into the
// primary composite pair table. A pair is kept only when NFC actually
// recomposes it, which encodes the composition exclusions without
// carrying the exclusion list itself.
func harvestCompositions(canon []uint32) {
	composePairs = make(map[uint64]rune)
	for cp := rune(0); cp < NumCP; cp++ {
		if canon[cp] == 0 {
			continue
		}
		d := seqOf(decompPool, canon[cp])
		if len(d) < 2 {
			continue
		}
		last := d[len(d)-1]
		prefix := norm.NFC.String(string(d[:len(d)-1]))
		pr := []rune(prefix)
		if len(pr) != 1 {
			continue
		}
		first := pr[0]
		if norm.NFC.String(string([]rune{first, last})) == string(cp) {
			composePairs[composeKey(first, last)] = cp
		}
	}
}

// deriveQuickCheck computes the packed per-form quick-check classes.
func deriveQuickCheck(canon, compat []uint32) []uint8 {
	maybe := make([]bool, NumCP)
	for key := range composePairs {
		maybe[rune(uint32(key))] = true
	}
	// Hangul V and T jamo compose with a preceding starter.
	for cp := rune(HangulVBase); cp < HangulVBase+HangulVCount; cp++ {
		maybe[cp] = true
	}
	for cp := rune(HangulTBase + 1); cp < HangulTBase+HangulTCount; cp++ {
		maybe[cp] = true
	}

	qcp := make([]uint8, NumCP)
	for cp := rune(0); cp < NumCP; cp++ {
		if !scalar.IsScalar(cp) {
			continue
		}
		hangul := cp >= HangulSBase && cp <= HangulSEnd
		var nfc, nfd, nfkc, nfkd QC
		if canon[cp] != 0 || hangul {
			nfd = QCNo
		}
		if canon[cp] != 0 || compat[cp] != 0 || hangul {
			nfkd = QCNo
		}
		if maybe[cp] {
			nfc, nfkc = QCMaybe, QCMaybe
		}
		if canon[cp] != 0 && norm.NFC.String(string(cp)) != string(cp) {
			nfc = QCNo
		}
		if (canon[cp] != 0 || compat[cp] != 0) && norm.NFKC.String(string(cp)) != string(cp) {
			nfkc = QCNo
		}
		qcp[cp] = uint8(nfc)<<(2*FormNFC) | uint8(nfd)<<(2*FormNFD) |
			uint8(nfkc)<<(2*FormNFKC) | uint8(nfkd)<<(2*FormNFKD)
	}
	return qcp
}

// deriveGCB paints the Grapheme_Cluster_Break classes: category defaults
// first, then the explicit override tables, then the Hangul ranges.
func deriveGCB(cat []uint8, oge []bool) []uint8 {
	gcb := make([]uint8, NumCP)
	for cp := 0; cp < NumCP; cp++ {
		switch Category(1) << cat[cp] {
		case Cc, Cf, Cs, Zl, Zp:
			gcb[cp] = uint8(GCBControl)
		case Mn, Me:
			gcb[cp] = uint8(GCBExtend)
		case Mc:
			gcb[cp] = uint8(GCBSpacingMark)
		}
		if oge[cp] {
			gcb[cp] = uint8(GCBExtend)
		}
	}

	paintRangesGCB(gcb, gcbSpacingMarkAdd, GCBSpacingMark)
	paintRangesGCB(gcb, gcbSpacingMarkExclude, GCBOther)
	paintRangesGCB(gcb, gcbPrepend, GCBPrepend)
	paintRangesGCB(gcb, gcbExtendAdd, GCBExtend)

	gcb[0x000D] = uint8(GCBCR)
	gcb[0x000A] = uint8(GCBLF)
	gcb[0x200C] = uint8(GCBExtend) // ZWNJ
	gcb[0x200D] = uint8(GCBZWJ)
	for cp := 0x1F1E6; cp <= 0x1F1FF; cp++ {
		gcb[cp] = uint8(GCBRegionalIndicator)
	}

	hangulRanges := []struct {
		lo, hi rune
		v      GCB
	}{
		{0x1100, 0x115F, GCBHangulL},
		{0xA960, 0xA97C, GCBHangulL},
		{0x1160, 0x11A7, GCBHangulV},
		{0xD7B0, 0xD7C6, GCBHangulV},
		{0x11A8, 0x11FF, GCBHangulT},
		{0xD7CB, 0xD7FB, GCBHangulT},
	}
	for _, r := range hangulRanges {
		for cp := r.lo; cp <= r.hi; cp++ {
			gcb[cp] = uint8(r.v)
		}
	}
	for cp := rune(HangulSBase); cp <= HangulSEnd; cp++ {
		if (cp-HangulSBase)%HangulTCount == 0 {
			gcb[cp] = uint8(GCBHangulLV)
		} else {
			gcb[cp] = uint8(GCBHangulLVT)
		}
	}
	return gcb
}

// deriveCasing computes simple and full case mappings. Simple upper,
// lower and title mappings come from the stdlib case tables; the simple
// fold is the full fold when that is one code point, else the simple
// lowercase. Full mappings (SpecialCasing and full
// folds) are read out of the x/text casers by transforming each candidate
// code point in isolation, with NUL separators keeping outputs aligned.
func deriveCasing(cat []uint8) []uint16 {
	const candMask = Lu | Ll | Lt | Lm | Lo | Mn | Mc | Nl | No | So | Sk

	var cands []rune
	var sb strings.Builder
	for cp := rune(0); cp < NumCP; cp++ {
		if !scalar.IsScalar(cp) {
			continue
		}
		if !(Category(1) << cat[cp]).Is(candMask) && unicode.SimpleFold(cp) == cp {
			continue
		}
		cands = append(cands, cp)
		sb.WriteRune(cp)
		sb.WriteByte(0)
	}
	src := sb.String()

	upperAll := strings.Split(cases.Upper(language.Und).String(src), "\x00")
	lowerAll := strings.Split(cases.Lower(language.Und).String(src), "\x00")
	titleAll := strings.Split(cases.Title(language.Und).String(src), "\x00")
	foldAll := strings.Split(cases.Fold().String(src), "\x00")

	caseRows = []caseRow{{}}
	caseID := make([]uint16, NumCP)
	index := make(map[string]uint32)

	for i, cp := range cands {
		row := caseRow{
			su: unicode.ToUpper(cp),
			sl: unicode.ToLower(cp),
			st: unicode.ToTitle(cp),
		}

		// Upper, lower and fold rows are the caser outputs verbatim, so
		// the full mappings always agree with the x/text data they come
		// from. Title keeps the simple-mapping fallback: the word-based
		// title caser skips case-ignorable code points like U+0345.
		fu := runesOrSelf(upperAll[i], cp)
		fl := runesOrSelf(lowerAll[i], cp)
		ft := fullOrSimple(titleAll[i], cp, row.st)
		ff := runesOrSelf(foldAll[i], cp)

		if len(ff) == 1 {
			row.sf = ff[0]
		} else {
			row.sf = row.sl
		}

		if len(fu) != 1 || fu[0] != row.su {
			row.fu = packSeq(&casePool, index, string(fu))
		}
		if len(fl) != 1 || fl[0] != row.sl {
			row.fl = packSeq(&casePool, index, string(fl))
		}
		if len(ft) != 1 || ft[0] != row.st {
			row.ft = packSeq(&casePool, index, string(ft))
		}
		if len(ff) != 1 || ff[0] != row.sf {
			row.ff = packSeq(&casePool, index, string(ff))
		}

		if row.su == cp && row.sl == cp && row.st == cp && row.sf == cp &&
			row.fu == 0 && row.fl == 0 && row.ft == 0 && row.ff == 0 {
			continue
		}
		caseRows = append(caseRows, row)
		caseID[cp] = uint16(len(caseRows) - 1)
	}
	return caseID
}

// runesOrSelf decodes a caser output for a lone code point, treating an
// empty output as the identity mapping.
func runesOrSelf(mapped string, cp rune) []rune {
	if mapped == "" {
		return []rune{cp}
	}
	return []rune(mapped)
}

// fullOrSimple resolves a caser output for a lone code point: the caser's
// output when it mapped, else the simple mapping (covers case-ignorable
// code points the word-based casers leave alone, like U+0345).
func fullOrSimple(mapped string, cp, simple rune) []rune {
	out := []rune(mapped)
	if len(out) == 0 || (len(out) == 1 && out[0] == cp) {
		return []rune{simple}
	}
	return out
}
