package ucd

import "unicode"

// NumCP is the size of the Unicode codespace.
const NumCP = 0x110000

// Quick-check answers per UAX #15.
type QC uint8

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

// Form selects a normalization form.
type Form uint8

const (
	FormNFC Form = iota
	FormNFD
	FormNFKC
	FormNFKD
)

func (f Form) String() string {
	switch f {
	case FormNFC:
		return "NFC"
	case FormNFD:
		return "NFD"
	case FormNFKC:
		return "NFKC"
	default:
		return "NFKD"
	}
}

// Row property flags.
const (
	flagExtPict uint8 = 1 << iota
	flagCased
	flagCaseIgnorable
	flagWhiteSpace
	flagNoncharacter
)

// Row is the per-code-point property record served by the trie. Rows are
// deduplicated; roughly ten thousand distinct rows cover the codespace.
type Row struct {
	Cat   Category
	GCB   GCB
	CCC   uint8
	QC    uint8 // packed: two bits per Form, FormNFC in the low bits
	Flags uint8
	Block int16 // index into blocks, or BlockNone

	// CaseID indexes caseRows; zero means no case mappings.
	CaseID uint16

	// Canon and Compat are packed decomposition references
	// (offset<<decompLenBits | length into decompPool); zero means none.
	Canon  uint32
	Compat uint32
}

const (
	decompLenBits = 5
	decompLenMask = 1<<decompLenBits - 1
)

// quickCheck unpacks the two-bit answer for form f.
func (r Row) quickCheck(f Form) QC { return QC(r.QC >> (2 * f) & 3) }

// ExtPict reports the Extended_Pictographic property of the row.
func (r Row) ExtPict() bool { return r.Flags&flagExtPict != 0 }

// HasCase reports the Cased property of the row.
func (r Row) HasCase() bool { return r.Flags&flagCased != 0 }

// CaseIgnorable reports the Case_Ignorable property of the row.
func (r Row) CaseIgnorable() bool { return r.Flags&flagCaseIgnorable != 0 }

// WhiteSpace reports the White_Space property of the row.
func (r Row) WhiteSpace() bool { return r.Flags&flagWhiteSpace != 0 }

// Trie storage, filled by buildTables. stage1 maps the high bits of a code
// point to a page; stage2 holds the deduplicated 256-entry pages of row
// indices.
const (
	pageBits = 8
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

var (
	stage1     [NumCP >> pageBits]uint16
	stage2     []uint16
	rows       []Row
	defaultRow = Row{Cat: Cn, Block: BlockNone}
)

// Lookup returns the property row for cp. Code points outside the
// codespace get the unassigned default row.
func Lookup(cp rune) Row {
	if cp < 0 || cp >= NumCP {
		return defaultRow
	}
	page := stage1[cp>>pageBits]
	return rows[stage2[int(page)<<pageBits|int(cp)&pageMask]]
}

// Version reports the Unicode version of the range tables the database
// was built from.
func Version() string { return unicode.Version }

// CategoryOf returns the general category of cp.
func CategoryOf(cp rune) Category { return Lookup(cp).Cat }

// GCBOf returns the Grapheme_Cluster_Break class of cp.
func GCBOf(cp rune) GCB { return Lookup(cp).GCB }

// CCCOf returns the canonical combining class of cp.
func CCCOf(cp rune) uint8 { return Lookup(cp).CCC }

// QuickCheck returns the per-code-point normalization quick-check answer.
func QuickCheck(cp rune, f Form) QC { return Lookup(cp).quickCheck(f) }

// BlockOf returns the index of the block containing cp, or BlockNone.
func BlockOf(cp rune) int { return int(Lookup(cp).Block) }

// IsExtendedPictographic reports the Extended_Pictographic property.
func IsExtendedPictographic(cp rune) bool { return Lookup(cp).Flags&flagExtPict != 0 }

// IsCased reports the Cased property (cased letters plus Other_Lowercase
// and Other_Uppercase).
func IsCased(cp rune) bool { return Lookup(cp).Flags&flagCased != 0 }

// IsCaseIgnorable reports the Case_Ignorable property used by the
// conditional case mapping context rules.
func IsCaseIgnorable(cp rune) bool { return Lookup(cp).Flags&flagCaseIgnorable != 0 }

// IsWhiteSpace reports the White_Space property.
func IsWhiteSpace(cp rune) bool { return Lookup(cp).Flags&flagWhiteSpace != 0 }

// IsNoncharacter reports the Noncharacter_Code_Point property.
func IsNoncharacter(cp rune) bool { return Lookup(cp).Flags&flagNoncharacter != 0 }
