package aleph

import (
	"github.com/david-schor/LibAleph/aleph/ucd"
	"github.com/david-schor/LibAleph/internal/scalar"
)

// Per-code-point property surface. Every lookup is O(1) through the
// two-stage property trie in package ucd.

// CategoryOf returns the general category of cp.
func CategoryOf(cp rune) ucd.Category { return ucd.CategoryOf(cp) }

// CategoryName returns the two-letter abbreviation of cp's category.
func CategoryName(cp rune) string { return ucd.CategoryOf(cp).String() }

// Block returns the index of the block containing cp, or ucd.BlockNone.
func Block(cp rune) int { return ucd.BlockOf(cp) }

// BlockName returns the name of block index i, or "No_Block".
func BlockName(i int) string { return ucd.BlockName(i) }

// BlockNameOf returns the name of the block containing cp.
func BlockNameOf(cp rune) string { return ucd.BlockName(ucd.BlockOf(cp)) }

// BlockRange returns the closed code point range of block index i.
func BlockRange(i int) (lo, hi rune) { return ucd.BlockRange(i) }

// IsLetter reports whether cp is a letter (category L*).
func IsLetter(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Letter) }

// IsAlphanumeric reports whether cp is a letter or a number.
func IsAlphanumeric(cp rune) bool {
	return ucd.CategoryOf(cp).Is(ucd.Letter | ucd.Number)
}

// IsMark reports whether cp is a combining mark (category M*).
func IsMark(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Mark) }

// IsNumber reports whether cp is a number (category N*).
func IsNumber(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Number) }

// IsDigit reports whether cp is a decimal digit (category Nd).
func IsDigit(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Nd) }

// IsPunctuation reports whether cp is punctuation (category P*).
func IsPunctuation(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Punctuation) }

// IsSeparator reports whether cp is a separator (category Z*).
func IsSeparator(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Separator) }

// IsSymbol reports whether cp is a symbol (category S*).
func IsSymbol(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Symbol) }

// IsMath reports whether cp is a mathematical symbol (category Sm).
func IsMath(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Sm) }

// IsCurrency reports whether cp is a currency symbol (category Sc).
func IsCurrency(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Sc) }

// IsControl reports whether cp is a control code (category Cc).
func IsControl(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Cc) }

// IsFormat reports whether cp is a format code (category Cf).
func IsFormat(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Cf) }

// IsGraphical reports whether cp has a visible rendering or is a space.
func IsGraphical(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Graphical) }

// IsPrivateUse reports whether cp lies in a private use area.
func IsPrivateUse(cp rune) bool { return ucd.CategoryOf(cp).Is(ucd.Co) }

// IsSpace reports the White_Space property.
func IsSpace(cp rune) bool { return ucd.IsWhiteSpace(cp) }

// IsNoncharacter reports the Noncharacter_Code_Point property.
func IsNoncharacter(cp rune) bool { return ucd.IsNoncharacter(cp) }

// IsSurrogate reports whether cp lies in the UTF-16 surrogate range.
func IsSurrogate(cp rune) bool {
	return cp >= scalar.SurrogateMin && cp <= scalar.SurrogateMax
}

// IsSurrogateHigh reports whether cp is a high (leading) surrogate.
func IsSurrogateHigh(cp rune) bool { return cp >= 0xD800 && cp <= 0xDBFF }

// IsSurrogateLow reports whether cp is a low (trailing) surrogate.
func IsSurrogateLow(cp rune) bool { return cp >= 0xDC00 && cp <= 0xDFFF }

// IsBMP reports whether cp lies in the Basic Multilingual Plane.
func IsBMP(cp rune) bool { return cp >= 0 && cp <= 0xFFFF }

// IsSupplementary reports whether cp lies beyond the BMP.
func IsSupplementary(cp rune) bool { return cp > 0xFFFF && cp <= scalar.MaxCP }

// IsScalar reports whether cp is a Unicode scalar value.
func IsScalar(cp rune) bool { return scalar.IsScalar(cp) }

// CCC returns the canonical combining class of cp.
func CCC(cp rune) uint8 { return ucd.CCCOf(cp) }

// Per-code-point case primitives.

// UpperCP returns the simple uppercase mapping of cp.
func UpperCP(cp rune) rune { return ucd.SimpleUpper(cp) }

// LowerCP returns the simple lowercase mapping of cp.
func LowerCP(cp rune) rune { return ucd.SimpleLower(cp) }

// TitleCP returns the simple titlecase mapping of cp.
func TitleCP(cp rune) rune { return ucd.SimpleTitle(cp) }

// FoldCP returns the simple case folding of cp.
func FoldCP(cp rune) rune { return ucd.SimpleFold(cp) }

// FullUpperCP returns the full uppercase mapping of cp (1..3 code points).
func FullUpperCP(cp rune) []rune { return ucd.FullUpper(nil, cp) }

// FullLowerCP returns the full lowercase mapping of cp.
func FullLowerCP(cp rune) []rune { return ucd.FullLower(nil, cp) }

// FullTitleCP returns the full titlecase mapping of cp.
func FullTitleCP(cp rune) []rune { return ucd.FullTitle(nil, cp) }

// FullFoldCP returns the full case folding of cp.
func FullFoldCP(cp rune) []rune { return ucd.FullFold(nil, cp) }

// IsUpperCP reports whether cp is a fixpoint of the uppercase mapping.
func IsUpperCP(cp rune) bool { return ucd.SimpleUpper(cp) == cp }

// IsLowerCP reports whether cp is a fixpoint of the lowercase mapping.
func IsLowerCP(cp rune) bool { return ucd.SimpleLower(cp) == cp }

// IsTitleCP reports whether cp is a fixpoint of the titlecase mapping.
func IsTitleCP(cp rune) bool { return ucd.SimpleTitle(cp) == cp }

// IsFoldedCP reports whether cp is a fixpoint of the simple folding.
func IsFoldedCP(cp rune) bool { return ucd.SimpleFold(cp) == cp }

// IsCasedCP reports the Cased property of cp.
func IsCasedCP(cp rune) bool { return ucd.IsCased(cp) }
