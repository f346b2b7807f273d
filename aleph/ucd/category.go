package ucd

// Category is a general-category bitmask. Each code point belongs to
// exactly one of the thirty base categories; the derived masks below let
// callers test membership in a whole category group with one AND.
type Category uint32

const (
	Lu Category = 1 << iota // Letter, uppercase
	Ll                      // Letter, lowercase
	Lt                      // Letter, titlecase
	Lm                      // Letter, modifier
	Lo                      // Letter, other
	Mn                      // Mark, nonspacing
	Mc                      // Mark, spacing combining
	Me                      // Mark, enclosing
	Nd                      // Number, decimal digit
	Nl                      // Number, letter
	No                      // Number, other
	Pc                      // Punctuation, connector
	Pd                      // Punctuation, dash
	Ps                      // Punctuation, open
	Pe                      // Punctuation, close
	Pi                      // Punctuation, initial quote
	Pf                      // Punctuation, final quote
	Po                      // Punctuation, other
	Sm                      // Symbol, math
	Sc                      // Symbol, currency
	Sk                      // Symbol, modifier
	So                      // Symbol, other
	Zs                      // Separator, space
	Zl                      // Separator, line
	Zp                      // Separator, paragraph
	Cc                      // Other, control
	Cf                      // Other, format
	Cs                      // Other, surrogate
	Co                      // Other, private use
	Cn                      // Other, not assigned
)

// Derived category groups.
const (
	Letter      = Lu | Ll | Lt | Lm | Lo
	CasedLetter = Lu | Ll | Lt
	Mark        = Mn | Mc | Me
	Number      = Nd | Nl | No
	Punctuation = Pc | Pd | Ps | Pe | Pi | Pf | Po
	Symbol      = Sm | Sc | Sk | So
	Separator   = Zs | Zl | Zp
	Other       = Cc | Cf | Cs | Co | Cn
	Graphical   = Letter | Mark | Number | Punctuation | Symbol | Zs
)

// Is reports whether c intersects mask.
func (c Category) Is(mask Category) bool { return c&mask != 0 }

// categoryNames is ordered by bit position.
var categoryNames = [...]string{
	"Lu", "Ll", "Lt", "Lm", "Lo",
	"Mn", "Mc", "Me",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp",
	"Cc", "Cf", "Cs", "Co", "Cn",
}

var categoryDescriptions = [...]string{
	"Letter, uppercase",
	"Letter, lowercase",
	"Letter, titlecase",
	"Letter, modifier",
	"Letter, other",
	"Mark, nonspacing",
	"Mark, spacing combining",
	"Mark, enclosing",
	"Number, decimal digit",
	"Number, letter",
	"Number, other",
	"Punctuation, connector",
	"Punctuation, dash",
	"Punctuation, open",
	"Punctuation, close",
	"Punctuation, initial quote",
	"Punctuation, final quote",
	"Punctuation, other",
	"Symbol, math",
	"Symbol, currency",
	"Symbol, modifier",
	"Symbol, other",
	"Separator, space",
	"Separator, line",
	"Separator, paragraph",
	"Other, control",
	"Other, format",
	"Other, surrogate",
	"Other, private use",
	"Other, not assigned",
}

// String returns the two-letter abbreviation of a base category, or "??"
// for a mask that is not a single category.
func (c Category) String() string {
	for i, name := range categoryNames {
		if c == 1<<i {
			return name
		}
	}
	return "??"
}

// Description returns the long UCD name of a base category.
func (c Category) Description() string {
	for i, d := range categoryDescriptions {
		if c == 1<<i {
			return d
		}
	}
	return "unknown"
}

// CategoryFromString returns the category for a two-letter abbreviation.
func CategoryFromString(s string) (Category, bool) {
	for i, name := range categoryNames {
		if name == s {
			return 1 << i, true
		}
	}
	return 0, false
}
