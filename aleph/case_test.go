package aleph

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func TestToUpperLower(t *testing.T) {
	tests := []struct {
		in, upper, lower string
	}{
		{"", "", ""},
		{"Hello", "HELLO", "hello"},
		{"Café", "CAFÉ", "café"},
		{"ΑΒΓ", "ΑΒΓ", "αβγ"},
		{"mixed МИР 123", "MIXED МИР 123", "mixed мир 123"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.upper, New(tt.in).ToUpper().String(), "upper %q", tt.in)
		require.Equal(t, tt.lower, New(tt.in).ToLower().String(), "lower %q", tt.in)
	}
}

func TestScenarioSharpS(t *testing.T) {
	s := New("ß")
	require.Equal(t, "SS", s.Dup().ToUpper().String())
	require.Equal(t, "ß", s.Dup().ToUpperSimple().String())
	require.Equal(t, "ss", s.Dup().ToFold().String())

	require.Zero(t, New("ß").IcmpString("SS"))
	require.Zero(t, New("ß").IcmpString("Ss"))
	require.NotZero(t, New("ß").IcmpString("SSS"))
}

func TestScenarioFinalSigma(t *testing.T) {
	require.Equal(t, "οδυσσευς", New("ΟΔΥΣΣΕΥΣ").ToLower().String())

	// Mid-word sigma stays σ; isolated sigma is not final.
	require.Equal(t, "σ", New("Σ").ToLower().String())
	require.Equal(t, "σα", New("ΣΑ").ToLower().String())

	// Case-ignorable punctuation does not end the word.
	require.Equal(t, "ας'", New("ΑΣ'").ToLower().String())
}

func TestToTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello world", "Hello World"},
		{"HELLO WORLD", "Hello World"},
		// The apostrophe is case-ignorable, so the n after it is not a
		// title position.
		{"o'neill and sons", "O'neill And Sons"},
		{"ǆungla", "ǅungla"}, // digraph titlecase
		{"δύο λέξεις", "Δύο Λέξεις"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, New(tt.in).ToTitle().String(), "%q", tt.in)
	}
}

func TestCaseChangesLengths(t *testing.T) {
	s := New("ﬄ") // LATIN SMALL LIGATURE FFL
	s.ToUpper()
	require.Equal(t, "FFL", s.String())
	require.Equal(t, 3, s.Len())
	requireInvariants(t, s)
}

func TestFoldIdempotent(t *testing.T) {
	inputs := []string{"Hello", "ΟΔΥΣΣΕΥΣ", "ß and ẞ", "İstanbul", "ﬁﬂﬄ"}
	for _, in := range inputs {
		once := New(in).ToFold()
		twice := once.Dup().ToFold()
		require.True(t, once.Equal(twice), "fold(fold(%q))", in)
		require.True(t, twice.IsFolded())
	}
}

func TestCasePredicates(t *testing.T) {
	assert.True(t, New("HELLO 123").IsUpper())
	assert.False(t, New("Hello").IsUpper())
	assert.True(t, New("hello 123").IsLower())
	assert.False(t, New("hellO").IsLower())

	// Uncased content satisfies every predicate.
	for _, s := range []string{"", "123 !?", "日本語"} {
		assert.True(t, New(s).IsUpper(), "%q", s)
		assert.True(t, New(s).IsLower(), "%q", s)
		assert.True(t, New(s).IsTitle(), "%q", s)
		assert.True(t, New(s).IsFolded(), "%q", s)
	}
}

func TestSimpleTransforms(t *testing.T) {
	require.Equal(t, "HELLO", New("hello").ToUpperSimple().String())
	require.Equal(t, "hello", New("HELLO").ToLowerSimple().String())
	require.Equal(t, "σσ", New("ΣΣ").ToFoldSimple().String())
}

func BenchmarkToUpper(b *testing.B) {
	src := New("The quick brown fox jumps över the lazy ßog. ΟΔΥΣΣΕΥΣ.")
	for i := 0; i < b.N; i++ {
		src.Dup().ToUpper()
	}
}

// The x/text Und casers carry the CaseFolding.txt and SpecialCasing.txt
// data this package's tables derive from, so they stand in for those
// files as the conformance oracle. Titlecasing is excluded from the
// differential: the oracle titles by word boundaries while this library
// titles by cased-run boundaries; ToTitle keeps its direct tests above.
func TestCaseMatchesReference(t *testing.T) {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	fold := cases.Fold()
	for _, cp := range conformanceScalars() {
		in := string(cp)
		require.Equal(t, upper.String(in), New(in).ToUpper().String(), "upper U+%04X", cp)
		require.Equal(t, lower.String(in), New(in).ToLower().String(), "lower U+%04X", cp)
		require.Equal(t, fold.String(in), New(in).ToFold().String(), "fold U+%04X", cp)
	}
}

func TestCaseMatchesReferenceRandom(t *testing.T) {
	alphabet := []rune{
		'a', 'B', 'z', ' ', '\'', '.',
		0x00DF, 0x1E9E, // sharp s both cases
		0x0130, 0x0131, // dotted/dotless i
		0x0391, 0x03B1, 0x03A3, 0x03C3, 0x03C2, // Greek incl. both sigmas
		0x00C9, 0x00E9, 0x0149, 0xFB01, 0xFB04, 0x0345,
	}
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	fold := cases.Fold()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 400; i++ {
		var sb strings.Builder
		for n := 1 + rng.Intn(10); n > 0; n-- {
			sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		in := sb.String()
		require.Equal(t, upper.String(in), New(in).ToUpper().String(), "upper %q", in)
		require.Equal(t, lower.String(in), New(in).ToLower().String(), "lower %q", in)
		require.Equal(t, fold.String(in), New(in).ToFold().String(), "fold %q", in)
	}
}

// Folding is invariant under uppercasing for every sampled code point
// except dotless ı (U+0131): it has no default folding and folds to
// itself, while its uppercase I folds to i.
func TestFoldUpperRoundTrip(t *testing.T) {
	for _, cp := range conformanceScalars() {
		in := string(cp)
		want := New(in).ToFold().String()
		if cp == 0x0131 {
			want = "i"
		}
		require.Equal(t, want,
			New(in).ToUpper().ToFold().String(), "U+%04X", cp)
	}
}
