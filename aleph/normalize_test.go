package aleph

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

// Escape sequences are used instead of literal characters wherever the
// composed and decomposed spellings would be indistinguishable in source.

func TestScenarioAngstrom(t *testing.T) {
	s := New("\u00C5") // precomposed ring
	nfd := s.Dup().Normalize(NFD)
	require.Equal(t, "A\u030A", nfd.String())

	back := nfd.Dup().Normalize(NFC)
	require.Equal(t, "\u00C5", back.String())

	require.Equal(t, "\u00C5", s.Dup().Normalize(NFKC).String())

	// The Angstrom sign U+212B collapses to the letter under NFC.
	require.Equal(t, "\u00C5", New("\u212B").Normalize(NFC).String())
}

func TestScenarioCafeNFD(t *testing.T) {
	nfd := New("Caf\u00E9").Normalize(NFD)
	require.Equal(t, "Cafe\u0301", nfd.String())
	require.Equal(t, 5, nfd.Len())
	require.Equal(t, 6, nfd.Size())
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"Caf\u00E9",
		"Cafe\u0301",
		"\u212B\u2126", // Angstrom and Ohm singletons
		"a\u0301\u0323",        // marks needing reorder
		"a\u0323\u0301",       // same marks, canonical order
		"\uAC01 and \u1100\u1161\u11A8",            // Hangul composed and jamo
		"\uFB01ne \uFB00ort \u2460\u2461",
		"\u0958", // excluded composite
	}
	for _, in := range inputs {
		for _, f := range []Form{NFC, NFD, NFKC, NFKD} {
			once := New(in).Normalize(f)
			twice := once.Dup().Normalize(f)
			require.True(t, once.Equal(twice), "normalize(normalize(%q, %v))", in, f)
			require.True(t, once.IsNormalized(f), "IsNormalized(%q, %v)", in, f)
			requireInvariants(t, once)
		}
	}
}

func TestNFCEqualsComposedNFD(t *testing.T) {
	inputs := []string{
		"Caf\u00E9",
		"\u212B",
		"a\u0301\u0323",
		"\uAC01",
		"\u1E38", // L with dot below and macron: multi-level decomposition
	}
	for _, in := range inputs {
		viaNFD := New(in).Normalize(NFD).Normalize(NFC)
		direct := New(in).Normalize(NFC)
		require.True(t, direct.Equal(viaNFD), "%q", in)

		viaNFKD := New(in).Normalize(NFKD).Normalize(NFKC)
		directK := New(in).Normalize(NFKC)
		require.True(t, directK.Equal(viaNFKD), "%q", in)
	}
}

func TestCanonicalReordering(t *testing.T) {
	// Dot below (ccc 220) must sort before acute (ccc 230).
	a := New("a\u0301\u0323").Normalize(NFD)
	require.Equal(t, "a\u0323\u0301", a.String())

	// Already ordered input is untouched.
	b := New("a\u0323\u0301").Normalize(NFD)
	require.Equal(t, "a\u0323\u0301", b.String())

	// Equal combining classes keep their relative order (stability).
	c := New("a\u0301\u0300").Normalize(NFD)
	require.Equal(t, "a\u0301\u0300", c.String())
}

func TestCompositionExclusion(t *testing.T) {
	// U+0958 DEVANAGARI LETTER QA decomposes to 0915+093C and is a
	// composition exclusion: NFC keeps it decomposed.
	require.Equal(t, "\u0915\u093C", New("\u0958").Normalize(NFC).String())
	require.Equal(t, "\u0915\u093C", New("\u0915\u093C").Normalize(NFC).String())
}

func TestBlockedComposition(t *testing.T) {
	// The cedilla (ccc 202) between e and the acute (ccc 230) does not
	// block the acute, but no e-with-cedilla-and-acute composite exists,
	// so the cedilla fuses and the acute stays combining.
	require.Equal(t, "\u0229\u0301", New("e\u0327\u0301").Normalize(NFC).String())

	// The first acute fuses into é; the second is not blocked, but no
	// composite of é with an acute exists, so it stays separate.
	require.Equal(t, "\u00E9\u0301", New("e\u0301\u0301").Normalize(NFC).String())

	// Dot below sorts first and fuses into ẹ; no composite of ẹ with an
	// acute exists, so the acute stays combining.
	require.Equal(t, "\u1EB9\u0301", New("e\u0323\u0301").Normalize(NFC).String())
}

func TestHangulNormalization(t *testing.T) {
	require.Equal(t, "\u1100\u1161\u11A8", New("\uAC01").Normalize(NFD).String())
	require.Equal(t, "\uAC01", New("\u1100\u1161\u11A8").Normalize(NFC).String())
	require.Equal(t, 1, New("\u1100\u1161\u11A8").Normalize(NFC).Len())
}

func TestCompatibilityForms(t *testing.T) {
	require.Equal(t, "fi", New("\uFB01").Normalize(NFKC).String())
	require.Equal(t, "1", New("\u2460").Normalize(NFKD).String())
	// Canonical normalization keeps the ligature.
	require.Equal(t, "\uFB01", New("\uFB01").Normalize(NFC).String())
}

func TestQuickCheckAnswers(t *testing.T) {
	assert.Equal(t, QCYes, New("plain").QuickCheck(NFC))
	// Composed e-acute is definitively not NFD.
	assert.Equal(t, QCNo, New("Caf\u00E9").QuickCheck(NFD))
	assert.Equal(t, QCYes, New("Caf\u00E9").QuickCheck(NFC))
	// e + combining acute: the acute is a MAYBE for NFC.
	assert.Equal(t, QCMaybe, New("Cafe\u0301").QuickCheck(NFC))
	assert.Equal(t, QCYes, New("Cafe\u0301").QuickCheck(NFD))
	// Unordered marks are definitively unnormalized.
	assert.Equal(t, QCNo, New("a\u0301\u0323").QuickCheck(NFD))
	// Compatibility characters fail only the K forms.
	assert.Equal(t, QCYes, New("\uFB01").QuickCheck(NFC))
	assert.Equal(t, QCNo, New("\uFB01").QuickCheck(NFKC))
}

func TestIsNormalizedMaybePath(t *testing.T) {
	// Both are MAYBE under quick check; the full algorithm decides.
	require.False(t, New("e\u0301").IsNormalized(NFC)) // composes
	require.True(t, New("q\u0301").IsNormalized(NFC))    // no composite exists
}

func TestNewNormalizeAndCatNorm(t *testing.T) {
	require.Equal(t, "Caf\u00E9", NewNormalize("Cafe\u0301", NFC).String())

	// NFC is not closed under concatenation: "e" + combining acute must
	// fuse across the join.
	s := NewNormalize("Cafe", NFC)
	s.CatNorm(New("\u0301!"), NFC)
	require.Equal(t, "Caf\u00E9!", s.String())
	require.Equal(t, 5, s.Len())
	requireInvariants(t, s)

	// Hangul jamo compose across the join too.
	h := NewNormalize("\u1100", NFC)
	h.CatNorm(New("\u1161"), NFC)
	require.Equal(t, "\uAC00", h.String())
}

func BenchmarkNormalizeNFC(b *testing.B) {
	src := New("Le c\u0153ur d\u00E9\u00E7u na\u00EFve a\u0323\u0301 \uAC01")
	for i := 0; i < b.N; i++ {
		src.Dup().Normalize(NFC)
	}
}

// The x/text normalizer is built from the same UCD data this package's
// tables derive from, so it stands in for NormalizationTest.txt as the
// conformance oracle without vendoring the file.
var normOracle = []struct {
	form Form
	ref  norm.Form
}{
	{NFC, norm.NFC},
	{NFD, norm.NFD},
	{NFKC, norm.NFKC},
	{NFKD, norm.NFKD},
}

// conformanceScalars returns a deterministic code point sample: the
// decomposition- and casing-heavy ranges in full, plus a strided sweep
// over the rest of the codespace. Shared with the casing conformance
// tests.
func conformanceScalars() []rune {
	var out []rune
	add := func(lo, hi rune) {
		for cp := lo; cp <= hi; cp++ {
			out = append(out, cp)
		}
	}
	add(0x0020, 0x052F) // Latin, Greek, Cyrillic and their combining marks
	add(0x0900, 0x097F) // Devanagari
	add(0x1E00, 0x1FFF) // Latin Additional, Greek Extended
	add(0x2100, 0x214F) // letterlike singletons
	add(0x3040, 0x30FF) // kana
	add(0x1100, 0x11FF) // Hangul jamo
	add(0xAC00, 0xAC2F) // Hangul syllables
	add(0xFB00, 0xFB17) // ligatures
	for cp := rune(0); cp < 0x110000; cp += 1031 {
		if IsScalar(cp) {
			out = append(out, cp)
		}
	}
	return out
}

func TestNormalizeMatchesReference(t *testing.T) {
	for _, cp := range conformanceScalars() {
		in := string(cp)
		for _, o := range normOracle {
			require.Equal(t, o.ref.String(in),
				New(in).Normalize(o.form).String(), "U+%04X under %v", cp, o.form)
		}
	}
}

func TestNormalizeMatchesReferenceRandom(t *testing.T) {
	alphabet := []rune{
		'a', 'e', 'o', 'q', ' ',
		0x0301, 0x0300, 0x0308, 0x030A, 0x0323, 0x0327, 0x0334,
		0x00E9, 0x00C5, 0x212B, 0x1E0A,
		0x1100, 0x1161, 0x11A8, 0xAC00, 0xAC01,
		0x0915, 0x093C, 0x0958,
		0xFB01, 0x2460, 0x3042,
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 400; i++ {
		var sb strings.Builder
		for n := 1 + rng.Intn(8); n > 0; n-- {
			sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		in := sb.String()
		for _, o := range normOracle {
			require.Equal(t, o.ref.String(in),
				New(in).Normalize(o.form).String(), "%q under %v", in, o.form)
		}
	}
}

// normalizationRows mirrors the NormalizationTest.txt row shape: each
// row lists (c1, c2, c3, c4, c5) and must satisfy every column
// invariant the file specifies.
var normalizationRows = []struct {
	c1, c2, c3, c4, c5 string
}{
	{"\u00C5", "\u00C5", "A\u030A", "\u00C5", "A\u030A"},
	{"\u212B", "\u00C5", "A\u030A", "\u00C5", "A\u030A"},
	{"\u1E0A", "\u1E0A", "D\u0307", "\u1E0A", "D\u0307"},
	{"D\u0307\u0323", "\u1E0C\u0307", "D\u0323\u0307", "\u1E0C\u0307", "D\u0323\u0307"},
	{"\u0344", "\u0308\u0301", "\u0308\u0301", "\u0308\u0301", "\u0308\u0301"},
	{"\u0958", "\u0915\u093C", "\u0915\u093C", "\u0915\u093C", "\u0915\u093C"},
	{"\uFB01", "\uFB01", "\uFB01", "fi", "fi"},
	{"\uAC01", "\uAC01", "\u1100\u1161\u11A8", "\uAC01", "\u1100\u1161\u11A8"},
}

func TestNormalizationRows(t *testing.T) {
	for _, row := range normalizationRows {
		for _, c := range []string{row.c1, row.c2, row.c3} {
			require.Equal(t, row.c2, New(c).Normalize(NFC).String(), "NFC of %q row", row.c1)
			require.Equal(t, row.c3, New(c).Normalize(NFD).String(), "NFD of %q row", row.c1)
			require.Equal(t, row.c4, New(c).Normalize(NFKC).String(), "NFKC of %q row", row.c1)
			require.Equal(t, row.c5, New(c).Normalize(NFKD).String(), "NFKD of %q row", row.c1)
		}
		for _, c := range []string{row.c4, row.c5} {
			require.Equal(t, row.c4, New(c).Normalize(NFC).String(), "NFC of %q row", row.c1)
			require.Equal(t, row.c5, New(c).Normalize(NFD).String(), "NFD of %q row", row.c1)
			require.Equal(t, row.c4, New(c).Normalize(NFKC).String(), "NFKC of %q row", row.c1)
			require.Equal(t, row.c5, New(c).Normalize(NFKD).String(), "NFKD of %q row", row.c1)
		}
	}
}
