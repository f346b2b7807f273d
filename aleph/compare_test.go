package aleph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmp(t *testing.T) {
	assert.Zero(t, New("abc").Cmp(New("abc")))
	assert.Equal(t, -1, New("abc").Cmp(New("abd")))
	assert.Equal(t, 1, New("b").Cmp(New("a")))
	assert.Equal(t, -1, New("ab").CmpString("abc"))
}

func TestIcmp(t *testing.T) {
	assert.Zero(t, New("HeLLo").IcmpString("hello"))
	assert.Zero(t, New("ΟΔΥΣΣΕΥΣ").IcmpString("οδυσσευς"))
	assert.NotZero(t, New("ΟΔΥΣΣΕΥΣ").IcmpString("οδυσσευ"))
}

func TestIcmpExpansions(t *testing.T) {
	// Scenario: ß folds to ss.
	assert.Zero(t, New("ß").IcmpString("SS"))
	assert.Zero(t, New("ß").IcmpString("Ss"))
	assert.Zero(t, New("ß").IcmpString("ss"))
	assert.Zero(t, New("straße").IcmpString("STRASSE"))
	assert.NotZero(t, New("straße").IcmpString("STRASS"))

	// Final and medial sigmas fold together.
	assert.Zero(t, New("ΟΔΥΣΣΕΥΣ").IcmpString("οδυσσευς"))
	assert.Zero(t, New("σ").IcmpString("ς"))

	// Simple folding does not expand ß.
	assert.NotZero(t, New("ß").Dup().IcmpSimple(New("ss")))
	assert.Zero(t, New("HELLO").IcmpSimple(New("hello")))
}

func TestIcmpOrdering(t *testing.T) {
	assert.Equal(t, -1, New("a").IcmpString("b"))
	assert.Equal(t, 1, New("b").IcmpString("A"))
	assert.Equal(t, -1, New("ab").IcmpString("abc"))
	assert.Equal(t, 1, New("abc").IcmpString("AB"))
}

func TestIcmpN(t *testing.T) {
	assert.Zero(t, New("HELLO!x").IcmpNString("hello?y", 5))
	assert.NotZero(t, New("HELLO!x").IcmpNString("hello?y", 6))
	// The fold of ß counts as two code points.
	assert.Zero(t, New("ßx").IcmpNString("SSy", 2))
}

func TestFind(t *testing.T) {
	s := New("aé€ needle €éa")
	require.Equal(t, 4, s.FindString("needle"))
	require.Equal(t, 7, s.FindOffsetString("needle")) // é and € add 3 extra bytes
	require.Equal(t, NotFound, s.FindString("missing"))
	require.Equal(t, 2, s.FindCP('€'))
	require.Equal(t, 0, s.FindString(""))

	require.Equal(t, 11, s.FindFrom(New("€"), 3))
}

func TestIFind(t *testing.T) {
	s := New("Der Fluß war STILL")
	require.Equal(t, 4, s.IFindString("fluss"))
	require.Equal(t, NotFound, s.FindString("fluss"))
	require.Equal(t, 13, s.IFindString("still"))
	require.Equal(t, NotFound, s.IFindString("laut"))

	// The match may not split a fold expansion: "s" alone must not
	// match inside ß's "ss".
	require.Equal(t, NotFound, New("ß").IFindString("s"))
	require.Equal(t, 0, New("ß").IFindString("ss"))
}

func TestIFindOffset(t *testing.T) {
	s := New("xΣy")
	require.Equal(t, 1, s.IFindOffsetString("σ"))
	require.Equal(t, 1, s.IFindOffset(New("ς")))
}

func TestStartsEndsWith(t *testing.T) {
	s := New("café com leite")
	assert.True(t, s.StartsWithString("café"))
	assert.False(t, s.StartsWithString("afé"))
	assert.True(t, s.EndsWithString("leite"))
	assert.False(t, s.EndsWithString("com"))
	assert.True(t, s.ContainsString(" com "))
	assert.True(t, s.StartsWith(New("caf")))
	assert.True(t, s.EndsWith(New("e")))
}

func TestRep(t *testing.T) {
	s := New("one two two three")
	s.RepString("two", "2")
	require.Equal(t, "one 2 two three", s.String())
	s.RepAllString("t", "T")
	require.Equal(t, "one 2 Two Three", s.String())
	requireInvariants(t, s)

	// Replacement may change lengths in both directions.
	s2 := New("aaa").RepAllString("a", "éé")
	require.Equal(t, "éééééé", s2.String())
	require.Equal(t, 6, s2.Len())

	// No occurrence: untouched.
	s3 := New("abc").RepString("zz", "yy")
	require.Equal(t, "abc", s3.String())
}

func TestRepCP(t *testing.T) {
	s := New("a.b.c")
	s.RepAllCP('.', '·')
	require.Equal(t, "a·b·c", s.String())

	s2 := New("a.b.c").RepCP('.', '-')
	require.Equal(t, "a-b.c", s2.String())
}

func TestIRep(t *testing.T) {
	s := New("Der Fluß und der FLUSS")
	s.IRepAllString("fluss", "Bach")
	require.Equal(t, "Der Bach und der Bach", s.String())
	requireInvariants(t, s)

	s2 := New("ΣΙΓΜΑ σιγμα")
	s2.IRepString("σιγμα", "X")
	require.Equal(t, "X σιγμα", s2.String())

	s3 := New("nothing here").IRepAllString("absent", "x")
	require.Equal(t, "nothing here", s3.String())
}

func BenchmarkIcmp(b *testing.B) {
	x := New("Der Fluß war still, ΟΔΥΣΣΕΥΣ kam vorbei")
	y := New("DER FLUSS WAR STILL, οδυσσευς KAM VORBEI")
	for i := 0; i < b.N; i++ {
		x.Icmp(y)
	}
}
