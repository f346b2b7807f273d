package aleph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/david-schor/LibAleph/internal/scalar"
)

// requireInvariants checks the buffer invariants every public operation
// must preserve.
func requireInvariants(t *testing.T, s *String) {
	t.Helper()
	if s == nil {
		return
	}
	require.Equal(t, s.size, scalar.Validate(s.buf[:s.size]), "content must be valid UTF-8")
	require.Equal(t, byte(0), s.buf[s.size], "terminator must be present")
	require.Less(t, s.size, len(s.buf), "capacity must exceed byte length")
	n, _ := countValid(s.buf[:s.size])
	require.Equal(t, n, s.n, "cached code point count must match")
	require.GreaterOrEqual(t, len(s.buf), MinCapacity)
	require.Zero(t, len(s.buf)&(len(s.buf)-1), "capacity must be a power of two")
}

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		in       string
		size, n  int
	}{
		{"", 0, 0},
		{"hello", 5, 5},
		{"Café", 5, 4},
		{"καλημέρα", 16, 8},
		{"日本語", 9, 3},
		{"\U0001F600", 4, 1},
	}
	for _, tt := range tests {
		s := New(tt.in)
		requireInvariants(t, s)
		assert.Equal(t, tt.size, s.Size(), "%q", tt.in)
		assert.Equal(t, tt.n, s.Len(), "%q", tt.in)
		assert.Equal(t, tt.in, s.String())
	}
}

func TestScenarioCafe(t *testing.T) {
	s := New("Café")
	require.Equal(t, 4, s.Len())
	require.Equal(t, 5, s.Size())

	require.Equal(t, "CAFÉ", s.Dup().ToUpper().String())

	nfd := s.Dup().Normalize(NFD)
	require.Equal(t, "Cafe\u0301", nfd.String())
	require.Equal(t, 5, nfd.Len())
	require.Equal(t, 6, nfd.Size())
}

func TestNewValidate(t *testing.T) {
	s, err := NewValidate("ok é")
	require.NoError(t, err)
	require.Equal(t, "ok é", s.String())

	_, err = NewValidate(string([]byte{'a', 0xC0, 0x80}))
	require.ErrorIs(t, err, ErrInvalidUTF8)

	require.Panics(t, func() { New(string([]byte{0xFF})) })
}

func TestNewCP(t *testing.T) {
	s := NewCP('é', 3)
	require.Equal(t, "ééé", s.String())
	require.Equal(t, 3, s.Len())

	require.Panics(t, func() { NewCP(0, 1) })
	require.Panics(t, func() { NewCP(0xD800, 1) })
}

func TestNewLong(t *testing.T) {
	require.Equal(t, "-42", NewLong(-42).String())
	require.Equal(t, "18446744073709551615", NewULong(1<<64-1).String())
}

func TestDup(t *testing.T) {
	a := New("shared?")
	b := a.Dup()
	b.CatString(" no")
	require.Equal(t, "shared?", a.String())
	require.Equal(t, "shared? no", b.String())
}

func TestCStrTermination(t *testing.T) {
	s := New("abc")
	c := s.CStr()
	require.Len(t, c, 4)
	require.Equal(t, byte(0), c[3])
}

func TestReserveGrowth(t *testing.T) {
	s := New("")
	require.Equal(t, MinCapacity, s.Mem())

	s.Reserve(100)
	require.Equal(t, 128, s.Mem())
	requireInvariants(t, s)

	// Reserve never shrinks.
	s.Reserve(10)
	require.Equal(t, 128, s.Mem())

	// Ensure is an alias.
	s.Ensure(300)
	require.Equal(t, 512, s.Mem())
}

func TestGrowthPreservesContent(t *testing.T) {
	s := New("seed")
	for i := 0; i < 200; i++ {
		s.CatString("é")
	}
	requireInvariants(t, s)
	require.Equal(t, 4+200*2, s.Size())
	require.Equal(t, 4+200, s.Len())
	require.Equal(t, "seed", s.String()[:4])
}

func TestSync(t *testing.T) {
	s := New("abcdef")
	// Overwrite through the raw buffer, shortening the content.
	b := s.CStr()
	b[3] = 0
	require.NoError(t, s.Sync())
	require.Equal(t, 3, s.Size())
	require.Equal(t, 3, s.Len())
	require.Equal(t, "abc", s.String())
	requireInvariants(t, s)

	// A corrupting write is reported and leaves metadata untouched.
	s2 := New("aaaa")
	s2.CStr()[1] = 0xFF
	err := s2.Sync()
	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.Equal(t, 4, s2.Size())
}

func TestClearAndRelease(t *testing.T) {
	s := New("content")
	s.Clear()
	require.Zero(t, s.Size())
	require.Zero(t, s.Len())
	requireInvariants(t, s)

	s.Release()
	require.Zero(t, s.Mem())
	require.Nil(t, s.Bytes())
}

func TestNilReceiverPropagation(t *testing.T) {
	var s *String
	require.Nil(t, s.Cat(New("x")))
	require.Nil(t, s.ToUpper())
	require.Nil(t, s.Normalize(NFC))
	require.Nil(t, s.Dup())
	require.Zero(t, s.Size())
	require.Zero(t, s.Len())
	require.Zero(t, s.GLen())
	require.True(t, s.IsEmpty())
	require.Equal(t, "", s.String())

	// Chains propagate nil without intermediate checks.
	require.Nil(t, s.CatString("a").ToLower().Trim())
}

func TestUnicodeVersionReported(t *testing.T) {
	require.NotEmpty(t, UnicodeVersion)
}

func TestValidateMethod(t *testing.T) {
	s := New("fine")
	require.Same(t, s, s.Validate())

	s.CStr()[0] = 0xFF
	require.Nil(t, s.Validate())
}
