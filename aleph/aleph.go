package aleph

import (
	"fmt"
	"strconv"

	"github.com/david-schor/LibAleph/aleph/ucd"
	"github.com/david-schor/LibAleph/internal/scalar"
)

// UnicodeVersion reports the Unicode version the property tables were
// built against. Tables and code always agree: both come from the same
// toolchain and x/text build.
var UnicodeVersion = ucd.Version()

// String is an owned, mutable UTF-8 buffer with cached length metadata.
//
// The zero value is not usable; construct with New and friends. The
// buffer invariants: the size-byte prefix of buf is valid UTF-8,
// buf[size] == 0, n is the code point count of that prefix, and len(buf)
// is a power of two >= MinCapacity.
type String struct {
	buf  []byte
	size int // byte length, excluding the NUL terminator
	n    int // code point length
}

// countValid returns the code point count of b and the index of the
// first malformed byte (len(b) when well-formed).
func countValid(b []byte) (n, bad int) {
	i := 0
	for i < len(b) {
		if b[i] < 0x80 {
			i++
			n++
			continue
		}
		_, w := scalar.Decode(b[i:])
		if w == 0 {
			return n, i
		}
		i += w
		n++
	}
	return n, len(b)
}

func newWithCapacity(bytes int) *String {
	c := MinCapacity
	for c < bytes+1 {
		c <<= 1
	}
	return &String{buf: make([]byte, c)}
}

// New creates a String from s. s must be valid UTF-8; malformed input is
// a contract violation. Use NewValidate for untrusted input.
func New(s string) *String { return NewBytes([]byte(s)) }

// NewBytes creates a String from a copy of b. b must be valid UTF-8;
// malformed input is a contract violation.
func NewBytes(b []byte) *String {
	n, bad := countValid(b)
	if bad != len(b) {
		panic(fmt.Sprintf("aleph: NewBytes: invalid UTF-8 at byte %d", bad))
	}
	s := newWithCapacity(len(b))
	copy(s.buf, b)
	s.size = len(b)
	s.n = n
	return s
}

// NewValidate creates a String from s, reporting ErrInvalidUTF8 (with the
// offending byte offset) instead of asserting.
func NewValidate(s string) (*String, error) {
	b := []byte(s)
	n, bad := countValid(b)
	if bad != len(b) {
		return nil, fmt.Errorf("%w at byte %d", ErrInvalidUTF8, bad)
	}
	str := newWithCapacity(len(b))
	copy(str.buf, b)
	str.size = len(b)
	str.n = n
	return str, nil
}

// NewSize creates an empty String with room for at least size bytes.
func NewSize(size int) *String { return newWithCapacity(size) }

// NewCP creates a String holding codepoint repeated repeat times.
// codepoint must be a nonzero scalar value.
func NewCP(codepoint rune, repeat int) *String {
	if codepoint == 0 {
		panic("aleph: NewCP of U+0000; use NewSize for zero-filled buffers")
	}
	assertScalar(codepoint)
	var enc [scalar.MaxBytes]byte
	w := scalar.Encode(enc[:], codepoint)
	s := newWithCapacity(w * repeat)
	for i := 0; i < repeat; i++ {
		copy(s.buf[i*w:], enc[:w])
	}
	s.size = w * repeat
	s.n = repeat
	return s
}

// NewLong creates a String holding the decimal representation of val.
func NewLong(val int64) *String { return New(strconv.FormatInt(val, 10)) }

// NewULong creates a String holding the decimal representation of val.
func NewULong(val uint64) *String { return New(strconv.FormatUint(val, 10)) }

// Dup creates an independent copy of s.
func (s *String) Dup() *String {
	if s == nil {
		return nil
	}
	d := &String{buf: make([]byte, len(s.buf)), size: s.size, n: s.n}
	copy(d.buf, s.buf)
	return d
}

// Size returns the byte length, excluding the terminator.
func (s *String) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Len returns the code point length.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Mem returns the allocated capacity in bytes.
func (s *String) Mem() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// IsEmpty reports whether s holds no bytes.
func (s *String) IsEmpty() bool { return s.Size() == 0 }

// Bytes returns the content as a view into the buffer, without the
// terminator. The view is invalidated by any mutation.
func (s *String) Bytes() []byte {
	if s == nil || s.buf == nil {
		return nil
	}
	return s.buf[:s.size]
}

// CStr returns the content including the NUL terminator, for handoff to
// interfaces expecting C-style UTF-8.
func (s *String) CStr() []byte {
	if s == nil || s.buf == nil {
		return nil
	}
	return s.buf[:s.size+1]
}

// String returns the content as a Go string.
func (s *String) String() string {
	if s == nil {
		return ""
	}
	return string(s.buf[:s.size])
}

// Equal reports whether s and t hold identical bytes.
func (s *String) Equal(t *String) bool { return string(s.Bytes()) == string(t.Bytes()) }

// EqualString reports whether s holds exactly t.
func (s *String) EqualString(t string) bool { return s.String() == t }

func assertScalar(cp rune) {
	if !scalar.IsScalar(cp) {
		panic(panicOutOfCodespace)
	}
}

// assertBoundary panics unless off is a code point boundary of s.
func (s *String) assertBoundary(off int) {
	if off < 0 || off > s.size {
		panic(panicOutOfRange)
	}
	if off < s.size && scalar.IsContinuation(s.buf[off]) {
		panic(panicNotOnBoundary)
	}
}
