package aleph

import (
	"bytes"
	"fmt"

	"github.com/david-schor/LibAleph/internal/scalar"
)

// MinCapacity is the smallest buffer a String ever allocates. Capacities
// are powers of two and grow by doubling.
const MinCapacity = 16

// Reserve ensures capacity for at least size content bytes plus the
// terminator, growing to the next power of two when needed. Shrinking
// never happens.
func (s *String) Reserve(size int) *String {
	if s == nil {
		return nil
	}
	if size+1 <= len(s.buf) {
		return s
	}
	c := len(s.buf)
	if c < MinCapacity {
		c = MinCapacity
	}
	for c < size+1 {
		c <<= 1
	}
	nb := make([]byte, c)
	copy(nb, s.buf)
	s.buf = nb
	return s
}

// Ensure is Reserve under its historical name; both guarantee
// capacity >= size+1.
func (s *String) Ensure(size int) *String { return s.Reserve(size) }

// Sync recomputes the cached metadata after the buffer was written
// through Bytes or CStr directly: the byte length is taken from the
// first NUL, the code point length from a decode scan. It reports
// ErrInvalidUTF8 when the write corrupted the buffer; the metadata is
// left unchanged in that case.
func (s *String) Sync() error {
	if s == nil {
		return nil
	}
	end := bytes.IndexByte(s.buf, 0)
	if end < 0 {
		// No terminator in the whole buffer: treat as full and invalid.
		return fmt.Errorf("%w: missing terminator", ErrInvalidUTF8)
	}
	n, bad := countValid(s.buf[:end])
	if bad != end {
		return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, bad)
	}
	s.size = end
	s.n = n
	return nil
}

// Clear empties s without releasing storage.
func (s *String) Clear() *String {
	if s == nil {
		return nil
	}
	s.size = 0
	s.n = 0
	s.buf[0] = 0
	return s
}

// Release drops the storage. The String must not be used afterwards;
// Release exists for symmetry with Pool and for promptly returning large
// buffers to the allocator.
func (s *String) Release() {
	if s == nil {
		return
	}
	s.buf = nil
	s.size = 0
	s.n = 0
}

// Validate checks the buffer invariant and returns s, or nil when the
// content is not valid UTF-8. Useful after a sequence of direct writes.
func (s *String) Validate() *String {
	if s == nil {
		return nil
	}
	if scalar.Validate(s.buf[:s.size]) != s.size {
		return nil
	}
	return s
}

// terminate writes the NUL terminator and refreshes nothing else.
func (s *String) terminate() { s.buf[s.size] = 0 }
