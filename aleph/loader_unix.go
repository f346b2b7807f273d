//go:build linux || darwin

package aleph

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mapped is a read-only view of a UTF-8 text file backed by mmap. The
// mapping is validated on open, so Bytes always exposes well-formed
// UTF-8. The view cannot be mutated; copy into a String for editing.
type Mapped struct {
	f    *os.File
	data []byte
}

// MapFile memory-maps path read-only and validates that the content is
// well-formed UTF-8.
func MapFile(path string) (*Mapped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	sz := st.Size()
	if sz == 0 {
		return &Mapped{f: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(sz), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("aleph: mmap %s: %w", path, err)
	}

	if _, bad := countValid(data); bad != len(data) {
		_ = unix.Munmap(data)
		_ = f.Close()
		return nil, fmt.Errorf("aleph: %s: %w at byte %d", path, ErrInvalidUTF8, bad)
	}
	return &Mapped{f: f, data: data}, nil
}

// Bytes returns the mapped content. The slice is invalid after Close.
func (m *Mapped) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.data
}

// Size returns the mapped length in bytes.
func (m *Mapped) Size() int { return len(m.Bytes()) }

// NewString copies the mapped content into a fresh mutable String.
func (m *Mapped) NewString() *String {
	if m == nil {
		return nil
	}
	return NewBytes(m.data)
}

// Close unmaps the view and closes the file.
func (m *Mapped) Close() error {
	if m == nil {
		return nil
	}
	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
		m.data = nil
	}
	if m.f != nil {
		if cerr := m.f.Close(); err == nil {
			err = cerr
		}
		m.f = nil
	}
	return err
}
