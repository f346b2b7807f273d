//go:build !linux && !darwin

package aleph

import (
	"fmt"
	"os"
)

// Mapped is a read-only view of a UTF-8 text file. On platforms without
// the mmap loader the whole file is read into memory; the interface is
// identical.
type Mapped struct {
	data []byte
}

// MapFile reads path and validates that the content is well-formed UTF-8.
func MapFile(path string) (*Mapped, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, bad := countValid(data); bad != len(data) {
		return nil, fmt.Errorf("aleph: %s: %w at byte %d", path, ErrInvalidUTF8, bad)
	}
	return &Mapped{data: data}, nil
}

// Bytes returns the content. The slice is invalid after Close.
func (m *Mapped) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.data
}

// Size returns the content length in bytes.
func (m *Mapped) Size() int { return len(m.Bytes()) }

// NewString copies the content into a fresh mutable String.
func (m *Mapped) NewString() *String {
	if m == nil {
		return nil
	}
	return NewBytes(m.data)
}

// Close releases the content.
func (m *Mapped) Close() error {
	if m == nil {
		return nil
	}
	m.data = nil
	return nil
}
