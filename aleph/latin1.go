package aleph

import (
	"golang.org/x/text/encoding/charmap"
)

// NewFromLatin1 creates a String by transcoding ISO 8859-1 bytes to
// UTF-8. Every byte sequence is valid Latin-1, so this cannot fail.
func NewFromLatin1(b []byte) *String {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// Latin-1 decoding is total; an error here is a bug.
		panic(err)
	}
	return NewBytes(out)
}

// Latin1 returns the content transcoded to ISO 8859-1, with ok false
// when a code point falls outside the Latin-1 repertoire.
func (s *String) Latin1() (out []byte, ok bool) {
	if s == nil {
		return nil, true
	}
	enc, err := charmap.ISO8859_1.NewEncoder().Bytes(s.Bytes())
	if err != nil {
		return nil, false
	}
	return enc, true
}
