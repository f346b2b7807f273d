package aleph

import (
	"bytes"

	"github.com/david-schor/LibAleph/internal/scalar"
)

// repRaw is the common find-then-splice loop behind the replace family.
// fold selects full-case-fold matching; all selects every occurrence.
func (s *String) repRaw(old, new []byte, all, fold bool) *String {
	if s == nil {
		return nil
	}
	if len(old) == 0 {
		return s
	}
	newCPs := assertContent(new)
	off := 0
	for {
		var pos, n int
		if fold {
			pos, n = s.ifindFrom(old, off)
		} else {
			i := bytes.Index(s.buf[off:s.size], old)
			if i < 0 {
				pos = NotFound
			} else {
				pos, n = off+i, len(old)
			}
		}
		if pos == NotFound || n == 0 {
			return s
		}
		s.deleteRaw(pos, n)
		s.insertRaw(pos, new, newCPs)
		off = pos + len(new)
		if !all {
			return s
		}
	}
}

// Rep replaces the first occurrence of old with new.
func (s *String) Rep(old, new *String) *String {
	return s.repRaw(old.Bytes(), new.Bytes(), false, false)
}

// RepString replaces the first occurrence of old with new.
func (s *String) RepString(old, new string) *String {
	return s.repRaw([]byte(old), []byte(new), false, false)
}

// RepAll replaces every occurrence of old with new.
func (s *String) RepAll(old, new *String) *String {
	return s.repRaw(old.Bytes(), new.Bytes(), true, false)
}

// RepAllString replaces every occurrence of old with new.
func (s *String) RepAllString(old, new string) *String {
	return s.repRaw([]byte(old), []byte(new), true, false)
}

// IRep replaces the first occurrence of old with new, matching old by
// full case folding.
func (s *String) IRep(old, new *String) *String {
	return s.repRaw(old.Bytes(), new.Bytes(), false, true)
}

// IRepString is IRep for Go string arguments.
func (s *String) IRepString(old, new string) *String {
	return s.repRaw([]byte(old), []byte(new), false, true)
}

// IRepAll replaces every case-insensitive occurrence of old with new.
func (s *String) IRepAll(old, new *String) *String {
	return s.repRaw(old.Bytes(), new.Bytes(), true, true)
}

// IRepAllString is IRepAll for Go string arguments.
func (s *String) IRepAllString(old, new string) *String {
	return s.repRaw([]byte(old), []byte(new), true, true)
}

func encodeCP(cp rune) []byte {
	assertScalar(cp)
	var enc [scalar.MaxBytes]byte
	w := scalar.Encode(enc[:], cp)
	return enc[:w]
}

// RepCP replaces the first occurrence of code point old with new.
func (s *String) RepCP(old, new rune) *String {
	return s.repRaw(encodeCP(old), encodeCP(new), false, false)
}

// RepAllCP replaces every occurrence of code point old with new.
func (s *String) RepAllCP(old, new rune) *String {
	return s.repRaw(encodeCP(old), encodeCP(new), true, false)
}

// IRepCP replaces the first occurrence of old with new, matching by
// case folding.
func (s *String) IRepCP(old, new rune) *String {
	return s.repRaw(encodeCP(old), encodeCP(new), false, true)
}

// IRepAllCP replaces every case-insensitive occurrence of old with new.
func (s *String) IRepAllCP(old, new rune) *String {
	return s.repRaw(encodeCP(old), encodeCP(new), true, true)
}
