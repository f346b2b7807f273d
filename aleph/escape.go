package aleph

import (
	"fmt"
	"strings"
)

// escapeShorthand maps the C escape shorthands.
var escapeShorthand = map[byte]byte{
	'\b': 'b', '\f': 'f', '\n': 'n', '\r': 'r', '\t': 't', '\v': 'v',
	'\\': '\\', '"': '"',
}

// Escape rewrites s so that control characters, the backslash and the
// double quote appear as C-style escapes; remaining C0 controls and DEL
// become \xHH. The result stays valid UTF-8.
func (s *String) Escape() *String { return s.EscapeExcept("") }

// EscapeExcept is Escape, leaving the bytes listed in except untouched.
func (s *String) EscapeExcept(except string) *String {
	if s == nil || s.size == 0 {
		return s
	}
	var b strings.Builder
	for _, c := range s.buf[:s.size] {
		if strings.IndexByte(except, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		if sh, ok := escapeShorthand[c]; ok {
			b.WriteByte('\\')
			b.WriteByte(sh)
			continue
		}
		if c < 0x20 || c == 0x7F {
			fmt.Fprintf(&b, "\\x%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return s.SetString(b.String())
}

// Unescape reverses Escape, decoding \b \f \n \r \t \v \\ \" and \xHH
// sequences. Unknown escapes pass through with the backslash dropped.
func (s *String) Unescape() *String {
	if s == nil || s.size == 0 {
		return s
	}
	p := s.buf[:s.size]
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c != '\\' || i+1 >= len(p) {
			b.WriteByte(c)
			continue
		}
		i++
		switch p[i] {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case 'x':
			if i+2 < len(p) {
				var v byte
				if _, err := fmt.Sscanf(string(p[i+1:i+3]), "%02X", &v); err == nil {
					b.WriteByte(v)
					i += 2
					continue
				}
			}
			b.WriteByte('x')
		default:
			b.WriteByte(p[i])
		}
	}
	// The unescaped bytes may no longer be valid UTF-8 (an \xHH can
	// produce a stray continuation); fall back to keeping s unchanged
	// in that case.
	out := b.String()
	if _, bad := countValid([]byte(out)); bad != len(out) {
		return s
	}
	return s.SetString(out)
}
