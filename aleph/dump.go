package aleph

import (
	"fmt"
	"io"

	"github.com/david-schor/LibAleph/internal/scalar"
)

// Dump writes a diagnostic rendering of s to w: the header metadata
// followed by one line per code point with offset, encoding bytes and
// scalar value. Intended for debugging, not for machine consumption.
func (s *String) Dump(w io.Writer) {
	if s == nil {
		fmt.Fprintln(w, "aleph.String(nil)")
		return
	}
	fmt.Fprintf(w, "aleph.String{size=%d len=%d glen=%d mem=%d}\n",
		s.size, s.n, s.GLen(), len(s.buf))
	p := s.buf[:s.size]
	for i := 0; i < len(p); {
		cp, n := scalar.Decode(p[i:])
		if n == 0 {
			fmt.Fprintf(w, "  %4d: %02X    <invalid>\n", i, p[i])
			i++
			continue
		}
		fmt.Fprintf(w, "  %4d: %-12s U+%04X %q\n", i, fmt.Sprintf("% X", p[i:i+n]), cp, cp)
		i += n
	}
}
