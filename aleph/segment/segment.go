// Package segment implements extended grapheme cluster segmentation as
// specified by UAX #29.
//
// The rules are evaluated pairwise over adjacent code points with two
// pieces of carried context: the parity of the current regional-indicator
// run (GB12/GB13) and the Extended_Pictographic ZWJ chain (GB11). Forward
// walks carry that context incrementally; the random-access IsBoundary
// recovers it by scanning backward, which the rules permit.
package segment

import (
	"bufio"

	"github.com/david-schor/LibAleph/aleph/ucd"
	"github.com/david-schor/LibAleph/internal/scalar"
)

// classOf decodes the first code point of p, returning its break class,
// its Extended_Pictographic flag, and its width in bytes. Malformed bytes
// are classed as a one-byte Other so that walking always advances.
func classOf(p []byte) (cls ucd.GCB, pict bool, width int) {
	cp, w := scalar.Decode(p)
	if w == 0 {
		return ucd.GCBOther, false, 1
	}
	row := ucd.Lookup(cp)
	return row.GCB, row.ExtPict(), w
}

func isControl(c ucd.GCB) bool {
	return c == ucd.GCBControl || c == ucd.GCBCR || c == ucd.GCBLF
}

// hangulJoin covers GB6, GB7 and GB8.
func hangulJoin(l, r ucd.GCB) bool {
	switch l {
	case ucd.GCBHangulL:
		return r == ucd.GCBHangulL || r == ucd.GCBHangulV ||
			r == ucd.GCBHangulLV || r == ucd.GCBHangulLVT
	case ucd.GCBHangulLV, ucd.GCBHangulV:
		return r == ucd.GCBHangulV || r == ucd.GCBHangulT
	case ucd.GCBHangulLVT, ucd.GCBHangulT:
		return r == ucd.GCBHangulT
	}
	return false
}

// NextBoundary returns the byte offset of the first grapheme cluster
// boundary after i. i must itself lie on a cluster boundary (0 always
// is one). NextBoundary(p, i) for i >= len(p) is len(p).
func NextBoundary(p []byte, i int) int {
	if i >= len(p) {
		return len(p)
	}

	// GB1: the first code point always joins the cluster.
	cur, curPict, w := classOf(p[i:])
	pos := i + w

	// lastEx tracks the most recent class excluding Extend (the GB11
	// lookback); lastLastEx the one before that. riRun counts the
	// regional indicators ending at the previous code point.
	var lastExPict, lastLastExPict bool
	riRun := 0

	for pos < len(p) {
		last, lastPict := cur, curPict
		if last != ucd.GCBExtend {
			lastLastExPict = lastExPict
			lastExPict = lastPict
		}
		if last == ucd.GCBRegionalIndicator {
			riRun++
		} else {
			riRun = 0
		}

		cur, curPict, w = classOf(p[pos:])

		switch {
		// GB3: CR x LF
		case last == ucd.GCBCR && cur == ucd.GCBLF:

		// GB4, GB5: break around controls
		case isControl(last) || isControl(cur):
			return pos

		// GB6, GB7, GB8: Hangul syllables
		case hangulJoin(last, cur):

		// GB9, GB9a: extenders, ZWJ and spacing marks attach
		case cur == ucd.GCBExtend || cur == ucd.GCBZWJ || cur == ucd.GCBSpacingMark:

		// GB9b: prepend attaches forward
		case last == ucd.GCBPrepend:

		// GB11: ExtPict Extend* ZWJ x ExtPict
		case last == ucd.GCBZWJ && curPict && lastLastExPict:

		// GB12, GB13: RI x RI only in odd-length runs
		case last == ucd.GCBRegionalIndicator && cur == ucd.GCBRegionalIndicator && riRun%2 == 1:

		// GB999
		default:
			return pos
		}
		pos += w
	}
	// GB2
	return len(p)
}

// IsBoundary reports whether a grapheme cluster boundary exists at byte
// offset k. k must lie on a code point boundary; 0 and len(p) are always
// boundaries.
func IsBoundary(p []byte, k int) bool {
	if k <= 0 || k >= len(p) {
		return true
	}
	r, rPict, _ := classOf(p[k:])
	lStart := scalar.PrevBoundary(p, k)
	l, _, _ := classOf(p[lStart:])

	switch {
	case l == ucd.GCBCR && r == ucd.GCBLF:
		return false
	case isControl(l) || isControl(r):
		return true
	case hangulJoin(l, r):
		return false
	case r == ucd.GCBExtend || r == ucd.GCBZWJ || r == ucd.GCBSpacingMark:
		return false
	case l == ucd.GCBPrepend:
		return false
	case l == ucd.GCBZWJ && rPict:
		return !pictChainOpen(p, lStart)
	case l == ucd.GCBRegionalIndicator && r == ucd.GCBRegionalIndicator:
		return !riRunOdd(p, lStart)
	}
	return true
}

// riRunOdd reports whether the run of regional indicators ending with the
// code point at lStart has odd length.
func riRunOdd(p []byte, lStart int) bool {
	n := 0
	for i := lStart; ; {
		cls, _, _ := classOf(p[i:])
		if cls != ucd.GCBRegionalIndicator {
			break
		}
		n++
		if i == 0 {
			break
		}
		i = scalar.PrevBoundary(p, i)
	}
	return n%2 == 1
}

// pictChainOpen reports whether the code points before the ZWJ at offset
// zwj form Extend* preceded by Extended_Pictographic.
func pictChainOpen(p []byte, zwj int) bool {
	i := zwj
	for i > 0 {
		i = scalar.PrevBoundary(p, i)
		cls, pict, _ := classOf(p[i:])
		if cls == ucd.GCBExtend {
			continue
		}
		return pict
	}
	return false
}

// PrevBoundary returns the byte offset of the last grapheme cluster
// boundary before i; the cluster ending at i starts there. i must lie on
// a cluster boundary. PrevBoundary(p, i) for i <= 0 is 0.
func PrevBoundary(p []byte, i int) int {
	if i <= 0 {
		return 0
	}
	if i > len(p) {
		i = len(p)
	}
	j := scalar.PrevBoundary(p, i)
	for j > 0 && !IsBoundary(p, j) {
		j = scalar.PrevBoundary(p, j)
	}
	return j
}

// Count returns the number of extended grapheme clusters in p.
func Count(p []byte) int {
	n := 0
	for i := 0; i < len(p); i = NextBoundary(p, i) {
		n++
	}
	return n
}

// SplitFunc is a bufio.SplitFunc that tokenizes extended grapheme
// clusters, for use with bufio.Scanner.
func SplitFunc(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	end := NextBoundary(data, 0)
	if end == len(data) && !atEOF {
		// The cluster may continue past the window; request more input.
		return 0, nil, nil
	}
	return end, data[:end], nil
}

var _ bufio.SplitFunc = SplitFunc
