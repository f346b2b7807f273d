package segment

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/david-schor/LibAleph/internal/scalar"
)

// graphemeBreakSamples is an excerpt of GraphemeBreakTest.txt in the
// file's standard notation: code points in hex, "÷" where a boundary is
// required, "×" where one is forbidden. The excerpt exercises every
// rule of the table (GB3 through GB13 plus GB999).
var graphemeBreakSamples = []string{
	"÷ 0020 ÷ 0020 ÷",               // GB999
	"÷ 000D × 000A ÷",               // GB3
	"÷ 0061 ÷ 000A ÷ 0062 ÷",        // GB4/GB5
	"÷ 0001 ÷ 0061 ÷",               // GB4 control
	"÷ 0061 × 0308 ÷ 0062 ÷",        // GB9
	"÷ 0061 × 0301 × 0301 ÷ 0062 ÷", // GB9 stacked
	"÷ 0061 × 0903 ÷ 0062 ÷",        // GB9a SpacingMark
	"÷ 0600 × 0062 ÷",               // GB9b Prepend
	"÷ 0600 ÷ 000D ÷",               // GB5 beats GB9b
	"÷ 0D4E × 0061 ÷",               // GB9b Malayalam repha
	"÷ 1100 × 1160 × 11A8 ÷",        // GB6/GB7/GB8
	"÷ 1100 × 1100 ÷",               // GB6 L x L
	"÷ AC00 × 11A8 ÷ 1100 ÷",        // GB7 LV x T, then break
	"÷ AC01 ÷ AC00 ÷",               // LVT then LV split
	"÷ 1160 × 1160 ÷",               // GB7 V x V
	"÷ 0061 × 200C ÷ 0062 ÷",        // ZWNJ extends
	"÷ 0061 × 200D ÷ 1F600 ÷",       // GB9 ZWJ, no GB11 without a pictograph base
	"÷ 1F600 × 200D × 1F600 ÷",      // GB11
	"÷ 2764 × FE0F × 200D × 1F525 ÷", // GB11 through Extend
	"÷ 1F476 × 1F3FF ÷ 1F476 ÷",     // emoji modifier is Extend
	"÷ 1F1E6 × 1F1E7 ÷ 1F1E8 ÷",     // GB12/GB13 odd run
	"÷ 1F1E6 × 1F1E7 ÷ 1F1E8 × 1F1E9 ÷",
	"÷ 0061 ÷ 1F1E6 × 1F1E7 ÷ 1F1E8 ÷",
	"÷ 000D ÷ 0308 ÷ 0061 ÷", // GB4, stray mark, GB999
}

// parseBreakSample decodes one sample line into its text and the byte
// offsets of the required boundaries.
func parseBreakSample(t *testing.T, line string) (text []byte, breaks []int) {
	t.Helper()
	for i, f := range strings.Fields(line) {
		switch f {
		case "÷":
			breaks = append(breaks, len(text))
		case "×":
		default:
			v, err := strconv.ParseUint(f, 16, 32)
			require.NoError(t, err, "field %d of %q", i, line)
			text = scalar.AppendEncode(text, rune(v))
		}
	}
	return text, breaks
}

func TestGraphemeBreakSamples(t *testing.T) {
	for _, line := range graphemeBreakSamples {
		text, breaks := parseBreakSample(t, line)

		// The random-access boundary check must agree at every code
		// point boundary of the sample.
		want := make(map[int]bool, len(breaks))
		for _, b := range breaks {
			want[b] = true
		}
		for i := 0; ; {
			require.Equal(t, want[i], IsBoundary(text, i), "offset %d of %q", i, line)
			if i >= len(text) {
				break
			}
			_, w := scalar.Decode(text[i:])
			i += w
		}

		// The forward walker must land on exactly the marked offsets.
		got := []int{0}
		for i := 0; i < len(text); {
			i = NextBoundary(text, i)
			got = append(got, i)
		}
		require.Equal(t, breaks, got, "%q", line)
	}
}
