package ucd

// GCB is a Grapheme_Cluster_Break property value (UAX #29).
type GCB uint8

const (
	GCBOther GCB = iota
	GCBControl
	GCBCR
	GCBLF
	GCBExtend
	GCBZWJ
	GCBRegionalIndicator
	GCBPrepend
	GCBSpacingMark
	GCBHangulL
	GCBHangulV
	GCBHangulT
	GCBHangulLV
	GCBHangulLVT
)

var gcbNames = [...]string{
	"Other", "Control", "CR", "LF", "Extend", "ZWJ", "Regional_Indicator",
	"Prepend", "SpacingMark", "L", "V", "T", "LV", "LVT",
}

func (g GCB) String() string {
	if int(g) < len(gcbNames) {
		return gcbNames[g]
	}
	return "Other"
}

// Hangul jamo and syllable ranges (also used by the algorithmic Hangul
// decomposition and composition in norm.go).
const (
	HangulLBase = 0x1100
	HangulVBase = 0x1161
	HangulTBase = 0x11A7
	HangulSBase = 0xAC00

	HangulLCount = 19
	HangulVCount = 21
	HangulTCount = 28
	HangulNCount = HangulVCount * HangulTCount // 588
	HangulSCount = HangulLCount * HangulNCount // 11172

	HangulSEnd = HangulSBase + HangulSCount - 1 // 0xD7A3
)

// cpRange is a closed code point range used by the generated tables below.
type cpRange struct{ Lo, Hi rune }

// gcbPrepend lists code points with Grapheme_Cluster_Break=Prepend.
// Generated from GraphemeBreakProperty.txt.
var gcbPrepend = []cpRange{
	{0x0600, 0x0605}, // ARABIC NUMBER SIGN..ARABIC NUMBER MARK ABOVE
	{0x06DD, 0x06DD}, // ARABIC END OF AYAH
	{0x070F, 0x070F}, // SYRIAC ABBREVIATION MARK
	{0x0890, 0x0891}, // ARABIC POUND MARK ABOVE..ARABIC PIASTRE MARK ABOVE
	{0x08E2, 0x08E2}, // ARABIC DISPUTED END OF AYAH
	{0x0D4E, 0x0D4E}, // MALAYALAM LETTER DOT REPH
	{0x110BD, 0x110BD}, // KAITHI NUMBER SIGN
	{0x110CD, 0x110CD}, // KAITHI NUMBER SIGN ABOVE
	{0x111C2, 0x111C3}, // SHARADA SIGN JIHVAMULIYA..SHARADA SIGN UPADHMANIYA
	{0x1193F, 0x1193F}, // DIVES AKURU PREFIXED NASAL SIGN
	{0x11941, 0x11941}, // DIVES AKURU INITIAL RA
	{0x11A3A, 0x11A3A}, // ZANABAZAR SQUARE CLUSTER-INITIAL LETTER RA
	{0x11A84, 0x11A89}, // SOYOMBO SIGN JIHVAMULIYA..SOYOMBO CLUSTER-INITIAL LETTER SA
	{0x11D46, 0x11D46}, // MASARAM GONDI REPHA
	{0x11F02, 0x11F02}, // KAWI SIGN REPHA
}

// gcbSpacingMarkAdd lists non-Mc code points that are SpacingMark anyway.
var gcbSpacingMarkAdd = []cpRange{
	{0x0E33, 0x0E33}, // THAI CHARACTER SARA AM
	{0x0EB3, 0x0EB3}, // LAO VOWEL SIGN AM
}

// gcbSpacingMarkExclude lists Mc code points excluded from SpacingMark.
// Generated from GraphemeBreakProperty.txt.
var gcbSpacingMarkExclude = []cpRange{
	{0x102B, 0x102C}, // MYANMAR VOWEL SIGN TALL AA..AA
	{0x1038, 0x1038}, // MYANMAR SIGN VISARGA
	{0x1062, 0x1064}, // MYANMAR VOWEL SIGN SGAW KAREN EU..TONE-5
	{0x1067, 0x106D}, // MYANMAR VOWEL SIGN WESTERN PWO KAREN EU..TONE-5
	{0x1083, 0x1083}, // MYANMAR VOWEL SIGN SHAN AA
	{0x1087, 0x108C}, // MYANMAR SIGN SHAN TONE-2..TONE-3
	{0x108F, 0x108F}, // MYANMAR SIGN RUMAI PALAUNG TONE-5
	{0x109A, 0x109C}, // MYANMAR SIGN KHAMTI TONE-1..VOWEL SIGN AITON A
	{0x1A61, 0x1A61}, // TAI THAM VOWEL SIGN A
	{0x1A63, 0x1A64}, // TAI THAM VOWEL SIGN AA..TALL AA
	{0xAA7B, 0xAA7B}, // MYANMAR SIGN PAO KAREN TONE
	{0xAA7D, 0xAA7D}, // MYANMAR SIGN TAI LAING TONE-5
	{0x11720, 0x11721}, // AHOM VOWEL SIGN A..AA
}

// gcbExtendAdd lists code points that are Extend without being
// Mn/Me/Other_Grapheme_Extend: the emoji skin tone modifiers.
var gcbExtendAdd = []cpRange{
	{0x1F3FB, 0x1F3FF}, // EMOJI MODIFIER FITZPATRICK TYPE-1-2..TYPE-6
}

// extendedPictographic is the Extended_Pictographic property from
// emoji-data.txt, used by rule GB11.
var extendedPictographic = []cpRange{
	{0x00A9, 0x00A9}, {0x00AE, 0x00AE},
	{0x203C, 0x203C}, {0x2049, 0x2049},
	{0x2122, 0x2122}, {0x2139, 0x2139},
	{0x2194, 0x2199}, {0x21A9, 0x21AA},
	{0x231A, 0x231B}, {0x2328, 0x2328},
	{0x2388, 0x2388}, {0x23CF, 0x23CF},
	{0x23E9, 0x23F3}, {0x23F8, 0x23FA},
	{0x24C2, 0x24C2},
	{0x25AA, 0x25AB}, {0x25B6, 0x25B6}, {0x25C0, 0x25C0}, {0x25FB, 0x25FE},
	{0x2600, 0x2605}, {0x2607, 0x2612}, {0x2614, 0x2685},
	{0x2690, 0x2705}, {0x2708, 0x2712}, {0x2714, 0x2714}, {0x2716, 0x2716},
	{0x271D, 0x271D}, {0x2721, 0x2721}, {0x2728, 0x2728},
	{0x2733, 0x2734}, {0x2744, 0x2744}, {0x2747, 0x2747},
	{0x274C, 0x274C}, {0x274E, 0x274E}, {0x2753, 0x2755}, {0x2757, 0x2757},
	{0x2763, 0x2767}, {0x2795, 0x2797},
	{0x27A1, 0x27A1}, {0x27B0, 0x27B0}, {0x27BF, 0x27BF},
	{0x2934, 0x2935},
	{0x2B05, 0x2B07}, {0x2B1B, 0x2B1C}, {0x2B50, 0x2B50}, {0x2B55, 0x2B55},
	{0x3030, 0x3030}, {0x303D, 0x303D},
	{0x3297, 0x3297}, {0x3299, 0x3299},
	{0x1F000, 0x1F0FF},
	{0x1F10D, 0x1F10F}, {0x1F12F, 0x1F12F},
	{0x1F16C, 0x1F171}, {0x1F17E, 0x1F17F}, {0x1F18E, 0x1F18E},
	{0x1F191, 0x1F19A}, {0x1F1AD, 0x1F1E5},
	{0x1F201, 0x1F20F}, {0x1F21A, 0x1F21A}, {0x1F22F, 0x1F22F},
	{0x1F232, 0x1F23A}, {0x1F23C, 0x1F23F}, {0x1F249, 0x1F3FA},
	{0x1F400, 0x1F53D}, {0x1F546, 0x1F64F}, {0x1F680, 0x1F6FF},
	{0x1F774, 0x1F77F}, {0x1F7D5, 0x1F7FF},
	{0x1F80C, 0x1F80F}, {0x1F848, 0x1F84F}, {0x1F85A, 0x1F85F},
	{0x1F888, 0x1F88F}, {0x1F8AE, 0x1F8FF},
	{0x1F90C, 0x1F93A}, {0x1F93C, 0x1F945}, {0x1F947, 0x1FAFF},
	{0x1FC00, 0x1FFFD},
}
