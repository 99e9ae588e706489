package summary

import (
	"math"
	"regexp"
	"strconv"
)

var aspectRatios = map[string]string{
	"1.778": "16:9",
	"1.333": "4:3",
	"2.35":  "2.35:1",
	"2.40":  "2.40:1",
	"2.000": "18:9",
	"1.250": "5:4",
	"2.333": "21:9",
	"1.500": "3:2",
	"1.600": "16:10",
	"8:5":   "16:10",
	"1.850": "37:20",
	"1.900": "19:10",
	"2.550": "17:10",
	"2.760": "32:11",
	"2.800": "7:2",
	"2.840": "71:25",
	"1.667": "5:3",
	"5:3":   "5:3",
	"0.562": "9:16",
}

// codecPrefix is unanchored; every occurrence is removed, not just a leading
// one (V_MPEG4/ISO/AVC -> MPEG4/ISO/AVC).
var codecPrefix = regexp.MustCompile(`[VA]_`)

// AspectRatio maps mediainfo's decimal DisplayAspectRatio to the usual ratio
// label. Unknown values are returned unchanged.
func AspectRatio(raw string) string {
	if label, ok := aspectRatios[raw]; ok {
		return label
	}
	return raw
}

// BitRate renders a bit/s value as rounded kb/s. Values that do not parse as
// a number are returned unchanged.
func BitRate(raw string) string {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	kbps := math.Round(value / 1000)
	return strconv.FormatFloat(kbps, 'f', -1, 64) + " kb/s"
}

func StripCodecPrefix(id string) string {
	return codecPrefix.ReplaceAllString(id, "")
}
