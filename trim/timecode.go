package trim

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Accepted typed formats: M:SS.D, M:SS, SS.D, SS. Seconds must stay below
// 60 when minutes are present; at most one decimal digit.
var timePattern = regexp.MustCompile(`^(?:(\d+):([0-5]\d)|(\d+))(?:\.(\d))?$`)

var hhmmssPattern = regexp.MustCompile(`^(\d+):([0-5]\d):([0-5]\d)$`)

// ParseTimeString parses a typed time value into seconds. The second
// return is false when the text matches none of the accepted formats;
// callers must leave their state unchanged in that case.
func ParseTimeString(text string) (float64, bool) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, false
	}
	var secs float64
	if m[1] != "" {
		mins, _ := strconv.Atoi(m[1])
		ss, _ := strconv.Atoi(m[2])
		secs = float64(mins*60 + ss)
	} else {
		ss, _ := strconv.Atoi(m[3])
		secs = float64(ss)
	}
	if m[4] != "" {
		d, _ := strconv.Atoi(m[4])
		secs += float64(d) / 10
	}
	return secs, true
}

// FormatTime renders seconds canonically as M:SS.D. Negative input
// renders as the "0:00.0" placeholder.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		return "0:00.0"
	}
	t := int(math.Round(seconds * 10))
	return fmt.Sprintf("%d:%02d.%d", t/600, (t%600)/10, t%10)
}

// FormatHHMMSS renders seconds as hh:mm:ss for the clip-job payload.
// Fractional seconds are truncated.
func FormatHHMMSS(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ss := int64(seconds)
	mm, ss := ss/60, ss%60
	hh, mm := mm/60, mm%60
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
}

// ParseHHMMSS parses a strict hh:mm:ss string into seconds.
func ParseHHMMSS(text string) (float64, bool) {
	m := hhmmssPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, false
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	ss, _ := strconv.Atoi(m[3])
	return float64(hh*3600 + mm*60 + ss), true
}
