package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTenths renders a second count as "M:SS.T" with the tenths digit
// rounded half up. Negative, NaN and infinite inputs clamp to zero; there is
// no error path at this boundary.
func FormatTenths(sec float64) string {
	if math.IsNaN(sec) || math.IsInf(sec, 0) || sec < 0 {
		sec = 0
	}
	tenths := int64(math.Floor(sec*10 + 0.5))
	m := tenths / 600
	rest := tenths % 600
	return fmt.Sprintf("%d:%02d.%d", m, rest/10, rest%10)
}

// ParseTenths parses a "M:SS.T" string back to seconds. Round-tripping a
// value through FormatTenths recovers it to the nearest tenth.
func ParseTenths(s string) (float64, error) {
	colon := strings.IndexByte(s, ':')
	dot := strings.IndexByte(s, '.')
	if colon < 0 || dot < colon {
		return 0, fmt.Errorf("malformed time %q", s)
	}
	m, err := strconv.Atoi(s[:colon])
	if err != nil {
		return 0, fmt.Errorf("malformed minutes in %q: %w", s, err)
	}
	secPart, err := strconv.Atoi(s[colon+1 : dot])
	if err != nil {
		return 0, fmt.Errorf("malformed seconds in %q: %w", s, err)
	}
	tenth, err := strconv.Atoi(s[dot+1:])
	if err != nil {
		return 0, fmt.Errorf("malformed tenths in %q: %w", s, err)
	}
	if m < 0 || secPart < 0 || secPart > 59 || tenth < 0 || tenth > 9 {
		return 0, fmt.Errorf("time out of range %q", s)
	}
	return float64(m)*60 + float64(secPart) + float64(tenth)/10, nil
}

// SpeakDuration renders a whole-second duration as the minutes-and-seconds
// phrase a voice synthesizer would speak. Negative values clamp to zero.
func SpeakDuration(sec int) string {
	if sec < 0 {
		sec = 0
	}
	m, s := sec/60, sec%60
	switch {
	case m == 0:
		return fmt.Sprintf("%d %s", s, plural("second", s))
	case s == 0:
		return fmt.Sprintf("%d %s", m, plural("minute", m))
	default:
		return fmt.Sprintf("%d %s %d %s", m, plural("minute", m), s, plural("second", s))
	}
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
