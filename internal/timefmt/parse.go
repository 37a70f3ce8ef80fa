package timefmt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/splitcore/splitcore/internal/xtime"
)

// parseRe accepts the canonical grammar plus lenient variants: an optional
// leading sign (ASCII +/- or the U+2212 minus sign Format emits), an
// optional hour group (with or without a leading zero), an optional minute
// group, a mandatory seconds group (1 or 2 digits), and up to 9 trailing
// fractional digits.
var parseRe = regexp.MustCompile(
	`^([+\-−]?)(?:(\d+):)?(?:(\d{1,2}):)?(\d{1,2})(?:[.,](\d{1,9}))?$`,
)

// Parse parses a duration string in the grammar accepted by Format (plus
// lenient variants: a missing leading zero, a missing hour group, and up to
// 9 trailing fractional digits). Parse fails with xtime.ErrInvalidTime on
// any other input.
func Parse(s string) (xtime.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, xtime.ErrInvalidTime
	}
	m := parseRe.FindStringSubmatch(s)
	if m == nil {
		return 0, xtime.ErrInvalidTime
	}

	sign, hourStr, minStr, secStr, fracStr := m[1], m[2], m[3], m[4], m[5]

	// A bare "MM:SS" match with only one group before seconds puts that
	// group in hourStr; shift it to minutes when there's no further group.
	if hourStr != "" && minStr == "" {
		minStr, hourStr = hourStr, ""
	}

	hours, err := atoiOrZero(hourStr)
	if err != nil {
		return 0, xtime.ErrInvalidTime
	}
	minutes, err := atoiOrZero(minStr)
	if err != nil {
		return 0, xtime.ErrInvalidTime
	}
	seconds, err := strconv.Atoi(secStr)
	if err != nil {
		return 0, xtime.ErrInvalidTime
	}

	total := int64(hours)*secPerHour + int64(minutes)*secPerMin + int64(seconds)
	ns := total * nsPerSecond

	if fracStr != "" {
		// Right-pad to 9 digits (nanoseconds), then parse.
		padded := fracStr + strings.Repeat("0", 9-len(fracStr))
		fracNanos, err := strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, xtime.ErrInvalidTime
		}
		ns += fracNanos
	}

	if sign == "-" || sign == "−" {
		ns = -ns
	}
	return xtime.Duration(ns), nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
