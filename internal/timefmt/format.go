package timefmt

import (
	"fmt"
	"strings"

	"github.com/splitcore/splitcore/internal/xtime"
)

const (
	nsPerSecond = int64(1_000_000_000)
	secPerMin   = int64(60)
	secPerHour  = int64(3600)
)

// split decomposes a duration into a sign, whole seconds, and the
// nanosecond remainder, truncating toward zero (never rounding away from
// the direction of progress).
func split(d xtime.Duration) (negative bool, totalSeconds int64, nanos int64) {
	ns := int64(d)
	negative = ns < 0
	if negative {
		ns = -ns
	}
	return negative, ns / nsPerSecond, ns % nsPerSecond
}

// FormatMain renders the integer (H:MM:SS) part of a duration according to
// df. A nil duration renders as an em-dash.
func FormatMain(d *xtime.Duration, df DigitsFormat) string {
	if d == nil {
		return dash
	}
	negative, totalSeconds, _ := split(*d)

	seconds := totalSeconds % secPerMin
	minutes := (totalSeconds % secPerHour) / secPerMin
	hours := totalSeconds / secPerHour

	var b strings.Builder
	if negative {
		b.WriteString(minus)
	}

	switch {
	case df == DoubleDigitHours:
		fmt.Fprintf(&b, "%02d%s%02d%s%02d", hours, separator, minutes, separator, seconds)
	case hours > 0 || df == SingleDigitHours:
		fmt.Fprintf(&b, "%d%s%02d%s%02d", hours, separator, minutes, separator, seconds)
	case df == DoubleDigitMinutes:
		fmt.Fprintf(&b, "%02d%s%02d", minutes, separator, seconds)
	case minutes > 0 || df == SingleDigitMinutes:
		fmt.Fprintf(&b, "%d%s%02d", minutes, separator, seconds)
	case df == DoubleDigitSeconds:
		fmt.Fprintf(&b, "%02d", seconds)
	default:
		fmt.Fprintf(&b, "%d", seconds)
	}
	return b.String()
}

// FormatFraction renders the fractional part (including the leading dot)
// of a duration according to the accuracy. A nil duration or Seconds
// accuracy renders as an empty string.
func FormatFraction(d *xtime.Duration, acc Accuracy) string {
	if d == nil || acc == Seconds {
		return ""
	}
	_, _, nanos := split(*d)
	switch acc {
	case Tenths:
		return fmt.Sprintf(".%d", nanos/100_000_000)
	case Hundredths:
		return fmt.Sprintf(".%02d", nanos/10_000_000)
	case Milliseconds:
		return fmt.Sprintf(".%03d", nanos/1_000_000)
	default:
		return ""
	}
}

// Format renders a full duration string combining FormatMain and
// FormatFraction, e.g. "−1:02:03.456".
func Format(d *xtime.Duration, acc Accuracy, df DigitsFormat) string {
	return FormatMain(d, df) + FormatFraction(d, acc)
}
