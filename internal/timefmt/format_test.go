package timefmt

import (
	"testing"
	"time"

	"github.com/splitcore/splitcore/internal/xtime"
)

func dur(d time.Duration) *xtime.Duration {
	v := xtime.Duration(d)
	return &v
}

func TestFormatMain(t *testing.T) {
	cases := []struct {
		name string
		d    *xtime.Duration
		df   DigitsFormat
		want string
	}{
		{"nil", nil, SingleDigitSeconds, "—"},
		{"zero unsigned", dur(0), SingleDigitSeconds, "0"},
		{"seconds only", dur(23 * time.Second), SingleDigitSeconds, "23"},
		{"minutes", dur(12*time.Minute + 34*time.Second), SingleDigitSeconds, "12:34"},
		{"hours", dur(12*time.Hour + 34*time.Minute + 56*time.Second), SingleDigitSeconds, "12:34:56"},
		{"negative", dur(-23 * time.Second), SingleDigitSeconds, "−23"},
		{"double digit hours pads", dur(5*time.Minute + 6*time.Second), DoubleDigitHours, "00:05:06"},
		{"single digit hours forces group", dur(5 * time.Second), SingleDigitHours, "0:00:05"},
		{"double digit minutes", dur(5 * time.Second), DoubleDigitMinutes, "00:05"},
		{"double digit seconds", dur(5 * time.Second), DoubleDigitSeconds, "05"},
		{"offset -5s like start", dur(-5 * time.Second), DoubleDigitMinutes, "−00:05"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FormatMain(c.d, c.df); got != c.want {
				t.Errorf("FormatMain() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestFormatFraction(t *testing.T) {
	d := dur(12*time.Second + 345*time.Millisecond)
	cases := []struct {
		acc  Accuracy
		want string
	}{
		{Seconds, ""},
		{Tenths, ".3"},
		{Hundredths, ".34"},
		{Milliseconds, ".345"},
	}
	for _, c := range cases {
		if got := FormatFraction(d, c.acc); got != c.want {
			t.Errorf("FormatFraction(%v) = %q, want %q", c.acc, got, c.want)
		}
	}
	if got := FormatFraction(nil, Hundredths); got != "" {
		t.Errorf("FormatFraction(nil) = %q, want empty", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	cases := []time.Duration{
		0,
		1 * time.Second,
		59 * time.Second,
		90 * time.Second,
		12*time.Hour + 34*time.Minute + 56*time.Second + 789*time.Millisecond,
		-(5*time.Minute + 3*time.Second + 250*time.Millisecond),
	}
	for _, want := range cases {
		s := Format(dur(want), Milliseconds, SingleDigitSeconds)
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if got != xtime.Duration(want) {
			t.Errorf("round trip %v -> %q -> %v", want, s, got)
		}
	}
}

func TestParseLenientVariants(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"5", 5 * time.Second},
		{"05", 5 * time.Second},
		{"1:02", 1*time.Minute + 2*time.Second},
		{"1:02:03", 1*time.Hour + 2*time.Minute + 3*time.Second},
		{"1:02:03.4", 1*time.Hour + 2*time.Minute + 3*time.Second + 400*time.Millisecond},
		{"-5", -5 * time.Second},
		{"+5", 5 * time.Second},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.in, err)
		}
		if got != xtime.Duration(c.want) {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1:2:3:4", "1.2.3", ":", "1:"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", in)
		}
	}
}
