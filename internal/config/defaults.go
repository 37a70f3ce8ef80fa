package config

import (
	"fmt"

	"github.com/splitcore/splitcore/internal/timefmt"
	"github.com/splitcore/splitcore/internal/xtime"
)

// Settings is the fully-resolved, typed configuration the CLI runs
// with, after merging file config over built-in defaults — the typed
// counterpart of FileConfig's string/pointer fields.
type Settings struct {
	Accuracy   timefmt.Accuracy
	Digits     timefmt.DigitsFormat
	Comparison string
	Method     xtime.Method

	VisibleCount          int
	UpcomingSegments      int
	AlwaysShowLastSegment bool
	ShowThinSeparators    bool

	JournalPath string
	SeedRunPath string
}

// DefaultSettings returns the built-in defaults before any file config
// is merged in.
func DefaultSettings() Settings {
	return Settings{
		Accuracy:              timefmt.Hundredths,
		Digits:                timefmt.SingleDigitMinutes,
		Comparison:            "Personal Best",
		Method:                xtime.RealTime,
		VisibleCount:          8,
		UpcomingSegments:      2,
		AlwaysShowLastSegment: true,
		ShowThinSeparators:    true,
		JournalPath:           DefaultJournalPath(),
	}
}

// ParseAccuracy parses the timer.accuracy TOML value.
func ParseAccuracy(s string) (timefmt.Accuracy, error) {
	switch s {
	case "seconds":
		return timefmt.Seconds, nil
	case "tenths":
		return timefmt.Tenths, nil
	case "hundredths":
		return timefmt.Hundredths, nil
	case "milliseconds":
		return timefmt.Milliseconds, nil
	default:
		return 0, fmt.Errorf("unknown accuracy %q", s)
	}
}

// ParseDigits parses the timer.digits TOML value.
func ParseDigits(s string) (timefmt.DigitsFormat, error) {
	switch s {
	case "1s":
		return timefmt.SingleDigitSeconds, nil
	case "2s":
		return timefmt.DoubleDigitSeconds, nil
	case "1m":
		return timefmt.SingleDigitMinutes, nil
	case "2m":
		return timefmt.DoubleDigitMinutes, nil
	case "1h":
		return timefmt.SingleDigitHours, nil
	case "2h":
		return timefmt.DoubleDigitHours, nil
	default:
		return 0, fmt.Errorf("unknown digits format %q", s)
	}
}

// ParseMethod parses the timer.method TOML value.
func ParseMethod(s string) (xtime.Method, error) {
	switch s {
	case "real":
		return xtime.RealTime, nil
	case "game":
		return xtime.GameTime, nil
	default:
		return 0, fmt.Errorf("unknown timing method %q", s)
	}
}

// Merge applies a decoded FileConfig over the receiver's defaults,
// returning the resolved Settings. An error from a malformed string
// enum leaves the corresponding field at its prior value and is
// returned to the caller to log, mirroring the teacher's
// best-effort-continue posture around malformed per-field config.
func (s Settings) Merge(f FileConfig) (Settings, []error) {
	var errs []error
	if f.Timer.Accuracy != nil {
		if v, err := ParseAccuracy(*f.Timer.Accuracy); err != nil {
			errs = append(errs, err)
		} else {
			s.Accuracy = v
		}
	}
	if f.Timer.Digits != nil {
		if v, err := ParseDigits(*f.Timer.Digits); err != nil {
			errs = append(errs, err)
		} else {
			s.Digits = v
		}
	}
	if f.Timer.Comparison != nil {
		s.Comparison = *f.Timer.Comparison
	}
	if f.Timer.Method != nil {
		if v, err := ParseMethod(*f.Timer.Method); err != nil {
			errs = append(errs, err)
		} else {
			s.Method = v
		}
	}
	if f.Splits.VisibleCount != nil {
		s.VisibleCount = *f.Splits.VisibleCount
	}
	if f.Splits.UpcomingSegments != nil {
		s.UpcomingSegments = *f.Splits.UpcomingSegments
	}
	if f.Splits.AlwaysShowLastSegment != nil {
		s.AlwaysShowLastSegment = *f.Splits.AlwaysShowLastSegment
	}
	if f.Splits.ShowThinSeparators != nil {
		s.ShowThinSeparators = *f.Splits.ShowThinSeparators
	}
	if f.Data.JournalPath != nil {
		s.JournalPath = *f.Data.JournalPath
	}
	if f.Data.SeedRunPath != nil {
		s.SeedRunPath = *f.Data.SeedRunPath
	}
	return s, errs
}
