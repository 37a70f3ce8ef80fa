package config

import (
	"testing"

	"github.com/splitcore/splitcore/internal/timefmt"
	"github.com/splitcore/splitcore/internal/xtime"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }
func boolp(b bool) *bool    { return &b }

func TestParseAccuracy(t *testing.T) {
	cases := []struct {
		in      string
		want    timefmt.Accuracy
		wantErr bool
	}{
		{"seconds", timefmt.Seconds, false},
		{"tenths", timefmt.Tenths, false},
		{"hundredths", timefmt.Hundredths, false},
		{"milliseconds", timefmt.Milliseconds, false},
		{"nanoseconds", 0, true},
	}
	for _, c := range cases {
		got, err := ParseAccuracy(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseAccuracy(%q) expected error, got nil", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAccuracy(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseAccuracy(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDigits(t *testing.T) {
	cases := []struct {
		in      string
		want    timefmt.DigitsFormat
		wantErr bool
	}{
		{"1s", timefmt.SingleDigitSeconds, false},
		{"2s", timefmt.DoubleDigitSeconds, false},
		{"1m", timefmt.SingleDigitMinutes, false},
		{"2m", timefmt.DoubleDigitMinutes, false},
		{"1h", timefmt.SingleDigitHours, false},
		{"2h", timefmt.DoubleDigitHours, false},
		{"3h", 0, true},
	}
	for _, c := range cases {
		got, err := ParseDigits(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseDigits(%q) expected error, got nil", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDigits(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseDigits(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseMethod(t *testing.T) {
	if got, err := ParseMethod("real"); err != nil || got != xtime.RealTime {
		t.Errorf("ParseMethod(\"real\") = %v, %v, want RealTime, nil", got, err)
	}
	if got, err := ParseMethod("game"); err != nil || got != xtime.GameTime {
		t.Errorf("ParseMethod(\"game\") = %v, %v, want GameTime, nil", got, err)
	}
	if _, err := ParseMethod("fake"); err == nil {
		t.Error("ParseMethod(\"fake\") expected error, got nil")
	}
}

func TestSettingsMergeAppliesPresentFields(t *testing.T) {
	base := DefaultSettings()
	f := FileConfig{
		Timer: TimerConfig{
			Accuracy:   strp("milliseconds"),
			Comparison: strp("Best Segments"),
		},
		Splits: SplitsConfig{
			VisibleCount:          intp(3),
			AlwaysShowLastSegment: boolp(false),
		},
		Data: DataConfig{
			JournalPath: strp("/tmp/custom-journal.db"),
		},
	}

	merged, errs := base.Merge(f)
	if len(errs) != 0 {
		t.Fatalf("Merge() errs = %v, want none", errs)
	}
	if merged.Accuracy != timefmt.Milliseconds {
		t.Errorf("Accuracy = %v, want Milliseconds", merged.Accuracy)
	}
	if merged.Comparison != "Best Segments" {
		t.Errorf("Comparison = %q, want Best Segments", merged.Comparison)
	}
	if merged.VisibleCount != 3 {
		t.Errorf("VisibleCount = %d, want 3", merged.VisibleCount)
	}
	if merged.AlwaysShowLastSegment {
		t.Error("AlwaysShowLastSegment = true, want false")
	}
	if merged.JournalPath != "/tmp/custom-journal.db" {
		t.Errorf("JournalPath = %q, want /tmp/custom-journal.db", merged.JournalPath)
	}

	// Fields left absent in f retain the base defaults.
	if merged.Digits != base.Digits {
		t.Errorf("Digits = %v, want unchanged default %v", merged.Digits, base.Digits)
	}
	if merged.Method != base.Method {
		t.Errorf("Method = %v, want unchanged default %v", merged.Method, base.Method)
	}
	if merged.UpcomingSegments != base.UpcomingSegments {
		t.Errorf("UpcomingSegments = %d, want unchanged default %d", merged.UpcomingSegments, base.UpcomingSegments)
	}
}

func TestSettingsMergeCollectsParseErrorsAndKeepsDefault(t *testing.T) {
	base := DefaultSettings()
	f := FileConfig{
		Timer: TimerConfig{
			Accuracy: strp("bogus"),
			Method:   strp("bogus"),
		},
	}

	merged, errs := base.Merge(f)
	if len(errs) != 2 {
		t.Fatalf("Merge() errs = %v, want 2 errors", errs)
	}
	if merged.Accuracy != base.Accuracy {
		t.Errorf("Accuracy changed to %v despite parse error, want unchanged %v", merged.Accuracy, base.Accuracy)
	}
	if merged.Method != base.Method {
		t.Errorf("Method changed to %v despite parse error, want unchanged %v", merged.Method, base.Method)
	}
}
