package run

import (
	"github.com/splitcore/splitcore/internal/imagecache"
	"github.com/splitcore/splitcore/internal/xtime"
)

// HistoryEntry is one observed segment time sample from a past attempt.
// Time may have absent components if that attempt skipped the segment.
type HistoryEntry struct {
	AttemptID int64
	Time      xtime.Time
}

// Segment is a single named checkpoint in a Run.
type Segment struct {
	Name                  string
	Icon                  imagecache.ID
	PersonalBestSplitTime xtime.Time
	BestSegmentTime       xtime.Time
	Comparisons           map[string]xtime.Time
	History               []HistoryEntry
}

// NewSegment returns a Segment with an initialized (empty) comparison map,
// matching whatever comparison keys are passed in names.
func NewSegment(name string, comparisonNames []string) Segment {
	cmp := make(map[string]xtime.Time, len(comparisonNames))
	for _, n := range comparisonNames {
		cmp[n] = xtime.Time{}
	}
	return Segment{Name: name, Comparisons: cmp}
}

// Clone returns a deep copy of the segment.
func (s Segment) Clone() Segment {
	out := s
	out.Comparisons = make(map[string]xtime.Time, len(s.Comparisons))
	for k, v := range s.Comparisons {
		out.Comparisons[k] = v
	}
	out.History = append([]HistoryEntry(nil), s.History...)
	return out
}

// HistorySample returns the recorded time for attemptID, if any.
func (s Segment) HistorySample(attemptID int64) (xtime.Time, bool) {
	for _, h := range s.History {
		if h.AttemptID == attemptID {
			return h.Time, true
		}
	}
	return xtime.Time{}, false
}
