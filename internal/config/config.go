// Package config provides configuration helpers and TOML parsing for
// the demo CLI. Core packages never read configuration; only
// cmd/splitcore does.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Timer  TimerConfig  `toml:"timer"`
	Splits SplitsConfig `toml:"splits"`
	Data   DataConfig   `toml:"data"`
}

// TimerConfig maps display and comparison defaults.
type TimerConfig struct {
	Accuracy   *string `toml:"accuracy"`    // "seconds"|"tenths"|"hundredths"|"milliseconds"
	Digits     *string `toml:"digits"`      // "1s"|"2s"|"1m"|"2m"|"1h"|"2h"
	Comparison *string `toml:"comparison"`  // comparison name used for deltas, e.g. "Personal Best"
	Method     *string `toml:"method"`      // "real"|"game"
}

// SplitsConfig maps the Splits component's windowing defaults.
type SplitsConfig struct {
	VisibleCount          *int  `toml:"visible-count"`
	UpcomingSegments      *int  `toml:"upcoming-segments"`
	AlwaysShowLastSegment *bool `toml:"always-show-last-segment"`
	ShowThinSeparators    *bool `toml:"show-thin-separators"`
}

// DataConfig maps the journal database and seed-run file paths.
type DataConfig struct {
	JournalPath *string `toml:"journal-path"`
	SeedRunPath *string `toml:"seed-run-path"`
}

// LoadConfig reads a TOML config from the given path. A missing file is
// not an error — it simply yields an all-absent FileConfig, letting the
// caller merge in its own defaults.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
