// Package main provides the CLI entrypoint for the splitcore demo.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/splitcore/splitcore/internal/clock"
	"github.com/splitcore/splitcore/internal/config"
	"github.com/splitcore/splitcore/internal/journal"
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/splitui"
	"github.com/splitcore/splitcore/internal/telemetry"
	"github.com/splitcore/splitcore/internal/xtime"
)

const (
	defaultGameName     = "Untitled Game"
	defaultCategoryName = "Any%"
)

var (
	runGameName     string
	runCategoryName string
	runSegments     string

	journalGameName     string
	journalCategoryName string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "splitcore",
		Short:         "Terminal speedrun timer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTimerCmd,
	}

	rootCmd.Flags().StringVar(&runGameName, "game", defaultGameName, "game name")
	rootCmd.Flags().StringVar(&runCategoryName, "category", defaultCategoryName, "category name")
	rootCmd.Flags().StringVar(&runSegments, "segments", "", "comma-separated segment names; overrides the seed file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newJournalCmd())

	return rootCmd
}

func runTimerCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings, mergeErrs := config.DefaultSettings().Merge(fileCfg)
	for _, e := range mergeErrs {
		telemetry.Errf("config: %v\n", e)
	}

	names, err := resolveSegmentNames(settings)
	if err != nil {
		return err
	}

	r, err := run.New(runGameName, runCategoryName, names)
	if err != nil {
		return fmt.Errorf("failed to build run: %w", err)
	}

	var jrn *journal.Store
	if settings.JournalPath != "" {
		jrn, err = journal.Open(settings.JournalPath)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer func() {
			if cerr := jrn.Close(); cerr != nil {
				telemetry.Errf("failed to close journal: %v\n", cerr)
			}
		}()
	}

	model := splitui.NewModel(r, clock.RealClock{}, jrn, settings)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// Piped/redirected output: the alternate screen only makes
		// sense on a real terminal.
		opts = []tea.ProgramOption{}
	}
	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveSegmentNames resolves segment names from (in priority order)
// the --segments flag, the config's seed-run-path file (one segment
// name per line — a bootstrap convenience, not a splits file format),
// or a single default segment.
func resolveSegmentNames(settings config.Settings) ([]string, error) {
	if runSegments != "" {
		parts := strings.Split(runSegments, ",")
		names := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				names = append(names, p)
			}
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("--segments must contain at least one non-empty name")
		}
		return names, nil
	}
	if settings.SeedRunPath != "" {
		names, err := loadSeedSegments(settings.SeedRunPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed run: %w", err)
		}
		if len(names) > 0 {
			return names, nil
		}
	}
	return []string{"Segment 1"}, nil
}

func loadSeedSegments(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			_ = cerr
		}
	}()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr
	if err := editCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return `# splitcore configuration
# Uncomment a value to enable it.

[timer]
# accuracy = "hundredths"     # seconds | tenths | hundredths | milliseconds
# digits = "1m"                # 1s | 2s | 1m | 2m | 1h | 2h
# comparison = "Personal Best"
# method = "real"              # real | game

[splits]
# visible-count = 8
# upcoming-segments = 2
# always-show-last-segment = true
# show-thin-separators = true

[data]
# journal-path = ""
# seed-run-path = ""
`
}

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List journaled attempts for a game/category",
		RunE:  runJournalCmd,
	}
	cmd.Flags().StringVar(&journalGameName, "game", defaultGameName, "game name")
	cmd.Flags().StringVar(&journalCategoryName, "category", defaultCategoryName, "category name")
	return cmd
}

func runJournalCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings, _ := config.DefaultSettings().Merge(fileCfg)

	jrn, err := journal.Open(settings.JournalPath)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() {
		if cerr := jrn.Close(); cerr != nil {
			telemetry.Errf("failed to close journal: %v\n", cerr)
		}
	}()

	attempts, err := jrn.ListAttempts(cmd.Context(), journalGameName, journalCategoryName)
	if err != nil {
		return fmt.Errorf("failed to list attempts: %w", err)
	}
	if len(attempts) == 0 {
		telemetry.Errln("no journaled attempts for this game/category")
		return nil
	}
	for _, a := range attempts {
		real, hasReal := a.Ended.Get(xtime.RealTime)
		status := "did not finish"
		if hasReal {
			status = real.String()
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "#%d  started %s  %s\n", a.AttemptID, a.StartedAt.Format("2006-01-02 15:04:05"), status); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
