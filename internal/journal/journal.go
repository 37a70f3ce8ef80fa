// Package journal provides SQLite-backed persistence of finished
// attempts, owned entirely by the demo application. It is never
// imported by internal/timer, internal/run, internal/comparison, or
// internal/snapshot — the Run and Timer are exclusively owned by
// whichever host embeds the core, and the CLI in cmd/splitcore is that
// host.
//
// It does not implement a splits-file format: no import/export of
// third-party layout or run files. It stores only enough to reconstruct
// run.AttemptRecord values for a given game/category pair — a flat
// journal, not a portable format.
package journal

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/xtime"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for attempt history. Every attempt recorded
// by a given Store instance is stamped with the same sessionID, so rows
// from the same running process can be correlated even after the
// journal file is merged with others (e.g. synced from multiple
// machines) — attempt_id alone is only unique within one Run's
// lifetime, not across hosts.
type Store struct {
	db        *sql.DB
	sessionID uuid.UUID
}

// Open opens or creates the SQLite database at path and applies
// migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, sessionID: uuid.New()}
	if err := s.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			_ = cerr
		}
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY,
			session_uuid TEXT NOT NULL,
			game_name TEXT NOT NULL,
			category_name TEXT NOT NULL,
			attempt_id INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			ended_real_ns INTEGER,
			ended_game_ns INTEGER,
			pause_ns INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_run ON attempts(game_name, category_name);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordAttempt appends one finished attempt to the journal.
func (s *Store) RecordAttempt(ctx context.Context, gameName, categoryName string, rec run.AttemptRecord) error {
	var realNS, gameNS *int64
	if d, ok := rec.Ended.Get(xtime.RealTime); ok {
		v := int64(d)
		realNS = &v
	}
	if d, ok := rec.Ended.Get(xtime.GameTime); ok {
		v := int64(d)
		gameNS = &v
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (session_uuid, game_name, category_name, attempt_id, started_at, ended_real_ns, ended_game_ns, pause_ns)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.sessionID.String(), gameName, categoryName, rec.AttemptID,
		rec.StartedAt.Format(time.RFC3339Nano),
		realNS, gameNS, int64(rec.PauseTime),
	)
	return err
}

// ListAttempts returns every journaled attempt for a game/category pair,
// oldest first.
func (s *Store) ListAttempts(ctx context.Context, gameName, categoryName string) ([]run.AttemptRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT attempt_id, started_at, ended_real_ns, ended_game_ns, pause_ns
		 FROM attempts WHERE game_name = ? AND category_name = ? ORDER BY started_at ASC`,
		gameName, categoryName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			_ = cerr
		}
	}()

	var out []run.AttemptRecord
	for rows.Next() {
		var rec run.AttemptRecord
		var startedAt string
		var realNS, gameNS sql.NullInt64
		var pauseNS int64
		if err := rows.Scan(&rec.AttemptID, &startedAt, &realNS, &gameNS, &pauseNS); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		rec.StartedAt = parsed
		rec.PauseTime = xtime.Duration(pauseNS)
		ended := xtime.Time{}
		if realNS.Valid {
			ended = ended.With(xtime.RealTime, xtime.Duration(realNS.Int64))
		}
		if gameNS.Valid {
			ended = ended.With(xtime.GameTime, xtime.Duration(gameNS.Int64))
		}
		rec.Ended = ended
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
