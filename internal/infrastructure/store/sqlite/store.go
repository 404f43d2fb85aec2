// Package sqlite persists decoded ghost runs and their statistics in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/stats"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/infrastructure/store/sqlite/migrations"
)

// ErrNotFound is returned when a run does not exist
var ErrNotFound = errors.New("run not found")

// RunInfo describes a stored run
type RunInfo struct {
	RunID         string
	LevelName     string
	ForcedGhostID int64
	HeaderTime    float64
	FrameTimeSum  float64
	FrameCount    int
	CreatedAt     time.Time
}

// Store persists runs in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveRun stores g and its summaries in one transaction and returns the new run id.
func (s *Store) SaveRun(ctx context.Context, g *ghost.Ghost, summaries []stats.Summary) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	if g == nil {
		return "", fmt.Errorf("ghost is required")
	}

	runID := uuid.NewString()
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, level_name, forced_ghost_id, header_time, frame_time_sum, frame_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, g.LevelName, g.ForcedGhostID, g.TotalTime, g.FrameTimeSum(), g.Len(), s.now().UTC().UnixMilli(),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	if err := insertFrames(ctx, tx, runID, g.Frames); err != nil {
		return "", err
	}
	if err := insertSummaries(ctx, tx, runID, summaries); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

func insertFrames(ctx context.Context, tx *sql.Tx, runID string, frames []ghost.Frame) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO frames (
		   run_id, idx, cumulative_time, frame_time,
		   pos_x, pos_y, pos_z, facing_angle, camera_pitch,
		   grounded, stomping, ziplining, play_shot_animation,
		   event_code, event_name, bullet_id,
		   bullet_hit_x, bullet_hit_y, bullet_hit_z
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare frame insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, f := range frames {
		event := f.Event
		if event == nil {
			event = ghost.NoEvent{}
		}
		if _, err := stmt.ExecContext(ctx,
			runID, f.Index, f.CumulativeTime, f.FrameTime,
			f.Pos.X, f.Pos.Y, f.Pos.Z, f.FacingAngle, f.CameraPitch,
			f.Grounded, f.Stomping, f.Ziplining, f.PlayShotAnimation,
			event.Code(), event.String(), f.BulletID,
			f.BulletHitPos.X, f.BulletHitPos.Y, f.BulletHitPos.Z,
		); err != nil {
			return fmt.Errorf("insert frame %d: %w", f.Index, err)
		}
	}
	return nil
}

func insertSummaries(ctx context.Context, tx *sql.Tx, runID string, summaries []stats.Summary) error {
	position := 0
	for i, s := range summaries {
		for _, m := range s.Metrics {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO summaries (run_id, position, summary_idx, collector, metric, value, unit) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				runID, position, i, s.Collector, m.Name, m.Value, m.Unit,
			); err != nil {
				return fmt.Errorf("insert summary %s/%s: %w", s.Collector, m.Name, err)
			}
			position++
		}
	}
	return nil
}

// LoadRun returns the stored run header.
func (s *Store) LoadRun(ctx context.Context, runID string) (RunInfo, error) {
	var (
		info      RunInfo
		createdAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT run_id, level_name, forced_ghost_id, header_time, frame_time_sum, frame_count, created_at
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(&info.RunID, &info.LevelName, &info.ForcedGhostID, &info.HeaderTime, &info.FrameTimeSum, &info.FrameCount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return RunInfo{}, ErrNotFound
	}
	if err != nil {
		return RunInfo{}, fmt.Errorf("load run %s: %w", runID, err)
	}
	info.CreatedAt = time.UnixMilli(createdAt).UTC()
	return info, nil
}

// ListRuns returns runs of a level, newest first.
func (s *Store) ListRuns(ctx context.Context, level string) ([]RunInfo, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT run_id, level_name, forced_ghost_id, header_time, frame_time_sum, frame_count, created_at
		 FROM runs WHERE level_name = ? ORDER BY created_at DESC, run_id`, level)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RunInfo
	for rows.Next() {
		var (
			info      RunInfo
			createdAt int64
		)
		if err := rows.Scan(&info.RunID, &info.LevelName, &info.ForcedGhostID, &info.HeaderTime, &info.FrameTimeSum, &info.FrameCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		info.CreatedAt = time.UnixMilli(createdAt).UTC()
		out = append(out, info)
	}
	return out, rows.Err()
}

// CountFrames returns the number of stored frames of a run.
func (s *Store) CountFrames(ctx context.Context, runID string) (int, error) {
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM frames WHERE run_id = ?`, runID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count frames: %w", err)
	}
	return n, nil
}

// ListSummaries returns the stored summaries of a run in report order.
func (s *Store) ListSummaries(ctx context.Context, runID string) ([]stats.Summary, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT summary_idx, collector, metric, value, unit FROM summaries WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var (
		out     []stats.Summary
		lastIdx = -1
	)
	for rows.Next() {
		var (
			idx       int
			collector string
			m         stats.Metric
		)
		if err := rows.Scan(&idx, &collector, &m.Name, &m.Value, &m.Unit); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		if idx != lastIdx {
			out = append(out, stats.Summary{Collector: collector})
			lastIdx = idx
		}
		last := &out[len(out)-1]
		last.Metrics = append(last.Metrics, m)
	}
	return out, rows.Err()
}

// EventCounts returns how many frames of a run carry each event name.
func (s *Store) EventCounts(ctx context.Context, runID string) (map[string]int, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT event_name, COUNT(*) FROM frames WHERE run_id = ? AND event_code != 0 GROUP BY event_name`, runID)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]int)
	for rows.Next() {
		var (
			name string
			n    int
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		out[name] = n
	}
	return out, rows.Err()
}
