package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mentis/internal/engine"
)

// SessionRow is one persisted session as read back for reporting.
type SessionRow struct {
	ID       string
	Player   string
	Seed     int64
	PlayedAt time.Time
	Result   engine.Result
}

// TaskProgress aggregates the sessions of one task at one level.
type TaskProgress struct {
	Task        string
	Level       int
	Sessions    int
	BestScore   float64
	AvgScore    float64
	AvgAccuracy float64
	LastPlayed  time.Time
}

// ListSessions returns persisted sessions newest first, optionally
// filtered by task. limit <= 0 means no limit.
func ListSessions(ctx context.Context, db *sql.DB, task string, limit int) ([]SessionRow, error) {
	if db == nil {
		return nil, errors.New("store: db is nil")
	}
	query := `SELECT CAST(s.session_id AS VARCHAR), p.name, s.seed, s.played_at, CAST(s.result AS VARCHAR)
	          FROM sessions s JOIN players p ON p.player_id = s.player_id`
	args := []interface{}{}
	if task != "" {
		query += " WHERE s.task = ?"
		args = append(args, task)
	}
	query += " ORDER BY s.played_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRow
	for rows.Next() {
		var row SessionRow
		var payload string
		if err := rows.Scan(&row.ID, &row.Player, &row.Seed, &row.PlayedAt, &payload); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &row.Result); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// LoadProgress returns the per-task, per-level aggregate view.
func LoadProgress(ctx context.Context, db *sql.DB) ([]TaskProgress, error) {
	if db == nil {
		return nil, errors.New("store: db is nil")
	}
	rows, err := db.QueryContext(ctx,
		`SELECT task, level, sessions, best_score, avg_score, avg_accuracy, last_played
		 FROM v_task_progress ORDER BY task, level`)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	defer rows.Close()

	var out []TaskProgress
	for rows.Next() {
		var p TaskProgress
		if err := rows.Scan(&p.Task, &p.Level, &p.Sessions, &p.BestScore, &p.AvgScore, &p.AvgAccuracy, &p.LastPlayed); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
