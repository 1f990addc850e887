package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mentis/internal/engine"
)

// SessionRecord is one completed session as persisted.
type SessionRecord struct {
	Player   string        `json:"player"`
	Seed     int64         `json:"seed"`
	PlayedAt time.Time     `json:"played_at"`
	Result   engine.Result `json:"result"`
}

// Key returns the record's deterministic fingerprint. Saving the same
// record twice is a no-op.
func (r SessionRecord) Key() (string, error) {
	return FingerprintJSON(map[string]interface{}{
		"player":    r.Player,
		"seed":      r.Seed,
		"played_at": r.PlayedAt.UTC().Format(time.RFC3339Nano),
		"result":    r.Result,
	})
}

// UpsertPlayer inserts a player by its fingerprint key and returns the
// row id.
func UpsertPlayer(ctx context.Context, db *sql.DB, name string) (string, error) {
	if db == nil {
		return "", errors.New("store: db is nil")
	}
	if name == "" {
		name = "default"
	}
	key := fingerprintBytes([]byte(name))
	id := uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO players (player_id, player_key, name, created_at)
		 VALUES (?, ?, ?, now())
		 ON CONFLICT (player_key) DO NOTHING`,
		id,
		key,
		name,
	); err != nil {
		return "", fmt.Errorf("upsert player: %w", err)
	}
	outID, err := lookupID(ctx, db, "players", "player_id", "player_key", key)
	if err != nil {
		return "", fmt.Errorf("lookup player id: %w", err)
	}
	return outID, nil
}

// InsertSession persists one completed session keyed by its fingerprint.
func InsertSession(ctx context.Context, db *sql.DB, record SessionRecord) (string, error) {
	if db == nil {
		return "", errors.New("store: db is nil")
	}
	playerID, err := UpsertPlayer(ctx, db, record.Player)
	if err != nil {
		return "", err
	}
	key, err := record.Key()
	if err != nil {
		return "", fmt.Errorf("session key: %w", err)
	}
	payload, err := CanonicalJSON(record.Result)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	res := record.Result
	id := uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO sessions (
		   session_id, session_key, player_id, task, level, seed,
		   score, accuracy, duration_seconds, trial_count, correct_count,
		   error_count, avg_reaction_ms, reaction_sd_ms,
		   hit_rate, false_alarm_rate, d_prime,
		   result, played_at, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now())
		 ON CONFLICT (session_key) DO NOTHING`,
		id,
		key,
		playerID,
		res.Task,
		res.Level,
		record.Seed,
		res.Score,
		res.Accuracy,
		res.DurationSeconds,
		res.TrialCount,
		res.CorrectCount,
		res.ErrorCount,
		res.AvgReactionMs,
		res.ReactionSDMs,
		nullableFloat(res.HitRate),
		nullableFloat(res.FalseAlarmRate),
		nullableFloat(res.DPrime),
		string(payload),
		record.PlayedAt.UTC(),
	); err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	outID, err := lookupID(ctx, db, "sessions", "session_id", "session_key", key)
	if err != nil {
		return "", fmt.Errorf("lookup session id: %w", err)
	}
	return outID, nil
}

func nullableFloat(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// lookupID fetches a single ID column value for a row keyed by keyColumn.
func lookupID(ctx context.Context, db *sql.DB, table, idColumn, keyColumn, key string) (string, error) {
	query := fmt.Sprintf("SELECT CAST(%s AS VARCHAR) FROM %s WHERE %s = ?", idColumn, table, keyColumn)
	var id string
	if err := db.QueryRowContext(ctx, query, key).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}
