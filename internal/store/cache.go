package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Cache is the local fallback for session records that could not be
// written to the database. Records are kept in a JSON file and replayed
// into the database on the next successful open.
type Cache struct {
	path string
}

// NewCache returns a cache backed by the given file path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the cache file location.
func (c *Cache) Path() string { return c.path }

// Pending returns the cached records, oldest first.
func (c *Cache) Pending() ([]SessionRecord, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache: %w", err)
	}
	var records []SessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}
	return records, nil
}

// Add appends a record to the cache file using an atomic rename.
func (c *Cache) Add(record SessionRecord) error {
	records, err := c.Pending()
	if err != nil {
		return err
	}
	records = append(records, record)
	return c.write(records)
}

// Clear removes the cache file.
func (c *Cache) Clear() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

func (c *Cache) write(records []SessionRecord) error {
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	tmpPath := c.path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return writeErr
	}
	if syncErr != nil {
		_ = os.Remove(tmpPath)
		return syncErr
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return closeErr
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Replay writes every cached record into the database and clears the
// cache on full success. Duplicate records are absorbed by the session
// fingerprint.
func (c *Cache) Replay(ctx context.Context, db *sql.DB) (int, error) {
	records, err := c.Pending()
	if err != nil {
		return 0, err
	}
	for i, record := range records {
		if _, err := InsertSession(ctx, db, record); err != nil {
			// Keep the unwritten tail for the next replay.
			if werr := c.write(records[i:]); werr != nil {
				return i, fmt.Errorf("replay stalled (%v) and cache rewrite failed: %w", err, werr)
			}
			return i, fmt.Errorf("replay session: %w", err)
		}
	}
	if len(records) > 0 {
		if err := c.Clear(); err != nil {
			return len(records), err
		}
	}
	return len(records), nil
}

// Save persists a session record, falling back to the local cache when
// the database write fails (or no database is available). It reports
// whether the record reached the database.
func Save(ctx context.Context, db *sql.DB, cache *Cache, record SessionRecord) (bool, error) {
	if db != nil {
		if _, err := InsertSession(ctx, db, record); err == nil {
			return true, nil
		}
	}
	if cache == nil {
		return false, fmt.Errorf("store: session lost, no cache configured")
	}
	if err := cache.Add(record); err != nil {
		return false, fmt.Errorf("cache session: %w", err)
	}
	return false, nil
}
