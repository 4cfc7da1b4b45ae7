package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteCache persists responses across runs in a single-file database.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
	Log logrus.FieldLogger
}

const createResponsesTable = `
	CREATE TABLE IF NOT EXISTS responses (
		cache_key  TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		expires_at INTEGER NOT NULL
	)`

// NewSQLiteCache opens (or creates) the cache database at path.
func NewSQLiteCache(path string, ttl time.Duration) (*SQLiteCache, error) {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite cache at %q: %w", path, err)
	}
	// a single connection avoids "database is locked" under concurrent fan-out
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open SQLite cache at %q: %w", path, err)
	}
	if _, err := db.Exec(createResponsesTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}
	return &SQLiteCache{db: db, ttl: ttl, now: time.Now, Log: logrus.StandardLogger()}, nil
}

func (c *SQLiteCache) Get(key string) ([]byte, bool) {
	var payload []byte
	var expires int64
	row := c.db.QueryRow(`SELECT payload, expires_at FROM responses WHERE cache_key = ?`, key)
	if err := row.Scan(&payload, &expires); err != nil {
		if err != sql.ErrNoRows {
			c.Log.WithError(err).Warn("cache read failed")
		}
		return nil, false
	}
	if c.now().Unix() > expires {
		return nil, false
	}
	return payload, true
}

func (c *SQLiteCache) Set(key string, payload []byte) {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO responses (cache_key, payload, expires_at) VALUES (?, ?, ?)`,
		key, payload, c.now().Add(c.ttl).Unix())
	if err != nil {
		c.Log.WithError(err).Warn("cache write failed")
	}
}

// Prune deletes expired rows and reports how many were removed.
func (c *SQLiteCache) Prune() (int64, error) {
	res, err := c.db.Exec(`DELETE FROM responses WHERE expires_at < ?`, c.now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close prunes expired rows so the file does not grow across runs.
func (c *SQLiteCache) Close() error {
	if n, err := c.Prune(); err != nil {
		c.Log.WithError(err).Warn("cache prune failed")
	} else if n > 0 {
		c.Log.WithField("rows", n).Debug("pruned expired cache rows")
	}
	return c.db.Close()
}
