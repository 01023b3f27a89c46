// Package recents persists recently opened files and small settings (such
// as the last workspace folder) in a sqlite database.
package recents

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/justyntemme/scribe/internal/debug"
	"github.com/justyntemme/scribe/internal/logging"
)

type EventType int

const (
	RecordOpen EventType = iota
	SaveSetting
)

type Request struct {
	Op    EventType
	Path  string
	Key   string
	Value string
}

// Entry is a recently opened file.
type Entry struct {
	Path     string    `json:"path"`
	OpenedAt time.Time `json:"openedAt"`
	Count    int       `json:"count"`
}

// SettingLastRoot stores the most recently opened workspace folder.
const SettingLastRoot = "last_root"

// DB owns the connection. Writes queued on RequestChan are applied by Start
// on its own goroutine; reads are synchronous.
type DB struct {
	conn        *sql.DB
	RequestChan chan Request

	// Keep bounds the recent_files table; 0 keeps everything.
	Keep int

	now func() time.Time
}

func NewDB() *DB {
	return &DB{
		RequestChan: make(chan Request, 64),
		Keep:        200,
		now:         time.Now,
	}
}

// DefaultPath returns ~/.config/scribe/scribe.db.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "scribe", "scribe.db")
}

// Open initializes the database connection and schema
func (d *DB) Open(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	// One connection keeps the pragmas below in effect for every query.
	db.SetMaxOpenConns(1)

	// WAL lets the CLI read while the editor writes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=2000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return err
		}
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS recent_files (
			path TEXT PRIMARY KEY,
			opened_at INTEGER NOT NULL,
			open_count INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, q := range schema {
		if _, err := db.Exec(q); err != nil {
			db.Close()
			return err
		}
	}

	d.conn = db
	debug.Log(debug.STORE, "Open: %s", dbPath)
	return nil
}

// Start applies queued writes until RequestChan is closed.
func (d *DB) Start() {
	log := logging.NewLogger("recents")
	for req := range d.RequestChan {
		var err error
		switch req.Op {
		case RecordOpen:
			err = d.RecordOpen(req.Path)
		case SaveSetting:
			err = d.SaveSetting(req.Key, req.Value)
		}
		if err != nil {
			log.WithError(err).Warnf("request %d failed", req.Op)
		}
	}
}

// Enqueue queues req without blocking. It reports false when the queue is
// full and the request was dropped.
func (d *DB) Enqueue(req Request) bool {
	select {
	case d.RequestChan <- req:
		return true
	default:
		debug.Log(debug.STORE, "Enqueue: queue full, dropping op=%d", req.Op)
		return false
	}
}

// RecordOpen marks path as opened now.
func (d *DB) RecordOpen(path string) error {
	if d.conn == nil {
		return errNotOpen
	}
	_, err := d.conn.Exec(`
		INSERT INTO recent_files (path, opened_at) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET
			opened_at = excluded.opened_at,
			open_count = open_count + 1`,
		path, d.now().UnixNano())
	if err != nil {
		return err
	}
	return d.prune()
}

func (d *DB) prune() error {
	if d.Keep <= 0 {
		return nil
	}
	_, err := d.conn.Exec(`
		DELETE FROM recent_files WHERE path NOT IN (
			SELECT path FROM recent_files ORDER BY opened_at DESC LIMIT ?
		)`, d.Keep)
	return err
}

// Recent returns up to limit files, most recently opened first.
func (d *DB) Recent(limit int) ([]Entry, error) {
	if d.conn == nil {
		return nil, errNotOpen
	}
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := d.conn.Query(`
		SELECT path, opened_at, open_count FROM recent_files
		ORDER BY opened_at DESC, path ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var nanos int64
		if err := rows.Scan(&e.Path, &nanos, &e.Count); err != nil {
			return nil, err
		}
		e.OpenedAt = time.Unix(0, nanos)
		out = append(out, e)
	}
	return out, rows.Err()
}

// SaveSetting upserts key.
func (d *DB) SaveSetting(key, value string) error {
	if d.conn == nil {
		return errNotOpen
	}
	_, err := d.conn.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value)
	return err
}

// Setting returns the stored value for key.
func (d *DB) Setting(key string) (string, bool, error) {
	if d.conn == nil {
		return "", false, errNotOpen
	}
	var value string
	err := d.conn.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (d *DB) Close() {
	if d.conn != nil {
		d.conn.Close()
	}
}

var errNotOpen = errors.New("recents: database not open")
