// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: monitor/journal.go
// Summary: SQLite journal of completed swaps.
// Usage: Subscribed to a Monitor for the lifetime of a run; read back by
// the journal command.
// Notes: Each run gets its own session id. Write failures are logged and
// dropped so the game loop is never interrupted.

package monitor

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/xid"
	_ "modernc.org/sqlite"
)

var (
	// ErrJournalClosed is returned by reads after Close.
	ErrJournalClosed = errors.New("journal closed")
	// ErrJournalMissing is returned by OpenJournalReader when no journal
	// exists at the path.
	ErrJournalMissing = errors.New("journal does not exist")
	// ErrJournalReadOnly is returned by Append on a reader.
	ErrJournalReadOnly = errors.New("journal opened read-only")
)

const journalSchemaVersion = 1

const journalSchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS swaps (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session TEXT NOT NULL,
    pid INTEGER NOT NULL,
    idx INTEGER NOT NULL,
    on_disk INTEGER NOT NULL,
    at INTEGER NOT NULL               -- UnixNano
);

CREATE INDEX IF NOT EXISTS idx_swaps_session ON swaps(session);
`

// JournalEntry is one persisted swap.
type JournalEntry struct {
	ID      int64     `json:"id"`
	Session string    `json:"session"`
	PID     int       `json:"pid"`
	Idx     int       `json:"idx"`
	Tier    string    `json:"tier"`
	At      time.Time `json:"at"`
}

// Journal persists swap records to SQLite.
type Journal struct {
	mu      sync.Mutex
	db      *sql.DB
	session string
	path    string
	// readOnly journals have no session and reject appends.
	readOnly bool
}

// OpenJournal opens or creates the journal at path and starts a new session.
func OpenJournal(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(journalSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := checkJournalSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check schema version: %w", err)
	}

	j := &Journal{db: db, session: xid.New().String(), path: path}
	log.Printf("Journal: session %s at %s", j.session, path)
	return j, nil
}

// OpenJournalReader opens an existing journal for queries only. It creates
// nothing, starts no session and leaves the schema untouched.
func OpenJournalReader(path string) (*Journal, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrJournalMissing, path)
		}
		return nil, err
	}

	dsn := path +
		"?_pragma=query_only(1)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Journal{db: db, path: path, readOnly: true}, nil
}

func checkJournalSchema(db *sql.DB) error {
	var current int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if current == journalSchemaVersion {
		return nil
	}
	if current > journalSchemaVersion {
		return fmt.Errorf("journal schema version %d is newer than supported %d", current, journalSchemaVersion)
	}
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", journalSchemaVersion)
	return err
}

// Session returns the id stamped on rows written by this journal. Readers
// have none.
func (j *Journal) Session() string { return j.session }

// Path returns the database path.
func (j *Journal) Path() string { return j.path }

// OnPageSwap appends rec to the current session.
func (j *Journal) OnPageSwap(rec SwapRecord) {
	if err := j.Append(rec); err != nil {
		log.Printf("Journal: append failed: %v", err)
	}
}

// Append writes rec and reports any failure.
func (j *Journal) Append(rec SwapRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return ErrJournalClosed
	}
	if j.readOnly {
		return ErrJournalReadOnly
	}
	onDisk := 0
	if rec.OnDisk {
		onDisk = 1
	}
	_, err := j.db.Exec(
		"INSERT INTO swaps (session, pid, idx, on_disk, at) VALUES (?, ?, ?, ?, ?)",
		j.session, rec.PID, rec.Idx, onDisk, rec.At.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert swap: %w", err)
	}
	return nil
}

// Records returns up to limit entries in write order. An empty session
// returns entries from every session; limit <= 0 returns all of them.
func (j *Journal) Records(session string, limit int) ([]JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil, ErrJournalClosed
	}

	query := "SELECT id, session, pid, idx, on_disk, at FROM swaps"
	var args []any
	if session != "" {
		query += " WHERE session = ?"
		args = append(args, session)
	}
	query += " ORDER BY id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query swaps: %w", err)
	}
	defer rows.Close()

	var out []JournalEntry
	for rows.Next() {
		var (
			e      JournalEntry
			onDisk int
			at     int64
		)
		if err := rows.Scan(&e.ID, &e.Session, &e.PID, &e.Idx, &onDisk, &at); err != nil {
			return nil, fmt.Errorf("scan swap: %w", err)
		}
		e.Tier = SwapRecord{OnDisk: onDisk != 0}.Tier()
		e.At = time.Unix(0, at)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Sessions returns every session id in the order it was first written.
func (j *Journal) Sessions() ([]string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil, ErrJournalClosed
	}
	rows, err := j.db.Query("SELECT session FROM swaps GROUP BY session ORDER BY MIN(id)")
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Close closes the database. It is safe to call more than once.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}
