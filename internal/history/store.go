// Package history records discovery runs in a local SQLite database so later
// invocations can show what was scanned, where, and with which format.
// Recording is best effort: the discovery result never depends on it.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mizutani/ojtest/internal/filelock"
)

//go:embed schema.sql
var schemaSQL string

// timeLayout is RFC 3339 with fixed-width fractional seconds. RFC3339Nano
// would drop trailing zeros, which breaks the lexicographic ordering the
// created_at index relies on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ScanRecord represents a single recorded discovery run
type ScanRecord struct {
	// ID is a unique identifier for the run
	ID string
	// Directory is the resolved directory that was scanned
	Directory string
	// Format is the format string used for the scan
	Format string
	// CaseCount is the number of test cases discovered
	CaseCount int
	// CreatedAt is when the scan completed
	CreatedAt time.Time
}

// Store manages the SQLite database holding scan history
type Store struct {
	db     *sql.DB
	dbPath string
	lock   *filelock.FileLock
}

// NewStore creates a Store instance and initializes the database.
// The parent directory of dbPath is created if it does not exist.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so later statements wait on locks held by other
	// ojtest processes instead of failing immediately.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure database: %w", err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Store{
		db:     db,
		dbPath: dbPath,
		lock:   filelock.New(dbPath + ".lock"),
	}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordScan inserts a scan record. A missing ID is filled with a fresh
// UUID and a zero CreatedAt with the current time. The insert is guarded by
// a file lock so concurrent invocations serialize their writes.
func (s *Store) RecordScan(ctx context.Context, rec ScanRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	return s.lock.WithLock(func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO scans (id, directory, format, case_count, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.ID, rec.Directory, rec.Format, rec.CaseCount,
			rec.CreatedAt.UTC().Format(timeLayout))
		if err != nil {
			return fmt.Errorf("record scan: %w", err)
		}
		return nil
	})
}

// RecentScans returns up to limit scan records, newest first.
func (s *Store) RecentScans(ctx context.Context, limit int) ([]ScanRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, directory, format, case_count, created_at
		 FROM scans ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var rec ScanRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Directory, &rec.Format, &rec.CaseCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", createdAt, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scans: %w", err)
	}
	return records, nil
}
