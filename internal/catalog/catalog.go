// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extraction run records in a local SQLite
// database so past runs can be listed and inspected.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/extractfeature/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the run catalog SQLite database.
type Store struct {
	db  *sql.DB
	dir string
}

// NewStore opens or creates the catalog database at dir/catalog.db,
// creating the schema if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		config_path TEXT NOT NULL,
		input_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		rows INTEGER NOT NULL,
		features TEXT NOT NULL,
		status TEXT NOT NULL,
		error TEXT
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts a run and returns its assigned id. A zero timestamp
// is filled with the current time.
func (s *Store) Record(ctx context.Context, run types.Run) (int64, error) {
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}

	features, err := json.Marshal(run.Features)
	if err != nil {
		return 0, fmt.Errorf("encoding features: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (timestamp, config_path, input_path, output_path, rows, features, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Timestamp.Format(time.RFC3339), run.ConfigPath, run.InputPath, run.OutputPath,
		run.Rows, string(features), string(run.Status), run.Error,
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns every recorded run, most recent first.
func (s *Store) List(ctx context.Context) ([]types.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, config_path, input_path, output_path, rows, features, status, error
		 FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns the run with the given id, or an error when it does not
// exist.
func (s *Store) Get(ctx context.Context, id int64) (*types.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, timestamp, config_path, input_path, output_path, rows, features, status, error
		 FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (types.Run, error) {
	var run types.Run
	var ts, features, status string
	var errText sql.NullString

	if err := sc.Scan(&run.ID, &ts, &run.ConfigPath, &run.InputPath, &run.OutputPath,
		&run.Rows, &features, &status, &errText); err != nil {
		if err == sql.ErrNoRows {
			return run, err
		}
		return run, fmt.Errorf("scanning run: %w", err)
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return run, fmt.Errorf("parsing run timestamp %q: %w", ts, err)
	}
	run.Timestamp = t

	if err := json.Unmarshal([]byte(features), &run.Features); err != nil {
		return run, fmt.Errorf("decoding features: %w", err)
	}
	run.Status = types.RunStatus(status)
	run.Error = errText.String
	return run, nil
}
