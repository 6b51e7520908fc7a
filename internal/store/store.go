// Package store provides the SQLite-backed audit journal for taskmemo.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fentz26/taskmemo/internal/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store provides access to the audit database.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS actions (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		action TEXT NOT NULL,
		inputs_hash TEXT NOT NULL,
		outcome TEXT NOT NULL,
		details TEXT,
		timestamp DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_actions_username ON actions(username);
	CREATE INDEX IF NOT EXISTS idx_actions_timestamp ON actions(timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// WriteAction inserts an action record.
func (s *Store) WriteAction(username, action, inputsHash, outcome, details string) (*models.ActionRecord, error) {
	rec := &models.ActionRecord{
		ID:         uuid.New().String(),
		Username:   username,
		Action:     action,
		InputsHash: inputsHash,
		Outcome:    outcome,
		Details:    details,
		Timestamp:  time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO actions (id, username, action, inputs_hash, outcome, details, timestamp) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Username, rec.Action, rec.InputsHash, rec.Outcome, rec.Details, rec.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert action: %w", err)
	}
	return rec, nil
}

// ListActions returns the newest records first, optionally filtered by user.
// A limit of zero or less returns everything.
func (s *Store) ListActions(username string, limit int) ([]models.ActionRecord, error) {
	query := `SELECT id, username, action, inputs_hash, outcome, details, timestamp FROM actions`
	var args []interface{}

	if username != "" {
		query += ` WHERE username = ?`
		args = append(args, username)
	}
	query += ` ORDER BY timestamp DESC, rowid DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query actions: %w", err)
	}
	defer rows.Close()

	var recs []models.ActionRecord
	for rows.Next() {
		var rec models.ActionRecord
		var details sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.Action, &rec.InputsHash, &rec.Outcome, &details, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		if details.Valid {
			rec.Details = details.String
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
