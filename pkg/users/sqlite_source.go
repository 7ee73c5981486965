package users

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    identity    TEXT PRIMARY KEY,
    secret_hash TEXT NOT NULL,
    role        TEXT NOT NULL,
    exam_scope  TEXT NOT NULL DEFAULT ''
);`

// SQLiteSource implements Source over an embedded SQLite database.
// Save runs in a single transaction, so readers always see a complete
// record list.
type SQLiteSource struct {
	db   *sql.DB
	path string
}

// OpenSQLiteSource opens (creating if needed) the database at path
func OpenSQLiteSource(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, &PersistenceError{Path: path, Err: fmt.Errorf("creating schema: %w", err)}
	}
	return &SQLiteSource{db: db, path: path}, nil
}

// Load implements Source
func (s *SQLiteSource) Load() ([]UserRecord, error) {
	rows, err := s.db.Query(`SELECT identity, secret_hash, role, exam_scope FROM users ORDER BY identity`)
	if err != nil {
		return nil, &PersistenceError{Path: s.path, Err: err}
	}
	defer rows.Close()

	var records []UserRecord
	for rows.Next() {
		var rec UserRecord
		var roleStr string
		if err := rows.Scan(&rec.Identity, &rec.SecretHash, &roleStr, &rec.Scope); err != nil {
			return nil, &PersistenceError{Path: s.path, Err: err}
		}
		role, err := ParseRole(roleStr)
		if err != nil {
			return nil, &PersistenceError{Path: s.path, Err: fmt.Errorf("identity %q: %w", rec.Identity, err)}
		}
		rec.Role = role
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Path: s.path, Err: err}
	}

	// An empty table means nothing was ever persisted, so the caller can
	// fall back to its seed list.
	if len(records) == 0 {
		return nil, ErrNoStore
	}
	return records, nil
}

// Save implements Source
func (s *SQLiteSource) Save(records []UserRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM users`); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	for _, rec := range records {
		_, err := tx.Exec(
			`INSERT INTO users (identity, secret_hash, role, exam_scope) VALUES (?, ?, ?, ?)`,
			rec.Identity, rec.SecretHash, string(rec.Role), rec.Scope,
		)
		if err != nil {
			return &PersistenceError{Path: s.path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
