package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory database. State lives as long as the
// Store's single connection.
const MemoryDSN = ":memory:"

// Store is the SQLite data access layer for the catalog's two tables.
type Store struct {
	db *sql.DB
}

// Compile-time check: *Store satisfies DataStore.
var _ DataStore = (*Store)(nil)

// NewStore opens a SQLite database at dsn. An in-memory database is only
// visible to the connection that created it, so the pool is pinned to one
// connection.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection. An in-memory database is
// discarded.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the books and members tables. Idempotent.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// seq is the insertion order. member_id is deliberately not UNIQUE: the
// uniqueness rule belongs to member registration, not to inserts.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS books (
  seq             INTEGER PRIMARY KEY AUTOINCREMENT,
  title           TEXT NOT NULL,
  author          TEXT NOT NULL,
  genre           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
  seq             INTEGER PRIMARY KEY AUTOINCREMENT,
  member_id       INTEGER NOT NULL,
  name            TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_members_member_id ON members(member_id);
`
