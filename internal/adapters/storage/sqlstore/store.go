// Package sqlstore persists quotes and short links through database/sql,
// on SQLite (mattn/go-sqlite3) or Postgres (lib/pq).
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Dialect selects driver name, DDL and placeholder style.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

func (d Dialect) driverName() (string, error) {
	switch d {
	case SQLite:
		return "sqlite3", nil
	case Postgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", string(d))
	}
}

// Store owns the connection pool shared by the quote and link repositories.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects, verifies the connection and applies the schema.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	driver, err := dialect.driverName()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dialect, err)
	}

	if dialect == SQLite {
		// A single writer avoids SQLITE_BUSY under concurrent requests.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, dialect: dialect}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", dialect, err)
	}

	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Quotes returns the quote repository backed by this store.
func (s *Store) Quotes() *QuoteRepository {
	return &QuoteRepository{store: s}
}

// Links returns the short link repository backed by this store.
func (s *Store) Links() *LinkRepository {
	return &LinkRepository{store: s}
}

// Close releases the pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "store-" + string(s.dialect)
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema[s.dialect] {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	return nil
}

var schema = map[Dialect][]string{
	SQLite: {
		`CREATE TABLE IF NOT EXISTS quotes (
			seq     INTEGER PRIMARY KEY AUTOINCREMENT,
			id      TEXT NOT NULL UNIQUE,
			text    TEXT NOT NULL,
			speaker TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS short_links (
			short TEXT PRIMARY KEY,
			url   TEXT NOT NULL
		)`,
	},
	Postgres: {
		`CREATE TABLE IF NOT EXISTS quotes (
			seq     BIGSERIAL PRIMARY KEY,
			id      TEXT NOT NULL UNIQUE,
			text    TEXT NOT NULL,
			speaker TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS short_links (
			short TEXT PRIMARY KEY,
			url   TEXT NOT NULL
		)`,
	},
}

// rebind rewrites ? placeholders to $n for Postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}

	var b strings.Builder

	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// isUniqueViolation recognises duplicate-key errors from either driver.
func isUniqueViolation(err error) bool {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return false
}
