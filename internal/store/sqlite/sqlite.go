// Package sqlite persists resolved objects in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"rawgraph/internal/store"
	"rawgraph/internal/worker"
)

const schema = `
CREATE TABLE IF NOT EXISTS raw_objects (
	object_id      TEXT PRIMARY KEY,
	kind           TEXT NOT NULL,
	identifier     TEXT NOT NULL,
	module         TEXT NOT NULL,
	module_version INTEGER NOT NULL,
	location       TEXT NOT NULL,
	raw_path       TEXT NOT NULL,
	raw_name       TEXT NOT NULL,
	tokens         TEXT NOT NULL,
	checksum       TEXT NOT NULL,
	body           TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS raw_objects_kind_identifier ON raw_objects (kind, identifier COLLATE NOCASE);
`

const upsertSQL = `
INSERT INTO raw_objects (
	object_id, kind, identifier, module, module_version,
	location, raw_path, raw_name, tokens, checksum, body
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (object_id) DO UPDATE SET
	kind = excluded.kind,
	identifier = excluded.identifier,
	module = excluded.module,
	module_version = excluded.module_version,
	location = excluded.location,
	raw_path = excluded.raw_path,
	raw_name = excluded.raw_name,
	tokens = excluded.tokens,
	checksum = excluded.checksum,
	body = excluded.body
WHERE raw_objects.checksum <> excluded.checksum
`

var _ store.Sink = (*Store)(nil)

// Store writes records to SQLite.
type Store struct {
	sqlDB     *sql.DB
	batchSize int
}

// Open opens the database at path.
func Open(path string, batchSize int) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	log.Info().Str("path", path).Msg("Opened SQLite database")
	return &Store{sqlDB: sqlDB, batchSize: max(batchSize, 1)}, nil
}

// EnsureSchema creates the objects table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.sqlDB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create raw_objects table: %w", err)
	}
	return nil
}

// Upsert writes records, one transaction per batch. Rows whose checksum is
// unchanged are left alone.
func (s *Store) Upsert(ctx context.Context, records []store.Record) (int, error) {
	changed := 0
	for _, chunk := range worker.Batch(records, s.batchSize) {
		n, err := s.upsertChunk(ctx, chunk)
		if err != nil {
			return changed, err
		}
		changed += n
	}

	log.Info().Int("rows", len(records)).Int("changed", changed).Msg("Upserted objects into SQLite")
	return changed, nil
}

func (s *Store) upsertChunk(ctx context.Context, chunk []store.Record) (int, error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertSQL)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	changed := 0
	for _, r := range chunk {
		res, err := stmt.ExecContext(ctx,
			r.ObjectID.String(), r.Kind, r.Identifier, r.Module, int64(r.ModuleVersion),
			r.Location, r.RawPath, r.RawName, r.Tokens, r.Checksum, string(r.Body),
		)
		if err != nil {
			return 0, fmt.Errorf("upsert %s %s: %w", r.Kind, r.Identifier, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			changed += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return changed, nil
}

// Count returns how many rows of kind are stored. An empty kind counts all.
func (s *Store) Count(ctx context.Context, kind string) (int, error) {
	var n int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT count(*) FROM raw_objects WHERE ?1 = '' OR kind = ?1`, kind,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count raw objects: %w", err)
	}
	return n, nil
}

// Tokens returns the stored tag text for an object id.
func (s *Store) Tokens(ctx context.Context, objectID string) (string, error) {
	var tokens string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT tokens FROM raw_objects WHERE object_id = ?`, objectID,
	).Scan(&tokens)
	if err != nil {
		return "", fmt.Errorf("get raw object %s: %w", objectID, err)
	}
	return tokens, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
