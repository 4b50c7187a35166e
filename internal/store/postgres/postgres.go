// Package postgres persists resolved objects in PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"rawgraph/internal/store"
	"rawgraph/internal/worker"
)

const schema = `
CREATE TABLE IF NOT EXISTS raw_objects (
	object_id      UUID PRIMARY KEY,
	kind           TEXT NOT NULL,
	identifier     TEXT NOT NULL,
	module         TEXT NOT NULL,
	module_version BIGINT NOT NULL,
	location       TEXT NOT NULL,
	raw_path       TEXT NOT NULL,
	raw_name       TEXT NOT NULL,
	tokens         TEXT NOT NULL,
	checksum       TEXT NOT NULL,
	body           JSONB NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS raw_objects_kind_identifier ON raw_objects (kind, lower(identifier));
`

const upsertSQL = `
INSERT INTO raw_objects (
	object_id, kind, identifier, module, module_version,
	location, raw_path, raw_name, tokens, checksum, body
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (object_id) DO UPDATE SET
	kind = EXCLUDED.kind,
	identifier = EXCLUDED.identifier,
	module = EXCLUDED.module,
	module_version = EXCLUDED.module_version,
	location = EXCLUDED.location,
	raw_path = EXCLUDED.raw_path,
	raw_name = EXCLUDED.raw_name,
	tokens = EXCLUDED.tokens,
	checksum = EXCLUDED.checksum,
	body = EXCLUDED.body,
	updated_at = now()
WHERE raw_objects.checksum IS DISTINCT FROM EXCLUDED.checksum
`

var _ store.Sink = (*Store)(nil)

// Store writes records through a pgx pool.
type Store struct {
	pool      *pgxpool.Pool
	batchSize int
}

// NewStore creates a store. The pool stays owned by the caller until Close.
func NewStore(pool *pgxpool.Pool, batchSize int) *Store {
	return &Store{pool: pool, batchSize: max(batchSize, 1)}
}

// Connect opens and pings a pool for url.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")
	return pool, nil
}

// EnsureSchema creates the objects table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create raw_objects table: %w", err)
	}
	log.Info().Msg("PostgreSQL schema ensured")
	return nil
}

// Upsert writes records in batches of the configured size, one pgx batch
// per chunk. Rows whose checksum is unchanged are left alone.
func (s *Store) Upsert(ctx context.Context, records []store.Record) (int, error) {
	changed := 0
	for _, chunk := range worker.Batch(records, s.batchSize) {
		batch := &pgx.Batch{}
		for _, r := range chunk {
			batch.Queue(upsertSQL,
				r.ObjectID, r.Kind, r.Identifier, r.Module, int64(r.ModuleVersion),
				r.Location, r.RawPath, r.RawName, r.Tokens, r.Checksum, r.Body,
			)
		}
		n, err := s.send(ctx, batch)
		changed += n
		if err != nil {
			return changed, err
		}
		log.Debug().Int("rows", len(chunk)).Int("changed", n).Msg("Upserted batch")
	}

	log.Info().Int("rows", len(records)).Int("changed", changed).Msg("Upserted objects into PostgreSQL")
	return changed, nil
}

func (s *Store) send(ctx context.Context, batch *pgx.Batch) (int, error) {
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	changed := 0
	for range batch.Len() {
		tag, err := br.Exec()
		if err != nil {
			return changed, fmt.Errorf("upsert raw object: %w", err)
		}
		changed += int(tag.RowsAffected())
	}
	return changed, nil
}

// Count returns how many rows of kind are stored. An empty kind counts all.
func (s *Store) Count(ctx context.Context, kind string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT count(*) FROM raw_objects WHERE $1 = '' OR kind = $1`, kind,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count raw objects: %w", err)
	}
	return n, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
