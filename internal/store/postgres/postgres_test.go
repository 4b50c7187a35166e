package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"rawgraph/internal/store"
)

func TestUpsertIsIdempotent(t *testing.T) {
	url := os.Getenv("RAWGRAPH_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("RAWGRAPH_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := Connect(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	s := NewStore(pool, 2)
	t.Cleanup(func() { _ = s.Close() })

	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}
	kind := "TEST_" + uuid.NewString()[:8]
	records := []store.Record{
		{ObjectID: uuid.New(), Kind: kind, Identifier: "A", Checksum: "a", Body: []byte(`{}`)},
		{ObjectID: uuid.New(), Kind: kind, Identifier: "B", Checksum: "b", Body: []byte(`{}`)},
		{ObjectID: uuid.New(), Kind: kind, Identifier: "C", Checksum: "c", Body: []byte(`{}`)},
	}
	for i, want := range []int{3, 0} {
		n, err := s.Upsert(ctx, records)
		if err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if n != want {
			t.Fatalf("upsert %d changed %d rows, want %d", i, n, want)
		}
	}
	n, err := s.Count(ctx, kind)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 stored rows, got %d", n)
	}
}
