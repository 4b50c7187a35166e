package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"rawgraph/internal/raws"
	"rawgraph/internal/store"
)

func objects() []raws.Object {
	meta := raws.Metadata{
		Module:     raws.Module{Identifier: "vanilla_plants", NumericVersion: 5000, Location: raws.LocationVanilla},
		RawPath:    "/data/vanilla/vanilla_plants/objects/plant_standard.txt",
		ObjectType: raws.ObjectPlant,
	}
	oak := raws.NewPlant(meta, "OAK")
	oak.ApplyTag("TREE", "")
	willow := raws.NewPlant(meta, "WILLOW")
	willow.ApplyTag("WET", "")
	return []raws.Object{oak, willow}
}

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "raws.db"), 1)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return s
}

func TestUpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := open(t)
	records, err := store.Records(objects())
	if err != nil {
		t.Fatalf("records: %v", err)
	}

	for i, want := range []int{2, 0} {
		changed, err := s.Upsert(ctx, records)
		if err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if changed != want {
			t.Fatalf("upsert %d changed %d rows, want %d", i, changed, want)
		}
	}
	n, err := s.Count(ctx, "")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
	if n, _ := s.Count(ctx, "CREATURE"); n != 0 {
		t.Fatalf("expected no creature rows, got %d", n)
	}
}

func TestUpsertReplacesBody(t *testing.T) {
	ctx := context.Background()
	s := open(t)
	objs := objects()
	first, _ := store.Records(objs[:1])
	if _, err := s.Upsert(ctx, first); err != nil {
		t.Fatal(err)
	}

	oak := objs[0].(*raws.Plant)
	oak.ApplyTag("VALUE", "7")
	second, _ := store.Records(objs[:1])
	if _, err := s.Upsert(ctx, second); err != nil {
		t.Fatal(err)
	}

	tokens, err := s.Tokens(ctx, oak.ObjectID.String())
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	if tokens != "[TREE][VALUE:7]" {
		t.Fatalf("expected updated tokens, got %q", tokens)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  ", 10); err == nil {
		t.Fatal("expected error for empty path")
	}
}
