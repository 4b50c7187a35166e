package store

import (
	"testing"

	"rawgraph/internal/raws"
)

func TestRecordsKeepLastDuplicate(t *testing.T) {
	meta := raws.Metadata{Module: raws.Module{Identifier: "mod", NumericVersion: 1, Location: raws.LocationInstalledMods}}
	first := raws.NewPlant(meta, "OAK")
	second := raws.NewPlant(meta, "oak")
	second.ApplyTag("TREE", "")
	other := raws.NewPlant(meta, "ASH")

	records, err := Records([]raws.Object{first, other, second})
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Identifier != "oak" || records[0].Tokens != "[TREE]" {
		t.Fatalf("expected the later OAK in first position, got %+v", records[0])
	}
	if records[0].Location != "installed_mods" || records[0].Kind != "PLANT" {
		t.Fatalf("unexpected record fields: %+v", records[0])
	}
	if len(records[0].Body) == 0 {
		t.Fatal("expected a JSON body")
	}
}
