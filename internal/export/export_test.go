package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"rawgraph/internal/raws"
)

func sample() []raws.Object {
	meta := raws.Metadata{
		Module:     raws.Module{Identifier: "vanilla_plants", NumericVersion: 5000, Location: raws.LocationVanilla},
		RawName:    "plant_standard",
		ObjectType: raws.ObjectPlant,
	}
	oak := raws.NewPlant(meta, "OAK")
	oak.ApplyTag("TREE", "")
	oak.ApplyTag("VALUE", "5")
	return []raws.Object{oak, raws.NewPlant(meta, "WILLOW")}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), false); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	var doc struct {
		Counts  map[string]int `json:"counts"`
		Objects []struct {
			Kind   string `json:"kind"`
			Object struct {
				Identifier string   `json:"identifier"`
				ObjectID   string   `json:"objectId"`
				Tags       []string `json:"tags"`
			} `json:"object"`
		} `json:"objects"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Counts["PLANT"] != 2 {
		t.Fatalf("counts = %v", doc.Counts)
	}
	if len(doc.Objects) != 2 || doc.Objects[0].Kind != "PLANT" {
		t.Fatalf("objects = %+v", doc.Objects)
	}
	oak := doc.Objects[0].Object
	if oak.Identifier != "OAK" || oak.ObjectID == "" {
		t.Fatalf("oak = %+v", oak)
	}
	if len(oak.Tags) != 2 || oak.Tags[0] != "[TREE]" || oak.Tags[1] != "[VALUE:5]" {
		t.Fatalf("oak tags = %v", oak.Tags)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFile(path, sample()); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("\n  \"objects\"")) {
		t.Fatalf("expected indented output, got %s", data)
	}
}
