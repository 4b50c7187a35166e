package graph

import (
	"testing"

	"rawgraph/internal/raws"
)

func meta(version uint32) raws.Metadata {
	return raws.Metadata{Module: raws.Module{Identifier: "mod", NumericVersion: version, Location: raws.LocationVanilla}}
}

func TestEdges(t *testing.T) {
	fox := raws.NewCreature(meta(1), "FOX")
	giant := raws.NewCreature(meta(1), "GIANT_FOX")
	giant.CopyTagsFrom = "fox"
	giant.Variations = []string{"GIANT:2:3", "MISSING"}
	bundle := raws.NewSelectCreature(meta(1), "FOX", []string{"PET_VALUE:5"})
	fox.SelectCreatures = append(fox.SelectCreatures, bundle)
	variation := raws.NewCreatureVariation(meta(1), "GIANT")
	civ := raws.NewEntity(meta(1), "MOUNTAIN")
	civ.ApplyTag("CREATURE", "FOX")
	sprite := raws.NewGraphic(meta(1), "CREATURE_GRAPHICS", "GIANT_FOX", "")
	tiles := raws.NewGraphic(meta(1), "TILE_GRAPHICS", "FOX", "")

	edges := Edges([]raws.Object{fox, giant, variation, civ, sprite, tiles})

	want := []struct {
		from, to raws.Object
		rel      string
	}{
		{bundle, fox, RelSelects},
		{giant, fox, RelCopiesTagsFrom},
		{giant, variation, RelAppliesVariation},
		{civ, fox, RelIncludesCreature},
		{sprite, giant, RelDepicts},
	}
	if len(edges) != len(want) {
		t.Fatalf("expected %d edges, got %+v", len(want), edges)
	}
	for i, w := range want {
		e := edges[i]
		if e.Type != w.rel || e.From != w.from.ObjectInfo().ObjectID || e.To != w.to.ObjectInfo().ObjectID {
			t.Fatalf("edge %d = %+v, want %s", i, e, w.rel)
		}
	}
	if args := edges[2].Args; len(args) != 2 || args[0] != "2" || args[1] != "3" {
		t.Fatalf("variation args = %v", args)
	}
}

func TestEdgesResolveNewestTarget(t *testing.T) {
	old := raws.NewCreature(meta(1), "FOX")
	newer := raws.NewCreature(meta(7), "FOX")
	child := raws.NewCreature(meta(1), "FOXLING")
	child.CopyTagsFrom = "FOX"

	edges := Edges([]raws.Object{old, newer, child})
	if len(edges) != 1 || edges[0].To != newer.ObjectID {
		t.Fatalf("expected edge to the newest FOX, got %+v", edges)
	}
}

func TestNodesIncludeAbsorbedBundles(t *testing.T) {
	fox := raws.NewCreature(meta(1), "FOX")
	fox.SelectCreatures = append(fox.SelectCreatures, raws.NewSelectCreature(meta(1), "FOX", nil))
	if n := len(Nodes([]raws.Object{fox})); n != 2 {
		t.Fatalf("expected 2 nodes, got %d", n)
	}
}
