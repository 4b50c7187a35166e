package merge

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
)

func meta(version uint32) raws.Metadata {
	return raws.Metadata{
		Module:     raws.Module{Identifier: "test", NumericVersion: version, Location: raws.LocationVanilla},
		ObjectType: raws.ObjectCreature,
	}
}

// creature builds a creature from KEY:VALUE raws as the reader would.
func creature(id string, version uint32, raw ...string) *raws.Creature {
	c := raws.NewCreature(meta(version), id)
	for _, r := range raw {
		key, value, _ := strings.Cut(r, ":")
		c.ApplyTag(key, value)
	}
	return c
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func resolve(t *testing.T, objects ...raws.Object) []raws.Object {
	t.Helper()
	out, err := CopyTagsFrom(context.Background(), objects, 4)
	if err != nil {
		t.Fatalf("CopyTagsFrom() error: %v", err)
	}
	return out
}

func TestCopyTagsOverride(t *testing.T) {
	cases := []struct {
		name   string
		target []string
		want   uint32
	}{
		{"target overrides", []string{"COPY_TAGS_FROM:S", "BABY:20"}, 20},
		{"target omits", []string{"COPY_TAGS_FROM:S"}, 10},
		{"default does not override", []string{"COPY_TAGS_FROM:S", "BABY:0"}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := creature("S", 1, "BABY:10")
			target := creature("T", 1, tc.target...)
			out := resolve(t, source, target)

			merged := out[1].(*raws.Creature)
			if got, _ := merged.Caste(raws.CasteAll).BabyAge(); got != tc.want {
				t.Fatalf("BabyAge = %d, want %d", got, tc.want)
			}
			if merged.ObjectID != target.ObjectID || merged.Identifier != "T" {
				t.Fatal("merged creature must keep the target's identity")
			}
			if out[0] != raws.Object(source) {
				t.Fatal("source must be untouched")
			}
		})
	}
}

func TestCopyTagsCastes(t *testing.T) {
	source := creature("DOG", 1,
		"CASTE:FEMALE", "FEMALE", "PET_VALUE:30",
		"CASTE:MALE", "MALE",
	)
	target := creature("WOLF", 1,
		"COPY_TAGS_FROM:DOG",
		"CASTE:FEMALE", "PET_VALUE:50",
		"CASTE:PUP_LEADER", "MALE",
	)
	merged := resolve(t, source, target)[1].(*raws.Creature)

	var ids []string
	for _, c := range merged.Castes {
		ids = append(ids, c.Identifier)
	}
	if got := strings.Join(ids, ","); got != "ALL,FEMALE,MALE,PUP_LEADER" {
		t.Fatalf("castes = %s", got)
	}
	female := merged.Caste("FEMALE")
	if v, _ := female.PetValue(); v != 50 {
		t.Fatalf("FEMALE PetValue = %d, want 50", v)
	}
	if got := strings.Join(female.Tags.Encode(), ""); got != "[FEMALE][PET_VALUE:50]" {
		t.Fatalf("FEMALE tags = %s", got)
	}
}

func TestCopyTagsUnionsCreatureLists(t *testing.T) {
	cases := []struct {
		name   string
		target []string
		want   string
	}{
		{"target adds biome", []string{"COPY_TAGS_FROM:FOX", "BIOME:TUNDRA"}, "FOREST_TEMPERATE_BROADLEAF,TUNDRA"},
		{"shared biome kept once", []string{"COPY_TAGS_FROM:FOX", "BIOME:FOREST_TEMPERATE_BROADLEAF"}, "FOREST_TEMPERATE_BROADLEAF"},
		{"target omits", []string{"COPY_TAGS_FROM:FOX"}, "FOREST_TEMPERATE_BROADLEAF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fox := creature("FOX", 1, "BIOME:FOREST_TEMPERATE_BROADLEAF", "PREFSTRING:red fur")
			giant := creature("GIANT_FOX", 1, tc.target...)
			merged := resolve(t, fox, giant)[1].(*raws.Creature)

			if got := strings.Join(merged.Biomes(), ","); got != tc.want {
				t.Fatalf("biomes = %s, want %s", got, tc.want)
			}
			if got := strings.Join(merged.PrefStrings(), ","); got != "red fur" {
				t.Fatalf("prefstrings = %s", got)
			}
		})
	}
}

func TestCopyTagsChain(t *testing.T) {
	a := creature("A", 1, "MAX_AGE:8:12")
	b := creature("B", 1, "COPY_TAGS_FROM:A", "PET_VALUE:40")
	c := creature("C", 1, "COPY_TAGS_FROM:B", "BABY:2")

	// C first so its source is resolved later in slice order.
	out := resolve(t, c, b, a)
	got := out[0].(*raws.Creature).Caste(raws.CasteAll)
	if age, _ := got.MaxAge(); age != [2]uint32{8, 12} {
		t.Fatalf("MaxAge = %v", age)
	}
	if pv, _ := got.PetValue(); pv != 40 {
		t.Fatalf("PetValue = %d", pv)
	}
	if baby, _ := got.BabyAge(); baby != 2 {
		t.Fatalf("BabyAge = %d", baby)
	}
}

func TestCopyTagsCycleLeavesCreaturesUnchanged(t *testing.T) {
	logs := captureLogs(t)
	a := creature("A", 1, "COPY_TAGS_FROM:B", "BABY:1")
	b := creature("B", 1, "COPY_TAGS_FROM:A", "BABY:2")
	self := creature("SELF", 1, "COPY_TAGS_FROM:self")
	down := creature("DOWN", 1, "COPY_TAGS_FROM:A")

	out := resolve(t, a, b, self, down)
	for i, o := range []raws.Object{a, b, self, down} {
		if out[i] != o {
			t.Fatalf("object %d was modified", i)
		}
	}
	if !strings.Contains(logs.String(), "COPY_TAGS_FROM cycle") {
		t.Fatalf("expected a diagnostic, got %q", logs.String())
	}
}

func TestCopyTagsMissingSource(t *testing.T) {
	logs := captureLogs(t)
	orphan := creature("ORPHAN", 1, "COPY_TAGS_FROM:NOBODY")
	if out := resolve(t, orphan); out[0] != raws.Object(orphan) {
		t.Fatal("orphan was modified")
	}
	if !strings.Contains(logs.String(), "source not found") {
		t.Fatalf("expected a diagnostic, got %q", logs.String())
	}
}

func TestCopyTagsPrefersNewestSource(t *testing.T) {
	old := creature("fox", 100, "PET_VALUE:1")
	newer := creature("FOX", 200, "PET_VALUE:2")
	redefined := creature("FOX", 300, "COPY_TAGS_FROM:FOX")
	target := creature("GIANT_FOX", 1, "COPY_TAGS_FROM:Fox")

	out := resolve(t, old, newer, redefined, target)
	if pv, _ := out[2].(*raws.Creature).Caste(raws.CasteAll).PetValue(); pv != 2 {
		t.Fatalf("redefined FOX PetValue = %d, want 2", pv)
	}
	// GIANT_FOX clones the highest version FOX, which itself cloned v200.
	if pv, _ := out[3].(*raws.Creature).Caste(raws.CasteAll).PetValue(); pv != 2 {
		t.Fatalf("GIANT_FOX PetValue = %d, want 2", pv)
	}
}

func TestCopyTagsIsIdempotent(t *testing.T) {
	source := creature("S", 1, "CREATURE_CLASS:MAMMAL")
	target := creature("T", 1, "COPY_TAGS_FROM:S", "APPLY_CREATURE_VARIATION:GIANT")
	once := resolve(t, source, target)
	twice := resolve(t, once...)
	if twice[1] != once[1] {
		t.Fatal("second pass should leave resolved creatures alone")
	}
	if got := twice[1].(*raws.Creature).Variations; len(got) != 1 {
		t.Fatalf("Variations = %v", got)
	}
}

func TestAbsorbSelectCreatures(t *testing.T) {
	logs := captureLogs(t)
	fox := creature("FOX", 1, "PET_VALUE:10")
	edit := raws.NewSelectCreature(meta(2), "fox", []string{"PET_VALUE:90"})
	stray := raws.NewSelectCreature(meta(2), "UNICORN", []string{"FLIER"})

	out := AbsorbSelectCreatures([]raws.Object{edit, fox, stray})
	if len(out) != 1 {
		t.Fatalf("objects = %d, want 1", len(out))
	}
	got := out[0].(*raws.Creature)
	if len(got.SelectCreatures) != 1 || got.SelectCreatures[0] != edit {
		t.Fatalf("SelectCreatures = %+v", got.SelectCreatures)
	}
	if pv, _ := got.Caste(raws.CasteAll).PetValue(); pv != 10 {
		t.Fatalf("edits must stay unapplied, PetValue = %d", pv)
	}
	if len(fox.SelectCreatures) != 0 {
		t.Fatal("original creature was modified")
	}
	if !strings.Contains(logs.String(), "SELECT_CREATURE target not found") {
		t.Fatalf("expected a diagnostic, got %q", logs.String())
	}

	if again := AbsorbSelectCreatures(out); len(again) != 1 || again[0] != out[0] {
		t.Fatal("absorbing twice should change nothing")
	}
}

func TestAbsorbSelectCreaturesEveryVersion(t *testing.T) {
	old := creature("FOX", 1, "PET_VALUE:10")
	current := creature("FOX", 2, "PET_VALUE:20")
	edit := raws.NewSelectCreature(meta(2), "FOX", []string{"PET_VALUE:90"})

	out := AbsorbSelectCreatures([]raws.Object{old, current, edit})
	if len(out) != 2 {
		t.Fatalf("objects = %d, want 2", len(out))
	}
	want := []*raws.Creature{old, current}
	for i, o := range out {
		c := o.(*raws.Creature)
		if c.ObjectID != want[i].ObjectID {
			t.Fatalf("object %d out of order", i)
		}
		if len(c.SelectCreatures) != 1 || c.SelectCreatures[0] != edit {
			t.Fatalf("FOX v%d bundles = %d, want 1", c.Metadata.Module.NumericVersion, len(c.SelectCreatures))
		}
	}
}
