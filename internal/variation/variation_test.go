package variation

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
)

func testMeta() raws.Metadata {
	return raws.Metadata{
		Module:     raws.Module{Identifier: "vanilla", NumericVersion: 5000, Location: raws.LocationVanilla},
		ObjectType: raws.ObjectCreature,
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

// variation builds a variation from key, value pairs.
func variation(id string, kv ...string) *raws.CreatureVariation {
	v := raws.NewCreatureVariation(testMeta(), id)
	for i := 0; i+1 < len(kv); i += 2 {
		v.ApplyTag(kv[i], kv[i+1])
	}
	return v
}

func creature(id string, calls ...string) *raws.Creature {
	c := raws.NewCreature(testMeta(), id)
	c.Variations = calls
	return c
}

func index(vs ...*raws.CreatureVariation) Index {
	objects := make([]raws.Object, len(vs))
	for i, v := range vs {
		objects[i] = v
	}
	return NewIndex(objects)
}

func TestArgumentSubstitution(t *testing.T) {
	idx := index(variation("PRICED", "CV_ADD_TAG", "PET_VALUE:!ARG1"))

	got := Expand(creature("FOX", "PRICED:42"), idx)
	if v, ok := got.Caste(raws.CasteAll).PetValue(); !ok || v != 42 {
		t.Fatalf("PetValue = %d, %v; want 42", v, ok)
	}
	if !got.VariationsApplied {
		t.Fatal("VariationsApplied not set")
	}
}

func TestMissingArgumentKeepsLiteral(t *testing.T) {
	logs := captureLogs(t)
	idx := index(variation("DESCRIBED",
		"CV_ADD_TAG", "PET_VALUE:!ARG1",
		"CV_ADD_TAG", "DESCRIPTION:!ARG1",
	))

	got := Expand(creature("FOX", "DESCRIBED"), idx)
	all := got.Caste(raws.CasteAll)
	if v, _ := all.PetValue(); v != 0 {
		t.Fatalf("PetValue = %d, want 0", v)
	}
	if all.Description() != "!ARG1" {
		t.Fatalf("Description = %q, want the literal placeholder", all.Description())
	}
	if !strings.Contains(logs.String(), "Variation argument out of range") {
		t.Fatalf("expected a diagnostic, got %q", logs.String())
	}
}

func TestUnknownVariationIsSkipped(t *testing.T) {
	logs := captureLogs(t)
	c := creature("FOX", "NOPE:1", "PRICED:7")
	idx := index(variation("priced", "CV_ADD_TAG", "PET_VALUE:!ARG1"))

	got := Expand(c, idx)
	if v, _ := got.Caste(raws.CasteAll).PetValue(); v != 7 {
		t.Fatalf("PetValue = %d, want 7", v)
	}
	if !strings.Contains(logs.String(), "Creature variation not found") {
		t.Fatalf("expected a diagnostic, got %q", logs.String())
	}
}

func TestCasteResetsToAll(t *testing.T) {
	c := creature("FOX", "PRICED:30")
	c.ApplyTag("CASTE", "FEMALE")
	c.ApplyTag("CASTE", "MALE")

	got := Expand(c, index(variation("PRICED", "CV_ADD_TAG", "PET_VALUE:!ARG1")))
	if _, ok := got.Caste("MALE").PetValue(); ok {
		t.Fatal("rule applied to the creature's last caste instead of ALL")
	}
	if v, _ := got.Caste(raws.CasteAll).PetValue(); v != 30 {
		t.Fatalf("ALL PetValue = %d", v)
	}
}

func TestExpandKeepsCasteOrder(t *testing.T) {
	c := creature("FOX", "PRICED:30")
	c.ApplyTag("CASTE", "FEMALE")
	c.ApplyTag("CASTE", "MALE")

	got := Expand(c, index(variation("PRICED", "CV_ADD_TAG", "PET_VALUE:!ARG1")))
	var ids []string
	for _, caste := range got.Castes {
		ids = append(ids, caste.Identifier)
	}
	if strings.Join(ids, ",") != "ALL,FEMALE,MALE" {
		t.Fatalf("castes = %v, want declaration order", ids)
	}
}

func TestRulesApplyInOrder(t *testing.T) {
	c := creature("FOX", "PERSON:HUMANOID")
	c.ApplyTag("BODY", "QUADRUPED_NECK:TAIL")
	c.ApplyTag("CREATURE_CLASS", "MAMMAL")

	v := variation("PERSON",
		"CV_REMOVE_TAG", "CREATURE_CLASS:MAMMAL",
		"CV_REMOVE_TAG", "BABY",
		"CV_CONVERT_TAG", "",
		"CVCT_MASTER", "BODY",
		"CVCT_TARGET", "QUADRUPED",
		"CVCT_REPLACEMENT", "!ARG1",
		"CV_NEW_TAG", "CASTE:FEMALE",
		"CV_ADD_TAG", "FEMALE",
	)
	got := Expand(c, index(v))

	all := got.Caste(raws.CasteAll)
	if want := "[BODY:HUMANOID_NECK:TAIL]"; strings.Join(all.Tags.Encode(), "") != want {
		t.Fatalf("ALL tags = %v, want %s", all.Tags.Encode(), want)
	}
	female := got.Caste("FEMALE")
	if female == nil || strings.Join(female.Tags.Encode(), "") != "[FEMALE]" {
		t.Fatalf("FEMALE caste = %+v", female)
	}
	if len(c.Caste(raws.CasteAll).Classes()) != 1 {
		t.Fatal("expansion mutated the original creature")
	}
}

func TestConditionalRules(t *testing.T) {
	logs := captureLogs(t)
	idx := index(variation("SIZED", "CV_ADD_CTAG", "1:BIG:BODY_SIZE:0:0:9000"))

	if got := Expand(creature("FOX", "SIZED:BIG"), idx); len(got.Caste(raws.CasteAll).BodySizes()) != 1 {
		t.Fatal("condition met but rule not applied")
	}
	if got := Expand(creature("FOX", "SIZED:SMALL"), idx); len(got.Caste(raws.CasteAll).BodySizes()) != 0 {
		t.Fatal("condition not met but rule applied")
	}
	if got := Expand(creature("FOX", "SIZED"), idx); len(got.Caste(raws.CasteAll).BodySizes()) != 0 {
		t.Fatal("out of range condition applied")
	}
	if !strings.Contains(logs.String(), "Conditional rule argument out of range") {
		t.Fatalf("expected a diagnostic, got %q", logs.String())
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	idx := index(variation("PRICED", "CV_ADD_TAG", "PET_VALUE:!ARG1"))
	once := Expand(creature("FOX", "PRICED:5"), idx)
	if twice := Expand(once, idx); twice != once {
		t.Fatal("expanding an expanded creature should return it unchanged")
	}
}

func TestExpandAllReplacesInPlace(t *testing.T) {
	v := variation("PRICED", "CV_ADD_TAG", "PET_VALUE:!ARG1")
	fox := creature("FOX", "PRICED:12")
	plain := creature("DOG")
	objects := []raws.Object{fox, v, plain}

	out, err := ExpandAll(context.Background(), objects, 2)
	if err != nil {
		t.Fatalf("ExpandAll() error: %v", err)
	}
	if len(out) != 3 || out[1] != raws.Object(v) || out[2] != raws.Object(plain) {
		t.Fatalf("out = %+v", out)
	}
	got := out[0].(*raws.Creature)
	if got == fox || got.ObjectID != fox.ObjectID {
		t.Fatal("expanded creature should be a new value with the same object id")
	}
	if pv, _ := got.Caste(raws.CasteAll).PetValue(); pv != 12 {
		t.Fatalf("PetValue = %d", pv)
	}
	if objects[0] != raws.Object(fox) {
		t.Fatal("input slice was modified")
	}
}
