package vocab

import (
	"testing"

	"rawgraph/internal/tags"
)

func TestCreatureAndCasteKeysAreDisjoint(t *testing.T) {
	keys := []string{
		"NAME", "FREQUENCY", "BIOME", "PREFSTRING", "POPULATION_NUMBER",
		"BABY", "MAX_AGE", "PET_VALUE", "BODY_SIZE", "GAIT", "CREATURE_CLASS",
	}
	for _, key := range keys {
		if Creature.Has(key) && Caste.Has(key) {
			t.Errorf("%s is claimed by both creature and caste vocabularies", key)
		}
	}
}

func TestMaterialAndInorganicKeysAreDisjoint(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "METAL_ORE", "USE_MATERIAL_TEMPLATE", "MELTING_POINT"} {
		if Material.Has(key) && Inorganic.Has(key) {
			t.Errorf("%s is claimed by both material and inorganic vocabularies", key)
		}
	}
}

func TestKeyRoundTrip(t *testing.T) {
	if got := Caste.Key(CastePetValue); got != "PET_VALUE" {
		t.Fatalf("Caste.Key(CastePetValue) = %q", got)
	}
	if got := Creature.Key(CreatureFrequency); got != "FREQUENCY" {
		t.Fatalf("Creature.Key(CreatureFrequency) = %q", got)
	}
}

func TestVariationRuleKeys(t *testing.T) {
	cases := []struct {
		key  string
		kind VariationKind
	}{
		{"CV_NEW_TAG", VariationNewTag},
		{"CV_ADD_TAG", VariationAddTag},
		{"CV_REMOVE_TAG", VariationRemoveTag},
		{"CV_CONVERT_TAG", VariationConvertTag},
		{"CVCT_MASTER", VariationConvertMaster},
		{"CVCT_TARGET", VariationConvertTarget},
		{"CVCT_REPLACEMENT", VariationConvertReplacement},
		{"CV_NEW_CTAG", VariationNewConditionalTag},
		{"CV_ADD_CTAG", VariationAddConditionalTag},
		{"CV_REMOVE_CTAG", VariationRemoveConditionalTag},
		{"CV_CONVERT_CTAG", VariationConvertConditionalTag},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			if got := Variation.Key(tc.kind); got != tc.key {
				t.Fatalf("Variation.Key(%d) = %q, want %q", tc.kind, got, tc.key)
			}
			if Graphic.Has(tc.key) {
				t.Fatalf("%s is claimed by the graphics vocabulary", tc.key)
			}
		})
	}
}

func TestRepresentativeTokens(t *testing.T) {
	cases := []struct {
		raw    string
		decode func(key, value string) (string, bool)
	}{
		{"[MAX_AGE:8:12]", encodeWith(Caste)},
		{"[GAIT:WALK:Sprint:900:528:352:1:LAYERS_SLOW]", encodeWith(Caste)},
		{"[PHYS_ATT_RANGE:STRENGTH:450:950:1150:1250:1350:1550:2250]", encodeWith(Caste)},
		{"[MILKABLE:LOCAL_CREATURE_MAT:MILK:20000]", encodeWith(Caste)},
		{"[POPULATION_NUMBER:5:10]", encodeWith(Creature)},
		{"[ENVIRONMENT:SEDIMENTARY:VEIN:100]", encodeWith(Inorganic)},
		{"[METAL_ORE:IRON:100]", encodeWith(Inorganic)},
		{"[MELTING_POINT:11000]", encodeWith(Material)},
		{"[USE_MATERIAL_TEMPLATE:STRUCTURAL:STRUCTURAL_PLANT_TEMPLATE]", encodeWith(Plant)},
		{"[VALUE:LAW:30]", encodeWith(Entity)},
		{"[DEFAULT:CREATURES_DOMESTIC:0:0:AS_IS:DEFAULT]", encodeWith(Graphic)},
		{"[TILE_DIM:32:32]", encodeWith(TilePage)},
		{"[CV_ADD_TAG:PET_VALUE:!ARG1]", encodeWith(Variation)},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			key, value := splitRaw(tc.raw)
			got, ok := tc.decode(key, value)
			if !ok {
				t.Fatalf("decode %s failed", tc.raw)
			}
			if got != tc.raw {
				t.Fatalf("encode = %s, want %s", got, tc.raw)
			}
		})
	}
}

func encodeWith[K comparable](table *tags.Table[K]) func(key, value string) (string, bool) {
	return func(key, value string) (string, bool) {
		tok, ok := table.Decode(key, value)
		if !ok {
			return "", false
		}
		return tok.Encode(), true
	}
}

func splitRaw(raw string) (string, string) {
	body := raw[1 : len(raw)-1]
	for i := 0; i < len(body); i++ {
		if body[i] == ':' {
			return body[:i], body[i+1:]
		}
	}
	return body, ""
}
