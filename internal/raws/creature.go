package raws

import (
	"strings"

	"rawgraph/internal/tags"
	"rawgraph/internal/vocab"

	"github.com/rs/zerolog/log"
)

// CasteAll is the synthetic caste carrying creature-wide defaults.
const CasteAll = "ALL"

// Creature is a fully read creature definition.
type Creature struct {
	Info
	Castes            []*Caste                      `json:"castes"`
	Tags              tags.List[vocab.CreatureKind] `json:"tags"`
	CopyTagsFrom      string                        `json:"copyTagsFrom,omitempty"`
	CopyTagsApplied   bool                          `json:"copyTagsApplied,omitempty"`
	Variations        []string                      `json:"variations,omitempty"`
	VariationsApplied bool                          `json:"variationsApplied,omitempty"`
	SelectCreatures   []*SelectCreature             `json:"selectCreatures,omitempty"`

	// current indexes the caste receiving caste-scoped tags.
	current int
}

// NewCreature creates a creature holding only the ALL caste.
func NewCreature(meta Metadata, identifier string) *Creature {
	return &Creature{
		Info:   newInfo(meta, ObjectCreature, identifier),
		Castes: []*Caste{NewCaste(CasteAll)},
	}
}

func (c *Creature) Kind() ObjectType { return ObjectCreature }

// Clone returns a deep copy. Select-creature bundles are shared since they
// are never modified after absorption.
func (c *Creature) Clone() *Creature {
	out := &Creature{
		Info:              c.Info,
		Tags:              c.Tags.Clone(),
		CopyTagsFrom:      c.CopyTagsFrom,
		CopyTagsApplied:   c.CopyTagsApplied,
		Variations:        append([]string(nil), c.Variations...),
		VariationsApplied: c.VariationsApplied,
		SelectCreatures:   append([]*SelectCreature(nil), c.SelectCreatures...),
		current:           c.current,
	}
	out.Castes = make([]*Caste, len(c.Castes))
	for i, caste := range c.Castes {
		out.Castes[i] = caste.Clone()
	}
	return out
}

// Caste returns the caste with the given identifier.
func (c *Creature) Caste(identifier string) *Caste {
	for _, caste := range c.Castes {
		if caste.Identifier == identifier {
			return caste
		}
	}
	return nil
}

// CurrentCaste is the caste that receives caste-scoped tags.
func (c *Creature) CurrentCaste() *Caste {
	if len(c.Castes) == 0 {
		c.Castes = append(c.Castes, NewCaste(CasteAll))
	}
	if c.current < 0 || c.current >= len(c.Castes) {
		c.current = len(c.Castes) - 1
	}
	return c.Castes[c.current]
}

// SelectCaste makes identifier the current caste, creating it at the end
// of the list when missing. Declaration order is never changed.
func (c *Creature) SelectCaste(identifier string) {
	for i, caste := range c.Castes {
		if caste.Identifier == identifier {
			c.current = i
			return
		}
	}
	c.Castes = append(c.Castes, NewCaste(identifier))
	c.current = len(c.Castes) - 1
}

// ApplyTag applies one key:value as if it were read from the raw file.
func (c *Creature) ApplyTag(key, value string) {
	switch key {
	case "CASTE", "SELECT_CASTE":
		c.SelectCaste(value)
	case "COPY_TAGS_FROM":
		c.CopyTagsFrom = value
	case "APPLY_CREATURE_VARIATION":
		c.Variations = append(c.Variations, value)
	default:
		switch {
		case vocab.Caste.Has(key):
			c.CurrentCaste().ApplyTag(key, value)
		case vocab.Creature.Has(key):
			if tok, ok := vocab.Creature.Decode(key, value); ok {
				c.Tags.Put(tok)
			}
		default:
			log.Debug().Str("creature", c.Identifier).Str("key", key).Msg("Unknown creature tag")
		}
	}
}

// RemoveTag deletes matching tags from the creature-wide list or the current
// caste. Removing an absent tag is a no-op.
func (c *Creature) RemoveTag(key, value string) int {
	if vocab.Creature.Has(key) {
		return c.Tags.Remove(key, value)
	}
	return c.CurrentCaste().Tags.Remove(key, value)
}

// ConvertTag rewrites every key tag whose value contains target, replacing
// target with replacement. Without a target the tag is removed and, when a
// replacement is given, re-added with it as its value.
func (c *Creature) ConvertTag(key, target, replacement string) {
	if target == "" {
		c.RemoveTag(key, "")
		if replacement != "" {
			c.ApplyTag(key, replacement)
		}
		return
	}

	for _, value := range c.tagValues(key) {
		if !strings.Contains(value, target) {
			continue
		}
		c.RemoveTag(key, value)
		c.ApplyTag(key, strings.Replace(value, target, replacement, 1))
	}
}

func (c *Creature) tagValues(key string) []string {
	var out []string
	if vocab.Creature.Has(key) {
		for _, t := range c.Tags {
			if t.Key == key {
				out = append(out, strings.Join(t.Value.Values(), ":"))
			}
		}
		return out
	}
	for _, t := range c.CurrentCaste().Tags {
		if t.Key == key {
			out = append(out, strings.Join(t.Value.Values(), ":"))
		}
	}
	return out
}

// Tokens re-encodes the creature: creature-wide tags, then each caste.
func (c *Creature) Tokens() []string {
	out := c.Tags.Encode()
	if c.CopyTagsFrom != "" {
		out = append(out, "[COPY_TAGS_FROM:"+c.CopyTagsFrom+"]")
	}
	for _, v := range c.Variations {
		out = append(out, "[APPLY_CREATURE_VARIATION:"+v+"]")
	}
	for _, caste := range c.Castes {
		out = append(out, "[SELECT_CASTE:"+caste.Identifier+"]")
		out = append(out, caste.Tags.Encode()...)
	}
	return out
}

// Name returns singular, plural and adjective forms.
func (c *Creature) Name() []string {
	v, _ := tags.Get[tags.ArrayValue[string]](c.Tags, vocab.CreatureName)
	return v.V
}

// Frequency is the spawn weight, 50 when unset.
func (c *Creature) Frequency() uint32 {
	if v, ok := tags.Get[tags.SingleValue[uint32]](c.Tags, vocab.CreatureFrequency); ok {
		return v.V
	}
	return 50
}

// PopulationNumber is the min:max population, [1,1] when unset.
func (c *Creature) PopulationNumber() [2]uint32 {
	return c.pairOrOne(vocab.CreaturePopulationNumber)
}

// ClusterNumber is the min:max cluster size, [1,1] when unset.
func (c *Creature) ClusterNumber() [2]uint32 {
	return c.pairOrOne(vocab.CreatureClusterNumber)
}

func (c *Creature) pairOrOne(kind vocab.CreatureKind) [2]uint32 {
	v, ok := tags.Get[tags.ArrayValue[uint32]](c.Tags, kind)
	if !ok || len(v.V) != 2 {
		return [2]uint32{1, 1}
	}
	return [2]uint32{v.V[0], v.V[1]}
}

// Biomes returns every biome token.
func (c *Creature) Biomes() []string { return c.stringValues(vocab.CreatureBiome) }

// PrefStrings returns every preference string.
func (c *Creature) PrefStrings() []string { return c.stringValues(vocab.CreaturePrefString) }

func (c *Creature) stringValues(kind vocab.CreatureKind) []string {
	var out []string
	for _, t := range c.Tags.All(kind) {
		if v, ok := t.Value.(tags.SingleValue[string]); ok {
			out = append(out, v.V)
		}
	}
	return out
}
