package raws

import (
	"strings"

	"rawgraph/internal/tags"
	"rawgraph/internal/vocab"
)

// Caste is a named sub-variant of a creature. Typed accessors read through
// the ordered tag list so they always agree with it.
type Caste struct {
	Identifier string                     `json:"identifier"`
	Tags       tags.List[vocab.CasteKind] `json:"tags"`
}

// NewCaste creates an empty caste.
func NewCaste(identifier string) *Caste {
	return &Caste{Identifier: identifier}
}

// Clone returns an independent copy.
func (c *Caste) Clone() *Caste {
	return &Caste{Identifier: c.Identifier, Tags: c.Tags.Clone()}
}

// ApplyTag decodes and stores one caste tag. It reports false when the key
// is not caste vocabulary or the value is malformed.
func (c *Caste) ApplyTag(key, value string) bool {
	tok, ok := vocab.Caste.Decode(key, value)
	if !ok {
		return false
	}
	c.Tags.Put(tok)
	return true
}

func (c *Caste) single(kind vocab.CasteKind) (uint32, bool) {
	v, ok := tags.Get[tags.SingleValue[uint32]](c.Tags, kind)
	return v.V, ok
}

func (c *Caste) pair(kind vocab.CasteKind) ([2]uint32, bool) {
	v, ok := tags.Get[tags.ArrayValue[uint32]](c.Tags, kind)
	if !ok || len(v.V) != 2 {
		return [2]uint32{}, false
	}
	return [2]uint32{v.V[0], v.V[1]}, true
}

// BabyAge is the age in years at which a baby becomes a child.
func (c *Caste) BabyAge() (uint32, bool) { return c.single(vocab.CasteBaby) }

// ChildAge is the age in years at which a child becomes an adult.
func (c *Caste) ChildAge() (uint32, bool) { return c.single(vocab.CasteChild) }

// PetValue is the caste's base trade value as a pet.
func (c *Caste) PetValue() (uint32, bool) { return c.single(vocab.CastePetValue) }

// MaxAge returns the min:max lifespan range.
func (c *Caste) MaxAge() ([2]uint32, bool) { return c.pair(vocab.CasteMaxAge) }

// ClutchSize returns the min:max eggs laid.
func (c *Caste) ClutchSize() ([2]uint32, bool) { return c.pair(vocab.CasteClutchSize) }

// LitterSize returns the min:max live births.
func (c *Caste) LitterSize() ([2]uint32, bool) { return c.pair(vocab.CasteLitterSize) }

func (c *Caste) Description() string {
	v, _ := tags.Get[tags.SingleValue[string]](c.Tags, vocab.CasteDescription)
	return v.V
}

// Tile returns the caste's display glyph.
func (c *Caste) Tile() string {
	v, _ := tags.Get[tags.SingleValue[string]](c.Tags, vocab.CasteTile)
	return v.V
}

// Milkable describes a caste's milk.
type Milkable struct {
	Material  string `json:"material"`
	Frequency uint32 `json:"frequency"`
}

// Milkable reports the caste's milk material, if any.
func (c *Caste) Milkable() (Milkable, bool) {
	v, ok := tags.Get[tags.TailValue[string, uint32]](c.Tags, vocab.CasteMilkable)
	if !ok {
		return Milkable{}, false
	}
	return Milkable{Material: strings.Join(v.V, ":"), Frequency: v.Tail}, true
}

// BodySize is one step of a caste's growth schedule.
type BodySize struct {
	Years uint32 `json:"years"`
	Days  uint32 `json:"days"`
	Size  uint32 `json:"size"`
}

// BodySizes returns the growth schedule in source order.
func (c *Caste) BodySizes() []BodySize {
	var out []BodySize
	for _, t := range c.Tags.All(vocab.CasteBodySize) {
		v, ok := t.Value.(tags.ArrayValue[uint32])
		if !ok || len(v.V) != 3 {
			continue
		}
		out = append(out, BodySize{Years: v.V[0], Days: v.V[1], Size: v.V[2]})
	}
	return out
}

// Gait is one movement mode.
type Gait struct {
	Type   string   `json:"type"`
	Params []string `json:"params"`
}

// Gaits returns every movement mode in source order.
func (c *Caste) Gaits() []Gait {
	var out []Gait
	for _, t := range c.Tags.All(vocab.CasteGait) {
		if v, ok := t.Value.(tags.LabeledValue[string, string]); ok {
			out = append(out, Gait{Type: v.Label, Params: v.V})
		}
	}
	return out
}

// Classes returns the caste's creature classes.
func (c *Caste) Classes() []string {
	var out []string
	for _, t := range c.Tags.All(vocab.CasteCreatureClass) {
		if v, ok := t.Value.(tags.SingleValue[string]); ok {
			out = append(out, v.V)
		}
	}
	return out
}

// Has reports whether the caste carries a flag or tag of kind.
func (c *Caste) Has(kind vocab.CasteKind) bool { return c.Tags.Has(kind) }
