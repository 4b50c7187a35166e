package raws

import (
	"rawgraph/internal/tags"
	"rawgraph/internal/vocab"
)

// Plant is a plant definition.
type Plant struct {
	Info
	Tags tags.List[vocab.PlantKind] `json:"tags"`
}

func NewPlant(meta Metadata, identifier string) *Plant {
	return &Plant{Info: newInfo(meta, ObjectPlant, identifier)}
}

func (p *Plant) Kind() ObjectType { return ObjectPlant }
func (p *Plant) Tokens() []string { return p.Tags.Encode() }

func (p *Plant) ApplyTag(key, value string) {
	if tok, ok := vocab.Plant.Decode(key, value); ok {
		p.Tags.Put(tok)
	}
}

// Inorganic is a stone, metal, gem or other inorganic material.
type Inorganic struct {
	Info
	Tags     tags.List[vocab.InorganicKind] `json:"tags"`
	Material tags.List[vocab.MaterialKind]  `json:"material"`
}

func NewInorganic(meta Metadata, identifier string) *Inorganic {
	return &Inorganic{Info: newInfo(meta, ObjectInorganic, identifier)}
}

func (i *Inorganic) Kind() ObjectType { return ObjectInorganic }

func (i *Inorganic) Tokens() []string {
	return append(i.Tags.Encode(), i.Material.Encode()...)
}

// ApplyTag routes inorganic-only keys and material properties to their lists.
func (i *Inorganic) ApplyTag(key, value string) {
	if vocab.Inorganic.Has(key) {
		if tok, ok := vocab.Inorganic.Decode(key, value); ok {
			i.Tags.Put(tok)
		}
		return
	}
	if tok, ok := vocab.Material.Decode(key, value); ok {
		i.Material.Put(tok)
	}
}

// MaterialTemplate is a reusable set of material properties.
type MaterialTemplate struct {
	Info
	Material tags.List[vocab.MaterialKind] `json:"material"`
}

func NewMaterialTemplate(meta Metadata, identifier string) *MaterialTemplate {
	return &MaterialTemplate{Info: newInfo(meta, ObjectMaterialTemplate, identifier)}
}

func (m *MaterialTemplate) Kind() ObjectType { return ObjectMaterialTemplate }
func (m *MaterialTemplate) Tokens() []string { return m.Material.Encode() }

func (m *MaterialTemplate) ApplyTag(key, value string) {
	if tok, ok := vocab.Material.Decode(key, value); ok {
		m.Material.Put(tok)
	}
}

// Entity is a civilization definition.
type Entity struct {
	Info
	Tags tags.List[vocab.EntityKind] `json:"tags"`
}

func NewEntity(meta Metadata, identifier string) *Entity {
	return &Entity{Info: newInfo(meta, ObjectEntity, identifier)}
}

func (e *Entity) Kind() ObjectType { return ObjectEntity }
func (e *Entity) Tokens() []string { return e.Tags.Encode() }

func (e *Entity) ApplyTag(key, value string) {
	if tok, ok := vocab.Entity.Decode(key, value); ok {
		e.Tags.Put(tok)
	}
}

// Creatures returns the creature identifiers the entity is made of.
func (e *Entity) Creatures() []string {
	var out []string
	for _, t := range e.Tags.All(vocab.EntityCreature) {
		if v, ok := t.Value.(tags.SingleValue[string]); ok {
			out = append(out, v.V)
		}
	}
	return out
}

// Graphic is a sprite definition for a creature, caste, plant or tile.
type Graphic struct {
	Info
	GraphicType string                       `json:"graphicType"`
	Caste       string                       `json:"caste,omitempty"`
	Tags        tags.List[vocab.GraphicKind] `json:"tags"`
}

// NewGraphic creates a graphic from its start token, e.g.
// CREATURE_CASTE_GRAPHICS:FOX:MALE.
func NewGraphic(meta Metadata, graphicType, identifier, caste string) *Graphic {
	info := newInfo(meta, ObjectGraphics, identifier)
	if caste != "" {
		info.ObjectID = ObjectID(meta.Module.Location, ObjectGraphics, identifier+":"+caste, meta.Module.NumericVersion)
	}
	return &Graphic{Info: info, GraphicType: graphicType, Caste: caste}
}

func (g *Graphic) Kind() ObjectType { return ObjectGraphics }
func (g *Graphic) Tokens() []string { return g.Tags.Encode() }

func (g *Graphic) ApplyTag(key, value string) {
	if tok, ok := vocab.Graphic.Decode(key, value); ok {
		g.Tags.Put(tok)
	}
}

// TilePage is an image atlas referenced by graphics.
type TilePage struct {
	Info
	Tags tags.List[vocab.TilePageKind] `json:"tags"`
}

func NewTilePage(meta Metadata, identifier string) *TilePage {
	return &TilePage{Info: newInfo(meta, ObjectTilePage, identifier)}
}

func (t *TilePage) Kind() ObjectType { return ObjectTilePage }
func (t *TilePage) Tokens() []string { return t.Tags.Encode() }

func (t *TilePage) ApplyTag(key, value string) {
	if tok, ok := vocab.TilePage.Decode(key, value); ok {
		t.Tags.Put(tok)
	}
}

// File returns the image path relative to the module.
func (t *TilePage) File() string {
	v, _ := tags.Get[tags.SingleValue[string]](t.Tags, vocab.TilePageFile)
	return v.V
}

// SelectCreature is a set of edits aimed at a creature defined elsewhere.
// Its tags stay raw since they are applied later against the target.
type SelectCreature struct {
	Info
	Tags []string `json:"tags"`
}

func NewSelectCreature(meta Metadata, identifier string, raw []string) *SelectCreature {
	return &SelectCreature{
		Info: newInfo(meta, ObjectSelectCreature, identifier),
		Tags: raw,
	}
}

func (s *SelectCreature) Kind() ObjectType { return ObjectSelectCreature }

func (s *SelectCreature) Tokens() []string {
	out := make([]string, len(s.Tags))
	for i, t := range s.Tags {
		out[i] = "[" + t + "]"
	}
	return out
}
