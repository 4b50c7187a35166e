package graph

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
)

// Relationship types written to the graph.
const (
	RelCopiesTagsFrom   = "COPIES_TAGS_FROM"
	RelAppliesVariation = "APPLIES_VARIATION"
	RelSelects          = "SELECTS"
	RelIncludesCreature = "INCLUDES_CREATURE"
	RelDepicts          = "DEPICTS"
)

// Edge is a directed reference between two objects.
type Edge struct {
	From uuid.UUID
	To   uuid.UUID
	Type string
	// Args holds invocation arguments for APPLIES_VARIATION.
	Args []string
}

type key struct {
	kind raws.ObjectType
	id   string
}

// targets maps each (kind, identifier) to the object a reference resolves
// to: the highest module version, first seen on ties.
type targets map[key]raws.Object

func newTargets(objects []raws.Object) targets {
	t := make(targets, len(objects))
	for _, o := range objects {
		k := key{o.Kind(), strings.ToLower(o.ObjectInfo().Identifier)}
		cur, ok := t[k]
		if !ok || version(o) > version(cur) {
			t[k] = o
		}
	}
	return t
}

func version(o raws.Object) uint32 {
	return o.ObjectInfo().Metadata.Module.NumericVersion
}

func (t targets) lookup(kind raws.ObjectType, identifier string) (uuid.UUID, bool) {
	o, ok := t[key{kind, strings.ToLower(identifier)}]
	if !ok {
		return uuid.Nil, false
	}
	return o.ObjectInfo().ObjectID, true
}

// Edges derives every reference edge in the object set. References that
// name no known object are skipped.
func Edges(objects []raws.Object) []Edge {
	t := newTargets(objects)
	var out []Edge
	missing := 0
	link := func(from uuid.UUID, kind raws.ObjectType, identifier, rel string, args []string) {
		to, ok := t.lookup(kind, identifier)
		if !ok {
			missing++
			log.Debug().Str("rel", rel).Str("target", identifier).Msg("Reference target not found")
			return
		}
		out = append(out, Edge{From: from, To: to, Type: rel, Args: args})
	}

	for _, o := range objects {
		from := o.ObjectInfo().ObjectID
		switch v := o.(type) {
		case *raws.Creature:
			if v.CopyTagsFrom != "" {
				link(from, raws.ObjectCreature, v.CopyTagsFrom, RelCopiesTagsFrom, nil)
			}
			for _, inv := range v.Variations {
				parts := strings.Split(inv, ":")
				link(from, raws.ObjectCreatureVariation, parts[0], RelAppliesVariation, parts[1:])
			}
			for _, sc := range v.SelectCreatures {
				out = append(out, Edge{From: sc.ObjectID, To: from, Type: RelSelects})
			}
		case *raws.SelectCreature:
			link(from, raws.ObjectCreature, v.Identifier, RelSelects, nil)
		case *raws.Entity:
			for _, id := range v.Creatures() {
				link(from, raws.ObjectCreature, id, RelIncludesCreature, nil)
			}
		case *raws.Graphic:
			switch v.GraphicType {
			case "CREATURE_GRAPHICS", "CREATURE_CASTE_GRAPHICS":
				link(from, raws.ObjectCreature, v.Identifier, RelDepicts, nil)
			case "PLANT_GRAPHICS":
				link(from, raws.ObjectPlant, v.Identifier, RelDepicts, nil)
			}
		}
	}

	if missing > 0 {
		log.Warn().Int("missing", missing).Msg("Skipped references to unknown objects")
	}
	return out
}
