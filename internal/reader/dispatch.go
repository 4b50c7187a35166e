package reader

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
	"rawgraph/internal/textutil"
)

// state is the dispatcher's fold value. At most one of object and bundle
// is open at a time.
type state struct {
	meta   raws.Metadata
	result *FileResult

	object raws.Builder
	bundle *UnprocessedRaw
	// splice is the insertion point for buffered bundle content.
	splice Modification
	buf    []string
	// skipping is set while inside an object the reader does not decode.
	skipping string
}

func newState(meta raws.Metadata) *state {
	return &state{meta: meta, result: &FileResult{}}
}

func (s *state) step(tok Token) error {
	switch tok.Key {
	case "OBJECT":
		return s.checkObject(tok.Value)

	case "CREATURE":
		if e, ok := s.object.(*raws.Entity); ok {
			e.ApplyTag(tok.Key, tok.Value)
			return nil
		}
		s.openBundle(raws.ObjectCreature, tok.Value)
	case "SELECT_CREATURE":
		s.openBundle(raws.ObjectSelectCreature, tok.Value)

	case "PLANT":
		s.openObject(raws.NewPlant(s.meta, tok.Value))
	case "INORGANIC":
		s.openObject(raws.NewInorganic(s.meta, tok.Value))
	case "SELECT_INORGANIC":
		s.flush()
		s.skipping = tok.Raw()
		log.Debug().Str("file", s.meta.RawPath).Str("token", tok.Raw()).Msg("Skipping selection of an existing inorganic")
	case "MATERIAL_TEMPLATE":
		s.openObject(raws.NewMaterialTemplate(s.meta, tok.Value))
	case "ENTITY":
		s.openObject(raws.NewEntity(s.meta, tok.Value))
	case "CREATURE_VARIATION":
		s.openObject(raws.NewCreatureVariation(s.meta, tok.Value))
	case "TILE_PAGE":
		s.openObject(raws.NewTilePage(s.meta, tok.Value))
	case "CREATURE_GRAPHICS", "TILE_GRAPHICS", "PLANT_GRAPHICS":
		s.openObject(raws.NewGraphic(s.meta, tok.Key, tok.Value, ""))
	case "CREATURE_CASTE_GRAPHICS":
		id, caste := splitRaw(tok.Value)
		s.openObject(raws.NewGraphic(s.meta, tok.Key, id, caste))

	case "CASTE", "SELECT_CASTE":
		if s.bundle != nil {
			s.buf = append(s.buf, tok.Key+":"+tok.Value)
			return nil
		}
		s.applyToObject(tok)

	case "GO_TO_END":
		s.switchSplice(tok, AddToEnding{})
	case "GO_TO_START":
		s.switchSplice(tok, AddToBeginning{})
	case "GO_TO_TAG":
		s.switchSplice(tok, AddBeforeTag{Tag: tok.Value})

	case "COPY_TAGS_FROM":
		if s.bundle == nil {
			s.applyToObject(tok)
			return nil
		}
		s.bundle.AddModification(CopyTagsFrom{Identifier: tok.Value})
	case "APPLY_CREATURE_VARIATION":
		if s.bundle == nil {
			s.applyToObject(tok)
			return nil
		}
		id, args := splitRaw(tok.Value)
		m := ApplyCreatureVariation{Identifier: id}
		if args != "" {
			m.Args = strings.Split(args, ":")
		}
		s.bundle.AddModification(m)

	default:
		if s.bundle != nil {
			s.buf = append(s.buf, tok.Raw())
			return nil
		}
		s.applyToObject(tok)
	}
	return nil
}

func (s *state) checkObject(value string) error {
	kind, ok := raws.ParseObjectType(value)
	if !ok {
		return fmt.Errorf("%w: unknown object type %s", ErrInvalidRawFile, value)
	}
	if kind != s.meta.ObjectType {
		return fmt.Errorf("%w: object type mismatch: %s != %s", ErrInvalidRawFile, s.meta.ObjectType, kind)
	}
	return nil
}

func (s *state) applyToObject(tok Token) {
	if s.object == nil {
		if s.skipping == "" {
			log.Debug().Str("file", s.meta.RawPath).Str("token", textutil.Truncate(tok.Raw(), 80)).Msg("Tag outside of any object")
		}
		return
	}
	s.object.ApplyTag(tok.Key, tok.Value)
}

func (s *state) openObject(b raws.Builder) {
	s.flush()
	s.object = b
}

func (s *state) openBundle(kind raws.ObjectType, identifier string) {
	s.flush()
	s.bundle = NewUnprocessedRaw(kind, s.meta, identifier)
	s.splice = MainRawBody{}
}

// switchSplice stores the content buffered so far and moves the insertion
// point.
func (s *state) switchSplice(tok Token, next Modification) {
	if s.bundle == nil {
		log.Debug().Str("file", s.meta.RawPath).Str("token", tok.Raw()).Msg("Insertion directive outside of a creature")
		return
	}
	s.pushSplice()
	s.splice = next
}

func (s *state) pushSplice() {
	if len(s.buf) == 0 {
		return
	}
	s.bundle.AddModification(withRaws(s.splice, s.buf))
	s.buf = nil
}

// flush closes whatever is open.
func (s *state) flush() {
	if s.bundle != nil {
		s.pushSplice()
		s.result.Unprocessed = append(s.result.Unprocessed, s.bundle)
		s.bundle = nil
		s.splice = nil
	}
	if s.object != nil {
		s.result.Objects = append(s.result.Objects, s.object)
		s.object = nil
	}
	s.skipping = ""
}
