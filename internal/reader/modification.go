package reader

import (
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
)

// Modification says where a run of raw tags belongs in a creature bundle,
// or records a deferred operation against other objects.
type Modification interface {
	modification()
}

// MainRawBody is content read at the default insertion point.
type MainRawBody struct{ Raws []string }

// AddToEnding is content read after GO_TO_END.
type AddToEnding struct{ Raws []string }

// AddToBeginning is content read after GO_TO_START.
type AddToBeginning struct{ Raws []string }

// AddBeforeTag is content read after GO_TO_TAG:Tag.
type AddBeforeTag struct {
	Tag  string
	Raws []string
}

// CopyTagsFrom names the creature the bundle clones.
type CopyTagsFrom struct{ Identifier string }

// ApplyCreatureVariation invokes a variation with positional arguments.
type ApplyCreatureVariation struct {
	Identifier string
	Args       []string
}

func (MainRawBody) modification()            {}
func (AddToEnding) modification()            {}
func (AddToBeginning) modification()         {}
func (AddBeforeTag) modification()           {}
func (CopyTagsFrom) modification()           {}
func (ApplyCreatureVariation) modification() {}

// Invocation returns the variation call as ID[:arg1:arg2...].
func (a ApplyCreatureVariation) Invocation() string {
	return strings.Join(append([]string{a.Identifier}, a.Args...), ":")
}

func spliceRaws(m Modification) []string {
	switch m := m.(type) {
	case MainRawBody:
		return m.Raws
	case AddToEnding:
		return m.Raws
	case AddToBeginning:
		return m.Raws
	case AddBeforeTag:
		return m.Raws
	}
	return nil
}

func withRaws(m Modification, raw []string) Modification {
	switch m := m.(type) {
	case MainRawBody:
		m.Raws = raw
		return m
	case AddToEnding:
		m.Raws = raw
		return m
	case AddToBeginning:
		m.Raws = raw
		return m
	case AddBeforeTag:
		m.Raws = raw
		return m
	}
	return m
}

// sameSplice reports whether b can be folded into a.
func sameSplice(a, b Modification) bool {
	switch a := a.(type) {
	case MainRawBody:
		_, ok := b.(MainRawBody)
		return ok
	case AddToEnding:
		_, ok := b.(AddToEnding)
		return ok
	case AddToBeginning:
		_, ok := b.(AddToBeginning)
		return ok
	case AddBeforeTag:
		bt, ok := b.(AddBeforeTag)
		return ok && bt.Tag == a.Tag
	}
	return false
}

// UnprocessedRaw is a creature or select-creature bundle whose content is
// still a list of modifications.
type UnprocessedRaw struct {
	Kind          raws.ObjectType
	Identifier    string
	Metadata      raws.Metadata
	Modifications []Modification
}

func NewUnprocessedRaw(kind raws.ObjectType, meta raws.Metadata, identifier string) *UnprocessedRaw {
	return &UnprocessedRaw{Kind: kind, Identifier: identifier, Metadata: meta}
}

// AddModification appends m, folding it into the previous entry when both
// splice at the same insertion point.
func (u *UnprocessedRaw) AddModification(m Modification) {
	if n := len(u.Modifications); n > 0 && sameSplice(u.Modifications[n-1], m) {
		last := u.Modifications[n-1]
		merged := append(slices.Clip(spliceRaws(last)), spliceRaws(m)...)
		u.Modifications[n-1] = withRaws(last, merged)
		return
	}
	u.Modifications = append(u.Modifications, m)
}

// Flatten splices every positional modification into one ordered raw
// stream: beginning content, then the body, then ending content, with each
// GO_TO_TAG run inserted before the first raw matching its tag.
func (u *UnprocessedRaw) Flatten() []string {
	var body, begin, end []string
	var before []AddBeforeTag
	for _, m := range u.Modifications {
		switch m := m.(type) {
		case MainRawBody:
			body = append(body, m.Raws...)
		case AddToBeginning:
			begin = append(begin, m.Raws...)
		case AddToEnding:
			end = append(end, m.Raws...)
		case AddBeforeTag:
			before = append(before, m)
		}
	}

	out := make([]string, 0, len(begin)+len(body)+len(end))
	out = append(out, begin...)
	out = append(out, body...)
	out = append(out, end...)

	for _, b := range before {
		i := indexOfTag(out, b.Tag)
		if i < 0 {
			log.Warn().
				Str("identifier", u.Identifier).
				Str("tag", b.Tag).
				Str("file", u.Metadata.RawPath).
				Msg("GO_TO_TAG target not found, appending to end")
			out = append(out, b.Raws...)
			continue
		}
		out = slices.Insert(out, i, b.Raws...)
	}
	return out
}

// indexOfTag finds the first raw equal to tag or whose key is tag.
func indexOfTag(raw []string, tag string) int {
	for i, r := range raw {
		if r == tag {
			return i
		}
		if key, _ := splitRaw(r); key == tag {
			return i
		}
	}
	return -1
}

// Resolve decodes the bundle into its final object. Select-creature
// bundles keep their flattened raws undecoded.
func (u *UnprocessedRaw) Resolve() raws.Object {
	flat := u.Flatten()

	if u.Kind == raws.ObjectSelectCreature {
		for _, m := range u.Modifications {
			switch m := m.(type) {
			case CopyTagsFrom:
				flat = append(flat, "COPY_TAGS_FROM:"+m.Identifier)
			case ApplyCreatureVariation:
				flat = append(flat, "APPLY_CREATURE_VARIATION:"+m.Invocation())
			}
		}
		return raws.NewSelectCreature(u.Metadata, u.Identifier, flat)
	}

	c := raws.NewCreature(u.Metadata, u.Identifier)
	for _, m := range u.Modifications {
		switch m := m.(type) {
		case CopyTagsFrom:
			c.CopyTagsFrom = m.Identifier
		case ApplyCreatureVariation:
			c.Variations = append(c.Variations, m.Invocation())
		}
	}
	for _, raw := range flat {
		c.ApplyTag(splitRaw(raw))
	}
	return c
}
