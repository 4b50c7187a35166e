// Package variation applies creature variations, the named and
// parameterized rule templates invoked by APPLY_CREATURE_VARIATION.
package variation

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"rawgraph/internal/interpolation"
	"rawgraph/internal/raws"
	"rawgraph/internal/worker"
)

// Index finds variations by identifier, ignoring case.
type Index map[string]*raws.CreatureVariation

// NewIndex indexes the variations among objects. When an identifier is
// defined more than once the highest module version wins, then the first
// seen.
func NewIndex(objects []raws.Object) Index {
	idx := make(Index)
	for _, o := range objects {
		v, ok := o.(*raws.CreatureVariation)
		if !ok {
			continue
		}
		key := strings.ToLower(v.Identifier)
		if prev, ok := idx[key]; ok && prev.Metadata.Module.NumericVersion >= v.Metadata.Module.NumericVersion {
			continue
		}
		idx[key] = v
	}
	return idx
}

func (idx Index) Lookup(identifier string) (*raws.CreatureVariation, bool) {
	v, ok := idx[strings.ToLower(identifier)]
	return v, ok
}

// Expand returns a copy of c with each invoked variation applied in order.
// A creature already expanded, or invoking nothing, is returned as is.
func Expand(c *raws.Creature, idx Index) *raws.Creature {
	if c.VariationsApplied || len(c.Variations) == 0 {
		return c
	}
	out := c.Clone()
	for _, call := range c.Variations {
		parts := strings.Split(call, ":")
		v, ok := idx.Lookup(parts[0])
		if !ok {
			log.Warn().Str("creature", c.Identifier).Str("variation", parts[0]).Msg("Creature variation not found")
			continue
		}
		Apply(out, v, parts[1:])
	}
	out.VariationsApplied = true
	return out
}

// Apply runs v's rules against c in declared order, starting from the ALL
// caste.
func Apply(c *raws.Creature, v *raws.CreatureVariation, args []string) {
	c.SelectCaste(raws.CasteAll)
	for _, rule := range v.Rules {
		if rule.Condition != nil && !conditionHolds(c, v, *rule.Condition, args) {
			continue
		}
		r := substitute(c, v, rule, args)
		switch r.Kind {
		case raws.RuleSelectCaste:
			c.SelectCaste(r.Value)
		case raws.RuleAddTag:
			c.ApplyTag(r.Tag, r.Value)
		case raws.RuleRemoveTag:
			c.RemoveTag(r.Tag, r.Value)
		case raws.RuleConvertTag:
			if r.Tag == "" {
				log.Warn().Str("creature", c.Identifier).Str("variation", v.Identifier).Msg("Convert rule has no master tag")
				continue
			}
			c.ConvertTag(r.Tag, r.Target, r.Replacement)
		}
	}
}

func conditionHolds(c *raws.Creature, v *raws.CreatureVariation, cond raws.Condition, args []string) bool {
	if cond.Arg < 1 || cond.Arg > len(args) {
		log.Warn().
			Str("creature", c.Identifier).
			Str("variation", v.Identifier).
			Int("arg", cond.Arg).
			Int("args", len(args)).
			Msg("Conditional rule argument out of range")
		return false
	}
	return args[cond.Arg-1] == cond.Value
}

// substitute fills the !ARGn placeholders in every string field of r.
func substitute(c *raws.Creature, v *raws.CreatureVariation, r raws.Rule, args []string) raws.Rule {
	for _, field := range []*string{&r.Tag, &r.Value, &r.Target, &r.Replacement} {
		out, missing := interpolation.Substitute(*field, args)
		for _, m := range missing {
			log.Warn().
				Str("creature", c.Identifier).
				Str("variation", v.Identifier).
				Str("placeholder", m.Placeholder).
				Int("args", len(args)).
				Msg("Variation argument out of range")
		}
		*field = out
	}
	return r
}

// ExpandAll expands every creature in objects in parallel and returns a
// new slice where each expanded creature sits where its original did.
func ExpandAll(ctx context.Context, objects []raws.Object, workers int) ([]raws.Object, error) {
	idx := NewIndex(objects)

	var positions []int
	var todo []*raws.Creature
	for i, o := range objects {
		c, ok := o.(*raws.Creature)
		if !ok || c.VariationsApplied || len(c.Variations) == 0 {
			continue
		}
		positions = append(positions, i)
		todo = append(todo, c)
	}

	expanded, err := worker.Map(ctx, workers, todo, func(_ context.Context, c *raws.Creature) (*raws.Creature, error) {
		return Expand(c, idx), nil
	})
	if err != nil {
		return nil, fmt.Errorf("expand creature variations: %w", err)
	}

	out := make([]raws.Object, len(objects))
	copy(out, objects)
	for i, pos := range positions {
		out[pos] = expanded[i]
	}

	log.Info().Int("creatures", len(todo)).Int("variations", len(idx)).Msg("Expanded creature variations")
	return out, nil
}
