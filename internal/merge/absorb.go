package merge

import (
	"strings"

	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
	"rawgraph/internal/textutil"
)

// AbsorbSelectCreatures attaches every SELECT_CREATURE bundle to the
// creature it names, unapplied, and drops the bundles from the corpus.
// When several creatures share the name each of them receives the bundles.
// Bundles naming no creature are dropped with a warning.
func AbsorbSelectCreatures(objects []raws.Object) []raws.Object {
	byTarget := make(map[string][]*raws.SelectCreature)
	var order []string
	for _, o := range objects {
		s, ok := o.(*raws.SelectCreature)
		if !ok {
			continue
		}
		key := strings.ToLower(s.Identifier)
		if _, seen := byTarget[key]; !seen {
			order = append(order, key)
		}
		byTarget[key] = append(byTarget[key], s)
	}
	if len(order) == 0 {
		return objects
	}

	creatures := candidates(objects)
	targets := make(map[int][]*raws.SelectCreature)
	for _, key := range order {
		positions := creatures[key]
		if len(positions) == 0 {
			for _, s := range byTarget[key] {
				log.Warn().
					Str("target", s.Identifier).
					Str("file", s.Metadata.RawPath).
					Str("tags", textutil.Truncate(textutil.Bracket(s.Tags), 120)).
					Msg("SELECT_CREATURE target not found, bundle dropped")
			}
			continue
		}
		for _, pos := range positions {
			targets[pos] = append(targets[pos], byTarget[key]...)
		}
	}

	out := make([]raws.Object, 0, len(objects))
	absorbed := 0
	for i, o := range objects {
		if o.Kind() == raws.ObjectSelectCreature {
			continue
		}
		bundles, ok := targets[i]
		if !ok {
			out = append(out, o)
			continue
		}
		c := o.(*raws.Creature).Clone()
		c.SelectCreatures = append(c.SelectCreatures, bundles...)
		absorbed += len(bundles)
		out = append(out, c)
	}

	log.Info().Int("bundles", absorbed).Int("creatures", len(targets)).Msg("Absorbed SELECT_CREATURE bundles")
	return out
}
