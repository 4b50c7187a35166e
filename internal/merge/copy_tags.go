// Package merge resolves the corpus-wide relations between creatures:
// COPY_TAGS_FROM cloning and SELECT_CREATURE edit bundles.
package merge

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"rawgraph/internal/raws"
	"rawgraph/internal/tags"
	"rawgraph/internal/worker"
)

// Combine overlays target on a clone of source. The result keeps target's
// identity and clone pointer. Creature-wide lists such as BIOME are unioned;
// a caste's repeatable lists are replaced by the target's.
func Combine(source, target *raws.Creature) *raws.Creature {
	out := source.Clone()
	out.Info = target.Info
	out.Tags = tags.MergeDistinct(out.Tags, target.Tags)
	for _, tc := range target.Castes {
		if sc := out.Caste(tc.Identifier); sc != nil {
			sc.Tags = tags.Merge(sc.Tags, tc.Tags)
			continue
		}
		out.Castes = append(out.Castes, tc.Clone())
	}
	out.SelectCaste(target.CurrentCaste().Identifier)

	// Variations already baked into the source's tags are not inherited.
	out.Variations = nil
	if !source.VariationsApplied {
		out.Variations = slices.Clone(source.Variations)
	}
	out.Variations = append(out.Variations, target.Variations...)
	out.VariationsApplied = target.VariationsApplied

	out.CopyTagsFrom = target.CopyTagsFrom
	out.CopyTagsApplied = true
	out.SelectCreatures = slices.Clone(target.SelectCreatures)
	return out
}

// candidates maps each lowercased creature identifier to the positions of
// its definitions, best first: highest module version, then first seen.
func candidates(objects []raws.Object) map[string][]int {
	out := make(map[string][]int)
	for i, o := range objects {
		if c, ok := o.(*raws.Creature); ok {
			key := strings.ToLower(c.Identifier)
			out[key] = append(out[key], i)
		}
	}
	version := func(i int) uint32 { return objects[i].ObjectInfo().Metadata.Module.NumericVersion }
	for _, positions := range out {
		slices.SortStableFunc(positions, func(a, b int) int {
			return cmp.Compare(version(b), version(a))
		})
	}
	return out
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// node is the resolution plan for one creature.
type node struct {
	state  visitState
	depth  int
	source int
	// merge is false for creatures left as they are.
	merge bool
	// cyclic marks creatures on, or cloning from, a reference cycle.
	cyclic bool
}

type planner struct {
	objects []raws.Object
	sources map[string][]int
	nodes   map[int]*node
}

// source picks the definition of identifier to clone from. A creature
// redefining the identifier it clones copies from another definition.
func (p *planner) source(pos int, identifier string) (int, bool) {
	for _, i := range p.sources[strings.ToLower(identifier)] {
		if i != pos {
			return i, true
		}
	}
	return 0, false
}

// visit computes the depth of the creature at pos: one more than the depth
// of its source, zero when it clones nothing.
func (p *planner) visit(pos int) *node {
	n, ok := p.nodes[pos]
	if !ok {
		n = &node{}
		p.nodes[pos] = n
	}
	switch n.state {
	case visited:
		return n
	case visiting:
		n.cyclic = true
		return n
	}

	c := p.objects[pos].(*raws.Creature)
	if c.CopyTagsFrom == "" || c.CopyTagsApplied {
		n.state = visited
		return n
	}
	src, ok := p.source(pos, c.CopyTagsFrom)
	if !ok {
		log.Warn().
			Str("creature", c.Identifier).
			Str("source", c.CopyTagsFrom).
			Str("file", c.Metadata.RawPath).
			Msg("COPY_TAGS_FROM source not found")
		n.state = visited
		return n
	}

	n.state = visiting
	sn := p.visit(src)
	n.state = visited
	if sn.cyclic || n.cyclic {
		n.cyclic = true
		log.Warn().
			Str("creature", c.Identifier).
			Str("source", c.CopyTagsFrom).
			Msg("COPY_TAGS_FROM cycle, creature left unchanged")
		return n
	}
	n.source = src
	n.depth = sn.depth + 1
	n.merge = true
	return n
}

type job struct {
	target int
	source int
}

// CopyTagsFrom resolves every COPY_TAGS_FROM pointer in objects. Sources
// that clone are resolved before the creatures cloning them; each depth
// runs in parallel and is committed before the next. The returned slice
// holds the merged creatures at their original positions.
func CopyTagsFrom(ctx context.Context, objects []raws.Object, workers int) ([]raws.Object, error) {
	p := &planner{
		objects: objects,
		sources: candidates(objects),
		nodes:   make(map[int]*node),
	}

	var layers [][]job
	for i, o := range objects {
		if _, ok := o.(*raws.Creature); !ok {
			continue
		}
		n := p.visit(i)
		if !n.merge {
			continue
		}
		for len(layers) < n.depth {
			layers = append(layers, nil)
		}
		layers[n.depth-1] = append(layers[n.depth-1], job{target: i, source: n.source})
	}

	out := slices.Clone(objects)
	merged := 0
	for depth, layer := range layers {
		results, err := worker.Map(ctx, workers, layer, func(_ context.Context, j job) (*raws.Creature, error) {
			return Combine(out[j.source].(*raws.Creature), out[j.target].(*raws.Creature)), nil
		})
		if err != nil {
			return nil, fmt.Errorf("copy tags at depth %d: %w", depth+1, err)
		}
		for i, j := range layer {
			out[j.target] = results[i]
		}
		merged += len(layer)
	}

	log.Info().Int("creatures", merged).Int("depth", len(layers)).Msg("Resolved COPY_TAGS_FROM")
	return out, nil
}
