// Package pipeline builds the final object set from a set of raw files:
// parallel per-file reading, then the corpus-wide passes in fixed order.
package pipeline

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"rawgraph/internal/filewalker"
	"rawgraph/internal/merge"
	"rawgraph/internal/raws"
	"rawgraph/internal/reader"
	"rawgraph/internal/variation"
	"rawgraph/internal/worker"
)

// Options controls a build.
type Options struct {
	Workers int
	// ObjectTypes restricts reading to files of these categories. Empty
	// means every parsable category.
	ObjectTypes      []raws.ObjectType
	SkipCopyTagsFrom bool
	SkipVariations   bool
}

// Failure is a file that contributed nothing.
type Failure struct {
	Path string
	Err  error
}

// Result is the resolved corpus.
type Result struct {
	Objects  []raws.Object
	Failures []Failure
}

// Count returns how many objects of each kind the result holds.
func (r *Result) Count() map[raws.ObjectType]int {
	out := make(map[raws.ObjectType]int)
	for _, o := range r.Objects {
		out[o.Kind()]++
	}
	return out
}

// Build reads files and resolves the corpus. Per-file failures are
// collected in the result; only cancellation aborts the build.
func Build(ctx context.Context, opts Options, files []filewalker.FileEntry) (*Result, error) {
	var selected []filewalker.FileEntry
	for _, f := range files {
		if len(opts.ObjectTypes) > 0 && !slices.Contains(opts.ObjectTypes, f.ObjectType) {
			continue
		}
		selected = append(selected, f)
	}

	pool := worker.NewPool(opts.Workers, readFile, func(f filewalker.FileEntry) string { return f.Path })
	tasks := pool.Execute(ctx, selected)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read raw files: %w", err)
	}

	res := &Result{}
	for _, t := range tasks {
		if t.Err != nil {
			res.Failures = append(res.Failures, Failure{Path: t.Input.Path, Err: t.Err})
			continue
		}
		res.Objects = append(res.Objects, t.Value...)
	}
	log.Info().
		Int("files", len(selected)).
		Int("failed", len(res.Failures)).
		Int("objects", len(res.Objects)).
		Msg("Read raw files")

	var err error
	if !opts.SkipCopyTagsFrom {
		res.Objects, err = merge.CopyTagsFrom(ctx, res.Objects, opts.Workers)
		if err != nil {
			return nil, fmt.Errorf("resolve copy tags from: %w", err)
		}
	}
	res.Objects = merge.AbsorbSelectCreatures(res.Objects)
	if !opts.SkipVariations {
		res.Objects, err = variation.ExpandAll(ctx, res.Objects, opts.Workers)
		if err != nil {
			return nil, fmt.Errorf("expand variations: %w", err)
		}
	}
	return res, nil
}

// readFile reads one file and resolves its creature bundles.
func readFile(_ context.Context, f filewalker.FileEntry) ([]raws.Object, error) {
	fr, err := reader.ParseFile(f.Path, f.Module, f.ObjectType)
	if err != nil {
		return nil, err
	}
	out := make([]raws.Object, 0, fr.Len())
	out = append(out, fr.Objects...)
	for _, u := range fr.Unprocessed {
		out = append(out, u.Resolve())
	}
	return out, nil
}
