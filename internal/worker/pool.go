// Package worker runs per-file and per-object work with bounded
// concurrency.
package worker

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Result pairs an input with what processing it produced.
type Result[T any, R any] struct {
	Input T
	Value R
	Err   error
}

// ProcessFunc processes a single input.
type ProcessFunc[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool fans inputs out to a fixed number of goroutines. A failing input
// does not stop the others.
type Pool[T any, R any] struct {
	workers int
	process ProcessFunc[T, R]
	label   func(T) string
}

// NewPool creates a pool. label names an input in failure logs and may be
// nil.
func NewPool[T any, R any](workers int, fn ProcessFunc[T, R], label func(T) string) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{
		workers: workers,
		process: fn,
		label:   label,
	}
}

// Execute processes every input and returns the results in input order.
// Inputs not reached before ctx is cancelled carry ctx's error.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Result[T, R] {
	results := make([]Result[T, R], len(inputs))
	for i, in := range inputs {
		results[i].Input = in
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for range min(p.workers, len(inputs)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				v, err := p.process(ctx, inputs[idx])
				results[idx].Value, results[idx].Err = v, err
				if err != nil {
					ev := log.Error().Err(err).Int("index", idx)
					if p.label != nil {
						ev = ev.Str("input", p.label(inputs[idx]))
					}
					ev.Msg("Task failed")
				}
			}
		}()
	}

	sent := 0
feed:
	for ; sent < len(inputs); sent++ {
		select {
		case <-ctx.Done():
			break feed
		case next <- sent:
		}
	}
	close(next)
	wg.Wait()

	for i := sent; i < len(inputs); i++ {
		results[i].Err = ctx.Err()
	}
	return results
}

// Map applies fn to every input with at most limit calls in flight and
// returns outputs in input order. The first error cancels the rest.
func Map[T any, R any](ctx context.Context, limit int, inputs []T, fn func(ctx context.Context, input T) (R, error)) ([]R, error) {
	out := make([]R, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i, in := range inputs {
		g.Go(func() error {
			r, err := fn(ctx, in)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Batch splits items into consecutive chunks of at most size items.
func Batch[T any](items []T, size int) [][]T {
	return slices.Collect(slices.Chunk(items, max(size, 1)))
}
