package worker

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
)

func TestPoolExecuteKeepsOrderAndErrors(t *testing.T) {
	boom := errors.New("boom")
	pool := NewPool(3, func(_ context.Context, in int) (string, error) {
		if in == 2 {
			return "", boom
		}
		return strconv.Itoa(in * 10), nil
	}, strconv.Itoa)

	results := pool.Execute(context.Background(), []int{0, 1, 2, 3, 4})
	if len(results) != 5 {
		t.Fatalf("results = %d", len(results))
	}
	for i, r := range results {
		if r.Input != i {
			t.Fatalf("result %d has input %d", i, r.Input)
		}
		if i == 2 {
			if !errors.Is(r.Err, boom) {
				t.Fatalf("result 2 err = %v", r.Err)
			}
			continue
		}
		if r.Err != nil || r.Value != strconv.Itoa(i*10) {
			t.Fatalf("result %d = %+v", i, r)
		}
	}
}

func TestPoolExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	pool := NewPool(2, func(_ context.Context, in int) (int, error) {
		calls.Add(1)
		return in, nil
	}, nil)

	results := pool.Execute(ctx, []int{1, 2, 3})
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if int(calls.Load())+failed != 3 {
		t.Fatalf("calls = %d, failed = %d", calls.Load(), failed)
	}
}

func TestMap(t *testing.T) {
	var inFlight, peak atomic.Int32
	out, err := Map(context.Background(), 2, []int{1, 2, 3, 4, 5, 6}, func(_ context.Context, in int) (int, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return in * in, nil
	})
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	for i, v := range out {
		if v != (i+1)*(i+1) {
			t.Fatalf("out[%d] = %d", i, v)
		}
	}
	if peak.Load() > 2 {
		t.Fatalf("peak concurrency = %d, limit 2", peak.Load())
	}
}

func TestMapReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Map(context.Background(), 4, []int{1, 2, 3}, func(_ context.Context, in int) (int, error) {
		if in == 2 {
			return 0, boom
		}
		return in, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestBatch(t *testing.T) {
	got := Batch([]int{1, 2, 3, 4, 5}, 2)
	if len(got) != 3 || len(got[2]) != 1 || got[2][0] != 5 {
		t.Fatalf("Batch() = %v", got)
	}
	if got := Batch([]int{1, 2}, 0); len(got) != 2 {
		t.Fatalf("Batch(size 0) = %v", got)
	}
}
