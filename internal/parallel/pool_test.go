package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if want := runtime.GOMAXPROCS(0); pool.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), want)
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close() // second close is a no-op

	ran := 0
	pool.ExecuteAll([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("ran = %d after Close, want 2 (inline)", ran)
	}
}

func TestBands(t *testing.T) {
	tests := []struct {
		name   string
		height int
		n      int
		want   []Band
	}{
		{"empty", 0, 4, nil},
		{"even", 8, 4, []Band{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder goes first", 7, 3, []Band{{0, 3}, {3, 5}, {5, 7}}},
		{"more bands than rows", 2, 8, []Band{{0, 1}, {1, 2}}},
		{"zero bands means one", 5, 0, []Band{{0, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Bands(tt.height, tt.n)); diff != "" {
				t.Errorf("Bands(%d, %d) mismatch (-want +got):\n%s", tt.height, tt.n, diff)
			}
		})
	}
}

// TestRowsCoversEveryRowOnce checks that bands tile the raster exactly.
func TestRowsCoversEveryRowOnce(t *testing.T) {
	for _, pool := range []*WorkerPool{nil, NewWorkerPool(3)} {
		var mu sync.Mutex
		seen := make([]int, 101)
		pool.Rows(len(seen), func(y0, y1 int) {
			mu.Lock()
			defer mu.Unlock()
			for y := y0; y < y1; y++ {
				seen[y]++
			}
		})
		for y, n := range seen {
			if n != 1 {
				t.Errorf("row %d visited %d times", y, n)
			}
		}
		if pool != nil {
			pool.Close()
		}
	}
}
