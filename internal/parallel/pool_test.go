package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

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

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() {
			counter.Add(1)
		}
	}

	if err := pool.ExecuteAll(context.Background(), work); err != nil {
		t.Fatalf("ExecuteAll() = %v", err)
	}
	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if err := pool.ExecuteAll(context.Background(), nil); err != nil {
		t.Errorf("ExecuteAll(nil) = %v", err)
	}
}

func TestWorkerPool_ExecuteAll_Cancelled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var counter atomic.Int64
	work := make([]func(), 50)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	if err := pool.ExecuteAll(ctx, work); err != context.Canceled {
		t.Errorf("ExecuteAll() = %v, want context.Canceled", err)
	}
	if counter.Load() != 0 {
		t.Errorf("counter = %d, want 0 after cancellation", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_CancelMidway(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var counter atomic.Int64
	work := make([]func(), 200)
	for i := range work {
		work[i] = func() {
			if counter.Add(1) == 10 {
				cancel()
			}
		}
	}

	done := make(chan error, 1)
	go func() { done <- pool.ExecuteAll(ctx, work) }()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("ExecuteAll() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ExecuteAll did not return after cancellation")
	}
	if got := counter.Load(); got >= int64(len(work)) {
		t.Errorf("counter = %d, expected cancellation to skip work", got)
	}
}

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), 25)
			for i := range work {
				work[i] = func() { counter.Add(1) }
			}
			_ = pool.ExecuteAll(context.Background(), work)
		}()
	}
	wg.Wait()

	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
}

func TestWorkerPool_OperationsAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int64
	work := []func(){func() { counter.Add(1) }}
	if err := pool.ExecuteAll(context.Background(), work); err != nil {
		t.Errorf("ExecuteAll() after Close = %v", err)
	}
	if counter.Load() != 0 {
		t.Error("work ran on a closed pool")
	}
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		pool := NewWorkerPool(4)
		_ = pool.ExecuteAll(context.Background(), []func(){func() {}})
		pool.Close()
	}

	time.Sleep(50 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines: before=%d after=%d", before, after)
	}
}

// =============================================================================
// Band Tests
// =============================================================================

func TestBands(t *testing.T) {
	tests := []struct {
		name          string
		start, end, n int
		want          []Band
	}{
		{"even", 0, 7, 4, []Band{{0, 1}, {2, 3}, {4, 5}, {6, 7}}},
		{"remainder", 10, 19, 3, []Band{{10, 13}, {14, 16}, {17, 19}}},
		{"more bands than rows", 5, 6, 8, []Band{{5, 5}, {6, 6}}},
		{"single row", 3, 3, 4, []Band{{3, 3}}},
		{"zero bands", 0, 9, 0, []Band{{0, 9}}},
		{"empty", 5, 4, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.start, tt.end, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Bands(%d, %d, %d) = %v, want %v", tt.start, tt.end, tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBandsCoverRange(t *testing.T) {
	for n := 1; n <= 9; n++ {
		bands := Bands(-3, 100, n)
		next := -3
		total := 0
		for _, b := range bands {
			if b.Start != next {
				t.Fatalf("n=%d: band %v starts at %d, want %d", n, b, b.Start, next)
			}
			next = b.End + 1
			total += b.End - b.Start + 1
		}
		if total != 104 {
			t.Errorf("n=%d: bands cover %d rows, want 104", n, total)
		}
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	work := make([]func(), 64)
	for i := range work {
		work[i] = func() {}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.ExecuteAll(context.Background(), work)
	}
}
