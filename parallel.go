package radial

import (
	"context"
	"sync"

	"github.com/gogpu/radial/internal/parallel"
)

// bandsPerWorker oversubscribes the pool so that work stealing can even out
// bands that cross very different amounts of geometry.
const bandsPerWorker = 4

// minBandRows keeps bands from becoming so thin that scheduling dominates.
const minBandRows = 16

// FillParallel is Fill with the row range split into disjoint bands that
// are filled concurrently.
//
// The result is identical to Fill when no two rows of dst share pixels,
// which holds whenever dst.Stride >= dst.Width. When ctx is cancelled no
// further bands are started and ctx.Err() is returned; bands already
// running complete.
func (f *Filler) FillParallel(ctx context.Context, m Material, rule FillRule, rows *RowTable, startRow, endRow int, dst *Buffer) error {
	job, err := f.prepare(m, rule)
	if err != nil {
		return err
	}
	if startRow > endRow {
		return ctx.Err()
	}

	pool := f.pool.get()
	n := pool.Workers() * bandsPerWorker
	n = min(n, max((endRow-startRow+1)/minBandRows, 1))

	bands := parallel.Bands(startRow, endRow, n)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			job.fillRows(rows, b.Start, b.End, dst)
		}
	}

	Logger().Debug("radial: parallel fill", "bands", len(bands), "workers", pool.Workers())
	return pool.ExecuteAll(ctx, work)
}

// Close stops the worker pool started by FillParallel, if any. Fill keeps
// working after Close; FillParallel starts a new pool. Close must not run
// concurrently with FillParallel.
func (f *Filler) Close() {
	f.pool.close()
}

// lazyPool starts its worker pool on first use.
type lazyPool struct {
	workers int

	mu   sync.Mutex
	pool *parallel.WorkerPool
}

func (l *lazyPool) get() *parallel.WorkerPool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool == nil {
		l.pool = parallel.NewWorkerPool(l.workers)
	}
	return l.pool
}

func (l *lazyPool) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool != nil {
		l.pool.Close()
		l.pool = nil
	}
}
