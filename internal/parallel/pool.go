// Package parallel runs row bands of a fill on a fixed set of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for parallel filling.
//
// Each worker owns a queue. A worker whose queue is empty steals from the
// other queues before blocking, which balances bands that cover very
// different amounts of geometry.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}
	wg   sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return
		case work := <-myQueue:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(myQueue)
				return
			case work := <-myQueue:
				work()
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes work from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for every item that
// was started to complete.
//
// Once ctx is done no further items are started and ctx.Err() is returned.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(ctx context.Context, work []func()) error {
	if len(work) == 0 || !p.running.Load() {
		return ctx.Err()
	}

	var completion sync.WaitGroup
	completion.Add(len(work))

	submitted := 0
submit:
	for i, fn := range work {
		if ctx.Err() != nil || !p.running.Load() {
			break
		}
		wrapped := func() {
			defer completion.Done()
			if ctx.Err() == nil {
				fn()
			}
		}
		select {
		case p.workQueues[i%p.workers] <- wrapped:
			submitted++
		case <-ctx.Done():
			break submit
		case <-p.done:
			break submit
		}
	}
	completion.Add(submitted - len(work))

	completion.Wait()
	return ctx.Err()
}

// Close stops accepting new work, waits for queued work to complete,
// and then stops all workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
