// Package parallel spreads independent index ranges over a small pool of
// goroutines. It is used for bulk tile placement on large maps.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs span batches on a fixed set of goroutines.
//
// A batch is the spans of one ForEach call. Workers and the caller claim
// spans from the batch through a shared cursor until none are left.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	batches chan *batch
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// batch is one ForEach call in flight.
type batch struct {
	fn    func(Span)
	spans []Span
	next  atomic.Int64
	left  sync.WaitGroup
}

// run claims and runs spans until the batch is exhausted.
func (b *batch) run() {
	for {
		i := int(b.next.Add(1) - 1)
		if i >= len(b.spans) {
			return
		}
		b.fn(b.spans[i])
		b.left.Done()
	}
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		batches: make(chan *batch, workers),
		done:    make(chan struct{}),
	}
	p.running.Store(true)
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case b := <-p.batches:
			b.run()
		}
	}
}

// ForEach calls fn once per span of [0, n) and waits for every call to
// return. Spans never overlap, so fn may write to disjoint slice ranges
// without locking. The calling goroutine works on the batch too; on a
// closed pool it runs every span itself.
func (p *WorkerPool) ForEach(n int, fn func(Span)) {
	spans := Split(n, p.workers*4)
	if len(spans) == 0 {
		return
	}

	b := &batch{fn: fn, spans: spans}
	b.left.Add(len(spans))
	if p.running.Load() {
		// At most one helper per span beyond the caller's.
	offer:
		for range min(p.workers, len(spans)-1) {
			select {
			case p.batches <- b:
			default:
				break offer
			}
		}
	}
	b.run()
	b.left.Wait()
}

// Close stops the workers. Spans already claimed finish first.
// Close is safe to call multiple times.
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

// IsRunning reports whether the pool still hands batches to its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
