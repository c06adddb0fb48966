// Package parallel provides the worker pool that fans filter passes out
// over row bands of the frame.
//
// Both filter passes are data-parallel per texel with no shared mutable
// state, so bands can run in any order on any worker. The one ordering
// requirement is the barrier between the passes: ExecuteAll blocks until
// every submitted band has completed, which makes a completed ExecuteAll
// call the inter-pass synchronization point.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size pool of goroutines for processing row bands.
//
// Each worker owns a buffered queue and steals from the other workers'
// queues when its own runs dry, which balances load when some bands are
// more expensive than others (edge-heavy regions branch far more than
// flat ones).
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds the per-worker work queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers and starts
// them. If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few items of slack per queue hides submission latency.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	queue := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(queue)
			return

		case work := <-queue:
			if work != nil {
				work()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing to steal anywhere; block on own queue.
			select {
			case <-p.done:
				drain(queue)
				return
			case work := <-queue:
				if work != nil {
					work()
				}
			}
		}
	}
}

// drain executes all remaining work in a queue.
func drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *Pool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work round-robin across the workers and blocks
// until every item has completed. It is the pass barrier: once ExecuteAll
// returns, every write made by the submitted work is visible to the
// caller. If the pool is closed, ExecuteAll is a no-op.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(work))

	for i, fn := range work {
		workerID := i % p.workers
		workFn := fn

		wrapped := func() {
			defer completion.Done()
			workFn()
		}

		select {
		case p.queues[workerID] <- wrapped:
		case <-p.done:
			// Pool is closing; account for the item so Wait returns.
			completion.Done()
		}
	}

	completion.Wait()
}

// Close gracefully shuts down the pool: it stops accepting new work,
// lets queued work finish, and joins all workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}
