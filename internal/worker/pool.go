// Package worker provides a worker pool for replaying scripts in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/script"
)

// WorkItem is a script waiting to be replayed.
type WorkItem struct {
	Script *script.Script
	Index  int // Position in the input, for ordered output
}

// ProcessResult is the outcome of replaying one script.
type ProcessResult struct {
	Index  int
	Report *output.Report
	Error  error
}

// ProcessFunc replays one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers replaying independent scripts.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without replaying
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Stream replays every script through fn and hands each result to emit in
// input order. When emit fails the pool is stopped, the scripts not yet
// replayed are skipped and the first emit error is returned.
func Stream(scripts []*script.Script, fn ProcessFunc, emit func(ProcessResult) error, opts ...PoolOption) error {
	pool := NewPool(fn, opts...)
	pool.Start()

	go func() {
		for i, s := range scripts {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Script: s, Index: i})
		}
		pool.Close()
	}()

	pending := make(map[int]ProcessResult)
	next := 0
	var firstErr error
	for res := range pool.Results() {
		if firstErr != nil {
			continue // drain
		}
		pending[res.Index] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := emit(r); err != nil {
				firstErr = err
				pool.Stop()
				break
			}
		}
	}
	return firstErr
}

// Run replays every script through fn and returns the results in input
// order.
func Run(scripts []*script.Script, fn ProcessFunc, opts ...PoolOption) []ProcessResult {
	results := make([]ProcessResult, 0, len(scripts))
	_ = Stream(scripts, fn, func(res ProcessResult) error {
		results = append(results, res)
		return nil
	}, opts...)
	return results
}
