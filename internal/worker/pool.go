// Package worker replays scenarios in parallel. Every scenario builds its
// own game, so workers share nothing but the channels.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/scenario"
)

// WorkItem is one scenario waiting to be replayed.
type WorkItem struct {
	Scenario *scenario.Scenario
	Index    int // Position in the submitted suite
}

// ProcessResult pairs a replay result with the index it was submitted at.
type ProcessResult struct {
	Index  int
	Result scenario.Result
}

// Passed reports whether the scenario met every expectation.
func (r ProcessResult) Passed() bool {
	return r.Result.Passed()
}

// ProcessFunc replays one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// RunScenario returns a ProcessFunc that replays each item with opts.
func RunScenario(opts scenario.Options) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Result: scenario.Run(item.Scenario, opts)}
	}
}

// Pool fans work items out to a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
// Values below one are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool of numWorkers goroutines with channels holding
// bufferSize items. Both are raised to one if smaller.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool with one worker and a buffer of ten
// unless opts say otherwise.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
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

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without replaying
		}
		p.resultChan <- p.process(item)
	}
}

// process runs processFunc and reports a panic as a failed result.
func (p *Pool) process(item WorkItem) (res ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			res = ProcessResult{Index: item.Index}
			if item.Scenario != nil {
				res.Result.Scenario = item.Scenario.Name
				res.Result.File = item.Scenario.File
			}
			res.Result.Err = errors.Wrapf(errors.ErrScenario, "panic: %v", r)
		}
	}()
	return p.processFunc(item)
}

// Submit queues item, blocking while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues item unless the channel is full or the pool stopped.
// It reports whether the item was queued.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip every item they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes the result
// channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel results arrive on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// RunAll replays scenarios on numWorkers goroutines and returns the results
// in suite order. With failFast the pool stops at the first failure and
// the scenarios it skipped are absent from the returned slice.
func RunAll(scenarios []scenario.Scenario, numWorkers int, failFast bool, opts scenario.Options) []ProcessResult {
	pool := NewPoolWithOptions(RunScenario(opts), WithWorkers(numWorkers), WithBufferSize(len(scenarios)))
	pool.Start()

	go func() {
		for i := range scenarios {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Scenario: &scenarios[i], Index: i})
		}
		pool.Close()
	}()

	slots := make([]*ProcessResult, len(scenarios))
	for res := range pool.Results() {
		res := res
		slots[res.Index] = &res
		if failFast && !res.Passed() {
			pool.Stop()
		}
	}

	results := make([]ProcessResult, 0, len(scenarios))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}
