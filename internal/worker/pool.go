// Package worker provides a bounded goroutine pool for parallel
// sentence composition.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job. Index preserves input order across
// out-of-order completion.
type Result interface {
	Index() int
	GetError() error
}

// Pool manages a set of workers that execute jobs concurrently
type Pool struct {
	workers    int
	jobQueue   chan Job
	results    chan Result
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a pool with the specified number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, workers*2),
		results:    make(chan Result, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job for execution
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Results exposes the result stream. Callers must drain it while jobs
// run; the channel buffer is small, so an undrained pool stalls its
// workers once the buffer fills.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Wait closes the queue, blocks until every submitted job has finished
// and then closes the results channel
func (p *Pool) Wait() {
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
}

// Shutdown stops the pool immediately
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
