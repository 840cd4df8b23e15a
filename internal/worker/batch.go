package worker

import (
	"context"

	"github.com/ppiankov/semflow/internal/model"
)

// Sentencer composes one sentence; satisfied by compose.Composer
type Sentencer interface {
	ComposeSentence(a *model.SentenceAnalysis) (*model.ComposedEvents, error)
}

// BatchResult is one slot of a parallel batch, carrying its input
// position
type BatchResult struct {
	Idx    int
	Events *model.ComposedEvents
	Err    error
}

// Index implements Result
func (r BatchResult) Index() int { return r.Idx }

// GetError implements Result
func (r BatchResult) GetError() error { return r.Err }

// composeJob composes one sentence within the pool
type composeJob struct {
	idx      int
	analysis *model.SentenceAnalysis
	composer Sentencer
}

// Execute implements Job
func (j composeJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return BatchResult{Idx: j.idx, Events: model.EmptyComposedEvents(), Err: err}
	}
	events, err := j.composer.ComposeSentence(j.analysis)
	if err != nil {
		return BatchResult{Idx: j.idx, Events: model.EmptyComposedEvents(), Err: err}
	}
	return BatchResult{Idx: j.idx, Events: events}
}

// BatchProcessor fans sentence composition out over a worker pool
type BatchProcessor struct {
	composer Sentencer
	workers  int
}

// NewBatchProcessor creates a processor with the given parallelism
func NewBatchProcessor(composer Sentencer, workers int) *BatchProcessor {
	if workers <= 0 {
		workers = 1
	}
	return &BatchProcessor{composer: composer, workers: workers}
}

// Process composes every analysis in parallel and returns results in
// input order. A sentence that fails hard yields an empty placeholder
// with its error recorded; the rest of the batch is unaffected.
func (b *BatchProcessor) Process(analyses []*model.SentenceAnalysis) []BatchResult {
	pool := NewPool(b.workers)
	pool.Start()

	// drain results while submitting: a batch larger than the channel
	// buffers would otherwise wedge Submit against blocked workers
	ordered := make([]BatchResult, len(analyses))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range pool.Results() {
			br := r.(BatchResult)
			ordered[br.Idx] = br
		}
	}()

	for i, a := range analyses {
		pool.Submit(composeJob{idx: i, analysis: a, composer: b.composer})
	}
	pool.Wait()
	<-done
	return ordered
}
