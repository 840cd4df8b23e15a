package worker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ppiankov/semflow/internal/model"
)

// stubComposer composes by echoing the sentence text, failing on a
// marker
type stubComposer struct{}

var errBroken = errors.New("broken analysis")

func (stubComposer) ComposeSentence(a *model.SentenceAnalysis) (*model.ComposedEvents, error) {
	if a.Text == "fail" {
		return nil, errBroken
	}
	return &model.ComposedEvents{SentenceID: a.Text, Events: []model.ComposedEvent{{}}}, nil
}

func sentences(n int) []*model.SentenceAnalysis {
	out := make([]*model.SentenceAnalysis, n)
	for i := range out {
		out[i] = model.NewSentenceAnalysis(fmt.Sprintf("s%d", i), nil)
	}
	return out
}

func TestBatchProcessor_PreservesOrder(t *testing.T) {
	p := NewBatchProcessor(stubComposer{}, 4)

	results := p.Process(sentences(20))
	if len(results) != 20 {
		t.Fatalf("Expected 20 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index() != i {
			t.Errorf("Slot %d carries index %d", i, r.Index())
		}
		if r.Events.SentenceID != fmt.Sprintf("s%d", i) {
			t.Errorf("Slot %d: expected s%d, got %s", i, i, r.Events.SentenceID)
		}
	}
}

func TestBatchProcessor_LargeBatch(t *testing.T) {
	// well beyond what the job and result channel buffers can absorb
	// for two workers
	p := NewBatchProcessor(stubComposer{}, 2)

	done := make(chan []BatchResult, 1)
	go func() { done <- p.Process(sentences(200)) }()

	var results []BatchResult
	select {
	case results = <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Expected a 200-sentence batch to complete")
	}

	if len(results) != 200 {
		t.Fatalf("Expected 200 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index() != i {
			t.Errorf("Slot %d carries index %d", i, r.Index())
		}
	}
}

func TestBatchProcessor_IsolatesFailures(t *testing.T) {
	analyses := sentences(3)
	analyses[1].Text = "fail"

	p := NewBatchProcessor(stubComposer{}, 2)
	results := p.Process(analyses)

	if results[0].GetError() != nil || results[2].GetError() != nil {
		t.Error("Expected healthy slots to succeed")
	}
	if !errors.Is(results[1].GetError(), errBroken) {
		t.Errorf("Expected recorded error in slot 1, got %v", results[1].GetError())
	}
	if results[1].Events == nil || results[1].Events.HasEvents() {
		t.Error("Expected empty placeholder for the failed slot")
	}
}

func TestBatchProcessor_ClampsWorkers(t *testing.T) {
	p := NewBatchProcessor(stubComposer{}, 0)
	results := p.Process(sentences(5))
	if len(results) != 5 {
		t.Fatalf("Expected 5 results with clamped worker count, got %d", len(results))
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	p := NewBatchProcessor(stubComposer{}, 4)
	results := p.Process(nil)
	if len(results) != 0 {
		t.Errorf("Expected no results for empty input, got %d", len(results))
	}
}
