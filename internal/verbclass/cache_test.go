package verbclass

import (
	"testing"
	"time"
)

// countingAnalyzer wraps an Analyzer and counts lookups
type countingAnalyzer struct {
	inner   Analyzer
	lookups int
}

func (c *countingAnalyzer) Lookup(lemma string) (*Analysis, bool) {
	c.lookups++
	return c.inner.Lookup(lemma)
}

func TestCachedAnalyzer_MemoizesHits(t *testing.T) {
	counting := &countingAnalyzer{inner: Builtin()}
	cached := NewCachedAnalyzer(counting, time.Minute, time.Minute)

	for i := 0; i < 3; i++ {
		analysis, ok := cached.Lookup("give")
		if !ok {
			t.Fatal("Expected give to resolve")
		}
		if analysis.PrimaryClassID() != "give-13.1" {
			t.Errorf("Expected give-13.1, got %s", analysis.PrimaryClassID())
		}
	}

	if counting.lookups != 1 {
		t.Errorf("Expected 1 underlying lookup, got %d", counting.lookups)
	}
}

func TestCachedAnalyzer_MemoizesMisses(t *testing.T) {
	counting := &countingAnalyzer{inner: Builtin()}
	cached := NewCachedAnalyzer(counting, time.Minute, time.Minute)

	for i := 0; i < 3; i++ {
		if _, ok := cached.Lookup("florble"); ok {
			t.Fatal("Expected miss for unknown lemma")
		}
	}

	if counting.lookups != 1 {
		t.Errorf("Expected 1 underlying lookup for repeated miss, got %d", counting.lookups)
	}
}

func TestCachedAnalyzer_CaseInsensitive(t *testing.T) {
	counting := &countingAnalyzer{inner: Builtin()}
	cached := NewCachedAnalyzer(counting, time.Minute, time.Minute)

	cached.Lookup("Give")
	cached.Lookup("give")
	cached.Lookup("GIVE")

	if counting.lookups != 1 {
		t.Errorf("Expected case variants to share a cache entry, got %d lookups", counting.lookups)
	}
}

func TestCachedAnalyzer_Flush(t *testing.T) {
	counting := &countingAnalyzer{inner: Builtin()}
	cached := NewCachedAnalyzer(counting, time.Minute, time.Minute)

	cached.Lookup("give")
	cached.Flush()
	if cached.ItemCount() != 0 {
		t.Errorf("Expected empty cache after flush, got %d entries", cached.ItemCount())
	}

	cached.Lookup("give")
	if counting.lookups != 2 {
		t.Errorf("Expected lookup after flush to hit the underlying analyzer, got %d", counting.lookups)
	}
}
