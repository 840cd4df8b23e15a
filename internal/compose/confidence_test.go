package compose

import "testing"

func TestDefaultWeights_SumToOne(t *testing.T) {
	w := DefaultWeights()
	sum := w.VerbClass + w.Arc + w.Decomposition + w.Binding
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("Expected weights to sum to 1, got %f", sum)
	}
}

func TestEventConfidence_PerfectEvidence(t *testing.T) {
	c := NewCalculator(DefaultWeights())
	got := c.EventConfidence(1, 1, 1, 1)
	if got < 0.999 || got > 1.001 {
		t.Errorf("Expected 1.0 for perfect evidence, got %f", got)
	}
}

func TestEventConfidence_WeakChannelDragsDown(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	strong := c.EventConfidence(0.9, 0.9, 0.9, 0.9)
	weak := c.EventConfidence(0.9, 0.9, 0.9, 0.1)

	if weak >= strong {
		t.Errorf("Expected weak binding to lower confidence: %f vs %f", weak, strong)
	}

	// geometric fusion punishes the weak channel harder than the
	// arithmetic mean would
	arithmetic := float32(0.3*0.9 + 0.2*0.9 + 0.25*0.9 + 0.25*0.1)
	if weak >= arithmetic {
		t.Errorf("Expected geometric fusion %f below arithmetic mean %f", weak, arithmetic)
	}
}

func TestEventConfidence_ZeroClampedNotCollapsed(t *testing.T) {
	c := NewCalculator(DefaultWeights())
	got := c.EventConfidence(0.9, 0.9, 0.9, 0)
	if got <= 0 {
		t.Errorf("Expected clamped floor to keep confidence positive, got %f", got)
	}
}

func TestOverall(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	if got := c.Overall(nil); got != 0 {
		t.Errorf("Expected 0 for no events, got %f", got)
	}
	if got := c.Overall([]float32{0.8}); got < 0.799 || got > 0.801 {
		t.Errorf("Expected single event confidence passed through, got %f", got)
	}

	got := c.Overall([]float32{0.9, 0.4})
	if got < 0.59 || got > 0.61 {
		t.Errorf("Expected geometric mean near 0.6, got %f", got)
	}
}

func TestUnboundPenalty(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	if got := c.UnboundPenalty(0.8, 0); got != 0.8 {
		t.Errorf("Expected no penalty, got %f", got)
	}
	if got := c.UnboundPenalty(0.8, 2); got < 0.599 || got > 0.601 {
		t.Errorf("Expected 0.6 after two unbound, got %f", got)
	}
	if got := c.UnboundPenalty(0.15, 5); got != 0 {
		t.Errorf("Expected floor at 0, got %f", got)
	}
}

func TestAgreementBoost(t *testing.T) {
	c := NewCalculator(DefaultWeights())

	if got := c.AgreementBoost(0.6, 1); got != 0.6 {
		t.Errorf("Expected no boost for a single source, got %f", got)
	}
	if got := c.AgreementBoost(0.6, 2); got < 0.629 || got > 0.631 {
		t.Errorf("Expected 5%% boost, got %f", got)
	}
	if got := c.AgreementBoost(0.6, 3); got < 0.659 || got > 0.661 {
		t.Errorf("Expected 10%% boost, got %f", got)
	}
	if got := c.AgreementBoost(0.99, 3); got != 1.0 {
		t.Errorf("Expected cap at 1.0, got %f", got)
	}
}
