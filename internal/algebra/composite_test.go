package algebra

import (
	"testing"

	"github.com/ppiankov/semflow/internal/model"
)

func event(id int, lemma string, aspect model.AspectualClass) model.Event {
	return model.Event{
		ID:        id,
		Predicate: model.Predicate{Lemma: lemma},
		LittleV:   model.LittleVDo,
		Aspect:    aspect,
	}
}

func TestAddSubEvent_Dedupes(t *testing.T) {
	c := NewCompositeEvent(Conjunction)

	a := c.AddSubEvent(event(1, "run", model.AspectActivity))
	b := c.AddSubEvent(event(1, "run", model.AspectActivity))

	if a != b {
		t.Errorf("Expected duplicate event to return the same index, got %d and %d", a, b)
	}
	if len(c.SubEvents) != 1 {
		t.Errorf("Expected 1 sub-event, got %d", len(c.SubEvents))
	}
}

func TestAddTemporalRelation_RejectsNonMembers(t *testing.T) {
	c := NewCompositeEvent(Sequence)
	c.AddSubEvent(event(1, "run", model.AspectActivity))

	if c.AddTemporalRelation(0, 5, Before) {
		t.Error("Expected relation to a non-member to be rejected")
	}
	if len(c.TemporalRelations) != 0 {
		t.Errorf("Expected no relations recorded, got %d", len(c.TemporalRelations))
	}
}

func TestIsTemporallyConsistent_Chain(t *testing.T) {
	c := NewCompositeEvent(Sequence)
	a := c.AddSubEvent(event(1, "arrive", model.AspectAchievement))
	b := c.AddSubEvent(event(2, "eat", model.AspectActivity))
	d := c.AddSubEvent(event(3, "leave", model.AspectAchievement))

	c.AddTemporalRelation(a, b, Before)
	c.AddTemporalRelation(b, d, Before)

	if !c.IsTemporallyConsistent() {
		t.Error("Expected a linear chain to be consistent")
	}
}

func TestIsTemporallyConsistent_Cycle(t *testing.T) {
	c := NewCompositeEvent(Sequence)
	a := c.AddSubEvent(event(1, "arrive", model.AspectAchievement))
	b := c.AddSubEvent(event(2, "eat", model.AspectActivity))
	d := c.AddSubEvent(event(3, "leave", model.AspectAchievement))

	c.AddTemporalRelation(a, b, Before)
	c.AddTemporalRelation(b, d, Before)
	c.AddTemporalRelation(d, a, Before)

	if c.IsTemporallyConsistent() {
		t.Error("Expected a Before cycle to be inconsistent")
	}
}

func TestIsTemporallyConsistent_SymmetricRelationsDoNotConflict(t *testing.T) {
	c := NewCompositeEvent(Conjunction)
	a := c.AddSubEvent(event(1, "sing", model.AspectActivity))
	b := c.AddSubEvent(event(2, "dance", model.AspectActivity))

	// mutual simultaneity is not an ordering contradiction
	c.AddTemporalRelation(a, b, Simultaneous)
	c.AddTemporalRelation(b, a, Simultaneous)
	c.AddTemporalRelation(a, b, Overlaps)

	if !c.IsTemporallyConsistent() {
		t.Error("Expected symmetric relations alone to be consistent")
	}
}

func TestPredecessorsAndSuccessors(t *testing.T) {
	c := NewCompositeEvent(Sequence)
	a := c.AddSubEvent(event(1, "arrive", model.AspectAchievement))
	b := c.AddSubEvent(event(2, "eat", model.AspectActivity))
	c.AddTemporalRelation(a, b, Before)

	if preds := c.Predecessors(b); len(preds) != 1 || preds[0] != a {
		t.Errorf("Expected predecessor %d, got %v", a, preds)
	}
	if succs := c.Successors(a); len(succs) != 1 || succs[0] != b {
		t.Errorf("Expected successor %d, got %v", b, succs)
	}
	if preds := c.Predecessors(a); len(preds) != 0 {
		t.Errorf("Expected no predecessors for the first event, got %v", preds)
	}
}

func TestComposeConjunction(t *testing.T) {
	c := ComposeConjunction(
		event(1, "sing", model.AspectActivity),
		event(2, "dance", model.AspectActivity),
	)

	if c.Type != Conjunction {
		t.Errorf("Expected conjunction, got %s", c.Type)
	}
	if len(c.TemporalRelations) != 1 || c.TemporalRelations[0].Relation != Simultaneous {
		t.Errorf("Expected one simultaneous relation, got %v", c.TemporalRelations)
	}
	if c.Aspect != model.AspectActivity {
		t.Errorf("Expected activity composite, got %s", c.Aspect)
	}
}

func TestComposeSequence_AspectComposition(t *testing.T) {
	c := ComposeSequence(
		event(1, "build", model.AspectAccomplishment),
		event(2, "run", model.AspectActivity),
	)

	if len(c.TemporalRelations) != 1 || c.TemporalRelations[0].Relation != Before {
		t.Errorf("Expected one before relation, got %v", c.TemporalRelations)
	}
	// one atelic step makes the whole sequence atelic
	if c.Aspect != model.AspectActivity {
		t.Errorf("Expected atelic sequence, got %s", c.Aspect)
	}
	if !c.IsTemporallyConsistent() {
		t.Error("Expected a two-step sequence to be consistent")
	}
}

func TestComposeCausation(t *testing.T) {
	c := ComposeCausation(
		event(1, "hit", model.AspectAchievement),
		event(2, "break", model.AspectAchievement),
		DirectCausation,
	)

	if c.Type != Causation {
		t.Errorf("Expected causation, got %s", c.Type)
	}
	if len(c.CausalRelations) != 1 {
		t.Fatalf("Expected one causal relation, got %d", len(c.CausalRelations))
	}
	cr := c.CausalRelations[0]
	if cr.Type != DirectCausation {
		t.Errorf("Expected direct causation, got %s", cr.Type)
	}
	if cr.Confidence != 0.8 {
		t.Errorf("Expected causal confidence 0.8, got %f", cr.Confidence)
	}
	// the cause precedes the effect
	if len(c.TemporalRelations) != 1 || c.TemporalRelations[0].Relation != Before {
		t.Errorf("Expected a before relation alongside causation, got %v", c.TemporalRelations)
	}
}
