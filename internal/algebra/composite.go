// Package algebra combines atomic events into composite structures
// with temporal and causal relations, and checks them for consistency.
package algebra

import (
	"github.com/ppiankov/semflow/internal/aspect"
	"github.com/ppiankov/semflow/internal/model"
)

// EventID identifies a sub-event within a composite
type EventID = int

// CompositionType labels how sub-events combine
type CompositionType string

const (
	Conjunction CompositionType = "conjunction" // e1 and e2, unordered
	Sequence    CompositionType = "sequence"    // e1 then e2
	Causation   CompositionType = "causation"   // e1 brings about e2
)

// TemporalRelationType is an interval relation between two sub-events
type TemporalRelationType string

const (
	Before       TemporalRelationType = "before"
	Meets        TemporalRelationType = "meets"
	Overlaps     TemporalRelationType = "overlaps"
	Simultaneous TemporalRelationType = "simultaneous"
	Equals       TemporalRelationType = "equals"
	During       TemporalRelationType = "during"
)

// CausationType grades the directness of a causal link
type CausationType string

const (
	DirectCausation   CausationType = "direct"
	IndirectCausation CausationType = "indirect"
	EnablingCausation CausationType = "enabling"
)

// TemporalRelation orders two sub-events
type TemporalRelation struct {
	From     EventID              `json:"from" yaml:"from"`
	To       EventID              `json:"to" yaml:"to"`
	Relation TemporalRelationType `json:"relation" yaml:"relation"`
}

// CausalRelation links a causing sub-event to its effect
type CausalRelation struct {
	Cause      EventID       `json:"cause" yaml:"cause"`
	Effect     EventID       `json:"effect" yaml:"effect"`
	Type       CausationType `json:"type" yaml:"type"`
	Confidence float32       `json:"confidence" yaml:"confidence"`
}

// CompositeEvent is a set of sub-events with relations over them
type CompositeEvent struct {
	Type              CompositionType    `json:"type" yaml:"type"`
	SubEvents         []model.Event      `json:"sub_events" yaml:"sub_events"`
	TemporalRelations []TemporalRelation `json:"temporal_relations,omitempty" yaml:"temporal_relations,omitempty"`
	CausalRelations   []CausalRelation   `json:"causal_relations,omitempty" yaml:"causal_relations,omitempty"`
	Aspect            model.AspectualClass `json:"aspect" yaml:"aspect"`
}

// NewCompositeEvent creates an empty composite of the given type
func NewCompositeEvent(t CompositionType) *CompositeEvent {
	return &CompositeEvent{Type: t}
}

// AddSubEvent appends an event, skipping duplicates by event ID, and
// returns its index within the composite
func (c *CompositeEvent) AddSubEvent(e model.Event) EventID {
	for i, existing := range c.SubEvents {
		if existing.ID == e.ID {
			return i
		}
	}
	c.SubEvents = append(c.SubEvents, e)
	c.recomputeAspect()
	return len(c.SubEvents) - 1
}

// AddTemporalRelation records an ordering between two member events.
// Relations naming unknown members are ignored.
func (c *CompositeEvent) AddTemporalRelation(from, to EventID, rel TemporalRelationType) bool {
	if !c.member(from) || !c.member(to) {
		return false
	}
	c.TemporalRelations = append(c.TemporalRelations, TemporalRelation{From: from, To: to, Relation: rel})
	return true
}

// AddCausalRelation records a causal link between two member events
func (c *CompositeEvent) AddCausalRelation(cause, effect EventID, ct CausationType, confidence float32) bool {
	if !c.member(cause) || !c.member(effect) {
		return false
	}
	c.CausalRelations = append(c.CausalRelations, CausalRelation{
		Cause: cause, Effect: effect, Type: ct, Confidence: confidence,
	})
	return true
}

func (c *CompositeEvent) member(id EventID) bool {
	return id >= 0 && id < len(c.SubEvents)
}

// recomputeAspect derives the composite's aspect from its members
func (c *CompositeEvent) recomputeAspect() {
	classes := make([]model.AspectualClass, len(c.SubEvents))
	for i, e := range c.SubEvents {
		classes[i] = e.Aspect
	}
	c.Aspect = aspect.Compose(classes...)
}

// IsTemporallyConsistent reports whether the strict orderings admit a
// linearization. Only Before edges constrain the order; symmetric
// relations like Simultaneous and Overlaps cannot create a
// contradiction on their own.
func (c *CompositeEvent) IsTemporallyConsistent() bool {
	adj := make(map[EventID][]EventID)
	for _, r := range c.TemporalRelations {
		if r.Relation == Before {
			adj[r.From] = append(adj[r.From], r.To)
		}
	}

	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make(map[EventID]int)

	var visit func(id EventID) bool
	visit = func(id EventID) bool {
		state[id] = inStack
		for _, next := range adj[id] {
			switch state[next] {
			case inStack:
				return false
			case unvisited:
				if !visit(next) {
					return false
				}
			}
		}
		state[id] = done
		return true
	}

	for id := range adj {
		if state[id] == unvisited {
			if !visit(id) {
				return false
			}
		}
	}
	return true
}

// Predecessors returns the events strictly before the given one
func (c *CompositeEvent) Predecessors(id EventID) []EventID {
	var out []EventID
	for _, r := range c.TemporalRelations {
		if r.Relation == Before && r.To == id {
			out = append(out, r.From)
		}
	}
	return out
}

// Successors returns the events strictly after the given one
func (c *CompositeEvent) Successors(id EventID) []EventID {
	var out []EventID
	for _, r := range c.TemporalRelations {
		if r.Relation == Before && r.From == id {
			out = append(out, r.To)
		}
	}
	return out
}

// ComposeConjunction joins two events without ordering them
func ComposeConjunction(e1, e2 model.Event) *CompositeEvent {
	c := NewCompositeEvent(Conjunction)
	a := c.AddSubEvent(e1)
	b := c.AddSubEvent(e2)
	c.AddTemporalRelation(a, b, Simultaneous)
	return c
}

// ComposeSequence orders e1 strictly before e2
func ComposeSequence(e1, e2 model.Event) *CompositeEvent {
	c := NewCompositeEvent(Sequence)
	a := c.AddSubEvent(e1)
	b := c.AddSubEvent(e2)
	c.AddTemporalRelation(a, b, Before)
	return c
}

// ComposeCausation makes e1 the cause of e2. Causes precede their
// effects, so the temporal ordering comes along.
func ComposeCausation(e1, e2 model.Event, ct CausationType) *CompositeEvent {
	c := NewCompositeEvent(Causation)
	a := c.AddSubEvent(e1)
	b := c.AddSubEvent(e2)
	c.AddTemporalRelation(a, b, Before)
	c.AddCausalRelation(a, b, ct, 0.8)
	return c
}
