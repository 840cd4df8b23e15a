// Package compose is the engine core: it turns a parsed sentence into
// Neo-Davidsonian events by decomposing each predicate, binding its
// dependents to theta roles, and fusing per-stage confidences.
package compose

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/semflow/internal/aspect"
	"github.com/ppiankov/semflow/internal/bind"
	"github.com/ppiankov/semflow/internal/decompose"
	"github.com/ppiankov/semflow/internal/model"
	"github.com/ppiankov/semflow/internal/verbclass"
)

// ErrInvalidInput means the sentence analysis is structurally broken,
// e.g. a dependency arc referencing a token that does not exist
var ErrInvalidInput = errors.New("invalid sentence analysis")

// Composer builds composed events from sentence analyses. Safe for
// concurrent use: all fields are read-only after construction.
type Composer struct {
	analyzer   verbclass.Analyzer
	decomposer *decompose.Decomposer
	binder     *bind.Binder
	calc       *Calculator
	cfg        model.ComposeConfig
}

// NewComposer creates a composer over the given lexical resource
func NewComposer(analyzer verbclass.Analyzer, cfg model.ComposeConfig) *Composer {
	return &Composer{
		analyzer:   analyzer,
		decomposer: decompose.NewDecomposer(),
		binder:     bind.NewBinder(),
		calc:       NewCalculator(DefaultWeights()),
		cfg:        cfg,
	}
}

// ComposeSentence composes all events in one sentence. Structural
// defects in the input are hard errors; lexical gaps degrade
// confidence instead.
func (c *Composer) ComposeSentence(a *model.SentenceAnalysis) (*model.ComposedEvents, error) {
	start := time.Now()

	if err := validateArcs(a); err != nil {
		return nil, err
	}

	result := model.EmptyComposedEvents()
	result.SentenceID = sentenceID(a)
	if len(a.Tokens) == 0 {
		return result, nil
	}

	predicates := suppressAuxiliaries(a, a.FindPredicates())
	if len(predicates) == 0 {
		// no event head: surface the content words so a caller can
		// see what went unanalyzed
		for i, tok := range a.Tokens {
			if tok.POS.IsContentWord() {
				result.UnboundEntities = append(result.UnboundEntities, model.UnboundEntity{
					TokenIdx: i,
					Text:     tok.Text,
					Reason:   model.ReasonNoPredicateFound,
				})
			}
		}
		result.ProcessingTimeUs = uint64(time.Since(start).Microseconds())
		return result, nil
	}

	isPassive := a.Metadata.IsPassive
	sources := make(map[string]bool)
	var fused []float32

	for _, predIdx := range predicates {
		tok := a.Tokens[predIdx]
		ev, evConf, evSources := c.composeEvent(a, predIdx, tok, isPassive, len(result.Events))
		if evConf < c.cfg.ConfidenceThreshold {
			// the event is filtered, its binding fallout is still a
			// diagnostic the caller should see
			result.UnboundEntities = append(result.UnboundEntities, ev.unbound...)
			continue
		}
		if c.cfg.MaxEventsPerSentence > 0 && len(result.Events) >= c.cfg.MaxEventsPerSentence {
			break
		}
		result.Events = append(result.Events, ev.composed)
		result.UnboundEntities = append(result.UnboundEntities, ev.unbound...)
		fused = append(fused, evConf)
		for _, s := range evSources {
			sources[s] = true
		}
	}

	overall := c.calc.Overall(fused)
	overall = c.calc.UnboundPenalty(overall, len(result.UnboundEntities))
	result.Confidence = c.calc.AgreementBoost(overall, len(sources))
	result.Sources = sortedKeys(sources)
	result.ProcessingTimeUs = uint64(time.Since(start).Microseconds())
	return result, nil
}

// composedEvent bundles one event with its binding fallout
type composedEvent struct {
	composed model.ComposedEvent
	unbound  []model.UnboundEntity
}

func (c *Composer) composeEvent(a *model.SentenceAnalysis, predIdx int, tok model.TokenAnalysis, isPassive bool, eventID int) (composedEvent, float32, []string) {
	lemma := tok.Lemma
	deps := a.Dependents(predIdx)

	analysis, known := c.analyzer.Lookup(lemma)
	info := decompose.PredicateInfo{Lemma: lemma, TokenIdx: predIdx}
	vcConf := float32(0.3)
	if known {
		info.Analysis = analysis
		vcConf = analysis.Confidence
	}

	dec := c.decomposer.Decompose(info, deps)
	root := dec.Decomposition.Primary()

	binding := c.binder.Bind(predIdx, root.Roles, a, isPassive)

	hasObj := false
	for _, arc := range deps {
		if arc.Relation == model.RelObject {
			hasObj = true
		}
	}

	voice := model.VoiceActive
	if isPassive {
		voice = model.VoicePassive
	}

	ev := model.Event{
		ID:           eventID,
		Predicate:    predicateFor(lemma, analysis),
		LittleV:      root.LittleV,
		Participants: binding.Participants,
		Aspect:       aspect.ClassifyVerb(lemma, hasObj),
		Voice:        voice,
		Modifiers:    binding.Modifiers,
	}

	if sub, ok := dec.Decomposition.SubEvent(); ok {
		ev.Structure = causativeStructure(ev, sub, binding.Participants, eventID)
	}

	composed := model.ComposedEvent{
		ID:                      eventID,
		Event:                   ev,
		TokenSpan:               span(predIdx, binding),
		VerbClassSource:         dec.ClassID,
		FrameSource:             dec.Frame,
		DecompositionConfidence: dec.Confidence,
		BindingConfidence:       binding.Confidence,
	}

	fusedConf := c.calc.EventConfidence(vcConf, meanArcConfidence(deps, tok), dec.Confidence, binding.Confidence)

	srcs := []string{"decompose:" + string(dec.Source)}
	if dec.ClassID != "" {
		srcs = append(srcs, "verbclass:"+dec.ClassID)
	}

	return composedEvent{composed: composed, unbound: binding.Unbound}, fusedConf, srcs
}

// causativeStructure materializes the caused sub-event of a two-node
// decomposition, carrying over the participants its roles select
func causativeStructure(outer model.Event, sub decompose.Node, participants map[model.ThetaRole]model.Entity, eventID int) *model.EventStructure {
	inner := model.Event{
		ID:           eventID,
		Predicate:    outer.Predicate,
		LittleV:      sub.LittleV,
		Participants: make(map[model.ThetaRole]model.Entity),
		Aspect:       outer.Aspect,
		Voice:        outer.Voice,
	}
	for _, role := range sub.Roles {
		if ent, ok := participants[role]; ok {
			inner.Participants[role] = ent
			continue
		}
		// the caused event's theme is the outer patient when the
		// decomposition renames it
		if role == model.RoleTheme {
			if ent, ok := participants[model.RolePatient]; ok {
				inner.Participants[role] = ent
			}
		}
	}

	structure := &model.EventStructure{
		Kind:   model.StructureCausative,
		Caused: &inner,
	}
	if agent, ok := participants[model.RoleAgent]; ok {
		causer := agent
		structure.Causer = &causer
	}
	return structure
}

func predicateFor(lemma string, analysis *verbclass.Analysis) model.Predicate {
	p := model.Predicate{Lemma: lemma}
	if analysis == nil || len(analysis.Classes) == 0 {
		return p
	}
	primary := analysis.Classes[0]
	p.VerbClassID = primary.ID
	if preds := primary.SemanticPredicates(); len(preds) > 0 {
		p.SemanticType = string(preds[0].Type)
	}
	return p
}

// span is the token range the event touches
func span(predIdx int, binding bind.Result) [2]int {
	lo, hi := predIdx, predIdx
	touch := func(idx int) {
		if idx < lo {
			lo = idx
		}
		if idx > hi {
			hi = idx
		}
	}
	for _, ent := range binding.Participants {
		touch(ent.TokenIdx)
	}
	for _, mod := range binding.Modifiers {
		touch(mod.TokenIdx)
	}
	return [2]int{lo, hi}
}

func meanArcConfidence(deps []model.DependencyArc, tok model.TokenAnalysis) float32 {
	if len(deps) == 0 {
		if tok.Confidence > 0 {
			return tok.Confidence
		}
		return 1.0
	}
	var sum float32
	for _, arc := range deps {
		if arc.Confidence > 0 {
			sum += arc.Confidence
		} else {
			sum += 1.0
		}
	}
	return sum / float32(len(deps))
}

// suppressAuxiliaries drops AUX predicates when a main verb is present:
// "has broken" is one event headed by "broken"
func suppressAuxiliaries(a *model.SentenceAnalysis, predicates []int) []int {
	hasMain := false
	for _, idx := range predicates {
		if a.Tokens[idx].POS == model.UPosVerb {
			hasMain = true
			break
		}
	}
	if !hasMain {
		return predicates
	}
	var out []int
	for _, idx := range predicates {
		if a.Tokens[idx].POS == model.UPosVerb {
			out = append(out, idx)
		}
	}
	return out
}

func validateArcs(a *model.SentenceAnalysis) error {
	n := len(a.Tokens)
	for _, arc := range a.Dependencies {
		if arc.Head < 0 || arc.Head >= n || arc.Dependent < 0 || arc.Dependent >= n {
			return fmt.Errorf("%w: arc %s references token out of range (%d -> %d, %d tokens)",
				ErrInvalidInput, arc.Relation, arc.Head, arc.Dependent, n)
		}
	}
	return nil
}

func sentenceID(a *model.SentenceAnalysis) string {
	if a.Metadata.SentenceID != "" {
		return a.Metadata.SentenceID
	}
	return uuid.NewString()
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BatchItem is one slot of a batch result, in input order
type BatchItem struct {
	Index  int
	Events *model.ComposedEvents
	Err    error
}

// ComposeBatch composes each analysis sequentially, one result slot
// per input. A hard failure leaves an empty placeholder with the error
// recorded; it never aborts the other slots.
func (c *Composer) ComposeBatch(analyses []*model.SentenceAnalysis) []BatchItem {
	items := make([]BatchItem, len(analyses))
	for i, a := range analyses {
		events, err := c.ComposeSentence(a)
		if err != nil {
			events = model.EmptyComposedEvents()
		}
		items[i] = BatchItem{Index: i, Events: events, Err: err}
	}
	return items
}
