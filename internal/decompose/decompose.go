// Package decompose maps verb predicates onto primitive event
// operators (little-v), producing nested decompositions for causatives.
package decompose

import (
	"github.com/ppiankov/semflow/internal/model"
	"github.com/ppiankov/semflow/internal/verbclass"
)

// Node is one operator in a decomposition. Sub indexes the caused
// sub-event node within the same decomposition, -1 when absent.
type Node struct {
	LittleV model.LittleVType `json:"little_v" yaml:"little_v"`
	Roles   []model.ThetaRole `json:"roles" yaml:"roles"`
	Sub     int               `json:"sub" yaml:"sub"`
}

// Decomposition is a small arena of operator nodes rooted at Root.
// Index-based links keep nested structures flat and copyable.
type Decomposition struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Root  int    `json:"root" yaml:"root"`
}

// Primary returns the root node
func (d *Decomposition) Primary() Node {
	return d.Nodes[d.Root]
}

// SubEvent returns the caused sub-node of the root, if any
func (d *Decomposition) SubEvent() (Node, bool) {
	root := d.Nodes[d.Root]
	if root.Sub < 0 || root.Sub >= len(d.Nodes) {
		return Node{}, false
	}
	return d.Nodes[root.Sub], true
}

// simple builds a single-node decomposition
func simple(v model.LittleVType, roles []model.ThetaRole) Decomposition {
	return Decomposition{
		Nodes: []Node{{LittleV: v, Roles: roles, Sub: -1}},
		Root:  0,
	}
}

// causative builds a two-node decomposition: outer operator wrapping a
// caused sub-event
func causative(outer model.LittleVType, outerRoles []model.ThetaRole, inner model.LittleVType, innerRoles []model.ThetaRole) Decomposition {
	return Decomposition{
		Nodes: []Node{
			{LittleV: outer, Roles: outerRoles, Sub: 1},
			{LittleV: inner, Roles: innerRoles, Sub: -1},
		},
		Root: 0,
	}
}

// Source labels where a decomposition came from
type Source string

const (
	SourceFrame           Source = "frame"            // frame semantics matched a template
	SourceClassDefault    Source = "class_default"    // class family default operator
	SourceLemmaHeuristic  Source = "lemma_heuristic"  // closed lemma list
	SourceArgumentPattern Source = "argument_pattern" // inferred from dependency evidence
	SourceFallback        Source = "fallback"         // nothing matched
)

// PredicateInfo is the composer's view of one predicate token
type PredicateInfo struct {
	Lemma    string
	TokenIdx int
	Analysis *verbclass.Analysis // nil when the lemma is unknown
}

// Result is a scored decomposition with its provenance
type Result struct {
	Decomposition Decomposition
	Confidence    float32
	Source        Source
	ClassID       string
	Frame         string
}

// template pairs a frame predicate name with the decomposition it
// licenses
type template struct {
	name string
	base float32
	dec  Decomposition
}

// templates in precedence order: result-specific causatives first so a
// creation frame carrying both "created" and "cause" resolves to the
// creation pattern, generic motion and state last
func templates() []template {
	return []template{
		{"transfer", 0.85, causative(
			model.LittleVCause, []model.ThetaRole{model.RoleAgent, model.RoleTheme, model.RoleRecipient},
			model.LittleVHave, []model.ThetaRole{model.RoleRecipient, model.RoleTheme})},
		{"created", 0.85, causative(
			model.LittleVCause, []model.ThetaRole{model.RoleAgent, model.RoleTheme},
			model.LittleVExist, []model.ThetaRole{model.RoleTheme})},
		{"destroyed", 0.85, causative(
			model.LittleVCause, []model.ThetaRole{model.RoleAgent, model.RolePatient},
			model.LittleVBecome, []model.ThetaRole{model.RoleTheme})},
		{"cause", 0.85, causative(
			model.LittleVCause, []model.ThetaRole{model.RoleAgent, model.RolePatient},
			model.LittleVBecome, []model.ThetaRole{model.RoleTheme})},
		{"transfer_info", 0.8, simple(model.LittleVSay,
			[]model.ThetaRole{model.RoleAgent, model.RoleRecipient, model.RoleTheme})},
		{"emotional_state", 0.8, simple(model.LittleVExperience,
			[]model.ThetaRole{model.RoleExperiencer, model.RoleStimulus})},
		{"has_possession", 0.8, simple(model.LittleVHave,
			[]model.ThetaRole{model.RoleAgent, model.RoleTheme})},
		{"path_rel", 0.8, simple(model.LittleVGo,
			[]model.ThetaRole{model.RoleTheme, model.RoleGoal})},
		{"exist", 0.8, simple(model.LittleVExist,
			[]model.ThetaRole{model.RoleTheme, model.RoleLocation})},
		{"state", 0.8, simple(model.LittleVBe,
			[]model.ThetaRole{model.RoleTheme})},
		{"contact", 0.75, simple(model.LittleVDo,
			[]model.ThetaRole{model.RoleAgent, model.RolePatient})},
		{"motion", 0.8, simple(model.LittleVDo,
			[]model.ThetaRole{model.RoleAgent})},
	}
}

// classDefaults maps a class family (the name part of the class id) to
// its default operator
var classDefaults = map[string]model.LittleVType{
	"give":    model.LittleVCause,
	"send":    model.LittleVCause,
	"break":   model.LittleVCause,
	"destroy": model.LittleVCause,
	"build":   model.LittleVCause,
	"run":     model.LittleVDo,
	"hit":     model.LittleVDo,
	"eat":     model.LittleVDo,
	"arrive":  model.LittleVGo,
	"admire":  model.LittleVExperience,
	"say":     model.LittleVSay,
	"tell":    model.LittleVSay,
	"own":     model.LittleVHave,
	"exist":   model.LittleVExist,
}

// lemmaHeuristics covers common verbs outside any loaded class. Low
// confidence: surface lemma alone is weak evidence.
var lemmaHeuristics = map[string]model.LittleVType{
	"be": model.LittleVBe, "seem": model.LittleVBe, "appear": model.LittleVBe,
	"have": model.LittleVHave, "own": model.LittleVHave, "possess": model.LittleVHave,
	"go": model.LittleVGo, "come": model.LittleVGo, "leave": model.LittleVGo,
	"move": model.LittleVGo, "travel": model.LittleVGo,
	"say": model.LittleVSay, "tell": model.LittleVSay, "speak": model.LittleVSay,
	"ask": model.LittleVSay,
	"feel": model.LittleVExperience, "see": model.LittleVExperience,
	"hear": model.LittleVExperience, "love": model.LittleVExperience,
	"hate": model.LittleVExperience, "fear": model.LittleVExperience,
	"exist": model.LittleVExist, "remain": model.LittleVExist,
	"become": model.LittleVBecome, "turn": model.LittleVBecome,
	"grow": model.LittleVBecome,
}

// Decomposer resolves predicates to decompositions. Stateless; safe
// for concurrent use.
type Decomposer struct {
	templates []template
}

// NewDecomposer creates a decomposer with the standard template set
func NewDecomposer() *Decomposer {
	return &Decomposer{templates: templates()}
}

// Decompose resolves one predicate. Resolution order: frame semantics,
// class family default, lemma heuristic, dependency-evidence pattern,
// then a bare Do fallback. deps are the arcs headed by the predicate,
// used only for evidence-based resolution.
func (d *Decomposer) Decompose(info PredicateInfo, deps []model.DependencyArc) Result {
	upstream := float32(1.0)
	if info.Analysis != nil && info.Analysis.Confidence > 0 {
		upstream = info.Analysis.Confidence
	}

	if info.Analysis != nil {
		if r, ok := d.fromFrames(info.Analysis); ok {
			r.Confidence *= upstream
			return r
		}
		if r, ok := d.fromClassDefault(info.Analysis); ok {
			r.Confidence *= upstream
			return r
		}
	}

	if v, ok := lemmaHeuristics[info.Lemma]; ok {
		return Result{
			Decomposition: simple(v, v.DefaultRoles()),
			Confidence:    0.4,
			Source:        SourceLemmaHeuristic,
		}
	}

	if r, ok := fromArgumentPattern(deps); ok {
		return r
	}

	return Result{
		Decomposition: simple(model.LittleVDo, model.LittleVDo.DefaultRoles()),
		Confidence:    0.3,
		Source:        SourceFallback,
	}
}

// fromFrames matches the class's frame semantics against the template
// list, first template to match any frame predicate wins. Class role
// inventories override the template's default root roles.
func (d *Decomposer) fromFrames(a *verbclass.Analysis) (Result, bool) {
	if len(a.Classes) == 0 {
		return Result{}, false
	}
	primary := a.Classes[0]
	preds := primary.SemanticPredicates()
	if len(preds) == 0 {
		return Result{}, false
	}

	for _, t := range d.templates {
		for _, p := range preds {
			if p.Name != t.name {
				continue
			}
			dec := t.dec
			if roles := primary.RoleTypes(); len(roles) > 0 {
				dec = overrideRootRoles(dec, roles)
			}
			frame := ""
			if len(primary.Frames) > 0 {
				frame = primary.Frames[0].Description
			}
			return Result{
				Decomposition: dec,
				Confidence:    t.base,
				Source:        SourceFrame,
				ClassID:       primary.ID,
				Frame:         frame,
			}, true
		}
	}
	return Result{}, false
}

// fromClassDefault uses the class family name when no frame predicate
// matched a template
func (d *Decomposer) fromClassDefault(a *verbclass.Analysis) (Result, bool) {
	if len(a.Classes) == 0 {
		return Result{}, false
	}
	primary := a.Classes[0]
	v, ok := classDefaults[primary.Name]
	if !ok {
		return Result{}, false
	}
	roles := primary.RoleTypes()
	if len(roles) == 0 {
		roles = v.DefaultRoles()
	}
	return Result{
		Decomposition: simple(v, roles),
		Confidence:    0.75,
		Source:        SourceClassDefault,
		ClassID:       primary.ID,
	}, true
}

// overrideRootRoles replaces the root node's role inventory, keeping
// sub-event roles intact
func overrideRootRoles(dec Decomposition, roles []model.ThetaRole) Decomposition {
	nodes := make([]Node, len(dec.Nodes))
	copy(nodes, dec.Nodes)
	nodes[dec.Root].Roles = roles
	return Decomposition{Nodes: nodes, Root: dec.Root}
}

// fromArgumentPattern infers an operator from the predicate's observed
// core dependents: which candidate operator's role inventory best
// covers the evidence, ties broken toward the smaller inventory and
// then toward Do
func fromArgumentPattern(deps []model.DependencyArc) (Result, bool) {
	hasSubj, hasObj, hasIobj := false, false, false
	for _, arc := range deps {
		switch arc.Relation {
		case model.RelNominalSubject, model.RelClausalSubject:
			hasSubj = true
		case model.RelObject:
			hasObj = true
		case model.RelIndirectObject:
			hasIobj = true
		}
	}
	if !hasSubj && !hasObj && !hasIobj {
		return Result{}, false
	}

	candidates := []model.LittleVType{
		model.LittleVDo, model.LittleVCause, model.LittleVHave,
		model.LittleVSay, model.LittleVExperience,
	}

	best := model.LittleVDo
	bestCover, bestUnused := -1, 0
	for _, v := range candidates {
		roles := v.DefaultRoles()
		cover, used := 0, 0
		if hasSubj && licenses(roles, model.RoleAgent, model.RoleExperiencer, model.RoleTheme) {
			cover++
			used++
		}
		if hasObj && licenses(roles, model.RolePatient, model.RoleTheme, model.RoleStimulus) {
			cover++
			used++
		}
		if hasIobj && licenses(roles, model.RoleRecipient) {
			cover++
			used++
		}
		unused := len(roles) - used
		if cover > bestCover || (cover == bestCover && unused < bestUnused) {
			best, bestCover, bestUnused = v, cover, unused
		}
	}

	return Result{
		Decomposition: simple(best, best.DefaultRoles()),
		Confidence:    0.45,
		Source:        SourceArgumentPattern,
	}, true
}

func licenses(roles []model.ThetaRole, any ...model.ThetaRole) bool {
	for _, r := range roles {
		for _, a := range any {
			if r == a {
				return true
			}
		}
	}
	return false
}
