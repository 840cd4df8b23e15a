// Package bind assigns theta roles to the syntactic dependents of a
// predicate, resolving conflicts by structural closeness and recording
// what could not be bound.
package bind

import (
	"sort"

	"github.com/ppiankov/semflow/internal/model"
)

// Result is the outcome of binding one predicate's dependents
type Result struct {
	Participants map[model.ThetaRole]model.Entity
	Unbound      []model.UnboundEntity
	Modifiers    []model.Modifier
	Confidence   float32
}

// Binder maps dependency relations to candidate theta roles. Stateless
// and safe for concurrent use.
type Binder struct{}

// NewBinder creates a binder
func NewBinder() *Binder {
	return &Binder{}
}

// CandidateRoles returns the theta roles a relation can realize, most
// likely first. Passive voice demotes the subject to an undergoer role
// and licenses the by-phrase agent.
func (b *Binder) CandidateRoles(rel model.DependencyRelation, isPassive bool) []model.ThetaRole {
	switch rel {
	case model.RelNominalSubject:
		if isPassive {
			return []model.ThetaRole{model.RoleTheme, model.RolePatient}
		}
		return []model.ThetaRole{model.RoleAgent, model.RoleExperiencer, model.RoleTheme}
	case model.RelObject:
		return []model.ThetaRole{model.RolePatient, model.RoleTheme, model.RoleStimulus}
	case model.RelIndirectObject:
		return []model.ThetaRole{model.RoleRecipient, model.RoleBenefactive, model.RoleGoal}
	case model.RelObliqueAgent:
		return []model.ThetaRole{model.RoleAgent}
	case model.RelOblique:
		return []model.ThetaRole{
			model.RoleLocation, model.RoleSource, model.RoleGoal,
			model.RoleInstrument, model.RoleComitative,
		}
	case model.RelClausalSubject, model.RelClausalComplement, model.RelXClausalComplement:
		return []model.ThetaRole{model.RoleTheme, model.RoleStimulus}
	case model.RelNominalModifier:
		return []model.ThetaRole{model.RoleLocation, model.RoleSource}
	}
	return nil
}

// relation priority for binding order: core arguments claim roles
// before obliques
func bindPriority(rel model.DependencyRelation) int {
	switch rel {
	case model.RelNominalSubject, model.RelClausalSubject:
		return 0
	case model.RelObject:
		return 1
	case model.RelIndirectObject:
		return 2
	case model.RelObliqueAgent:
		return 3
	case model.RelClausalComplement, model.RelXClausalComplement:
		return 4
	default:
		return 5
	}
}

func isCoreRelation(rel model.DependencyRelation) bool {
	switch rel {
	case model.RelNominalSubject, model.RelObject, model.RelIndirectObject,
		model.RelClausalSubject:
		return true
	}
	return false
}

// Bind assigns the predicate's dependents to the expected role set.
// Confidence is the fraction of expected roles filled, scaled by the
// mean confidence of the arcs that filled them.
func (b *Binder) Bind(predicateIdx int, expected []model.ThetaRole, analysis *model.SentenceAnalysis, isPassive bool) Result {
	res := Result{
		Participants: make(map[model.ThetaRole]model.Entity),
	}

	arcs := analysis.Dependents(predicateIdx)
	sort.SliceStable(arcs, func(i, j int) bool {
		pi, pj := bindPriority(arcs[i].Relation), bindPriority(arcs[j].Relation)
		if pi != pj {
			return pi < pj
		}
		return distance(arcs[i].Dependent, predicateIdx) < distance(arcs[j].Dependent, predicateIdx)
	})

	expectedSet := make(map[model.ThetaRole]bool, len(expected))
	for _, r := range expected {
		expectedSet[r] = true
	}

	var filledArcConf []float32
	for _, arc := range arcs {
		if arc.Relation.IsFunctionWord() {
			continue
		}
		tok, ok := analysis.Token(arc.Dependent)
		if !ok {
			continue
		}

		// adverbials and temporal obliques are modifiers, not arguments
		if mod, isMod := modifierRole(arc.Relation); isMod {
			res.Modifiers = append(res.Modifiers, model.Modifier{
				Role:     mod,
				Text:     tok.Text,
				TokenIdx: arc.Dependent,
			})
			continue
		}

		candidates := b.CandidateRoles(arc.Relation, isPassive)
		if len(candidates) == 0 {
			continue
		}

		role, ok := pickRole(candidates, expectedSet, res.Participants)
		if !ok {
			res.Unbound = append(res.Unbound, unboundFor(arc, tok, candidates, expectedSet))
			continue
		}

		res.Participants[role] = entityFor(arc.Dependent, tok)
		filledArcConf = append(filledArcConf, arcConfidence(arc))
	}

	res.Confidence = bindingConfidence(len(res.Participants), len(expected), filledArcConf)
	return res
}

// pickRole selects the first candidate role that is both expected and
// unfilled
func pickRole(candidates []model.ThetaRole, expected map[model.ThetaRole]bool, filled map[model.ThetaRole]model.Entity) (model.ThetaRole, bool) {
	for _, c := range candidates {
		if !expected[c] {
			continue
		}
		if _, taken := filled[c]; taken {
			continue
		}
		return c, true
	}
	return "", false
}

// unboundFor diagnoses why an argument could not be bound
func unboundFor(arc model.DependencyArc, tok model.TokenAnalysis, candidates []model.ThetaRole, expected map[model.ThetaRole]bool) model.UnboundEntity {
	u := model.UnboundEntity{
		TokenIdx:      arc.Dependent,
		Text:          tok.Text,
		SuggestedRole: candidates[0],
	}
	anyExpected := false
	for _, c := range candidates {
		if expected[c] {
			anyExpected = true
			break
		}
	}
	switch {
	case !anyExpected && isCoreRelation(arc.Relation):
		u.Reason = model.ReasonSemanticMismatch
	case !anyExpected:
		u.Reason = model.ReasonAmbiguousRole
	case isCoreRelation(arc.Relation):
		// expected roles exist but every one is already claimed
		u.Reason = model.ReasonExtraCoreArgument
	default:
		u.Reason = model.ReasonAmbiguousRole
	}
	return u
}

// modifierRole maps adjunct relations to modifier roles
func modifierRole(rel model.DependencyRelation) (model.ThetaRole, bool) {
	switch rel {
	case model.RelAdverbialModifier:
		return model.RoleManner, true
	case model.RelObliqueTemporal:
		return model.RoleTemporal, true
	}
	return "", false
}

// entityFor builds a participant entity with features inferred from
// the part of speech: proper names and pronouns read as human, proper
// names as definite
func entityFor(idx int, tok model.TokenAnalysis) model.Entity {
	e := model.Entity{TokenIdx: idx, Text: tok.Text}
	switch tok.POS {
	case model.UPosPropn:
		e.Animacy = model.AnimacyHuman
		e.Definiteness = model.Definite
	case model.UPosPron:
		e.Animacy = model.AnimacyHuman
	}
	return e
}

func arcConfidence(arc model.DependencyArc) float32 {
	if arc.Confidence <= 0 {
		return 1.0
	}
	return arc.Confidence
}

func bindingConfidence(filled, expected int, arcConfs []float32) float32 {
	if expected == 0 {
		return 1.0
	}
	coverage := float32(filled) / float32(expected)
	if len(arcConfs) == 0 {
		return coverage
	}
	var sum float32
	for _, c := range arcConfs {
		sum += c
	}
	return coverage * (sum / float32(len(arcConfs)))
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
