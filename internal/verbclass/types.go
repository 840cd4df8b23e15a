package verbclass

import "github.com/ppiankov/semflow/internal/model"

// PredicateType categorizes a semantic predicate within a frame
type PredicateType string

const (
	PredMotion        PredicateType = "motion"
	PredChange        PredicateType = "change"
	PredTransfer      PredicateType = "transfer"
	PredCreated       PredicateType = "created"
	PredDestroyed     PredicateType = "destroyed"
	PredState         PredicateType = "state"
	PredPossession    PredicateType = "possession"
	PredExperience    PredicateType = "experience"
	PredCommunication PredicateType = "communication"
	PredExistence     PredicateType = "existence"
	PredContact       PredicateType = "contact"
)

// SemanticPredicate is one primitive predicate in a frame's semantics
type SemanticPredicate struct {
	Name string        `yaml:"name" json:"name"`
	Type PredicateType `yaml:"type" json:"type"`
	Args []string      `yaml:"args,omitempty" json:"args,omitempty"`
}

// SelectionalRestriction constrains the filler of a theta role
type SelectionalRestriction struct {
	Type  string `yaml:"type" json:"type"`   // e.g. "animate", "concrete"
	Value string `yaml:"value" json:"value"` // "+" or "-"
}

// RoleSpec is a theta role with its selectional restrictions
type RoleSpec struct {
	Role         model.ThetaRole          `yaml:"role" json:"role"`
	Restrictions []SelectionalRestriction `yaml:"restrictions,omitempty" json:"restrictions,omitempty"`
}

// SyntacticFrame pairs a surface realization pattern with its semantics
type SyntacticFrame struct {
	Description string              `yaml:"description" json:"description"`
	Primary     string              `yaml:"primary,omitempty" json:"primary,omitempty"`
	Example     string              `yaml:"example,omitempty" json:"example,omitempty"`
	Semantics   []SemanticPredicate `yaml:"semantics,omitempty" json:"semantics,omitempty"`
}

// VerbClass groups verbs sharing argument structure and frame semantics
type VerbClass struct {
	ID      string           `yaml:"id" json:"id"`
	Name    string           `yaml:"name" json:"name"`
	Members []string         `yaml:"members" json:"members"`
	Roles   []RoleSpec       `yaml:"roles,omitempty" json:"roles,omitempty"`
	Frames  []SyntacticFrame `yaml:"frames,omitempty" json:"frames,omitempty"`
}

// RoleTypes returns the class's theta role inventory in declaration order
func (c *VerbClass) RoleTypes() []model.ThetaRole {
	roles := make([]model.ThetaRole, 0, len(c.Roles))
	for _, r := range c.Roles {
		roles = append(roles, r.Role)
	}
	return roles
}

// SemanticPredicates returns every predicate across the class's frames
func (c *VerbClass) SemanticPredicates() []SemanticPredicate {
	var preds []SemanticPredicate
	for _, f := range c.Frames {
		preds = append(preds, f.Semantics...)
	}
	return preds
}

// AspectualInfo is the feature bundle inferred from frame semantics
type AspectualInfo struct {
	Durative bool `json:"durative"`
	Dynamic  bool `json:"dynamic"`
	Telic    bool `json:"telic"`
	Punctual bool `json:"punctual"`
}

// Analysis is the result of a verb-class lookup for one lemma
type Analysis struct {
	Lemma      string      `json:"lemma"`
	Classes    []VerbClass `json:"classes"`
	Confidence float32     `json:"confidence"`
}

// PrimaryClassID returns the id of the best-matching class
func (a *Analysis) PrimaryClassID() string {
	if len(a.Classes) == 0 {
		return ""
	}
	return a.Classes[0].ID
}

// Analyzer is the pull-query capability exposed by a lexical resource:
// Lookup returns nil, false when the lemma is unknown
type Analyzer interface {
	Lookup(lemma string) (*Analysis, bool)
}
