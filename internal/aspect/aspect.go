// Package aspect classifies predicates into Vendler aspectual classes
// and composes the aspectual features of complex events.
package aspect

import "github.com/ppiankov/semflow/internal/model"

// Features is the binary feature bundle characterizing an aspectual class
type Features struct {
	Dynamic  bool `json:"dynamic" yaml:"dynamic"`
	Durative bool `json:"durative" yaml:"durative"`
	Telic    bool `json:"telic" yaml:"telic"`
}

// ClassFeatures returns the defining feature bundle of a class
func ClassFeatures(c model.AspectualClass) Features {
	switch c {
	case model.AspectState:
		return Features{Dynamic: false, Durative: true, Telic: false}
	case model.AspectActivity:
		return Features{Dynamic: true, Durative: true, Telic: false}
	case model.AspectAccomplishment:
		return Features{Dynamic: true, Durative: true, Telic: true}
	case model.AspectAchievement:
		return Features{Dynamic: true, Durative: false, Telic: true}
	}
	return Features{}
}

// ClassFromFeatures maps a feature bundle back to its class. Non-dynamic
// bundles are states regardless of the other features.
func ClassFromFeatures(f Features) model.AspectualClass {
	if !f.Dynamic {
		return model.AspectState
	}
	if !f.Telic {
		return model.AspectActivity
	}
	if f.Durative {
		return model.AspectAccomplishment
	}
	return model.AspectAchievement
}

// stative verbs: no internal change over their run time
var stateVerbs = map[string]bool{
	"know": true, "believe": true, "love": true, "hate": true,
	"like": true, "want": true, "own": true, "possess": true,
	"resemble": true, "contain": true, "belong": true, "fear": true,
	"seem": true, "exist": true, "remain": true, "be": true,
	"have": true, "need": true, "deserve": true,
}

// atelic process verbs. Semelfactives (knock, tap) pattern with
// activities under iteration, so they live here.
var activityVerbs = map[string]bool{
	"run": true, "walk": true, "swim": true, "jog": true,
	"push": true, "pull": true, "laugh": true, "play": true,
	"dance": true, "drive": true, "sing": true, "work": true,
	"sleep": true, "talk": true, "rain": true, "stroll": true,
	"knock": true, "tap": true, "cough": true, "blink": true,
}

// punctual culminations
var achievementVerbs = map[string]bool{
	"arrive": true, "die": true, "find": true, "notice": true,
	"recognize": true, "reach": true, "win": true, "lose": true,
	"explode": true, "realize": true, "discover": true,
	"break": true, "shatter": true, "crack": true, "snap": true,
}

// verbs whose telicity depends on a bounded direct object:
// "built a house" culminates, "built" (absolutely) does not
var incrementalThemeVerbs = map[string]bool{
	"build": true, "write": true, "paint": true, "eat": true,
	"drink": true, "draw": true, "read": true, "construct": true,
	"create": true, "make": true, "destroy": true, "demolish": true,
	"compose": true, "assemble": true,
}

// ClassifyVerb assigns a Vendler class to a verb lemma. Incremental
// theme verbs are accomplishments only when a direct object bounds the
// event; otherwise they read as activities. Unknown verbs default to
// Activity, the least committed dynamic class.
func ClassifyVerb(lemma string, hasDirectObject bool) model.AspectualClass {
	switch {
	case stateVerbs[lemma]:
		return model.AspectState
	case achievementVerbs[lemma]:
		return model.AspectAchievement
	case incrementalThemeVerbs[lemma]:
		if hasDirectObject {
			return model.AspectAccomplishment
		}
		return model.AspectActivity
	case activityVerbs[lemma]:
		return model.AspectActivity
	}
	return model.AspectActivity
}

// Compose derives the aspectual class of a complex event from its
// parts: the result is dynamic if any part is dynamic, durative if any
// part is durative, and telic only if every part is telic. A sequence
// culminates only when each step does.
func Compose(classes ...model.AspectualClass) model.AspectualClass {
	if len(classes) == 0 {
		return model.AspectState
	}
	out := Features{Telic: true}
	for _, c := range classes {
		f := ClassFeatures(c)
		out.Dynamic = out.Dynamic || f.Dynamic
		out.Durative = out.Durative || f.Durative
		out.Telic = out.Telic && f.Telic
	}
	return ClassFromFeatures(out)
}

// Compatibility grades how naturally a class combines with a
// grammatical construction
type Compatibility string

const (
	Compatible   Compatibility = "compatible"
	Coercible    Compatibility = "coercible"
	Incompatible Compatibility = "incompatible"
)

// ProgressiveCompatibility reports how a class behaves in the
// progressive. States resist it; achievements allow it only under a
// preliminary-stage reading ("the train is arriving").
func ProgressiveCompatibility(c model.AspectualClass) Compatibility {
	switch c {
	case model.AspectState:
		return Incompatible
	case model.AspectAchievement:
		return Coercible
	}
	return Compatible
}

// TemporalModifier is a class of durational or punctual adverbial
type TemporalModifier string

const (
	ModifierFor TemporalModifier = "for" // "for an hour"
	ModifierIn  TemporalModifier = "in"  // "in an hour"
	ModifierAt  TemporalModifier = "at"  // "at noon"
)

// AllowsTemporalModifier reports whether the class licenses the
// modifier. Atelic classes take "for", accomplishments additionally
// take "in", and punctual achievements take only point adverbials.
func AllowsTemporalModifier(c model.AspectualClass, m TemporalModifier) bool {
	switch c {
	case model.AspectState, model.AspectActivity:
		return m == ModifierFor
	case model.AspectAccomplishment:
		return m == ModifierFor || m == ModifierIn
	case model.AspectAchievement:
		return m == ModifierAt
	}
	return false
}
