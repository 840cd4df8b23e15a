package aspect

import (
	"testing"

	"github.com/ppiankov/semflow/internal/model"
)

func TestClassifyVerb(t *testing.T) {
	tests := []struct {
		lemma  string
		hasObj bool
		want   model.AspectualClass
	}{
		{"know", false, model.AspectState},
		{"own", true, model.AspectState},
		{"run", false, model.AspectActivity},
		{"knock", false, model.AspectActivity}, // semelfactive, patterns as activity
		{"arrive", false, model.AspectAchievement},
		{"break", true, model.AspectAchievement},
		{"build", true, model.AspectAccomplishment},
		{"build", false, model.AspectActivity},
		{"eat", true, model.AspectAccomplishment},
		{"eat", false, model.AspectActivity},
		{"zorble", false, model.AspectActivity}, // unknown defaults to activity
	}

	for _, tt := range tests {
		got := ClassifyVerb(tt.lemma, tt.hasObj)
		if got != tt.want {
			t.Errorf("ClassifyVerb(%q, %v) = %s, want %s", tt.lemma, tt.hasObj, got, tt.want)
		}
	}
}

func TestClassFeatures_RoundTrip(t *testing.T) {
	classes := []model.AspectualClass{
		model.AspectState, model.AspectActivity,
		model.AspectAccomplishment, model.AspectAchievement,
	}
	for _, c := range classes {
		if got := ClassFromFeatures(ClassFeatures(c)); got != c {
			t.Errorf("Round trip for %s yielded %s", c, got)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		in   []model.AspectualClass
		want model.AspectualClass
	}{
		{
			"activity plus accomplishment stays atelic",
			[]model.AspectualClass{model.AspectActivity, model.AspectAccomplishment},
			model.AspectActivity,
		},
		{
			"two accomplishments stay telic",
			[]model.AspectualClass{model.AspectAccomplishment, model.AspectAccomplishment},
			model.AspectAccomplishment,
		},
		{
			"achievement plus accomplishment is durative and telic",
			[]model.AspectualClass{model.AspectAchievement, model.AspectAccomplishment},
			model.AspectAccomplishment,
		},
		{
			"state plus activity is dynamic",
			[]model.AspectualClass{model.AspectState, model.AspectActivity},
			model.AspectActivity,
		},
		{
			"states compose to a state",
			[]model.AspectualClass{model.AspectState, model.AspectState},
			model.AspectState,
		},
	}

	for _, tt := range tests {
		if got := Compose(tt.in...); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestProgressiveCompatibility(t *testing.T) {
	if ProgressiveCompatibility(model.AspectState) != Incompatible {
		t.Error("Expected states to resist the progressive")
	}
	if ProgressiveCompatibility(model.AspectActivity) != Compatible {
		t.Error("Expected activities to take the progressive")
	}
	if ProgressiveCompatibility(model.AspectAccomplishment) != Compatible {
		t.Error("Expected accomplishments to take the progressive")
	}
	if ProgressiveCompatibility(model.AspectAchievement) != Coercible {
		t.Error("Expected achievements to coerce in the progressive")
	}
}

func TestAllowsTemporalModifier(t *testing.T) {
	tests := []struct {
		class model.AspectualClass
		mod   TemporalModifier
		want  bool
	}{
		{model.AspectState, ModifierFor, true},
		{model.AspectState, ModifierIn, false},
		{model.AspectActivity, ModifierFor, true},
		{model.AspectActivity, ModifierIn, false},
		{model.AspectAccomplishment, ModifierFor, true},
		{model.AspectAccomplishment, ModifierIn, true},
		{model.AspectAchievement, ModifierFor, false},
		{model.AspectAchievement, ModifierIn, false},
		{model.AspectAchievement, ModifierAt, true},
	}

	for _, tt := range tests {
		got := AllowsTemporalModifier(tt.class, tt.mod)
		if got != tt.want {
			t.Errorf("AllowsTemporalModifier(%s, %s) = %v, want %v", tt.class, tt.mod, got, tt.want)
		}
	}
}
