package model

import "testing"

func TestLittleVType_DefaultRoles(t *testing.T) {
	tests := []struct {
		v     LittleVType
		roles []ThetaRole
	}{
		{LittleVCause, []ThetaRole{RoleAgent, RolePatient}},
		{LittleVBecome, []ThetaRole{RoleTheme}},
		{LittleVBe, []ThetaRole{RoleTheme}},
		{LittleVDo, []ThetaRole{RoleAgent}},
		{LittleVExperience, []ThetaRole{RoleExperiencer, RoleStimulus}},
		{LittleVGo, []ThetaRole{RoleTheme, RoleGoal}},
		{LittleVHave, []ThetaRole{RoleAgent, RoleTheme}},
		{LittleVSay, []ThetaRole{RoleAgent, RoleRecipient}},
		{LittleVExist, []ThetaRole{RoleTheme, RoleLocation}},
	}

	for _, tt := range tests {
		got := tt.v.DefaultRoles()
		if len(got) != len(tt.roles) {
			t.Errorf("%s: expected %d roles, got %d", tt.v, len(tt.roles), len(got))
			continue
		}
		for i, role := range tt.roles {
			if got[i] != role {
				t.Errorf("%s: role %d: expected %s, got %s", tt.v, i, role, got[i])
			}
		}
	}
}

func TestAllThetaRoles_ClosedInventory(t *testing.T) {
	roles := AllThetaRoles()
	if len(roles) != 19 {
		t.Errorf("Expected 19 theta roles, got %d", len(roles))
	}

	seen := make(map[ThetaRole]bool)
	for _, r := range roles {
		if seen[r] {
			t.Errorf("Duplicate role %s in inventory", r)
		}
		seen[r] = true
	}
}

func TestThetaRole_IsCoreArgument(t *testing.T) {
	if !RoleAgent.IsCoreArgument() {
		t.Error("Expected Agent to be a core argument")
	}
	if !RoleExperiencer.IsCoreArgument() {
		t.Error("Expected Experiencer to be a core argument")
	}
	if RoleLocation.IsCoreArgument() {
		t.Error("Expected Location to be an adjunct")
	}
	if RoleManner.IsCoreArgument() {
		t.Error("Expected Manner to be an adjunct")
	}
}

func TestComposedEvent_OverallConfidence(t *testing.T) {
	e := ComposedEvent{
		DecompositionConfidence: 0.8,
		BindingConfidence:       0.6,
	}

	got := e.OverallConfidence()
	if got < 0.699 || got > 0.701 {
		t.Errorf("Expected overall confidence 0.7, got %f", got)
	}
}

func TestComposedEvent_Participants(t *testing.T) {
	e := ComposedEvent{
		Event: Event{
			Participants: map[ThetaRole]Entity{
				RoleAgent: {TokenIdx: 0, Text: "John"},
			},
		},
	}

	if !e.HasRole(RoleAgent) {
		t.Error("Expected Agent role to be filled")
	}
	if e.HasRole(RolePatient) {
		t.Error("Expected Patient role to be empty")
	}

	ent, ok := e.Participant(RoleAgent)
	if !ok {
		t.Fatal("Expected Agent participant")
	}
	if ent.Text != "John" {
		t.Errorf("Expected participant John, got %s", ent.Text)
	}
}

func TestEmptyComposedEvents(t *testing.T) {
	c := EmptyComposedEvents()

	if c.HasEvents() {
		t.Error("Expected no events")
	}
	if _, ok := c.PrimaryEvent(); ok {
		t.Error("Expected no primary event")
	}
	if c.TotalParticipants() != 0 {
		t.Errorf("Expected 0 participants, got %d", c.TotalParticipants())
	}
	if c.Events == nil || c.UnboundEntities == nil {
		t.Error("Expected initialized slices, not nil")
	}
}

func TestSentenceAnalysis_FindPredicates(t *testing.T) {
	a := NewSentenceAnalysis("John has run", []TokenAnalysis{
		{Text: "John", Lemma: "john", POS: UPosPropn},
		{Text: "has", Lemma: "have", POS: UPosAux},
		{Text: "run", Lemma: "run", POS: UPosVerb},
	})

	preds := a.FindPredicates()
	if len(preds) != 2 {
		t.Fatalf("Expected 2 predicate candidates, got %d", len(preds))
	}
	if preds[0] != 1 || preds[1] != 2 {
		t.Errorf("Expected predicates at 1 and 2, got %v", preds)
	}
}

func TestSentenceAnalysis_TokenBounds(t *testing.T) {
	a := NewSentenceAnalysis("hi", []TokenAnalysis{{Text: "hi", POS: UPosIntj}})

	if _, ok := a.Token(0); !ok {
		t.Error("Expected token at index 0")
	}
	if _, ok := a.Token(1); ok {
		t.Error("Expected no token at index 1")
	}
	if _, ok := a.Token(-1); ok {
		t.Error("Expected no token at index -1")
	}
}

func TestDependencyRelation_IsFunctionWord(t *testing.T) {
	if !RelDeterminer.IsFunctionWord() {
		t.Error("Expected det to be a function word relation")
	}
	if !RelAuxiliary.IsFunctionWord() {
		t.Error("Expected aux to be a function word relation")
	}
	if RelNominalSubject.IsFunctionWord() {
		t.Error("Expected nsubj to be an argument relation")
	}
}
