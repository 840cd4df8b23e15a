package model

// ThetaRole is a semantic argument role assigned to a syntactic
// dependent of a predicate
type ThetaRole string

const (
	RoleAgent             ThetaRole = "Agent"
	RolePatient           ThetaRole = "Patient"
	RoleTheme             ThetaRole = "Theme"
	RoleExperiencer       ThetaRole = "Experiencer"
	RoleRecipient         ThetaRole = "Recipient"
	RoleBenefactive       ThetaRole = "Benefactive"
	RoleInstrument        ThetaRole = "Instrument"
	RoleComitative        ThetaRole = "Comitative"
	RoleLocation          ThetaRole = "Location"
	RoleSource            ThetaRole = "Source"
	RoleGoal              ThetaRole = "Goal"
	RoleDirection         ThetaRole = "Direction"
	RoleTemporal          ThetaRole = "Temporal"
	RoleFrequency         ThetaRole = "Frequency"
	RoleMeasure           ThetaRole = "Measure"
	RoleCause             ThetaRole = "Cause"
	RoleManner            ThetaRole = "Manner"
	RoleControlledSubject ThetaRole = "ControlledSubject"
	RoleStimulus          ThetaRole = "Stimulus"
)

// AllThetaRoles returns every role in the closed inventory
func AllThetaRoles() []ThetaRole {
	return []ThetaRole{
		RoleAgent, RolePatient, RoleTheme, RoleExperiencer, RoleRecipient,
		RoleBenefactive, RoleInstrument, RoleComitative, RoleLocation,
		RoleSource, RoleGoal, RoleDirection, RoleTemporal, RoleFrequency,
		RoleMeasure, RoleCause, RoleManner, RoleControlledSubject,
		RoleStimulus,
	}
}

// IsCoreArgument reports whether the role is a core argument rather
// than an adjunct
func (r ThetaRole) IsCoreArgument() bool {
	switch r {
	case RoleAgent, RolePatient, RoleTheme, RoleExperiencer, RoleRecipient,
		RoleStimulus:
		return true
	}
	return false
}

// LittleVType is a primitive event-semantic operator used in
// decompositional event semantics
type LittleVType string

const (
	LittleVCause      LittleVType = "Cause"
	LittleVBecome     LittleVType = "Become"
	LittleVBe         LittleVType = "Be"
	LittleVDo         LittleVType = "Do"
	LittleVExperience LittleVType = "Experience"
	LittleVGo         LittleVType = "Go"
	LittleVHave       LittleVType = "Have"
	LittleVSay        LittleVType = "Say"
	LittleVExist      LittleVType = "Exist"
)

// AllLittleVTypes returns every primitive operator
func AllLittleVTypes() []LittleVType {
	return []LittleVType{
		LittleVCause, LittleVBecome, LittleVBe, LittleVDo,
		LittleVExperience, LittleVGo, LittleVHave, LittleVSay, LittleVExist,
	}
}

// DefaultRoles returns the expected role set for this operator when no
// lexical evidence supplies a more specific inventory
func (v LittleVType) DefaultRoles() []ThetaRole {
	switch v {
	case LittleVCause:
		return []ThetaRole{RoleAgent, RolePatient}
	case LittleVBecome:
		return []ThetaRole{RoleTheme}
	case LittleVBe:
		return []ThetaRole{RoleTheme}
	case LittleVDo:
		return []ThetaRole{RoleAgent}
	case LittleVExperience:
		return []ThetaRole{RoleExperiencer, RoleStimulus}
	case LittleVGo:
		return []ThetaRole{RoleTheme, RoleGoal}
	case LittleVHave:
		return []ThetaRole{RoleAgent, RoleTheme}
	case LittleVSay:
		return []ThetaRole{RoleAgent, RoleRecipient}
	case LittleVExist:
		return []ThetaRole{RoleTheme, RoleLocation}
	}
	return nil
}

// Voice of the clause containing a predicate
type Voice string

const (
	VoiceActive  Voice = "active"
	VoicePassive Voice = "passive"
)

// AspectualClass is a Vendler class describing the temporal structure
// of a predicate
type AspectualClass string

const (
	AspectState          AspectualClass = "State"
	AspectActivity       AspectualClass = "Activity"
	AspectAccomplishment AspectualClass = "Accomplishment"
	AspectAchievement    AspectualClass = "Achievement"
)

// Animacy of a participant
type Animacy string

const (
	AnimacyHuman     Animacy = "human"
	AnimacyAnimal    Animacy = "animal"
	AnimacyInanimate Animacy = "inanimate"
)

// Definiteness of a participant's reference
type Definiteness string

const (
	Definite   Definiteness = "definite"
	Indefinite Definiteness = "indefinite"
)

// Entity is a participant bound to a theta role: a surface expression
// plus independently sourced semantic features, each optional
type Entity struct {
	TokenIdx     int          `json:"token_idx" yaml:"token_idx"`
	Text         string       `json:"text" yaml:"text"`
	Animacy      Animacy      `json:"animacy,omitempty" yaml:"animacy,omitempty"`
	Definiteness Definiteness `json:"definiteness,omitempty" yaml:"definiteness,omitempty"`
	Countability string       `json:"countability,omitempty" yaml:"countability,omitempty"`
	Concreteness string       `json:"concreteness,omitempty" yaml:"concreteness,omitempty"`
}

// Predicate identifies the lexical head of an event
type Predicate struct {
	Lemma        string   `json:"lemma" yaml:"lemma"`
	SemanticType string   `json:"semantic_type,omitempty" yaml:"semantic_type,omitempty"`
	VerbClassID  string   `json:"verb_class_id,omitempty" yaml:"verb_class_id,omitempty"`
	Features     []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// StructureKind labels a nested event structure
type StructureKind string

// StructureCausative marks a Cause operator wrapping an inner event
const StructureCausative StructureKind = "causative"

// EventStructure is an explicit nested structure for decomposed
// predicates, e.g. a causative with its caused sub-event
type EventStructure struct {
	Kind   StructureKind `json:"kind" yaml:"kind"`
	Causer *Entity       `json:"causer,omitempty" yaml:"causer,omitempty"`
	Caused *Event        `json:"caused,omitempty" yaml:"caused,omitempty"`
}

// Modifier is a non-argument dependent contributing manner, time or
// place information to an event
type Modifier struct {
	Role     ThetaRole `json:"role" yaml:"role"`
	Text     string    `json:"text" yaml:"text"`
	TokenIdx int       `json:"token_idx" yaml:"token_idx"`
}

// Event is a Neo-Davidsonian event: a predicate with separately bound
// thematic participants. Immutable once built by the composer.
type Event struct {
	ID           int                 `json:"id" yaml:"id"`
	Predicate    Predicate           `json:"predicate" yaml:"predicate"`
	LittleV      LittleVType         `json:"little_v" yaml:"little_v"`
	Participants map[ThetaRole]Entity `json:"participants" yaml:"participants"`
	Aspect       AspectualClass      `json:"aspect" yaml:"aspect"`
	Voice        Voice               `json:"voice" yaml:"voice"`
	Structure    *EventStructure     `json:"structure,omitempty" yaml:"structure,omitempty"`
	Modifiers    []Modifier          `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// UnbindingReason explains why an entity could not be bound
type UnbindingReason string

const (
	ReasonNoPredicateFound  UnbindingReason = "no_predicate_found"
	ReasonAmbiguousRole     UnbindingReason = "ambiguous_role"
	ReasonExtraCoreArgument UnbindingReason = "extra_core_argument"
	ReasonMissingDependency UnbindingReason = "missing_dependency"
	ReasonSemanticMismatch  UnbindingReason = "semantic_mismatch"
)

// UnboundEntity records a token that could not be assigned a theta role
type UnboundEntity struct {
	TokenIdx      int             `json:"token_idx" yaml:"token_idx"`
	Text          string          `json:"text" yaml:"text"`
	SuggestedRole ThetaRole       `json:"suggested_role,omitempty" yaml:"suggested_role,omitempty"`
	Reason        UnbindingReason `json:"reason" yaml:"reason"`
}

// ComposedEvent wraps an Event with its provenance and confidence
type ComposedEvent struct {
	ID                      int     `json:"id" yaml:"id"`
	Event                   Event   `json:"event" yaml:"event"`
	TokenSpan               [2]int  `json:"token_span" yaml:"token_span"`
	VerbClassSource         string  `json:"verb_class_source,omitempty" yaml:"verb_class_source,omitempty"`
	FrameSource             string  `json:"frame_source,omitempty" yaml:"frame_source,omitempty"`
	DecompositionConfidence float32 `json:"decomposition_confidence" yaml:"decomposition_confidence"`
	BindingConfidence       float32 `json:"binding_confidence" yaml:"binding_confidence"`
}

// OverallConfidence is the mean of the decomposition and binding scores
func (e *ComposedEvent) OverallConfidence() float32 {
	return (e.DecompositionConfidence + e.BindingConfidence) / 2.0
}

// HasRole reports whether the given theta role is filled
func (e *ComposedEvent) HasRole(role ThetaRole) bool {
	_, ok := e.Event.Participants[role]
	return ok
}

// Participant returns the entity bound to the given role
func (e *ComposedEvent) Participant(role ThetaRole) (Entity, bool) {
	ent, ok := e.Event.Participants[role]
	return ent, ok
}

// ComposedEvents is the composition result for one sentence,
// constructed once and never mutated after return
type ComposedEvents struct {
	SentenceID       string          `json:"sentence_id,omitempty" yaml:"sentence_id,omitempty"`
	Events           []ComposedEvent `json:"events" yaml:"events"`
	UnboundEntities  []UnboundEntity `json:"unbound_entities,omitempty" yaml:"unbound_entities,omitempty"`
	Confidence       float32         `json:"confidence" yaml:"confidence"`
	ProcessingTimeUs uint64          `json:"processing_time_us" yaml:"processing_time_us"`
	Sources          []string        `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// EmptyComposedEvents returns a result with no events
func EmptyComposedEvents() *ComposedEvents {
	return &ComposedEvents{
		Events:          []ComposedEvent{},
		UnboundEntities: []UnboundEntity{},
	}
}

// HasEvents reports whether any events were composed
func (c *ComposedEvents) HasEvents() bool {
	return len(c.Events) > 0
}

// PrimaryEvent returns the first composed event
func (c *ComposedEvents) PrimaryEvent() (*ComposedEvent, bool) {
	if len(c.Events) == 0 {
		return nil, false
	}
	return &c.Events[0], true
}

// TotalParticipants counts bound participants across all events
func (c *ComposedEvents) TotalParticipants() int {
	total := 0
	for _, e := range c.Events {
		total += len(e.Event.Participants)
	}
	return total
}
