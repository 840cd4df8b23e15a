package model

// UPos is a Universal Dependencies part-of-speech tag
type UPos string

const (
	UPosNoun  UPos = "NOUN"
	UPosPropn UPos = "PROPN"
	UPosPron  UPos = "PRON"
	UPosVerb  UPos = "VERB"
	UPosAux   UPos = "AUX"
	UPosAdj   UPos = "ADJ"
	UPosAdv   UPos = "ADV"
	UPosDet   UPos = "DET"
	UPosAdp   UPos = "ADP"
	UPosNum   UPos = "NUM"
	UPosCconj UPos = "CCONJ"
	UPosSconj UPos = "SCONJ"
	UPosPart  UPos = "PART"
	UPosIntj  UPos = "INTJ"
	UPosPunct UPos = "PUNCT"
	UPosSym   UPos = "SYM"
	UPosX     UPos = "X"
)

// IsPredicate reports whether this part of speech can head an event
func (p UPos) IsPredicate() bool {
	return p == UPosVerb || p == UPosAux
}

// IsContentWord reports whether this part of speech denotes an entity
// that could fill a theta role
func (p UPos) IsContentWord() bool {
	return p == UPosNoun || p == UPosPropn || p == UPosPron
}

// DependencyRelation is a Universal Dependencies relation label
type DependencyRelation string

const (
	RelNominalSubject     DependencyRelation = "nsubj"
	RelObject             DependencyRelation = "obj"
	RelIndirectObject     DependencyRelation = "iobj"
	RelOblique            DependencyRelation = "obl"
	RelObliqueAgent       DependencyRelation = "obl:agent"
	RelObliqueTemporal    DependencyRelation = "obl:tmod"
	RelClausalSubject     DependencyRelation = "csubj"
	RelClausalComplement  DependencyRelation = "ccomp"
	RelXClausalComplement DependencyRelation = "xcomp"
	RelAdverbialModifier  DependencyRelation = "advmod"
	RelAdjectivalModifier DependencyRelation = "amod"
	RelNominalModifier    DependencyRelation = "nmod"
	RelCompound           DependencyRelation = "compound"
	RelConjunct           DependencyRelation = "conj"
	RelCoordination       DependencyRelation = "cc"
	RelDeterminer         DependencyRelation = "det"
	RelCase               DependencyRelation = "case"
	RelAuxiliary          DependencyRelation = "aux"
	RelCopula             DependencyRelation = "cop"
	RelMark               DependencyRelation = "mark"
	RelPunctuation        DependencyRelation = "punct"
)

// IsFunctionWord reports whether the relation attaches a function word
// that never fills a theta role (determiners, case markers, auxiliaries)
func (r DependencyRelation) IsFunctionWord() bool {
	switch r {
	case RelDeterminer, RelCase, RelAuxiliary, RelCopula, RelMark,
		RelCoordination, RelPunctuation:
		return true
	}
	return false
}

// TokenAnalysis is a single token as produced by the morphosyntactic
// parser: surface form, lemma, part of speech, and the parser's
// confidence in the analysis
type TokenAnalysis struct {
	Text       string  `json:"text" yaml:"text"`
	Lemma      string  `json:"lemma" yaml:"lemma"`
	POS        UPos    `json:"pos" yaml:"pos"`
	Confidence float32 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// DependencyArc links a head token to a dependent token
type DependencyArc struct {
	Head       int                `json:"head" yaml:"head"`
	Dependent  int                `json:"dependent" yaml:"dependent"`
	Relation   DependencyRelation `json:"relation" yaml:"relation"`
	Confidence float32            `json:"confidence" yaml:"confidence"`
}

// NewDependencyArc creates an arc with full confidence
func NewDependencyArc(head, dependent int, relation DependencyRelation) DependencyArc {
	return DependencyArc{
		Head:       head,
		Dependent:  dependent,
		Relation:   relation,
		Confidence: 1.0,
	}
}

// SentenceMetadata carries sentence-level flags that affect composition
type SentenceMetadata struct {
	SentenceID      string `json:"sentence_id,omitempty" yaml:"sentence_id,omitempty"`
	IsPassive       bool   `json:"is_passive" yaml:"is_passive"`
	IsInterrogative bool   `json:"is_interrogative" yaml:"is_interrogative"`
	IsNegated       bool   `json:"is_negated" yaml:"is_negated"`
	IsImperative    bool   `json:"is_imperative" yaml:"is_imperative"`
}

// SentenceAnalysis is the complete morphosyntactic analysis of one
// sentence: the composition engine's input contract
type SentenceAnalysis struct {
	Text         string           `json:"text" yaml:"text"`
	Tokens       []TokenAnalysis  `json:"tokens" yaml:"tokens"`
	Dependencies []DependencyArc  `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Metadata     SentenceMetadata `json:"metadata" yaml:"metadata"`
}

// NewSentenceAnalysis creates an analysis with no dependencies or metadata
func NewSentenceAnalysis(text string, tokens []TokenAnalysis) *SentenceAnalysis {
	return &SentenceAnalysis{Text: text, Tokens: tokens}
}

// Token returns the token at idx, or false if out of range
func (a *SentenceAnalysis) Token(idx int) (TokenAnalysis, bool) {
	if idx < 0 || idx >= len(a.Tokens) {
		return TokenAnalysis{}, false
	}
	return a.Tokens[idx], true
}

// FindPredicates returns the indices of tokens that can head an event
func (a *SentenceAnalysis) FindPredicates() []int {
	var idxs []int
	for i, t := range a.Tokens {
		if t.POS.IsPredicate() {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Dependents returns all arcs headed by the given token
func (a *SentenceAnalysis) Dependents(headIdx int) []DependencyArc {
	var arcs []DependencyArc
	for _, arc := range a.Dependencies {
		if arc.Head == headIdx {
			arcs = append(arcs, arc)
		}
	}
	return arcs
}
