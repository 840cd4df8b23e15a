package verbclass

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/semflow/internal/model"
	"gopkg.in/yaml.v3"
)

// Typed load errors. Lookups against a loaded index never error.
var (
	// ErrDataDirNotFound means the class directory does not exist
	ErrDataDirNotFound = errors.New("verb class directory not found")

	// ErrInvalidFormat means a class definition file failed to parse
	ErrInvalidFormat = errors.New("invalid verb class definition")
)

// Index is an immutable, indexed view over a set of verb classes.
// Build once at startup; concurrent reads need no locking.
type Index struct {
	classes       map[string]VerbClass
	order         []string // class ids in load order
	byLemma       map[string][]string
	byRole        map[model.ThetaRole][]string
	byPredicate   map[PredicateType][]string
	byRestriction map[string][]string
}

// Stats summarizes the loaded inventory
type Stats struct {
	Classes      int `json:"classes"`
	Verbs        int `json:"verbs"`
	Roles        int `json:"roles"`
	Predicates   int `json:"predicates"`
	Restrictions int `json:"restrictions"`
}

// NewIndex builds an index over the given classes
func NewIndex(classes []VerbClass) *Index {
	idx := &Index{
		classes:       make(map[string]VerbClass, len(classes)),
		byLemma:       make(map[string][]string),
		byRole:        make(map[model.ThetaRole][]string),
		byPredicate:   make(map[PredicateType][]string),
		byRestriction: make(map[string][]string),
	}
	for _, c := range classes {
		if _, dup := idx.classes[c.ID]; dup {
			continue
		}
		idx.classes[c.ID] = c
		idx.order = append(idx.order, c.ID)

		for _, member := range c.Members {
			lemma := strings.ToLower(member)
			idx.byLemma[lemma] = append(idx.byLemma[lemma], c.ID)
		}
		for _, spec := range c.Roles {
			idx.byRole[spec.Role] = appendUnique(idx.byRole[spec.Role], c.ID)
			for _, restr := range spec.Restrictions {
				idx.byRestriction[restr.Type] = appendUnique(idx.byRestriction[restr.Type], c.ID)
			}
		}
		for _, pred := range c.SemanticPredicates() {
			idx.byPredicate[pred.Type] = appendUnique(idx.byPredicate[pred.Type], c.ID)
		}
	}
	return idx
}

// Builtin returns an index over the built-in class inventory
func Builtin() *Index {
	return NewIndex(builtinClasses())
}

// classFile is the YAML document shape for a class definition file
type classFile struct {
	Classes []VerbClass `yaml:"classes"`
}

// LoadDirectory builds an index from every .yaml/.yml file in dir.
// The built-in inventory is always included; file definitions with a
// duplicate class id are ignored in favor of the earlier definition.
func LoadDirectory(dir string) (*Index, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDataDirNotFound, dir)
	}

	classes := builtinClasses()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataDirNotFound, dir)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidFormat, entry.Name(), err)
		}
		var doc classFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidFormat, entry.Name(), err)
		}
		for _, c := range doc.Classes {
			if c.ID == "" || len(c.Members) == 0 {
				return nil, fmt.Errorf("%w: %s: class needs id and members", ErrInvalidFormat, entry.Name())
			}
		}
		classes = append(classes, doc.Classes...)
	}
	return NewIndex(classes), nil
}

// Class returns a class by id
func (idx *Index) Class(id string) (VerbClass, bool) {
	c, ok := idx.classes[id]
	return c, ok
}

// Classes returns every class containing the lemma as a member,
// empty for unknown lemmas
func (idx *Index) Classes(lemma string) []VerbClass {
	ids := idx.lemmaClassIDs(lemma)
	classes := make([]VerbClass, 0, len(ids))
	for _, id := range ids {
		if c, ok := idx.classes[id]; ok {
			classes = append(classes, c)
		}
	}
	return classes
}

// lemmaClassIDs resolves a lemma to class ids, falling back to light
// suffix stripping for inflected forms
func (idx *Index) lemmaClassIDs(lemma string) []string {
	lemma = strings.ToLower(lemma)
	if ids, ok := idx.byLemma[lemma]; ok {
		return ids
	}
	for _, candidate := range inflectionCandidates(lemma) {
		if ids, ok := idx.byLemma[candidate]; ok {
			return ids
		}
	}
	return nil
}

// inflectionCandidates generates plausible base forms for an
// inflected surface lemma
func inflectionCandidates(lemma string) []string {
	var out []string
	if s, ok := strings.CutSuffix(lemma, "ing"); ok {
		out = append(out, s, s+"e")
		// doubled final consonant, as in "running" -> "run"
		if len(s) >= 2 && s[len(s)-1] == s[len(s)-2] {
			out = append(out, s[:len(s)-1])
		}
	}
	if s, ok := strings.CutSuffix(lemma, "ed"); ok {
		out = append(out, s, s+"e")
	}
	if s, ok := strings.CutSuffix(lemma, "s"); ok {
		out = append(out, s)
	}
	return out
}

// ThetaRoles returns the role inventory (with restrictions) across all
// classes for the lemma
func (idx *Index) ThetaRoles(lemma string) []RoleSpec {
	var specs []RoleSpec
	seen := make(map[model.ThetaRole]bool)
	for _, c := range idx.Classes(lemma) {
		for _, spec := range c.Roles {
			if !seen[spec.Role] {
				seen[spec.Role] = true
				specs = append(specs, spec)
			}
		}
	}
	return specs
}

// SyntacticFrames returns every frame across the lemma's classes
func (idx *Index) SyntacticFrames(lemma string) []SyntacticFrame {
	var frames []SyntacticFrame
	for _, c := range idx.Classes(lemma) {
		frames = append(frames, c.Frames...)
	}
	return frames
}

// SemanticPredicates returns every frame predicate across the lemma's
// classes
func (idx *Index) SemanticPredicates(lemma string) []SemanticPredicate {
	var preds []SemanticPredicate
	for _, f := range idx.SyntacticFrames(lemma) {
		preds = append(preds, f.Semantics...)
	}
	return preds
}

// InferAspectualClass derives an aspectual feature bundle from the
// lemma's frame semantics: dynamic if any predicate denotes motion or
// change, telic if any denotes a created/destroyed/transferred result,
// durative if more than one predicate is present
func (idx *Index) InferAspectualClass(lemma string) AspectualInfo {
	preds := idx.SemanticPredicates(lemma)

	dynamic := false
	telic := false
	for _, p := range preds {
		switch p.Type {
		case PredMotion, PredChange:
			dynamic = true
		}
		switch p.Type {
		case PredCreated, PredDestroyed, PredTransfer:
			telic = true
		}
	}
	durative := len(preds) > 1

	return AspectualInfo{
		Durative: durative,
		Dynamic:  dynamic,
		Telic:    telic,
		Punctual: !durative,
	}
}

// AllowsRole reports whether any class for the lemma licenses the role
func (idx *Index) AllowsRole(lemma string, role model.ThetaRole) bool {
	for _, spec := range idx.ThetaRoles(lemma) {
		if spec.Role == role {
			return true
		}
	}
	return false
}

// VerbsWithRole returns every member verb of classes licensing the role
func (idx *Index) VerbsWithRole(role model.ThetaRole) []string {
	var verbs []string
	seen := make(map[string]bool)
	for _, id := range idx.byRole[role] {
		for _, member := range idx.classes[id].Members {
			if !seen[member] {
				seen[member] = true
				verbs = append(verbs, member)
			}
		}
	}
	return verbs
}

// ClassesWithPredicate returns class ids whose frames use the predicate type
func (idx *Index) ClassesWithPredicate(pt PredicateType) []string {
	return idx.byPredicate[pt]
}

// ClassesWithRestriction returns class ids carrying the restriction type
func (idx *Index) ClassesWithRestriction(restriction string) []string {
	return idx.byRestriction[restriction]
}

// Statistics summarizes the index
func (idx *Index) Statistics() Stats {
	return Stats{
		Classes:      len(idx.classes),
		Verbs:        len(idx.byLemma),
		Roles:        len(idx.byRole),
		Predicates:   len(idx.byPredicate),
		Restrictions: len(idx.byRestriction),
	}
}

// Lookup implements Analyzer. Confidence reflects match ambiguity: a
// single matching class is most confident, many matches least.
func (idx *Index) Lookup(lemma string) (*Analysis, bool) {
	classes := idx.Classes(lemma)
	if len(classes) == 0 {
		return nil, false
	}

	var base float32
	switch {
	case len(classes) == 1:
		base = 0.9
	case len(classes) <= 3:
		base = 0.8
	case len(classes) <= 6:
		base = 0.7
	default:
		base = 0.6
	}

	// More specific class ids and richer frame inventories add confidence
	var specificity float32
	for _, c := range classes {
		specificity += float32(strings.Count(c.ID, "-")) * 0.01
		specificity += min32(float32(len(c.Frames))*0.01, 0.03)
	}
	specificity /= float32(len(classes))

	return &Analysis{
		Lemma:      strings.ToLower(lemma),
		Classes:    classes,
		Confidence: min32(base+specificity, 0.95),
	}, true
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
