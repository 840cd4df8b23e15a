package verbclass

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/semflow/internal/model"
)

func TestBuiltin_LookupGive(t *testing.T) {
	idx := Builtin()

	analysis, ok := idx.Lookup("give")
	if !ok {
		t.Fatal("Expected give to be in the built-in inventory")
	}
	if analysis.PrimaryClassID() != "give-13.1" {
		t.Errorf("Expected primary class give-13.1, got %s", analysis.PrimaryClassID())
	}
	if analysis.Confidence <= 0 || analysis.Confidence > 0.95 {
		t.Errorf("Confidence out of range: %f", analysis.Confidence)
	}
}

func TestBuiltin_LookupUnknown(t *testing.T) {
	idx := Builtin()

	if _, ok := idx.Lookup("florble"); ok {
		t.Error("Expected no class for unknown lemma")
	}
}

func TestBuiltin_InflectedForms(t *testing.T) {
	idx := Builtin()

	tests := []struct {
		surface string
		classID string
	}{
		{"running", "run-51.3.2"},
		{"gives", "give-13.1"},
		{"shattered", "break-45.1"},
	}

	for _, tt := range tests {
		analysis, ok := idx.Lookup(tt.surface)
		if !ok {
			t.Errorf("Expected %s to resolve via inflection stripping", tt.surface)
			continue
		}
		if analysis.PrimaryClassID() != tt.classID {
			t.Errorf("%s: expected %s, got %s", tt.surface, tt.classID, analysis.PrimaryClassID())
		}
	}
}

func TestIndex_AllowsRole(t *testing.T) {
	idx := Builtin()

	if !idx.AllowsRole("give", model.RoleAgent) {
		t.Error("Expected give to license Agent")
	}
	if !idx.AllowsRole("give", model.RoleRecipient) {
		t.Error("Expected give to license Recipient")
	}
	if idx.AllowsRole("give", model.RoleInstrument) {
		t.Error("Expected give not to license Instrument")
	}
}

func TestIndex_ThetaRolesDeduplicated(t *testing.T) {
	idx := Builtin()

	specs := idx.ThetaRoles("give")
	seen := make(map[model.ThetaRole]bool)
	for _, spec := range specs {
		if seen[spec.Role] {
			t.Errorf("Duplicate role %s in theta role inventory", spec.Role)
		}
		seen[spec.Role] = true
	}
	if !seen[model.RoleAgent] || !seen[model.RoleTheme] || !seen[model.RoleRecipient] {
		t.Errorf("Missing expected roles in %v", specs)
	}
}

func TestIndex_InferAspectualClass(t *testing.T) {
	idx := Builtin()

	info := idx.InferAspectualClass("build")
	if !info.Telic {
		t.Error("Expected build to be telic (creation result)")
	}
	if !info.Dynamic {
		t.Error("Expected build to be dynamic")
	}

	info = idx.InferAspectualClass("run")
	if info.Telic {
		t.Error("Expected run to be atelic")
	}
	if !info.Dynamic {
		t.Error("Expected run to be dynamic (motion)")
	}
}

func TestIndex_QueriesByRoleAndPredicate(t *testing.T) {
	idx := Builtin()

	verbs := idx.VerbsWithRole(model.RoleRecipient)
	found := false
	for _, v := range verbs {
		if v == "give" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected give among Recipient verbs, got %v", verbs)
	}

	ids := idx.ClassesWithPredicate(PredTransfer)
	if len(ids) == 0 {
		t.Error("Expected classes with transfer semantics")
	}

	ids = idx.ClassesWithRestriction("animate")
	if len(ids) == 0 {
		t.Error("Expected classes with animate restrictions")
	}
}

func TestIndex_Statistics(t *testing.T) {
	idx := Builtin()

	stats := idx.Statistics()
	if stats.Classes < 10 {
		t.Errorf("Expected at least 10 built-in classes, got %d", stats.Classes)
	}
	if stats.Verbs == 0 || stats.Roles == 0 || stats.Predicates == 0 {
		t.Errorf("Empty statistics: %+v", stats)
	}
}

func TestLoadDirectory_MissingDir(t *testing.T) {
	_, err := LoadDirectory("/nonexistent/semflow-classes")
	if err == nil {
		t.Fatal("Expected error for missing directory")
	}
	if !errors.Is(err, ErrDataDirNotFound) {
		t.Errorf("Expected ErrDataDirNotFound, got %v", err)
	}
}

func TestLoadDirectory_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("classes: [not a class"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDirectory(dir)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestLoadDirectory_MergesWithBuiltin(t *testing.T) {
	dir := t.TempDir()
	doc := `classes:
  - id: glorp-99.9
    name: glorp
    members: [glorp]
    roles:
      - role: Agent
`
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	idx, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}

	if _, ok := idx.Lookup("glorp"); !ok {
		t.Error("Expected custom class to be loaded")
	}
	if _, ok := idx.Lookup("give"); !ok {
		t.Error("Expected built-in classes to remain available")
	}
}
