package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeRole(t *testing.T, root, name string, files ...string) {
	t.Helper()
	for _, rel := range files {
		writeTaskFile(t, root, filepath.Join("roles", name, rel), "---\n")
	}
}

func TestValidateStructureClean(t *testing.T) {
	root := t.TempDir()
	makeRole(t, root, "ollama", "tasks/main.yml")

	if findings := ValidateStructure(root, "roles"); len(findings) != 0 {
		t.Fatalf("minimal role should pass, got %+v", findings)
	}
}

func TestValidateStructureMissingTasksMain(t *testing.T) {
	root := t.TempDir()
	makeRole(t, root, "ollama", "tasks/install.yml")

	findings := ValidateStructure(root, "roles")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d: %+v", len(findings), findings)
	}
	if findings[0].Message != "missing tasks/main.yml" {
		t.Fatalf("unexpected message: %q", findings[0].Message)
	}
	if findings[0].File != filepath.Join("roles", "ollama") {
		t.Fatalf("unexpected file attribution: %q", findings[0].File)
	}
}

func TestValidateStructureOptionalDirNeedsMain(t *testing.T) {
	root := t.TempDir()
	makeRole(t, root, "ollama", "tasks/main.yml", "defaults/port.yml")

	findings := ValidateStructure(root, "roles")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d: %+v", len(findings), findings)
	}
	if !strings.Contains(findings[0].Message, "has defaults/ directory but missing main.yml") {
		t.Fatalf("unexpected message: %q", findings[0].Message)
	}
}

func TestValidateStructureOptionalDirsAbsentIsFine(t *testing.T) {
	root := t.TempDir()
	makeRole(t, root, "ollama", "tasks/main.yml")

	if findings := ValidateStructure(root, "roles"); len(findings) != 0 {
		t.Fatalf("absent optional dirs should not be flagged, got %+v", findings)
	}
}

func TestValidateStructureMixedExtensions(t *testing.T) {
	root := t.TempDir()
	makeRole(t, root, "ollama", "tasks/main.yml", "tasks/install.yml", "tasks/configure.yaml")

	findings := ValidateStructure(root, "roles")
	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 mixed-extension finding, got %d: %+v", len(findings), findings)
	}
	if findings[0].Message != "mixes .yml and .yaml extensions in tasks/" {
		t.Fatalf("unexpected message: %q", findings[0].Message)
	}
}

func TestValidateStructureMissingRolesDir(t *testing.T) {
	root := t.TempDir()

	findings := ValidateStructure(root, "roles")
	if len(findings) != 1 || !strings.Contains(findings[0].Message, "roles directory not found") {
		t.Fatalf("expected missing-dir finding, got %+v", findings)
	}
}

func TestValidateStructureNoRoles(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "roles"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	findings := ValidateStructure(root, "roles")
	if len(findings) != 1 || !strings.Contains(findings[0].Message, "no roles found") {
		t.Fatalf("expected no-roles finding, got %+v", findings)
	}
}

func TestValidateStructureDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	makeRole(t, root, "zeta", "tasks/install.yml")
	makeRole(t, root, "alpha", "tasks/install.yml")

	findings := ValidateStructure(root, "roles")
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].File != filepath.Join("roles", "alpha") || findings[1].File != filepath.Join("roles", "zeta") {
		t.Fatalf("expected sorted role order, got %+v", findings)
	}
}
