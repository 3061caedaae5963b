package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bgricker/playcheck/internal/report"
)

// optionalRoleDirs are role subdirectories that, when present, must
// carry a main.yml entry point.
var optionalRoleDirs = []string{"defaults", "vars", "handlers", "meta"}

// ValidateStructure checks every role directory under rolesDir for the
// expected layout. Violations accumulate; nothing stops at the first.
func ValidateStructure(root, rolesDir string) []report.Finding {
	full := filepath.Join(root, rolesDir)

	entries, err := os.ReadDir(full)
	if err != nil {
		return []report.Finding{{Message: fmt.Sprintf("roles directory not found: %s", rolesDir)}}
	}

	var roles []string
	for _, entry := range entries {
		if entry.IsDir() {
			roles = append(roles, entry.Name())
		}
	}
	sort.Strings(roles)

	if len(roles) == 0 {
		return []report.Finding{{Message: fmt.Sprintf("no roles found in %s", rolesDir)}}
	}

	var findings []report.Finding
	for _, role := range roles {
		roleRel := filepath.Join(rolesDir, role)
		rolePath := filepath.Join(full, role)

		if _, err := os.Stat(filepath.Join(rolePath, "tasks", "main.yml")); err != nil {
			findings = append(findings, report.Finding{
				File:    roleRel,
				Message: "missing tasks/main.yml",
			})
		}

		for _, dir := range optionalRoleDirs {
			info, err := os.Stat(filepath.Join(rolePath, dir))
			if err != nil || !info.IsDir() {
				continue
			}
			if _, err := os.Stat(filepath.Join(rolePath, dir, "main.yml")); err != nil {
				findings = append(findings, report.Finding{
					File:    roleRel,
					Message: fmt.Sprintf("has %s/ directory but missing main.yml", dir),
				})
			}
		}

		findings = append(findings, checkTaskExtensions(rolePath, roleRel)...)
	}

	return findings
}

// checkTaskExtensions flags roles whose tasks/ directory mixes the .yml
// and .yaml extension conventions.
func checkTaskExtensions(rolePath, roleRel string) []report.Finding {
	tasksDir := filepath.Join(rolePath, "tasks")

	ymlFiles, err := filepath.Glob(filepath.Join(tasksDir, "*.yml"))
	if err != nil {
		return nil
	}
	yamlFiles, err := filepath.Glob(filepath.Join(tasksDir, "*.yaml"))
	if err != nil {
		return nil
	}

	if len(ymlFiles) > 0 && len(yamlFiles) > 0 {
		return []report.Finding{{
			File:    roleRel,
			Message: "mixes .yml and .yaml extensions in tasks/",
		}}
	}
	return nil
}
