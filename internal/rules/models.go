package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bgricker/playcheck/internal/report"
)

// CheckModels loads the group vars file and validates its ollama_models
// list. The count is the number of declared models, for reporting.
func CheckModels(root, varsRel string) ([]report.Finding, int) {
	data, err := os.ReadFile(filepath.Join(root, varsRel))
	if err != nil {
		return []report.Finding{{Message: fmt.Sprintf("variables file not found: %s", varsRel)}}, 0
	}

	var vars map[string]any
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return []report.Finding{{File: varsRel, Message: fmt.Sprintf("failed to parse: %v", err)}}, 0
	}
	if len(vars) == 0 {
		return []report.Finding{{File: varsRel, Message: "variables file is empty"}}, 0
	}

	models, ok := vars["ollama_models"]
	if !ok {
		models = []any{}
	}

	findings := ValidateModels(varsRel, models)
	count := 0
	if list, ok := models.([]any); ok {
		count = len(list)
	}
	return findings, count
}

// ValidateModels checks an ollama_models declaration list. Every
// violation is reported; the first occurrence of a name wins and later
// duplicates are flagged. file is attached to each finding for display.
func ValidateModels(file string, models any) []report.Finding {
	list, ok := models.([]any)
	if !ok {
		return []report.Finding{{
			File:    file,
			Message: fmt.Sprintf("ollama_models must be a list, got %s", yamlKind(models)),
		}}
	}

	var findings []report.Finding
	seen := make(map[string]struct{})

	for idx, entry := range list {
		model, ok := entry.(map[string]any)
		if !ok {
			findings = append(findings, report.Finding{
				File:    file,
				Message: fmt.Sprintf("model at index %d must be a mapping, got %s", idx, yamlKind(entry)),
			})
			continue
		}

		rawName, ok := model["name"]
		if !ok {
			findings = append(findings, report.Finding{
				File:    file,
				Message: fmt.Sprintf("model at index %d missing required 'name' field", idx),
			})
			continue
		}

		name, ok := rawName.(string)
		if !ok {
			findings = append(findings, report.Finding{
				File:    file,
				Message: fmt.Sprintf("model at index %d: 'name' must be a string", idx),
			})
			continue
		}
		if strings.TrimSpace(name) == "" {
			findings = append(findings, report.Finding{
				File:    file,
				Message: fmt.Sprintf("model at index %d: 'name' cannot be empty", idx),
			})
			continue
		}

		if _, dup := seen[name]; dup {
			findings = append(findings, report.Finding{
				File:    file,
				Message: fmt.Sprintf("duplicate model name: '%s'", name),
			})
		}
		seen[name] = struct{}{}

		if state, ok := model["state"]; ok {
			if s, isString := state.(string); !isString || (s != "present" && s != "absent") {
				findings = append(findings, report.Finding{
					File:    file,
					Message: fmt.Sprintf("model '%s': 'state' must be 'present' or 'absent', got '%v'", name, state),
				})
			}
		}
	}

	return findings
}

// yamlKind names a decoded YAML value the way a playbook author would
// read it, rather than exposing Go type names.
func yamlKind(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	default:
		return "scalar"
	}
}
