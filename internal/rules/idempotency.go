package rules

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bgricker/playcheck/internal/ansible"
	"github.com/bgricker/playcheck/internal/report"
)

// CheckIdempotency evaluates every task in one YAML file against the
// shell/command/raw guard rules. A file that fails to parse yields a
// single parse finding and nothing else.
func CheckIdempotency(root, relPath string) []report.Finding {
	tasks, err := ansible.LoadTasks(filepath.Join(root, relPath))
	if err != nil {
		return []report.Finding{{File: relPath, Message: fmt.Sprintf("failed to parse: %v", err)}}
	}

	var findings []report.Finding
	for _, task := range tasks {
		findings = append(findings, evaluateTask(task, relPath)...)
	}
	return findings
}

// evaluateTask applies the guard rules to a single task, independent of
// its neighbours.
func evaluateTask(task ansible.Task, relPath string) []report.Finding {
	usesShell := task.UsesModule("shell")
	usesCommand := task.UsesModule("command")
	usesRaw := task.UsesModule("raw")

	if !usesShell && !usesCommand && !usesRaw {
		return nil
	}

	hasChangedWhen := task.Has("changed_when")
	hasCreates := false
	hasRemoves := false

	if usesShell || usesCommand {
		module := "command"
		if usesShell {
			module = "shell"
		}
		if args := task.ModuleArgs(module); args != nil {
			_, hasCreates = args["creates"]
			_, hasRemoves = args["removes"]
		}
		if args := task.Args(); args != nil {
			if _, ok := args["creates"]; ok {
				hasCreates = true
			}
			if _, ok := args["removes"]; ok {
				hasRemoves = true
			}
		}
	}

	// Raw is handled first and exhaustively: preflight files use it by
	// design, everywhere else it needs an explicit changed_when.
	if usesRaw {
		if isPreflight(relPath) {
			return nil
		}
		if !hasChangedWhen {
			return []report.Finding{{
				File:    relPath,
				Task:    task.Name(),
				Message: "uses 'raw' without changed_when (acceptable in preflight files only)",
			}}
		}
		return nil
	}

	var findings []report.Finding

	if !hasChangedWhen && !hasCreates && !hasRemoves {
		module := "command"
		if usesShell {
			module = "shell"
		}
		findings = append(findings, report.Finding{
			File:    relPath,
			Task:    task.Name(),
			Message: fmt.Sprintf("uses '%s' without changed_when, creates, or removes", module),
		})
	}

	if hasChangedWhen {
		if value, ok := task.Fields["changed_when"].(bool); ok && value {
			findings = append(findings, report.Finding{
				File:    relPath,
				Task:    task.Name(),
				Message: "has 'changed_when: true' (disables idempotency - should have explanatory comment)",
			})
		}
	}

	return findings
}

// isPreflight reports whether the file's base name marks it as a
// preflight file, which is platform-specific by convention.
func isPreflight(path string) bool {
	return strings.Contains(strings.ToLower(filepath.Base(path)), "preflight")
}
