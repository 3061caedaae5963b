package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bgricker/playcheck/internal/config"
	"github.com/bgricker/playcheck/internal/discovery"
	"github.com/bgricker/playcheck/internal/filter"
	"github.com/bgricker/playcheck/internal/output"
	"github.com/bgricker/playcheck/internal/report"
	"github.com/bgricker/playcheck/internal/rules"
	"github.com/spf13/cobra"
)

// checkResult bundles one check's findings with its presentation strings.
type checkResult struct {
	name     string
	pres     output.Presentation
	findings []report.Finding
	files    int
	hard     bool
}

func (c checkResult) summary() report.Summary {
	code := 0
	if c.hard && len(c.findings) > 0 {
		code = 1
	}
	return report.Summary{
		TotalFiles:    c.files,
		TotalFindings: len(c.findings),
		ExitCode:      code,
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return config.Config{}, "", fmt.Errorf("parse --root: %w", err)
	}
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return config.Config{}, "", fmt.Errorf("determine working directory: %w", err)
		}
	}

	cfg, err := config.Load(root)
	if err != nil {
		return config.Config{}, "", err
	}

	flags, err := gatherFlags(cmd)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyFlags(&cfg, flags)

	return cfg, root, nil
}

// taskFiles discovers the playbook and role task files, filtered by any
// --file patterns.
func taskFiles(root string, cfg config.Config) ([]string, error) {
	files, err := discovery.TaskFiles(root, cfg.PlaybooksDir, cfg.RolesDir)
	if err != nil {
		return nil, err
	}
	patterns, err := filter.Compile(cfg.Files)
	if err != nil {
		return nil, err
	}
	return filter.Files(files, patterns), nil
}

func runDarwinCheck(root string, cfg config.Config) (checkResult, error) {
	files, err := taskFiles(root, cfg)
	if err != nil {
		return checkResult{}, err
	}
	extra, err := filter.Compile(cfg.MacOSIndicatorPatterns)
	if err != nil {
		return checkResult{}, err
	}

	check := rules.NewDarwinCheck(extra)
	var findings []report.Finding
	for _, file := range files {
		findings = append(findings, check.CheckFile(root, file)...)
	}

	return checkResult{
		name: "darwin",
		pres: output.Presentation{
			Title:      "Checking for unguarded macOS-specific tasks...",
			OK:         "✅ No unguarded macOS tasks detected",
			FoundTitle: "⚠️  Potential unguarded macOS tasks found:",
			Notes: []string{
				"Note: This is a heuristic check. Review each case to determine",
				"if a Darwin guard is needed or if the detection is a false positive.",
			},
		},
		findings: findings,
		files:    len(files),
	}, nil
}

func runIdempotencyCheck(root string, cfg config.Config) (checkResult, error) {
	files, err := taskFiles(root, cfg)
	if err != nil {
		return checkResult{}, err
	}

	var findings []report.Finding
	for _, file := range files {
		findings = append(findings, rules.CheckIdempotency(root, file)...)
	}

	return checkResult{
		name: "idempotency",
		pres: output.Presentation{
			Title:      "Checking shell/command task idempotency patterns...",
			OK:         "✅ No idempotency issues detected",
			FoundTitle: "⚠️  Idempotency issues found:",
			Notes: []string{
				"Note: These are recommendations. Tasks may be intentionally",
				"non-idempotent if properly documented. Review each case.",
			},
		},
		findings: findings,
		files:    len(files),
	}, nil
}

func runModelsCheck(root string, cfg config.Config) (checkResult, error) {
	findings, count := rules.CheckModels(root, cfg.VarsFile)

	return checkResult{
		name: "models",
		pres: output.Presentation{
			Title:      fmt.Sprintf("Validating model declarations in: %s", cfg.VarsFile),
			OK:         fmt.Sprintf("✅ Model declarations are valid (%d models declared)", count),
			FoundTitle: "❌ Model validation errors found:",
		},
		findings: findings,
		files:    1,
		hard:     true,
	}, nil
}

func runStructureCheck(root string, cfg config.Config) (checkResult, error) {
	findings := rules.ValidateStructure(root, cfg.RolesDir)

	return checkResult{
		name: "structure",
		pres: output.Presentation{
			Title:      fmt.Sprintf("Validating role structure in: %s", cfg.RolesDir),
			OK:         "✅ All role structure checks passed",
			FoundTitle: "❌ Validation errors found:",
		},
		findings: findings,
		hard:     true,
	}, nil
}

func renderCheck(cmd *cobra.Command, cfg config.Config, res checkResult) error {
	switch strings.ToLower(cfg.Format) {
	case config.FormatPretty:
		renderer := output.NewPretty(cmd.OutOrStdout())
		if err := renderer.RenderCheck(res.pres, res.findings); err != nil {
			return err
		}
	case config.FormatJSON:
		renderer := output.NewJSON(cmd.OutOrStdout())
		rep := output.CheckReport{Check: res.name, Findings: res.findings, Summary: res.summary()}
		if err := renderer.RenderCheck(rep); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}

	if res.summary().ExitCode != 0 {
		return fmt.Errorf("%s check failed", res.name)
	}
	return nil
}
