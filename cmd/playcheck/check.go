package main

import (
	"fmt"
	"strings"

	"github.com/bgricker/playcheck/internal/config"
	"github.com/bgricker/playcheck/internal/output"
	"github.com/bgricker/playcheck/internal/version"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run every check and fail if any hard validation fails",
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runners := []func(string, config.Config) (checkResult, error){
		runDarwinCheck,
		runIdempotencyCheck,
		runModelsCheck,
		runStructureCheck,
	}

	results := make([]checkResult, 0, len(runners))
	for _, run := range runners {
		res, err := run(root, cfg)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	for _, msg := range detectVersionWarnings(cfg) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", msg)
	}

	switch strings.ToLower(cfg.Format) {
	case config.FormatPretty:
		renderer := output.NewPretty(cmd.OutOrStdout())
		for i, res := range results {
			if i > 0 {
				if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			if err := renderer.RenderCheck(res.pres, res.findings); err != nil {
				return err
			}
		}
	case config.FormatJSON:
		rep := output.Report{Checks: make([]output.CheckReport, 0, len(results))}
		for _, res := range results {
			summary := res.summary()
			rep.Checks = append(rep.Checks, output.CheckReport{
				Check:    res.name,
				Findings: res.findings,
				Summary:  summary,
			})
			rep.Summary.TotalFiles += summary.TotalFiles
			rep.Summary.TotalFindings += summary.TotalFindings
			if summary.ExitCode != 0 {
				rep.Summary.ExitCode = 1
			}
		}
		renderer := output.NewJSON(cmd.OutOrStdout())
		if err := renderer.Render(rep); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}

	for _, res := range results {
		if res.summary().ExitCode != 0 {
			return fmt.Errorf("one or more checks failed")
		}
	}
	return nil
}

func detectVersionWarnings(cfg config.Config) []string {
	required := cfg.Warn.AnsibleVersion
	if required == "" {
		return nil
	}

	info, err := version.DetectAnsible()
	if err != nil {
		if version.Missing(err) {
			return []string{fmt.Sprintf("ansible executable not found; required %s", required)}
		}
		return []string{fmt.Sprintf("unable to detect ansible version: %v", err)}
	}
	if !version.CompareMajorMinor(required, info.Version) {
		return []string{fmt.Sprintf("ansible version mismatch: required %s but found %s", required, info.Version)}
	}
	return nil
}
