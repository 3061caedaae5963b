package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "playcheck",
		Short:         "Playcheck lints Ansible playbooks and roles for an Ollama deployment",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	persistent := cmd.PersistentFlags()
	persistent.String("root", "", "repository root to scan (defaults to the working directory)")
	persistent.StringArray("file", nil, "limit task checks to matching files (repeatable)")
	persistent.String("format", "pretty", "output format (pretty|json)")

	cmd.AddCommand(newDarwinCmd())
	cmd.AddCommand(newIdempotencyCmd())
	cmd.AddCommand(newModelsCmd())
	cmd.AddCommand(newStructureCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}
