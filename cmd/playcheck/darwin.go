package main

import (
	"github.com/spf13/cobra"
)

func newDarwinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "darwin",
		Short: "Warn about macOS-specific tasks lacking a Darwin guard",
		RunE:  runDarwin,
	}
}

func runDarwin(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := runDarwinCheck(root, cfg)
	if err != nil {
		return err
	}

	return renderCheck(cmd, cfg, res)
}
