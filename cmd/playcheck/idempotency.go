package main

import (
	"github.com/spf13/cobra"
)

func newIdempotencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "idempotency",
		Short: "Warn about shell/command tasks without idempotency guards",
		RunE:  runIdempotency,
	}
}

func runIdempotency(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := runIdempotencyCheck(root, cfg)
	if err != nil {
		return err
	}

	return renderCheck(cmd, cfg, res)
}
