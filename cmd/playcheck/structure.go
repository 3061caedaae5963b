package main

import (
	"github.com/spf13/cobra"
)

func newStructureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "structure",
		Short: "Validate role directory layout and naming conventions",
		RunE:  runStructure,
	}
}

func runStructure(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := runStructureCheck(root, cfg)
	if err != nil {
		return err
	}

	return renderCheck(cmd, cfg, res)
}
