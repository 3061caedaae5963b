package main

import (
	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Validate Ollama model declarations in group vars",
		RunE:  runModels,
	}
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := runModelsCheck(root, cfg)
	if err != nil {
		return err
	}

	return renderCheck(cmd, cfg, res)
}
