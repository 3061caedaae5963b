package main

import (
	"fmt"

	"github.com/bgricker/playcheck/internal/config"
	"github.com/spf13/cobra"
)

func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues

	if flags.Changed("file") {
		v, err := flags.GetStringArray("file")
		if err != nil {
			return values, fmt.Errorf("parse --file: %w", err)
		}
		values.Files = config.SliceFlag{Values: append([]string{}, v...)}
	}

	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return values, fmt.Errorf("parse --format: %w", err)
		}
		values.Format = config.StringFlag{Value: v, Set: true}
	}

	return values, nil
}
