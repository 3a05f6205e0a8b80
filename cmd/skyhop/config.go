package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in config file. Save it to ~/.skyhop/configs/skyhop.yaml or
./configs/skyhop.yaml and edit it to change the tuning.

Examples:
  skyhop config > ~/.skyhop/configs/skyhop.yaml
  skyhop play --config ./my-skyhop.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
