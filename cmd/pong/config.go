package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration pong would run with, as YAML, after the
search order and flag overrides are applied.

Search order:
  --config <path>
  ~/.pong/config.yaml
  ./configs/pong.yaml
  built-in defaults

Redirect the output to start a config file:
  pong config > ~/.pong/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data, err := config.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", configSource)
	_, err = out.Write(data)
	return err
}
