// pong is a two-player table tennis game for the terminal.
//
// Usage:
//
//	pong                     - Play on this terminal (same as pong play)
//	pong play                - Play on this terminal
//	pong serve               - Host private tables over SSH
//	pong config              - Print the effective configuration
//	pong controls            - Show key bindings
//
// Global flags:
//
//	--config <path>      - Use a specific config YAML
//	--fps <rate>         - Override the tick rate
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string

	// Resolved before any subcommand runs
	appConfig    config.Config
	configSource config.Source
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-player pong in your terminal",
	Long: `A two-player table for the terminal. The left paddle is driven with
W/S, the right one with the arrow keys. Space serves, R resets.

A rally ends when the ball reaches the left or right edge; there is no
score to keep, just reset and serve again.

Available commands:
  play      - Play on this terminal (default)
  serve     - Host private tables over SSH
  config    - Print the effective configuration
  controls  - Show key bindings

Examples:
  pong
  pong play --fps 120
  pong serve --ssh :2222
  pong config --config ./my-pong.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(controlsCmd)
}

// loadConfig resolves the configuration file, then PONG_* environment
// variables (and ./.env), then flags. Flags only win when given explicitly.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	config.LoadDotEnv()
	if err := config.ApplyEnv(&cfg); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appConfig = cfg
	configSource = src
	return nil
}
