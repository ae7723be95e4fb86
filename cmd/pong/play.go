package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a two-player table in the current terminal.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  Space      - Serve (from a fresh table)
  R          - Reset the table
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is set, so they do not draw over
the table.

Examples:
  pong play
  pong play --fps 120
  pong play --log-file ~/.pong/pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Get terminal size early so the first frame is the right shape
	screen := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		screen.ScreenW = w
		screen.ScreenH = h
	}

	logger, closer, err := appConfig.Log.NewLogger(config.LoggerOptions{
		Prefix:     "pong",
		Timestamps: true,
	})
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // best-effort

	logger.Info("starting table", "config", configSource, "tick_rate", appConfig.Display.TickRate)

	if err := tui.Run(appConfig, logger, screen); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
