package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host private tables over SSH",
	Long: `Start an SSH server. Every connection gets its own private table;
both paddles are played from that one terminal and nothing is shared
between connections.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.pong/host_key

Examples:
  pong serve                           # Listen on :23234 with auto-generated key
  pong serve --ssh :2222               # Listen on port 2222
  pong serve --host-key ./my_host_key  # Use specific host key

Players connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides server.address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides server.host_key")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes, overrides server.idle_timeout_minutes")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfigFrom(appConfig)
	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.HostKeyPath = config.ExpandHome(flagHostKey)
	}
	if cmd.Flags().Changed("idle-timeout") {
		if flagIdleTimeout < 0 {
			return fmt.Errorf("--idle-timeout must not be negative, got %d", flagIdleTimeout)
		}
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger, closer, err := appConfig.Log.NewLogger(config.LoggerOptions{
		Prefix:     "pong-ssh",
		Timestamps: true,
		Fallback:   os.Stderr,
	})
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // best-effort

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting pong SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
