package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment overrides, applied after the config file and before flags.
const (
	EnvTickRate    = "PONG_TICK_RATE"
	EnvHoldMS      = "PONG_HOLD_MS"
	EnvBell        = "PONG_BELL"
	EnvSSHAddress  = "PONG_SSH_ADDRESS"
	EnvHostKey     = "PONG_HOST_KEY"
	EnvIdleTimeout = "PONG_IDLE_TIMEOUT_MINUTES"
	EnvLogLevel    = "PONG_LOG_LEVEL"
	EnvLogFile     = "PONG_LOG_FILE"
)

// LoadDotEnv reads ./.env into the process environment if it exists.
// Variables already set are left alone.
func LoadDotEnv() {
	godotenv.Load() //nolint:errcheck // .env is optional
}

// ApplyEnv overrides cfg with any PONG_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := envInt(EnvTickRate, &cfg.Display.TickRate); err != nil {
		return err
	}
	if err := envInt(EnvHoldMS, &cfg.Controls.HoldMS); err != nil {
		return err
	}
	if err := envBool(EnvBell, &cfg.Audio.Bell); err != nil {
		return err
	}
	envString(EnvSSHAddress, &cfg.Server.Address)
	envString(EnvHostKey, &cfg.Server.HostKey)
	if err := envInt(EnvIdleTimeout, &cfg.Server.IdleTimeoutMinutes); err != nil {
		return err
	}
	envString(EnvLogLevel, &cfg.Log.Level)
	envString(EnvLogFile, &cfg.Log.File)
	return nil
}

func envString(key string, dst *string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func envInt(key string, dst *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
