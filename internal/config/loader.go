package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LocalPath is the project-relative config file.
const LocalPath = "configs/pong.yaml"

// Load loads the pong configuration.
// Search order: customPath -> ~/.pong/config.yaml -> ./configs/pong.yaml -> embedded default
//
// Files are layered over Default, so a file only needs the keys it changes.
// A broken custom file is an error; broken user or local files are skipped.
func Load(customPath string) (Config, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, SourceCustom, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(LocalPath); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultPongYAML); err == nil && cfg.Validate() == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

// tryFile reads an optional config file. Any failure skips it.
func tryFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return Config{}, false
	}
	return cfg, true
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	if c.Controls.HoldMS < 0 {
		return fmt.Errorf("controls.hold_ms must not be negative, got %d", c.Controls.HoldMS)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ErrUnknownLevel is returned for log levels charmbracelet/log does not know.
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel converts the configured level name. Empty means info.
func (l LogConfig) ParseLevel() (log.Level, error) {
	name := strings.ToLower(strings.TrimSpace(l.Level))
	if name == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log.level %q: %w", l.Level, ErrUnknownLevel)
	}
	return lvl, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	return userPath("config.yaml")
}

// userPath returns a path under ~/.pong, or empty if home is unavailable.
func userPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".pong"}, elem...)...)
}

// DataDir returns ~/.pong, or empty if home is unavailable.
func DataDir() string {
	return userPath()
}

// ExpandHome replaces a leading ~/ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
