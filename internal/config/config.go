// Package config provides YAML-based configuration loading for the pong
// host: display, controls, audio, SSH server and logging settings.
//
// Table physics are fixed and deliberately absent here.
package config

import "time"

// Config is the complete host configuration.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Controls ControlsConfig `yaml:"controls"`
	Audio    AudioConfig    `yaml:"audio"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// DisplayConfig controls the frame loop and what is drawn.
type DisplayConfig struct {
	TickRate int  `yaml:"tick_rate"` // Frames per second
	ShowNet  bool `yaml:"show_net"`  // Dashed center line
	ShowHelp bool `yaml:"show_help"` // Key binding footer
}

// ControlsConfig tunes keyboard handling.
type ControlsConfig struct {
	// HoldMS is how long a key press keeps a paddle moving. Terminals
	// report presses and auto-repeats but never releases, so a direction
	// counts as held until this window passes without another press.
	HoldMS int `yaml:"hold_ms"`
}

// HoldWindow returns HoldMS as a duration.
func (c ControlsConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// AudioConfig controls bounce sounds.
type AudioConfig struct {
	Bell bool `yaml:"bell"` // Ring the terminal bell on bounces
}

// ServerConfig configures `pong serve`.
type ServerConfig struct {
	Address            string `yaml:"address"`              // host:port
	HostKey            string `yaml:"host_key"`             // Empty = ~/.pong/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"` // 0 disables
}

// IdleTimeout returns IdleTimeoutMinutes as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogConfig selects log verbosity and destination.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = discard during play, stderr for serve
}
