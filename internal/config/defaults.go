package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in configuration. It matches defaults/pong.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickRate: 60,
			ShowNet:  true,
			ShowHelp: true,
		},
		Controls: ControlsConfig{
			HoldMS: 500,
		},
		Audio: AudioConfig{
			Bell: true,
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
