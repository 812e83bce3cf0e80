package main

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/plexgraph/graph-bridge/errors"
)

type config struct {
	LogLevel    string `toml:"log_level"`
	Color       string `toml:"color"` // auto, always, never
	MaxElements int    `toml:"max_elements"`
}

func defaultConfig() config {
	return config{
		LogLevel:    "info",
		Color:       "auto",
		MaxElements: 1 << 20,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.PhaseRuntime, errors.KindIO, err, "config file not found")
		}
		return cfg, errors.Wrap(errors.PhaseRuntime, errors.KindValue, err, "invalid config file")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.PhaseRuntime, errors.KindValue).
			Detail("unknown config keys: %v", undecoded).
			Build()
	}

	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return cfg, errors.New(errors.PhaseRuntime, errors.KindValue).
			Detail("color must be auto, always, or never, not %q", cfg.Color).
			Build()
	}
	if cfg.MaxElements <= 0 {
		return cfg, errors.New(errors.PhaseRuntime, errors.KindValue).
			Detail("max_elements must be positive, got %d", cfg.MaxElements).
			Build()
	}
	return cfg, nil
}
