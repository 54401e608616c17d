package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Theme names accepted under [render].
const (
	themeClassic = "classic"
	themeMono    = "mono"
)

// configName is the implicit config file looked up in the home
// directory when --config is not given.
const configName = ".knightpath.toml"

// Config mirrors the TOML layout of ~/.knightpath.toml.
type Config struct {
	Render RenderConfig `toml:"render"`
	Output OutputConfig `toml:"output"`
}

// RenderConfig selects the board presentation.
type RenderConfig struct {
	Theme   string `toml:"theme"`
	Unicode bool   `toml:"unicode"`
}

// OutputConfig names optional output artifacts.
type OutputConfig struct {
	Dot string `toml:"dot"`
}

func defaultConfig() Config {
	return Config{
		Render: RenderConfig{Theme: themeClassic},
	}
}

// loadConfig reads the TOML config at path, or the implicit
// ~/.knightpath.toml when path is empty. A missing implicit file is
// fine and yields the defaults; a missing explicit file is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	implicit := path == ""
	if implicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, configName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if implicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Render.Theme != themeClassic && cfg.Render.Theme != themeMono {
		return cfg, fmt.Errorf("config %s: unknown render.theme %q (want %q or %q)",
			path, cfg.Render.Theme, themeClassic, themeMono)
	}

	return cfg, nil
}
