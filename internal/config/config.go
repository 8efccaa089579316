// Package config loads the game configuration: embedded defaults, an
// optional YAML file, then environment overrides.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Garsondee/Grand-Strategy/internal/calendar"
	"github.com/Garsondee/Grand-Strategy/internal/camera"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/game.yaml
var defaultYAML []byte

// Window is the requested host window.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Map is the playable map and its camera limits.
type Map struct {
	camera.Bounds `yaml:",inline"`
	Year          int `yaml:"year"`
}

// Clock configures the campaign calendar.
type Clock struct {
	Start Date `yaml:"start"`
}

// Date mirrors calendar.Date with YAML tags.
type Date struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

// Calendar converts to the calendar package type.
func (d Date) Calendar() calendar.Date {
	return calendar.Date{Year: d.Year, Month: d.Month, Day: d.Day}
}

// Config is the full game configuration.
type Config struct {
	LogLevel string          `yaml:"log_level"`
	Mute     bool            `yaml:"mute"`
	Window   Window          `yaml:"window"`
	Camera   camera.Settings `yaml:"camera"`
	Map      Map             `yaml:"map"`
	Clock    Clock           `yaml:"clock"`
	Roster   string          `yaml:"roster"`

	// Source is the file the config was read from, or "" for defaults.
	Source string `yaml:"-"`
}

// Overrides are read from the environment and win over the file.
type Overrides struct {
	LogLevel *string `env:"GS_LOG_LEVEL"`
	Windowed *bool   `env:"GS_WINDOWED"`
	Mute     *bool   `env:"GS_MUTE"`
}

// Default returns the embedded defaults.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Parse overlays a YAML document on the defaults. Keys missing from data
// keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load resolves the config. Search order: customPath ->
// ~/.grandstrategy/config.yaml -> ./configs/config.yaml -> embedded
// defaults. A customPath that cannot be read is an error; the other
// locations are skipped when missing. Environment overrides are applied
// last.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	for _, p := range []string{userConfigPath(), filepath.Join("configs", "config.yaml")} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", p, err)
		}
		cfg.Source = p
		return cfg, nil
	}
	return Default(), nil
}

func applyEnv(cfg *Config) error {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.Windowed != nil {
		cfg.Window.Fullscreen = !*o.Windowed
	}
	if o.Mute != nil {
		cfg.Mute = *o.Mute
	}
	return nil
}

// userConfigPath returns the per-user config file, or "" if home is
// unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".grandstrategy", "config.yaml")
}
