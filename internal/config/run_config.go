// internal/config/run_config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunConfig — настройки одного запуска, читаются из YAML.
type RunConfig struct {
	Seed           int64  `yaml:"seed"`
	CrazyMode      bool   `yaml:"crazy_mode"`
	MaxWaves       int    `yaml:"max_waves"`
	ZombiesPerWave int    `yaml:"zombies_per_wave"`
	MaxMainSkills  int    `yaml:"max_main_skills"`
	LogLevel       string `yaml:"log_level"`

	Audio AudioConfig `yaml:"audio"`
	Sim   SimConfig   `yaml:"sim"`
}

// AudioConfig holds channel volumes in 0..1.
type AudioConfig struct {
	Master float64 `yaml:"master"`
	SFX    float64 `yaml:"sfx"`
	Music  float64 `yaml:"music"`
}

// SimConfig drives the headless simulator.
type SimConfig struct {
	Runs        int     `yaml:"runs"`
	DurationSec float64 `yaml:"duration_sec"`
	StepSec     float64 `yaml:"step_sec"`
	Listen      string  `yaml:"listen"`
	Policy      string  `yaml:"policy"`
}

// DefaultRunConfig returns the built-in settings.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		MaxWaves:       MaxNormalWaves,
		ZombiesPerWave: ZombiesPerWave,
		MaxMainSkills:  MaxMainSkills,
		LogLevel:       "info",
		Audio: AudioConfig{
			Master: 0.8,
			SFX:    0.6,
			Music:  0.3,
		},
		Sim: SimConfig{
			Runs:        8,
			DurationSec: 600,
			StepSec:     1.0 / 60,
			Listen:      "127.0.0.1:9107",
			Policy:      "first",
		},
	}
}

// LoadRunConfig reads the YAML file at path on top of the defaults.
// A missing file is not an error.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c RunConfig) Validate() error {
	if c.MaxWaves <= 0 {
		return fmt.Errorf("max_waves must be positive, got %d", c.MaxWaves)
	}
	if c.ZombiesPerWave <= 0 {
		return fmt.Errorf("zombies_per_wave must be positive, got %d", c.ZombiesPerWave)
	}
	if c.MaxMainSkills <= 0 {
		return fmt.Errorf("max_main_skills must be positive, got %d", c.MaxMainSkills)
	}
	if c.Sim.StepSec <= 0 || c.Sim.StepSec > MaxDeltaTime {
		return fmt.Errorf("sim.step_sec must be in (0, %.2f], got %g", MaxDeltaTime, c.Sim.StepSec)
	}
	for _, v := range []float64{c.Audio.Master, c.Audio.SFX, c.Audio.Music} {
		if v < 0 || v > 1 {
			return fmt.Errorf("audio volumes must be within 0..1, got %g", v)
		}
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level; unknown strings fall back to info.
func (c RunConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
