package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/playback"
)

const (
	DefaultAlgorithm = algorithms.IDBubbleSort
	DefaultSpeed     = string(playback.SpeedNormal)
	DefaultTheme     = "default"
	DefaultLogLevel  = "warn"
)

// Config is one visualization session. Zero Values means "use the
// algorithm's default array"; Random replaces them with a seeded random
// array.
type Config struct {
	Algorithm string `yaml:"algorithm"`
	Values    []int  `yaml:"values,flow,omitempty"`
	Target    *int   `yaml:"target,omitempty"`
	Speed     string `yaml:"speed"`
	Random    bool   `yaml:"random,omitempty"`
	Seed      int64  `yaml:"seed,omitempty"`
	Theme     string `yaml:"theme"`
	LogLevel  string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Speed:     DefaultSpeed,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the speed tier and log level. Array contents are checked
// later against the algorithm's limits; unknown themes fall back to the
// default.
func (c *Config) Validate() error {
	if _, err := playback.ParseSpeed(c.Speed); err != nil {
		return err
	}
	_, err := logging.ParseLevel(c.LogLevel)
	return err
}

// SpeedTier returns the configured speed, or normal when it is invalid.
func (c *Config) SpeedTier() playback.Speed {
	sp, err := playback.ParseSpeed(c.Speed)
	if err != nil {
		return playback.SpeedNormal
	}
	return sp
}

// Clone returns a deep copy so presets can be handed out safely.
func (c *Config) Clone() *Config {
	out := *c
	out.Values = append([]int(nil), c.Values...)
	if c.Target != nil {
		t := *c.Target
		out.Target = &t
	}
	return &out
}
