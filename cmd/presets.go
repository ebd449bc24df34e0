package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cupsim/cupsim/sim"
)

// Preset names used by the solve command.
const (
	PresetLabels  = "labels"
	PresetMillion = "million"
)

// defaultCups is the puzzle input solved when no --cups is given to solve.
const defaultCups = "586439172"

// Preset describes one named run configuration in defaults.yaml.
type Preset struct {
	Size          int   `yaml:"size"`           // 0 = input length
	Rounds        int64 `yaml:"rounds"`         // rounds to execute
	ProgressEvery int64 `yaml:"progress_every"` // progress log interval, 0 = off
}

// SimConfig converts the preset into the engine's configuration.
func (p Preset) SimConfig() sim.SimConfig {
	return sim.NewSimConfig(p.Size, p.Rounds, p.ProgressEvery)
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version string            `yaml:"version"`
	Cups    string            `yaml:"cups"`
	Presets map[string]Preset `yaml:"presets"`
}

// builtinConfig is used when no defaults file is present.
func builtinConfig() Config {
	return Config{
		Version: "1",
		Cups:    defaultCups,
		Presets: map[string]Preset{
			PresetLabels:  {Rounds: 100},
			PresetMillion: {Size: 1_000_000, Rounds: 10_000_000, ProgressEvery: 1_000_000},
		},
	}
}

// loadDefaultsConfig parses path with strict field checking so typos fail
// loudly. A missing file falls back to the built-in presets.
func loadDefaultsConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("Defaults file %s not found, using built-in presets", path)
		return builtinConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read defaults file %s: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse defaults YAML %s: %w", path, err)
	}
	if cfg.Cups == "" {
		cfg.Cups = defaultCups
	}
	return cfg, nil
}

// Preset returns the named preset or an error listing the known names.
func (c Config) Preset(name string) (Preset, error) {
	if p, ok := c.Presets[name]; ok {
		return p, nil
	}
	names := make([]string, 0, len(c.Presets))
	for n := range c.Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return Preset{}, fmt.Errorf("unknown preset %q (known: %v)", name, names)
}
