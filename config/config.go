// SPDX-License-Identifier: MIT

// Package config loads Markov chain definitions from YAML files.
//
// A definition names the states, gives the transition matrix row by row and
// the initial distribution, and carries the run parameters of the lvchain
// command. Missing fields fall back to Default(), the three-state weather
// chain.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/lvchain/markov"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for structurally unusable definitions.
var ErrInvalidConfig = errors.New("config: invalid chain definition")

// Default run parameters.
const (
	DefaultSteps  = 12
	DefaultDigits = 3
)

// Config is one chain definition plus run parameters.
type Config struct {
	Name        string           `yaml:"name"`
	States      []string         `yaml:"states"`
	Transitions [][]float64      `yaml:"transitions"`
	Initial     []float64        `yaml:"initial"`
	Steps       int              `yaml:"steps"`
	Digits      int              `yaml:"digits"`
	Tolerance   float64          `yaml:"tolerance"`
	Stationary  StationaryConfig `yaml:"stationary"`
}

// StationaryConfig mirrors markov.StationaryOptions.
type StationaryConfig struct {
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
}

// Default returns the Sunny/Cloudy/Rainy weather chain.
func Default() *Config {
	return &Config{
		Name:   "weather",
		States: []string{"Sunny", "Cloudy", "Rainy"},
		Transitions: [][]float64{
			{0.70, 0.20, 0.10}, // Sunny -> (Sunny, Cloudy, Rainy)
			{0.30, 0.40, 0.30}, // Cloudy
			{0.20, 0.50, 0.30}, // Rainy
		},
		Initial:   []float64{1.0, 0.0, 0.0},
		Steps:     DefaultSteps,
		Digits:    DefaultDigits,
		Tolerance: markov.DefaultTolerance,
		Stationary: StationaryConfig{
			MaxIterations: markov.DefaultMaxIterations,
			Tolerance:     markov.DefaultConvergenceTolerance,
		},
	}
}

// Load reads a YAML definition from path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML definition over the defaults.
// A document that sets transitions but not states or initial gets synthesized
// labels and a start in the first state, respectively.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var present struct {
		States      []string    `yaml:"states"`
		Transitions [][]float64 `yaml:"transitions"`
		Initial     []float64   `yaml:"initial"`
	}
	if err := yaml.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if present.Transitions != nil {
		if present.States == nil {
			cfg.States = nil
		}
		if present.Initial == nil {
			cfg.Initial = firstState(len(present.Transitions))
		}
	}

	return cfg, nil
}

// LoadOrDefault loads config from path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Validate checks the fields the chain constructor cannot check itself.
// Numeric validity of transitions and initial is left to the markov package.
func (c *Config) Validate() error {
	if len(c.Transitions) == 0 {
		return fmt.Errorf("no transitions: %w", ErrInvalidConfig)
	}
	if c.States != nil && len(c.States) != len(c.Transitions) {
		return fmt.Errorf("%d states for %d transition rows: %w", len(c.States), len(c.Transitions), ErrInvalidConfig)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps %d must be non-negative: %w", c.Steps, ErrInvalidConfig)
	}
	if c.Digits < 0 {
		return fmt.Errorf("digits %d must be non-negative: %w", c.Digits, ErrInvalidConfig)
	}
	if !(c.Tolerance >= 0) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("tolerance %g must be finite and non-negative: %w", c.Tolerance, ErrInvalidConfig)
	}

	return nil
}

// Chain builds the validated chain described by c.
func (c *Config) Chain() (*markov.Chain, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []markov.Option{markov.WithTolerance(c.Tolerance)}
	if c.States != nil {
		opts = append(opts, markov.WithStates(c.States...))
	}

	return markov.NewChainFromRows(c.Transitions, opts...)
}

// StationaryOptions converts the stationary section.
func (c *Config) StationaryOptions() markov.StationaryOptions {
	return markov.StationaryOptions{
		MaxIterations: c.Stationary.MaxIterations,
		Tolerance:     c.Stationary.Tolerance,
	}
}

// firstState is the point mass on state 0.
func firstState(n int) []float64 {
	if n == 0 {
		return nil
	}
	d := make([]float64, n)
	d[0] = 1

	return d
}
