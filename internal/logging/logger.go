// SPDX-License-Identifier: MIT

// Package logging builds the zerolog loggers used by the lvchain command.
// Library packages (matrix, markov, config) never log; only the command does.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// Options configures New.
type Options struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled.
	Level string
	// Console renders human-readable lines instead of JSON.
	Console bool
	// Component is attached to every event when non-empty.
	Component string
}

// New creates a zerolog.Logger writing to w.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if opts.Console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}

	return ctx.Logger(), nil
}

// ParseLevel maps a level name to a zerolog.Level; an empty name is DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}

	return level, nil
}
