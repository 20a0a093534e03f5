// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "info", Component: "lvchain"})
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	require.Zero(t, buf.Len(), "debug is below info")

	log.Info().Int("states", 3).Msg("chain ready")
	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	require.Equal(t, "chain ready", event["message"])
	require.Equal(t, "lvchain", event["component"])
	require.Equal(t, float64(3), event["states"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Console: true})
	require.NoError(t, err)

	log.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "INF")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "nope"})
	require.Error(t, err)
}
