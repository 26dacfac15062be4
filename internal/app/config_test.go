// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags("Tiptapri", nil, Env{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Profile)
	assert.Equal(t, "custom", cfg.Menu)
	assert.Equal(t, "window", cfg.Shell)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.BridgeAddr)
	assert.False(t, cfg.Version)
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags("Tiptapri", []string{
		"--profile=release", "--menu", "default", "--shell", "tray",
		"--log-dir", "/tmp/logs", "--bridge-addr", "127.0.0.1:7777",
	}, Env{})
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Profile)
	assert.Equal(t, "default", cfg.Menu)
	assert.Equal(t, "tray", cfg.Shell)
	assert.Equal(t, "/tmp/logs", cfg.LogDir)
	assert.Equal(t, "127.0.0.1:7777", cfg.BridgeAddr)
}

func TestParseFlagsRejectsStrayArgs(t *testing.T) {
	cfg, err := ParseFlags("Tiptapri", []string{"help"}, Env{})
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, cfg.Usage(), "Usage of tiptapri")
	assert.Regexp(t, `(?s)^unknown arg: help\n.*Usage of tiptapri`, cfg.Usage())

	_, err = ParseFlags("Tiptapri", []string{"--bogus"}, Env{})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestParseFlagsHelp(t *testing.T) {
	cfg, err := ParseFlags("Tiptapri", []string{"-h"}, Env{})
	require.NoError(t, err)
	assert.True(t, cfg.Help)
	assert.Contains(t, cfg.Usage(), "--bridge-addr")
}

func TestParseFlagsInjectedArgs(t *testing.T) {
	env := Env{"DEBUG": "true", "TIPTAPRI_CLI_ARGS": "--shell;tray;--menu;default"}
	cfg, err := ParseFlags("Tiptapri", []string{"--shell", "window"}, env)
	require.NoError(t, err)
	assert.Equal(t, "tray", cfg.Shell)
	assert.Equal(t, "default", cfg.Menu)

	env["DEBUG"] = "false"
	cfg, err = ParseFlags("Tiptapri", []string{"--shell", "window"}, env)
	require.NoError(t, err)
	assert.Equal(t, "window", cfg.Shell, "injection is debug only")
}
