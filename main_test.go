// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package main

import (
	"runtime"
	"testing"

	"github.com/kamaranl/tiptapri/internal/shell"
	"github.com/stretchr/testify/assert"
)

func TestShellsLinkedForPlatform(t *testing.T) {
	_, window := shells[shell.KindWindow]
	_, tray := shells[shell.KindTray]

	if runtime.GOOS == "darwin" {
		assert.True(t, window != tray, "darwin links exactly one systray implementation")
		return
	}
	assert.True(t, window, "window backend")
	assert.True(t, tray, "tray backend")
}
