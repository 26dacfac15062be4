// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// macOS builds get the tray backend only with -tags tray, which drops the
// window backend (see shells_window.go).

//go:build !darwin || tray

package main

import (
	"github.com/kamaranl/tiptapri/internal/shell"
	"github.com/kamaranl/tiptapri/internal/shell/tray"
)

func init() {
	shells[shell.KindTray] = tray.New
}
