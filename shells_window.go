// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// On macOS fyne's GLFW driver links fyne.io/systray, whose Objective-C
// classes clash with getlantern/systray; a darwin build carries one backend.

//go:build !darwin || !tray

package main

import (
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/kamaranl/tiptapri/internal/shell"
	"github.com/kamaranl/tiptapri/internal/shell/fyneui"
)

func init() {
	shells[shell.KindWindow] = func(cfg shell.Config) (shell.Backend, error) {
		return fyneui.New(fyneapp.NewWithID(AppID), cfg), nil
	}
}
