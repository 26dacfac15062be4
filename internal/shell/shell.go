// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package shell defines the contract between the bootstrapper and the
// toolkit-specific backends that own the native event loop, render the menu
// tree and host the frontend view.
package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kamaranl/tiptapri/internal/logtarget"
	"github.com/kamaranl/tiptapri/internal/menu"
	"github.com/kamaranl/tiptapri/internal/profile"
	"github.com/kamaranl/tiptapri/internal/window"
	"github.com/sirupsen/logrus"
)

// Kind names a backend.
type Kind string

const (
	// KindWindow is a desktop window with a menu bar.
	KindWindow Kind = "window"
	// KindTray is a system tray icon with a drop-down menu.
	KindTray Kind = "tray"
)

// ParseKind validates a backend name.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case KindWindow, KindTray:
		return k, nil
	default:
		return "", fmt.Errorf("unknown shell %q", name)
	}
}

// Config is handed to a backend when it is created.
type Config struct {
	Name    string
	Version string
	License string
	Profile profile.Profile
	Log     logrus.FieldLogger
	// Console is the embedded-view console sink; nil outside debug builds.
	Console *logtarget.ConsoleHook
	// LogFile is the on-disk log file; empty outside release builds.
	LogFile string
}

// Hooks connect a backend to the event loop.
type Hooks struct {
	// Activate reports a click on the menu item with the given identifier.
	Activate func(id string)
	// Call invokes a bridge command and waits for the result.
	Call func(name string, args json.RawMessage) (string, error)
}

// Backend is a toolkit-specific shell.
type Backend interface {
	// Windows returns the windows the backend created, main window included.
	Windows() []window.Window
	// Attach renders tree and routes item activations and frontend calls
	// through hooks.
	Attach(tree menu.Tree, hooks Hooks) error
	// Run blocks on the native event loop until the user quits or ctx ends.
	Run(ctx context.Context) error
}

// Factory creates a Backend.
type Factory func(cfg Config) (Backend, error)
