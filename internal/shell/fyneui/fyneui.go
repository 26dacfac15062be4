// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package fyneui is the desktop window shell built on fyne. It renders the
// menu tree as the window's main menu (the native menu bar on macOS), hosts
// the frontend view that calls bridge commands, and owns the diagnostics
// panel that shows the embedded-view console.
package fyneui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/kamaranl/tiptapri/internal/menu"
	"github.com/kamaranl/tiptapri/internal/shell"
	"github.com/kamaranl/tiptapri/internal/window"
	"github.com/sirupsen/logrus"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Shell is the fyne backend.
type Shell struct {
	app   fyne.App
	cfg   shell.Config
	log   logrus.FieldLogger
	main  *mainWindow
	panel *diagnostics
	view  *frontendView

	stopConsole func()
}

var _ shell.Backend = (*Shell)(nil)

// New creates the main window and the (hidden) diagnostics panel on a.
func New(a fyne.App, cfg shell.Config) *Shell {
	s := &Shell{
		app:         a,
		cfg:         cfg,
		log:         cfg.Log.WithField("component", "shell"),
		stopConsole: func() {},
	}

	s.panel = newDiagnostics(a, cfg)

	w := a.NewWindow(cfg.Name)
	w.Resize(fyne.NewSize(defaultWidth, defaultHeight))
	w.SetMaster()
	w.SetContent(widget.NewLabel("Loading..."))
	s.main = &mainWindow{win: w, panel: s.panel}

	return s
}

// Windows implements shell.Backend.
func (s *Shell) Windows() []window.Window {
	return []window.Window{s.main}
}

// Attach implements shell.Backend.
func (s *Shell) Attach(tree menu.Tree, hooks shell.Hooks) error {
	if hooks.Activate == nil || hooks.Call == nil {
		return errors.New("fyne shell: incomplete hooks")
	}

	s.main.win.SetMainMenu(s.mainMenu(tree, hooks.Activate))
	s.view = newFrontendView(s.cfg.Name, hooks.Call, s.log)
	s.main.win.SetContent(s.view.content)

	if s.cfg.Profile.IsDebug() {
		s.main.win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyF12}, func(fyne.Shortcut) {
			s.main.toggleDevtools()
		})
	}
	if s.cfg.Console != nil {
		s.stopConsole = s.panel.follow(s.cfg.Console)
	}

	s.log.WithField("menus", tree.Len()).Debug("Menu attached to main window")
	return nil
}

// Run implements shell.Backend. It must be called from the main goroutine.
func (s *Shell) Run(ctx context.Context) error {
	defer s.stopConsole()

	stop := context.AfterFunc(ctx, func() {
		fyne.Do(s.app.Quit)
	})
	defer stop()

	s.main.win.ShowAndRun()
	return nil
}

// mainWindow adapts the fyne main window to window.Window.
type mainWindow struct {
	win   fyne.Window
	panel *diagnostics
}

// Label returns window.MainLabel.
func (m *mainWindow) Label() string { return window.MainLabel }

// OpenDevtools shows the diagnostics panel.
func (m *mainWindow) OpenDevtools() { m.panel.show() }

// CloseDevtools hides the diagnostics panel.
func (m *mainWindow) CloseDevtools() { m.panel.hide() }

// IsDevtoolsOpen reports whether the diagnostics panel is shown.
func (m *mainWindow) IsDevtoolsOpen() bool { return m.panel.visible() }

// toggleDevtools flips the diagnostics panel; bound to F12 in debug runs.
func (m *mainWindow) toggleDevtools() {
	if m.IsDevtoolsOpen() {
		m.CloseDevtools()
	} else {
		m.OpenDevtools()
	}
}
