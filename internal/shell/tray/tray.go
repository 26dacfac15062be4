// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

//go:build (cgo && (darwin || linux)) || windows

package tray

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/getlantern/systray"
	"github.com/kamaranl/tiptapri/internal/menu"
	"github.com/kamaranl/tiptapri/internal/shell"
	"github.com/kamaranl/tiptapri/internal/window"
	"github.com/sirupsen/logrus"
	"golang.design/x/hotkey"
)

// Shell is the systray backend.
type Shell struct {
	cfg   shell.Config
	log   logrus.FieldLogger
	main  *trayWindow
	tree  menu.Tree
	hooks shell.Hooks

	ready   atomic.Bool
	hotkeys []*hotkey.Hotkey
}

var _ shell.Backend = (*Shell)(nil)

// New returns a tray shell. Nothing is shown until Run.
func New(cfg shell.Config) (shell.Backend, error) {
	s := &Shell{
		cfg: cfg,
		log: cfg.Log.WithField("component", "tray"),
	}
	s.main = newTrayWindow(cfg.Console, func(line string) {
		if s.ready.Load() {
			systray.SetTooltip(cfg.Name + " - " + line)
		}
	})
	return s, nil
}

// Windows implements shell.Backend. The tray icon stands in for the main
// window.
func (s *Shell) Windows() []window.Window {
	return []window.Window{s.main}
}

// Attach implements shell.Backend. Rendering is deferred until the tray is
// ready.
func (s *Shell) Attach(tree menu.Tree, hooks shell.Hooks) error {
	if hooks.Activate == nil {
		return errors.New("tray shell: missing activate hook")
	}
	s.tree = tree
	s.hooks = hooks
	return nil
}

// Run implements shell.Backend. It must be called from the main goroutine.
func (s *Shell) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, systray.Quit)
	defer stop()

	systray.Run(s.onReady, s.onExit)
	return nil
}

// onReady renders the tray menu and starts forwarding clicks and hotkeys.
func (s *Shell) onReady() {
	ico, err := icon(runtime.GOOS, s.cfg.Profile.IsDebug())
	if err != nil {
		s.log.WithError(err).Warn("Could not draw tray icon")
	} else {
		systray.SetIcon(ico)
	}
	systray.SetTooltip(s.cfg.Name + " " + s.cfg.Version)
	s.ready.Store(true)

	entries := plan(s.tree, runtime.GOOS)
	items := make([]*systray.MenuItem, len(entries))
	for i, e := range entries {
		if e.parent < 0 && e.kind == menu.KindSeparator {
			systray.AddSeparator()
			continue
		}

		var mi *systray.MenuItem
		if e.parent < 0 {
			mi = systray.AddMenuItem(e.title, e.tooltip)
		} else {
			mi = items[e.parent].AddSubMenuItem(e.title, e.tooltip)
		}
		if e.disabled {
			mi.Disable()
		}
		items[i] = mi

		switch {
		case e.kind == menu.KindItem:
			go s.forward(mi, e.id)
		case e.kind == menu.KindNative && e.native == menu.Quit:
			go func() {
				<-mi.ClickedCh
				s.log.Debug("*Clicked Quit*")
				systray.Quit()
			}()
		}
	}

	systray.AddSeparator()
	if s.cfg.Profile.IsDebug() {
		s.bindDiagnostics(systray.AddMenuItemCheckbox("Diagnostics", "Show log records in the tooltip", s.main.IsDevtoolsOpen()))
	} else if s.cfg.LogFile != "" {
		systray.AddMenuItem("Log: "+s.cfg.LogFile, s.cfg.LogFile).Disable()
	}

	s.registerHotkeys()
	s.log.WithField("items", len(entries)).Info("Tray ready")
}

// onExit runs after the systray loop ends. It unregisters the global
// hotkeys and closes the diagnostics panel so its console subscription is
// released.
func (s *Shell) onExit() {
	s.ready.Store(false)
	for _, hk := range s.hotkeys {
		_ = hk.Unregister()
	}
	s.main.CloseDevtools()
	s.log.Info("Tray stopped")
}

// bindDiagnostics makes mi the devtools toggle.
func (s *Shell) bindDiagnostics(mi *systray.MenuItem) {
	s.main.setMark(func(open bool) {
		if open {
			mi.Check()
		} else {
			mi.Uncheck()
		}
	})
	go func() {
		for range mi.ClickedCh {
			s.main.toggleDevtools()
		}
	}()
}

// forward relays every click on mi to the activate hook as a menu event for
// id. It runs for the lifetime of the tray.
//
// Parameters:
//
//	mi - The tray menu item whose ClickedCh is watched.
//	id - The menu identifier reported to the event loop.
func (s *Shell) forward(mi *systray.MenuItem, id string) {
	for range mi.ClickedCh {
		s.log.Debugf("*Clicked %s*", id)
		s.hooks.Activate(id)
	}
}

// registerHotkeys binds item accelerators system-wide. A chord another
// program already owns is logged and skipped.
func (s *Shell) registerHotkeys() {
	for _, b := range bindings(s.tree, runtime.GOOS) {
		hk, err := newHotkey(b.accel)
		if err == nil {
			err = hk.Register()
		}
		if err != nil {
			s.log.WithError(err).Warnf("Could not register hotkey %s for %q", b.accel, b.id)
			continue
		}
		s.hotkeys = append(s.hotkeys, hk)

		go func(id string) {
			for range hk.Keydown() {
				s.log.Debugf("Hotkey activated for %q", id)
				s.hooks.Activate(id)
			}
		}(b.id)
	}
}
