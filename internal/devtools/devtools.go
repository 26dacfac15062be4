// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package devtools runs the debug-only self-test of the diagnostics panel.
package devtools

import (
	"fmt"

	"github.com/kamaranl/tiptapri/internal/profile"
	"github.com/kamaranl/tiptapri/internal/window"
	"github.com/sirupsen/logrus"
)

// SelfTest opens and immediately closes the diagnostics panel of the main
// window to prove it is wired up. It does nothing outside the debug profile.
// A missing main window is returned as an error wrapping
// window.ErrNoMainWindow; the panel always ends closed, even if opening it
// panics.
func SelfTest(p profile.Profile, windows *window.Registry, log logrus.FieldLogger) (err error) {
	if !p.IsDebug() {
		return nil
	}

	w, err := windows.Main()
	if err != nil {
		return fmt.Errorf("devtools self-test: %w", err)
	}

	log = log.WithFields(logrus.Fields{"component": "devtools", "window": w.Label()})
	defer func() {
		w.CloseDevtools()
		if r := recover(); r != nil {
			err = fmt.Errorf("devtools self-test: opening diagnostics panel panicked: %v", r)
			return
		}
		log.Debug("Diagnostics panel closed")
	}()

	w.OpenDevtools()
	log.WithField("open", w.IsDevtoolsOpen()).Debug("Diagnostics panel opened")
	return nil
}
