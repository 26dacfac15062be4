// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package window keeps track of the shell's windows by label.
package window

import (
	"errors"
	"fmt"

	"github.com/kamaranl/tiptapri/internal/state"
)

// MainLabel is the label of the single main window.
const MainLabel = "main"

// ErrNoMainWindow is returned by Main when no window is labelled MainLabel.
var ErrNoMainWindow = errors.New("main window not found")

// Window is the part of a shell window the core drives.
type Window interface {
	Label() string
	// OpenDevtools shows the diagnostics panel attached to the window.
	OpenDevtools()
	// CloseDevtools hides the diagnostics panel.
	CloseDevtools()
	// IsDevtoolsOpen reports whether the diagnostics panel is visible.
	IsDevtoolsOpen() bool
}

// Registry holds the windows created by the shell backend.
type Registry struct {
	store *state.Store
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{store: state.New()}
}

// Add registers w under its label. Labels are unique.
func (r *Registry) Add(w Window) error {
	if w == nil {
		return errors.New("nil window")
	}
	if !state.SetOnce(r.store, w.Label(), w) {
		return fmt.Errorf("window %q already registered", w.Label())
	}
	return nil
}

// Get returns the window labelled label.
func (r *Registry) Get(label string) (Window, bool) {
	return state.Get[Window](r.store, label)
}

// Main returns the main window.
func (r *Registry) Main() (Window, error) {
	w, ok := r.Get(MainLabel)
	if !ok {
		return nil, ErrNoMainWindow
	}
	return w, nil
}

// Labels lists registered window labels.
func (r *Registry) Labels() []string { return r.store.Keys() }
