// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package tray

import (
	"sync"

	"github.com/kamaranl/tiptapri/internal/logtarget"
	"github.com/kamaranl/tiptapri/internal/window"
)

// maxTooltip bounds a console line shown in the tray tooltip.
const maxTooltip = 120

// trayWindow adapts the tray icon to window.Window. While its diagnostics
// panel is open, console records are shown through show.
type trayWindow struct {
	console *logtarget.ConsoleHook
	show    func(line string)

	mu     sync.Mutex
	open   bool
	cancel func()
	mark   func(open bool)
}

// newTrayWindow returns a closed panel. console may be nil, in which case
// opening the panel only updates the menu mark.
func newTrayWindow(console *logtarget.ConsoleHook, show func(line string)) *trayWindow {
	return &trayWindow{console: console, show: show}
}

// Label returns window.MainLabel: the tray icon is the main window.
func (w *trayWindow) Label() string { return window.MainLabel }

// OpenDevtools subscribes to the console sink and starts mirroring records
// through show. Opening an open panel does nothing.
func (w *trayWindow) OpenDevtools() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.open {
		return
	}
	w.open = true

	if w.console != nil {
		ch, cancel := w.console.Subscribe()
		w.cancel = cancel
		go func() {
			for rec := range ch {
				w.show(truncate(rec.Line(), maxTooltip))
			}
		}()
	}
	if w.mark != nil {
		w.mark(true)
	}
}

// CloseDevtools cancels the console subscription. Closing a closed panel
// does nothing.
func (w *trayWindow) CloseDevtools() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.open {
		return
	}
	w.open = false

	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	if w.mark != nil {
		w.mark(false)
	}
}

// IsDevtoolsOpen reports whether records are being mirrored.
func (w *trayWindow) IsDevtoolsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// toggleDevtools flips the panel, as a click on the Diagnostics entry does.
func (w *trayWindow) toggleDevtools() {
	if w.IsDevtoolsOpen() {
		w.CloseDevtools()
	} else {
		w.OpenDevtools()
	}
}

// setMark installs the callback reflecting the panel state in the menu.
func (w *trayWindow) setMark(mark func(open bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mark = mark
	mark(w.open)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
//
// Parameters:
//
//	s - The text to shorten.
//	n - The maximum length in runes, ellipsis included.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
