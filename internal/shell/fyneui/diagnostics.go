// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package fyneui

import (
	"fmt"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/kamaranl/tiptapri/internal/logtarget"
	"github.com/kamaranl/tiptapri/internal/shell"
)

// maxLines bounds the panel's scrollback.
const maxLines = 1000

// diagnostics is the developer panel: a secondary window listing the log
// records mirrored to the embedded-view console.
type diagnostics struct {
	win   fyne.Window
	list  *widget.List
	lines []string // only touched on the fyne goroutine
	open  atomic.Bool
}

// newDiagnostics creates the hidden panel window. Its header names the build
// and, in release runs, the log file; closing the window only hides it.
func newDiagnostics(a fyne.App, cfg shell.Config) *diagnostics {
	d := &diagnostics{win: a.NewWindow(cfg.Name + " Diagnostics")}

	d.list = widget.NewList(
		func() int { return len(d.lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(d.lines[i])
		},
	)

	header := fmt.Sprintf("%s %s (%s)", cfg.Name, cfg.Version, cfg.Profile)
	if cfg.LogFile != "" {
		header += "\nLog file: " + cfg.LogFile
	}

	d.win.SetContent(container.NewBorder(widget.NewLabel(header), nil, nil, nil, d.list))
	d.win.Resize(fyne.NewSize(defaultWidth, defaultHeight/2))
	d.win.SetCloseIntercept(d.hide)
	return d
}

// show marks the panel open and shows its window.
func (d *diagnostics) show() {
	d.open.Store(true)
	d.win.Show()
}

// hide marks the panel closed and hides its window.
func (d *diagnostics) hide() {
	d.open.Store(false)
	d.win.Hide()
}

// visible reports whether the panel is open. Safe from any goroutine.
func (d *diagnostics) visible() bool { return d.open.Load() }

// follow seeds the panel with the records already held by hook and appends
// new ones as they arrive. The returned func stops following.
func (d *diagnostics) follow(hook *logtarget.ConsoleHook) func() {
	for _, rec := range hook.Records() {
		d.append(rec.Line())
	}

	ch, cancel := hook.Subscribe()
	go func() {
		for rec := range ch {
			line := rec.Line()
			fyne.Do(func() {
				d.append(line)
				d.list.Refresh()
			})
		}
	}()
	return cancel
}

// append adds line to the scrollback, dropping the oldest lines beyond
// maxLines. Callers refresh the list.
func (d *diagnostics) append(line string) {
	d.lines = append(d.lines, line)
	if over := len(d.lines) - maxLines; over > 0 {
		d.lines = append(d.lines[:0], d.lines[over:]...)
	}
}
