// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package tray is the system tray shell. The menu tree is flattened into a
// tray drop-down where every top-level menu becomes a submenu entry, and item
// accelerators are registered as global hotkeys since a tray icon never has
// keyboard focus.
package tray

import (
	"github.com/kamaranl/tiptapri/internal/menu"
)

// separatorTitle stands in for separators inside tray submenus, which
// systray cannot draw.
const separatorTitle = "──────────"

// entry is one tray menu item in render order. Parents always precede their
// children.
type entry struct {
	parent   int // index into the plan, -1 at the top level
	kind     menu.Kind
	id       string
	title    string
	tooltip  string
	native   menu.NativeAction
	disabled bool
}

// binding ties a menu item to its global hotkey chord.
type binding struct {
	id    string
	accel menu.Accelerator
}

// plan flattens tree for rendering on goos.
func plan(tree menu.Tree, goos string) []entry {
	var out []entry
	var add func(parent int, n menu.Node)
	add = func(parent int, n menu.Node) {
		e := entry{parent: parent, kind: n.Kind, id: n.ID, title: n.Label, native: n.Native}
		e.tooltip = hint(n.Accelerator, goos)

		switch n.Kind {
		case menu.KindSeparator:
			if parent >= 0 {
				e.title = separatorTitle
				e.disabled = true
			}
		case menu.KindNative:
			e.disabled = n.Native != menu.Quit
		}

		out = append(out, e)
		idx := len(out) - 1
		for _, c := range n.Children {
			add(idx, c)
		}
	}

	for _, top := range tree.Menus() {
		add(-1, top)
	}
	return out
}

// bindings lists the hotkeys to register for the clickable items of tree.
// Items without a usable accelerator are skipped.
func bindings(tree menu.Tree, goos string) []binding {
	var out []binding
	tree.Walk(func(_ []string, n menu.Node) bool {
		if n.Kind != menu.KindItem || n.Accelerator == "" {
			return true
		}
		a, err := menu.ParseAccelerator(n.Accelerator)
		if err != nil {
			return true
		}
		out = append(out, binding{id: n.ID, accel: a.Resolve(goos)})
		return true
	})
	return out
}

// hint renders chord for a tray tooltip, with CmdOrCtrl resolved for goos.
// Empty or unparseable chords give an empty hint.
//
// Parameters:
//
//	chord - The accelerator as written in the menu tree.
//	goos  - The target operating system, as in runtime.GOOS.
func hint(chord, goos string) string {
	if chord == "" {
		return ""
	}
	a, err := menu.ParseAccelerator(chord)
	if err != nil {
		return ""
	}
	return a.Resolve(goos).String()
}
