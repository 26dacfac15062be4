// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

//go:build cgo

package tray

import (
	"errors"

	"github.com/kamaranl/tiptapri/internal/menu"
	"golang.design/x/hotkey"
)

// modifiers maps the modifier set of a resolved accelerator to X11 hotkey
// modifiers. X11 maps Alt to Mod1; Super has no fixed modifier slot and is
// reported as an error.
func modifiers(a menu.Accelerator) ([]hotkey.Modifier, error) {
	if a.Has(menu.ModSuper) {
		return nil, errors.New("super modifier is not supported on X11")
	}

	var mods []hotkey.Modifier
	if a.Has(menu.ModCtrl) {
		mods = append(mods, hotkey.ModCtrl)
	}
	if a.Has(menu.ModAlt) {
		mods = append(mods, hotkey.Mod1)
	}
	if a.Has(menu.ModShift) {
		mods = append(mods, hotkey.ModShift)
	}
	return mods, nil
}
