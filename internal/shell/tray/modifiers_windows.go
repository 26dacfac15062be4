// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package tray

import (
	"github.com/kamaranl/tiptapri/internal/menu"
	"golang.design/x/hotkey"
)

// modifiers maps the modifier set of a resolved accelerator to Windows hotkey
// modifiers.
func modifiers(a menu.Accelerator) ([]hotkey.Modifier, error) {
	var mods []hotkey.Modifier
	if a.Has(menu.ModCtrl) {
		mods = append(mods, hotkey.ModCtrl)
	}
	if a.Has(menu.ModAlt) {
		mods = append(mods, hotkey.ModAlt)
	}
	if a.Has(menu.ModShift) {
		mods = append(mods, hotkey.ModShift)
	}
	if a.Has(menu.ModSuper) {
		mods = append(mods, hotkey.ModWin)
	}
	return mods, nil
}
