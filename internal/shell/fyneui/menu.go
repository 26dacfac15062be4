// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package fyneui

import (
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/kamaranl/tiptapri/internal/menu"
)

// mainMenu converts tree into a fyne main menu. Item clicks call activate
// with the item identifier.
func (s *Shell) mainMenu(tree menu.Tree, activate func(id string)) *fyne.MainMenu {
	var menus []*fyne.Menu
	for _, top := range tree.Menus() {
		menus = append(menus, fyne.NewMenu(top.Label, s.menuItems(top.Children, activate)...))
	}
	return fyne.NewMainMenu(menus...)
}

// menuItems converts nodes, recursing into submenus. Item actions report the
// item identifier through activate.
//
// Parameters:
//
//	nodes    - The children of one menu or submenu.
//	activate - The hook called with the identifier of a clicked item.
func (s *Shell) menuItems(nodes []menu.Node, activate func(id string)) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case menu.KindItem:
			id := n.ID
			item := fyne.NewMenuItem(n.Label, func() { activate(id) })
			item.Shortcut = s.shortcut(n.Accelerator)
			items = append(items, item)
		case menu.KindSeparator:
			items = append(items, fyne.NewMenuItemSeparator())
		case menu.KindSubmenu:
			item := fyne.NewMenuItem(n.Label, nil)
			item.ChildMenu = fyne.NewMenu(n.Label, s.menuItems(n.Children, activate)...)
			items = append(items, item)
		case menu.KindNative:
			items = append(items, s.nativeItem(n))
		}
	}
	return items
}

// nativeItem renders entries the toolkit provides. Actions fyne has no API
// for are shown disabled.
func (s *Shell) nativeItem(n menu.Node) *fyne.MenuItem {
	item := fyne.NewMenuItem(n.Label, nil)
	item.Shortcut = s.shortcut(n.Accelerator)
	w := s.main.win

	switch n.Native {
	case menu.Quit:
		item.IsQuit = true
		item.Action = s.app.Quit
	case menu.Cut:
		item.Action = func() { s.sendShortcut(&fyne.ShortcutCut{Clipboard: w.Clipboard()}) }
	case menu.Copy:
		item.Action = func() { s.sendShortcut(&fyne.ShortcutCopy{Clipboard: w.Clipboard()}) }
	case menu.Paste:
		item.Action = func() { s.sendShortcut(&fyne.ShortcutPaste{Clipboard: w.Clipboard()}) }
	case menu.SelectAll:
		item.Action = func() { s.sendShortcut(&fyne.ShortcutSelectAll{}) }
	case menu.Undo:
		item.Action = func() { s.sendShortcut(&fyne.ShortcutUndo{}) }
	case menu.Redo:
		item.Action = func() { s.sendShortcut(&fyne.ShortcutRedo{}) }
	case menu.About:
		item.Action = func() {
			dialog.ShowInformation(n.Label, s.about(), w)
		}
	case menu.CloseWindow:
		item.Action = w.Close
	case menu.EnterFullScreen:
		item.Action = func() { w.SetFullScreen(!w.FullScreen()) }
	default:
		item.Disabled = true
	}
	return item
}

// about is the text of the About dialog: name, version, platform and license.
func (s *Shell) about() string {
	return fmt.Sprintf("%s, version %s (%s-%s)%s", s.cfg.Name, s.cfg.Version, runtime.GOOS, runtime.GOARCH, s.cfg.License)
}

// sendShortcut delivers sc to the focused widget, the way a native edit menu
// targets the first responder.
func (s *Shell) sendShortcut(sc fyne.Shortcut) {
	focused := s.main.win.Canvas().Focused()
	if target, ok := focused.(fyne.Shortcutable); ok {
		target.TypedShortcut(sc)
		return
	}
	s.log.WithField("shortcut", sc.ShortcutName()).Debug("No focused widget for edit action")
}

// shortcut converts an accelerator hint. Invalid hints are logged and dropped
// since accelerators are advisory.
func (s *Shell) shortcut(chord string) fyne.Shortcut {
	if chord == "" {
		return nil
	}
	a, err := menu.ParseAccelerator(chord)
	if err != nil {
		s.log.WithError(err).Warn("Ignoring accelerator")
		return nil
	}

	var mods fyne.KeyModifier
	if a.Has(menu.ModPrimary) {
		mods |= fyne.KeyModifierShortcutDefault
	}
	if a.Has(menu.ModCtrl) {
		mods |= fyne.KeyModifierControl
	}
	if a.Has(menu.ModAlt) {
		mods |= fyne.KeyModifierAlt
	}
	if a.Has(menu.ModShift) {
		mods |= fyne.KeyModifierShift
	}
	if a.Has(menu.ModSuper) {
		mods |= fyne.KeyModifierSuper
	}
	return &desktop.CustomShortcut{KeyName: fyne.KeyName(a.Key), Modifier: mods}
}
