// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package menu

import (
	"fmt"
	"strings"
)

// Stable item identifiers of the custom tree.
const (
	IDProjectNew  = "projectnew"
	IDProjectOpen = "projectopen"
	IDFileOpen    = "fileopen"
	IDFileSave    = "filesave"
	IDFileSaveAs  = "filesaveas"
	IDUndo        = "undo"
	IDRedo        = "redo"
)

// Variant selects which tree Build produces.
type Variant string

const (
	// VariantCustom is the application's own File/Edit tree.
	VariantCustom Variant = "custom"
	// VariantDefault is the platform default tree templated with the app name.
	VariantDefault Variant = "default"
)

// ParseVariant validates a variant name.
func ParseVariant(name string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(name))); v {
	case VariantCustom, VariantDefault:
		return v, nil
	default:
		return "", fmt.Errorf("unknown menu variant %q", name)
	}
}

// Build produces the tree for variant. Exactly one variant is used per run.
func Build(v Variant, appName, goos string) (Tree, error) {
	switch v {
	case VariantCustom:
		return Custom()
	case VariantDefault:
		return PlatformDefault(appName, goos)
	default:
		return Tree{}, fmt.Errorf("unknown menu variant %q", v)
	}
}

// Custom builds the File (with Project submenu) and Edit menus.
func Custom() (Tree, error) {
	project := NewSubmenu("Project",
		NewItem(IDProjectNew, "Project Create").WithAccelerator("Alt+C"),
		NewItem(IDProjectOpen, "Project Open...").WithAccelerator("Alt+P"),
	)

	file := NewSubmenu("File",
		project,
		NewSeparator(),
		NewItem(IDFileOpen, "File Open...").WithAccelerator("Ctrl+N"),
		NewItem(IDFileSave, "File Save").WithAccelerator("Ctrl+S"),
		NewItem(IDFileSaveAs, "File Save As...").WithAccelerator("Ctrl+Shift+S"),
		NewSeparator(),
		NewNative(Quit),
	)

	edit := NewSubmenu("Edit",
		NewItem(IDUndo, "Undo").WithAccelerator("Ctrl+Z"),
		NewItem(IDRedo, "Redo").WithAccelerator("Ctrl+Y"),
		NewSeparator(),
		NewNative(Cut),
		NewNative(Copy),
		NewNative(Paste),
	)

	return NewTree(file, edit)
}

// PlatformDefault builds the operating system's default menu for goos, with
// appName substituted where the platform shows it.
func PlatformDefault(appName, goos string) (Tree, error) {
	if goos == "darwin" {
		return NewTree(
			NewSubmenu(appName,
				NewNative(About).WithLabel("About "+appName),
				NewSeparator(),
				NewNative(Services),
				NewSeparator(),
				NewNative(Hide).WithLabel("Hide "+appName),
				NewNative(HideOthers),
				NewNative(ShowAll),
				NewSeparator(),
				NewNative(Quit).WithLabel("Quit "+appName),
			),
			NewSubmenu("File",
				NewNative(CloseWindow),
			),
			NewSubmenu("Edit",
				NewNative(Undo),
				NewNative(Redo),
				NewSeparator(),
				NewNative(Cut),
				NewNative(Copy),
				NewNative(Paste),
				NewNative(SelectAll),
			),
			NewSubmenu("View",
				NewNative(EnterFullScreen),
			),
			NewSubmenu("Window",
				NewNative(Minimize),
				NewNative(Zoom),
				NewSeparator(),
				NewNative(CloseWindow),
			),
		)
	}

	return NewTree(
		NewSubmenu("File",
			NewNative(CloseWindow),
			NewNative(Quit),
		),
		NewSubmenu("Edit",
			NewNative(Cut),
			NewNative(Copy),
			NewNative(Paste),
			NewSeparator(),
			NewNative(SelectAll),
		),
		NewSubmenu("Window",
			NewNative(Minimize),
		),
	)
}
