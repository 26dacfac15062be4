// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package menu describes the application menu bar as a static tree.
//
// A Tree is built once at startup from one of two variants (a custom
// File/Edit tree or the platform default tree), validated for identifier
// uniqueness, and then handed read-only to a shell backend that renders it.
// Item identifiers are the contract between the rendered menu and the
// dispatcher, so they never change once chosen.
package menu

import "fmt"

// Kind tags the variant held by a Node.
type Kind int

const (
	KindItem Kind = iota
	KindSeparator
	KindNative
	KindSubmenu
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindSeparator:
		return "separator"
	case KindNative:
		return "native"
	case KindSubmenu:
		return "submenu"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// NativeAction is an entry whose behaviour is provided by the shell backend
// rather than by the dispatcher.
type NativeAction int

const (
	Quit NativeAction = iota + 1
	Cut
	Copy
	Paste
	SelectAll
	Undo
	Redo
	About
	Hide
	HideOthers
	ShowAll
	Services
	CloseWindow
	Minimize
	Zoom
	EnterFullScreen
)

var nativeLabels = map[NativeAction]string{
	Quit:            "Quit",
	Cut:             "Cut",
	Copy:            "Copy",
	Paste:           "Paste",
	SelectAll:       "Select All",
	Undo:            "Undo",
	Redo:            "Redo",
	About:           "About",
	Hide:            "Hide",
	HideOthers:      "Hide Others",
	ShowAll:         "Show All",
	Services:        "Services",
	CloseWindow:     "Close Window",
	Minimize:        "Minimize",
	Zoom:            "Zoom",
	EnterFullScreen: "Enter Full Screen",
}

var nativeAccelerators = map[NativeAction]string{
	Quit:      "CmdOrCtrl+Q",
	Cut:       "CmdOrCtrl+X",
	Copy:      "CmdOrCtrl+C",
	Paste:     "CmdOrCtrl+V",
	SelectAll: "CmdOrCtrl+A",
	Undo:      "CmdOrCtrl+Z",
	Redo:      "CmdOrCtrl+Shift+Z",
	Hide:      "CmdOrCtrl+H",
	Minimize:  "CmdOrCtrl+M",
}

// String returns the default label of the action.
func (a NativeAction) String() string {
	if l, ok := nativeLabels[a]; ok {
		return l
	}
	return fmt.Sprintf("native(%d)", int(a))
}

// Node is one entry of the tree. Which fields are meaningful depends on Kind.
type Node struct {
	Kind        Kind
	ID          string // KindItem
	Label       string // KindItem, KindSubmenu; optional override for KindNative
	Accelerator string // KindItem, KindNative; advisory
	Native      NativeAction
	Children    []Node // KindSubmenu
}

// NewItem returns a clickable item dispatched by id.
func NewItem(id, label string) Node {
	return Node{Kind: KindItem, ID: id, Label: label}
}

// NewSeparator returns a separator line.
func NewSeparator() Node {
	return Node{Kind: KindSeparator}
}

// NewNative returns an entry handled by the shell backend.
func NewNative(a NativeAction) Node {
	return Node{Kind: KindNative, Native: a, Label: a.String(), Accelerator: nativeAccelerators[a]}
}

// NewSubmenu returns a submenu holding children in order.
func NewSubmenu(label string, children ...Node) Node {
	return Node{Kind: KindSubmenu, Label: label, Children: children}
}

// WithAccelerator returns a copy of n carrying the key chord hint.
func (n Node) WithAccelerator(chord string) Node {
	n.Accelerator = chord
	return n
}

// WithLabel returns a copy of n with its display label replaced.
func (n Node) WithLabel(label string) Node {
	n.Label = label
	return n
}

func (n Node) clone() Node {
	if n.Children != nil {
		children := make([]Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.clone()
		}
		n.Children = children
	}
	return n
}
