// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package menu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateID is wrapped by Validate when two items share an identifier.
var ErrDuplicateID = errors.New("duplicate menu item identifier")

// ErrEmptyID is wrapped by Validate when an item has no identifier.
var ErrEmptyID = errors.New("menu item without identifier")

// Tree is the root sequence of top-level submenus. The zero value is an empty
// menu. A Tree never exposes its backing slices, so it is safe to share.
type Tree struct {
	menus []Node
}

// NewTree copies menus into a new Tree. Top-level entries must be submenus.
func NewTree(menus ...Node) (Tree, error) {
	t := Tree{menus: make([]Node, len(menus))}
	for i, m := range menus {
		if m.Kind != KindSubmenu {
			return Tree{}, fmt.Errorf("top-level menu %d is a %s, want submenu", i, m.Kind)
		}
		t.menus[i] = m.clone()
	}
	return t, t.Validate()
}

// Menus returns a deep copy of the top-level submenus.
func (t Tree) Menus() []Node {
	out := make([]Node, len(t.menus))
	for i, m := range t.menus {
		out[i] = m.clone()
	}
	return out
}

// Len is the number of top-level submenus.
func (t Tree) Len() int { return len(t.menus) }

// Walk visits every node depth first. path holds the labels of the enclosing
// submenus. Returning false from fn stops the walk.
func (t Tree) Walk(fn func(path []string, n Node) bool) {
	var walk func(path []string, nodes []Node) bool
	walk = func(path []string, nodes []Node) bool {
		for _, n := range nodes {
			if !fn(path, n) {
				return false
			}
			if n.Kind == KindSubmenu {
				if !walk(append(path[:len(path):len(path)], n.Label), n.Children) {
					return false
				}
			}
		}
		return true
	}
	walk(nil, t.menus)
}

// IDs lists every item identifier in depth-first order.
func (t Tree) IDs() []string {
	var ids []string
	t.Walk(func(_ []string, n Node) bool {
		if n.Kind == KindItem {
			ids = append(ids, n.ID)
		}
		return true
	})
	return ids
}

// Find returns the item with identifier id.
func (t Tree) Find(id string) (Node, bool) {
	var found Node
	var ok bool
	t.Walk(func(_ []string, n Node) bool {
		if n.Kind == KindItem && n.ID == id {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// Validate checks that every item has a non-empty identifier unique across
// the whole tree. Accelerator conflicts are not checked.
func (t Tree) Validate() error {
	seen := make(map[string]string)
	var errs []error
	t.Walk(func(path []string, n Node) bool {
		if n.Kind != KindItem {
			return true
		}
		where := strings.Join(append(path[:len(path):len(path)], n.Label), " > ")
		if n.ID == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyID, where))
			return true
		}
		if prev, dup := seen[n.ID]; dup {
			errs = append(errs, fmt.Errorf("%w %q: %s and %s", ErrDuplicateID, n.ID, prev, where))
			return true
		}
		seen[n.ID] = where
		return true
	})
	return errors.Join(errs...)
}
