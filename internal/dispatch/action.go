// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package dispatch

import "github.com/kamaranl/tiptapri/internal/menu"

// Action enumerates the menu identifiers the dispatcher knows about.
type Action int

const (
	// ActionUnknown is any identifier outside the known set.
	ActionUnknown Action = iota
	ActionProjectNew
	ActionProjectOpen
	ActionFileOpen
	ActionFileSave
	ActionFileSaveAs
	ActionUndo
	ActionRedo
)

var actionIDs = map[Action]string{
	ActionProjectNew:  menu.IDProjectNew,
	ActionProjectOpen: menu.IDProjectOpen,
	ActionFileOpen:    menu.IDFileOpen,
	ActionFileSave:    menu.IDFileSave,
	ActionFileSaveAs:  menu.IDFileSaveAs,
	ActionUndo:        menu.IDUndo,
	ActionRedo:        menu.IDRedo,
}

var idActions = func() map[string]Action {
	m := make(map[string]Action, len(actionIDs))
	for a, id := range actionIDs {
		m[id] = a
	}
	return m
}()

// ParseAction matches id exactly against the known identifiers.
func ParseAction(id string) (Action, bool) {
	a, ok := idActions[id]
	return a, ok
}

// ID returns the menu identifier of a, or "" for ActionUnknown.
func (a Action) ID() string { return actionIDs[a] }

// String returns the menu identifier of a, or "unknown".
func (a Action) String() string {
	if id, ok := actionIDs[a]; ok {
		return id
	}
	return "unknown"
}
