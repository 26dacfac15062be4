// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package menu

import (
	"fmt"
	"strings"
)

// Modifier is a bit set of accelerator modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModSuper
	// ModPrimary is Cmd on macOS and Ctrl elsewhere.
	ModPrimary
)

// Accelerator is a parsed key chord such as Ctrl+Shift+S.
type Accelerator struct {
	Mods Modifier
	Key  string // upper case letter or digit, or a named key such as "F5"
}

// Has reports whether m is held in the chord.
func (a Accelerator) Has(m Modifier) bool { return a.Mods&m != 0 }

// Resolve replaces ModPrimary with the concrete modifier for goos.
func (a Accelerator) Resolve(goos string) Accelerator {
	if !a.Has(ModPrimary) {
		return a
	}
	a.Mods &^= ModPrimary
	if goos == "darwin" {
		a.Mods |= ModSuper
	} else {
		a.Mods |= ModCtrl
	}
	return a
}

func (a Accelerator) String() string {
	var parts []string
	for _, m := range []struct {
		mod  Modifier
		name string
	}{
		{ModPrimary, "CmdOrCtrl"},
		{ModCtrl, "Ctrl"},
		{ModAlt, "Alt"},
		{ModShift, "Shift"},
		{ModSuper, "Super"},
	} {
		if a.Has(m.mod) {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(append(parts, a.Key), "+")
}

// ParseAccelerator reads chords written as "Ctrl+S", "Ctrl + Shift + S" or
// "CmdOrCtrl+N". Modifier names are case insensitive; the key must come last.
func ParseAccelerator(s string) (Accelerator, error) {
	var a Accelerator
	parts := strings.Split(s, "+")
	for i, raw := range parts {
		p := strings.TrimSpace(raw)
		if p == "" {
			return Accelerator{}, fmt.Errorf("accelerator %q: empty component", s)
		}
		if i == len(parts)-1 {
			a.Key = strings.ToUpper(p)
			break
		}
		switch strings.ToLower(p) {
		case "ctrl", "control":
			a.Mods |= ModCtrl
		case "alt", "option":
			a.Mods |= ModAlt
		case "shift":
			a.Mods |= ModShift
		case "super", "cmd", "command", "meta":
			a.Mods |= ModSuper
		case "cmdorctrl", "commandorcontrol":
			a.Mods |= ModPrimary
		default:
			return Accelerator{}, fmt.Errorf("accelerator %q: unknown modifier %q", s, p)
		}
	}
	return a, nil
}
