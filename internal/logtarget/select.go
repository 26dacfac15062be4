// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package logtarget chooses and materialises the log sinks of the process.
//
// Selection is a pure function of the build profile:
//   - debug:   standard output and the embedded-view console
//   - release: standard output and the on-disk log directory
//
// The chosen Set is immutable. New turns it into a configured logrus logger
// exactly once during startup; there is no reconfiguration path afterwards.
package logtarget

import (
	"strings"

	"github.com/kamaranl/tiptapri/internal/profile"
)

// Kind identifies one log sink.
type Kind uint8

const (
	// Stdout writes formatted records to the process standard output.
	Stdout Kind = 1 << iota
	// Webview forwards records to the embedded-view console.
	Webview
	// LogDir appends records to a rotating file in the log directory.
	LogDir
)

var kindNames = []struct {
	kind Kind
	name string
}{
	{Stdout, "stdout"},
	{Webview, "webview"},
	{LogDir, "logdir"},
}

func (k Kind) String() string {
	for _, n := range kindNames {
		if n.kind == k {
			return n.name
		}
	}
	return "unknown"
}

// Set is an immutable set of sink kinds.
type Set struct{ bits Kind }

// Select returns the sinks for p.
func Select(p profile.Profile) Set {
	if p.IsDebug() {
		return Set{bits: Stdout | Webview}
	}
	return Set{bits: Stdout | LogDir}
}

// Has reports whether k is a member of s.
func (s Set) Has(k Kind) bool { return s.bits&k != 0 }

// Kinds lists the members of s in declaration order.
func (s Set) Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for _, n := range kindNames {
		if s.Has(n.kind) {
			out = append(out, n.kind)
		}
	}
	return out
}

func (s Set) String() string {
	names := make([]string, 0, len(kindNames))
	for _, k := range s.Kinds() {
		names = append(names, k.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
