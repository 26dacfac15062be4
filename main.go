// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package main provides the entry point for the Tiptapri desktop shell.
// It wires the toolkit backends into the bootstrapper from the internal app
// package, embeds version information, and runs the application.
package main

import (
	_ "embed"
	"strings"

	"github.com/kamaranl/tiptapri/internal/app"
	"github.com/kamaranl/tiptapri/internal/shell"
)

const (
	// Name defines the application name used for display and logging purposes.
	Name = "Tiptapri"

	// AppID identifies the application to the desktop (preferences, notifications).
	AppID = "dev.layne.tiptapri"

	// License holds the license identifier and copyright notice for the application.
	License = `
Copyright © 2025, Kamaran Layne
BSD 3-Clause License

This software is distributed "as-is" with NO WARRANTY.
`
)

// Version holds the application version, embedded at build time from the VERSION file.
//
//go:embed VERSION
var Version string

// shells holds the backends linked into this build, filled by the
// build-tagged shells_*.go files.
var shells = map[shell.Kind]shell.Factory{}

func main() {
	a := app.New(Name)
	a.Meta.Version = strings.TrimSpace(Version)
	a.Meta.License = License
	for kind, factory := range shells {
		a.Shells[kind] = factory
	}
	a.Main()
}
