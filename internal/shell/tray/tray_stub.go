// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

//go:build !((cgo && (darwin || linux)) || windows)

package tray

import (
	"errors"

	"github.com/kamaranl/tiptapri/internal/shell"
)

// ErrUnsupported is returned by New when the binary was built without tray
// support.
var ErrUnsupported = errors.New("tray shell requires cgo on this platform")

// New always fails on this build.
func New(shell.Config) (shell.Backend, error) {
	return nil, ErrUnsupported
}
