// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package console binds the standard streams of a GUI-subsystem binary to a
// console so the stdout log sink has somewhere to write. Release builds on
// Windows are linked without a console; attaching to the parent's console makes
// "tiptapri > out.log" and plain terminal launches show log output. On other
// platforms the process always owns its standard streams and every operation is
// a no-op.
package console

import (
	"errors"
	"os"
)

var (
	// ErrBoundGuard is returned when Attach is called on a bound Console.
	ErrBoundGuard = errors.New("console is already bound")

	// ErrNotBound is returned when Detach is called before Attach.
	ErrNotBound = errors.New("console is not bound")
)

// Console tracks whether the process standard streams were rebound and holds
// the originals so Detach can restore them.
type Console struct {
	stdin, stdout, stderr *os.File
	infile, outfile       *os.File
	bound, skip           bool
}

// New preserves the current standard streams. When skip is true (debug
// builds, which are linked with a console) every operation is a no-op.
func New(skip bool) *Console {
	return &Console{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		skip:   skip,
	}
}

// Bound reports whether the standard streams currently point at an attached console.
func (c *Console) Bound() bool { return c.bound }

// Detach restores the preserved standard streams and releases the console.
func (c *Console) Detach() error {
	if c.skip {
		return nil
	}
	if !c.bound {
		return ErrNotBound
	}

	os.Stdin, os.Stdout, os.Stderr = c.stdin, c.stdout, c.stderr

	_ = c.infile.Close()
	_ = c.outfile.Close()
	c.infile, c.outfile = nil, nil
	c.bound = false

	return free()
}
