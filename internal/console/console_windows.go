// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

//go:build windows

package console

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

const attachParentProcess = ^uint32(0) // ATTACH_PARENT_PROCESS

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole = kernel32.NewProc("AttachConsole")
	procFreeConsole   = kernel32.NewProc("FreeConsole")
)

// Attach binds the process to the console of its parent (the terminal that
// launched it). It fails quietly when launched from Explorer, where no parent
// console exists; callers treat that as "stdout goes nowhere".
func (c *Console) Attach() error {
	if c.skip {
		return nil
	}
	if c.bound {
		return ErrBoundGuard
	}

	if r, _, err := procAttachConsole.Call(uintptr(attachParentProcess)); r == 0 {
		return fmt.Errorf("AttachConsole: %w", err)
	}

	infile, err := os.OpenFile("CONIN$", os.O_RDWR, 0)
	if err != nil {
		_ = free()
		return fmt.Errorf("failed to open %q: %w", "CONIN$", err)
	}
	outfile, err := os.OpenFile("CONOUT$", os.O_RDWR, 0)
	if err != nil {
		_ = infile.Close()
		_ = free()
		return fmt.Errorf("failed to open %q: %w", "CONOUT$", err)
	}

	if err = errors.Join(
		bind("stdin", windows.STD_INPUT_HANDLE, infile),
		bind("stdout", windows.STD_OUTPUT_HANDLE, outfile),
		bind("stderr", windows.STD_ERROR_HANDLE, outfile),
	); err != nil {
		_ = infile.Close()
		_ = outfile.Close()
		_ = free()
		return err
	}

	c.infile, c.outfile = infile, outfile
	os.Stdin, os.Stdout, os.Stderr = infile, outfile, outfile
	c.bound = true

	fmt.Print("\r\033[K") // clear the prompt line the shell already printed
	return nil
}

func bind(name string, std uint32, file *os.File) error {
	if err := windows.SetStdHandle(std, windows.Handle(file.Fd())); err != nil {
		return fmt.Errorf("failed to bind %s to %q: %w", name, file.Name(), err)
	}
	return nil
}

func free() error {
	if r, _, err := procFreeConsole.Call(); r == 0 {
		return fmt.Errorf("FreeConsole: %w", err)
	}
	return nil
}
