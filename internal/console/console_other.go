// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

//go:build !windows

package console

// Attach is a no-op: the process already owns its standard streams.
func (c *Console) Attach() error {
	if c.skip {
		return nil
	}
	if c.bound {
		return ErrBoundGuard
	}
	c.bound = true
	return nil
}

func free() error { return nil }
