// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

//go:build !windows

package app

func msgbox(string, string) {}
