// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package app

import "golang.org/x/sys/windows"

// msgbox shows a modal error box. Release builds have no console, so this is
// the only place a startup failure is visible.
func msgbox(title, text string) {
	_, _ = windows.MessageBox(
		0,
		windows.StringToUTF16Ptr(text),
		windows.StringToUTF16Ptr(title),
		windows.MB_APPLMODAL|windows.MB_OK|windows.MB_ICONERROR,
	)
}
