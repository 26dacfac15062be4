// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package tray

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"testing"
	"time"

	"github.com/kamaranl/tiptapri/internal/logtarget"
	"github.com/kamaranl/tiptapri/internal/menu"
	"github.com/kamaranl/tiptapri/internal/window"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCustomTree(t *testing.T) {
	tree, err := menu.Custom()
	require.NoError(t, err)

	entries := plan(tree, "linux")

	var tops []string
	for i, e := range entries {
		if e.parent < 0 {
			tops = append(tops, e.title)
			continue
		}
		assert.Less(t, e.parent, i, "parent must precede child")
		assert.Equal(t, menu.KindSubmenu, entries[e.parent].kind)
	}
	assert.Equal(t, []string{"File", "Edit"}, tops)

	byID := map[string]entry{}
	for _, e := range entries {
		if e.id != "" {
			byID[e.id] = e
		}
	}
	assert.Equal(t, "Ctrl+Shift+S", byID[menu.IDFileSaveAs].tooltip)
	assert.Equal(t, "Project", entries[byID[menu.IDProjectNew].parent].title)
	assert.False(t, byID[menu.IDFileOpen].disabled)
}

func TestPlanSeparatorsAndNatives(t *testing.T) {
	tree, err := menu.Custom()
	require.NoError(t, err)

	for _, e := range plan(tree, "windows") {
		switch e.kind {
		case menu.KindSeparator:
			assert.Equal(t, separatorTitle, e.title)
			assert.True(t, e.disabled)
		case menu.KindNative:
			assert.Equal(t, e.native != menu.Quit, e.disabled, e.title)
		}
	}
}

func TestPlanResolvesPrimaryModifier(t *testing.T) {
	tree, err := menu.PlatformDefault("Tiptapri", "darwin")
	require.NoError(t, err)

	for _, e := range plan(tree, "darwin") {
		if e.kind == menu.KindNative && e.native == menu.Quit {
			assert.Equal(t, "Super+Q", e.tooltip)
			return
		}
	}
	t.Fatal("quit entry missing")
}

func TestBindings(t *testing.T) {
	tree, err := menu.Custom()
	require.NoError(t, err)

	got := map[string]string{}
	for _, b := range bindings(tree, "linux") {
		got[b.id] = b.accel.String()
	}
	assert.Equal(t, map[string]string{
		menu.IDProjectNew:  "Alt+C",
		menu.IDProjectOpen: "Alt+P",
		menu.IDFileOpen:    "Ctrl+N",
		menu.IDFileSave:    "Ctrl+S",
		menu.IDFileSaveAs:  "Ctrl+Shift+S",
		menu.IDUndo:        "Ctrl+Z",
		menu.IDRedo:        "Ctrl+Y",
	}, got)
}

func TestIcon(t *testing.T) {
	data, err := icon("linux", false)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, iconSize, img.Bounds().Dx())

	ico, err := icon("windows", true)
	require.NoError(t, err)
	require.Greater(t, len(ico), 22)
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(ico[2:4]), "icon type")
	assert.Equal(t, uint32(22), binary.LittleEndian.Uint32(ico[18:22]), "image offset")
	_, err = png.Decode(bytes.NewReader(ico[22:]))
	assert.NoError(t, err)
}

func TestTrayWindowDevtools(t *testing.T) {
	hook := logtarget.NewConsoleHook(10)
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	log.AddHook(hook)

	shown := make(chan string, 8)
	var marks []bool
	w := newTrayWindow(hook, func(line string) { shown <- line })
	w.setMark(func(open bool) { marks = append(marks, open) })

	assert.Equal(t, window.MainLabel, w.Label())
	w.OpenDevtools()
	w.OpenDevtools()
	assert.True(t, w.IsDevtoolsOpen())

	log.Info("hello tray")
	select {
	case line := <-shown:
		assert.Contains(t, line, "hello tray")
	case <-time.After(time.Second):
		t.Fatal("record not shown")
	}

	w.toggleDevtools()
	assert.False(t, w.IsDevtoolsOpen())
	assert.Equal(t, []bool{false, true, false}, marks)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
}
