// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kamaranl/tiptapri/internal/bridge"
	"github.com/kamaranl/tiptapri/internal/menu"
	"github.com/kamaranl/tiptapri/internal/shell"
	"github.com/kamaranl/tiptapri/internal/window"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow records devtools toggles.
type fakeWindow struct {
	label  string
	mu     sync.Mutex
	open   bool
	opened int
}

func (w *fakeWindow) Label() string { return w.label }

func (w *fakeWindow) OpenDevtools() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = true
	w.opened++
}

func (w *fakeWindow) CloseDevtools() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = false
}

func (w *fakeWindow) IsDevtoolsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// fakeBackend plays a scripted session from Run.
type fakeBackend struct {
	cfg     shell.Config
	windows []window.Window
	tree    menu.Tree
	script  func(hooks shell.Hooks)
	hooks   shell.Hooks
	runErr  error
	attachN int
}

func (b *fakeBackend) Windows() []window.Window { return b.windows }

func (b *fakeBackend) Attach(tree menu.Tree, hooks shell.Hooks) error {
	b.attachN++
	b.tree = tree
	b.hooks = hooks
	return nil
}

func (b *fakeBackend) Run(context.Context) error {
	if b.script != nil {
		b.script(b.hooks)
	}
	return b.runErr
}

func newTestApp(t *testing.T, b *fakeBackend) (*Application, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := New("Tiptapri")
	a.Meta.Version = "0.1.0"
	a.Stdout = &out
	a.Stderr = &out
	a.LogDir = t.TempDir()
	a.Shells[shell.KindWindow] = func(cfg shell.Config) (shell.Backend, error) {
		b.cfg = cfg
		return b, nil
	}
	return a, &out
}

func mainWindow() *fakeWindow { return &fakeWindow{label: window.MainLabel} }

func TestRunDebugSession(t *testing.T) {
	main := mainWindow()
	var greeting string
	b := &fakeBackend{
		windows: []window.Window{main},
		script: func(h shell.Hooks) {
			h.Activate(menu.IDFileOpen)
			h.Activate(menu.IDFileSave)
			h.Activate(menu.IDUndo)

			out, err := h.Call("greet", json.RawMessage(`{"name":"Ada"}`))
			assert.NoError(t, err)
			greeting = out
		},
	}
	a, out := newTestApp(t, b)

	require.NoError(t, a.Run(context.Background(), []string{"--profile", "debug", "--log-level", "debug"}, Env{}))

	assert.Equal(t, "Hello, Ada! You've been greeted from Go!", greeting)
	assert.Equal(t, 1, main.opened, "devtools self-test opens once")
	assert.False(t, main.IsDevtoolsOpen(), "devtools self-test closes the panel")
	assert.Equal(t, 1, b.attachN)
	assert.Equal(t, 2, b.tree.Len())
	assert.NotNil(t, b.cfg.Console, "debug runs mirror logs to the embedded console")
	assert.Empty(t, b.cfg.LogFile)

	logs := out.String()
	assert.Contains(t, logs, `File_Open :: 'fileopen'`)
	assert.Contains(t, logs, `FileSave :: 'filesave'`)
	assert.Contains(t, logs, `not implemented :: 'undo'`)
	assert.Contains(t, logs, "Application stopped")
}

func TestRunReleaseWritesLogDir(t *testing.T) {
	main := mainWindow()
	b := &fakeBackend{windows: []window.Window{main}}
	a, _ := newTestApp(t, b)
	dir := t.TempDir()

	require.NoError(t, a.Run(context.Background(), []string{"--profile", "release", "--log-dir", dir}, Env{}))

	assert.Zero(t, main.opened, "no devtools in release")
	assert.Nil(t, b.cfg.Console)
	assert.Equal(t, filepath.Join(dir, "Tiptapri.log"), b.cfg.LogFile)
	_, err := os.Stat(b.cfg.LogFile)
	assert.NoError(t, err)
}

func TestRunDebugEnvSelectsProfile(t *testing.T) {
	b := &fakeBackend{windows: []window.Window{mainWindow()}}
	a, _ := newTestApp(t, b)

	require.NoError(t, a.Run(context.Background(), nil, Env{"DEBUG": "true"}))
	assert.True(t, b.cfg.Profile.IsDebug())
}

func TestRunMissingMainWindowIsFatalInDebug(t *testing.T) {
	b := &fakeBackend{windows: []window.Window{&fakeWindow{label: "other"}}}
	a, _ := newTestApp(t, b)

	err := a.Run(context.Background(), []string{"--profile", "debug"}, Env{})
	assert.ErrorIs(t, err, window.ErrNoMainWindow)
	assert.Zero(t, b.attachN, "startup stops before attaching the menu")
}

func TestRunStartupErrors(t *testing.T) {
	cases := map[string][]string{
		"profile":   {"--profile", "staging"},
		"menu":      {"--profile", "debug", "--menu", "ribbon"},
		"shell":     {"--profile", "debug", "--shell", "terminal"},
		"log level": {"--profile", "debug", "--log-level", "loud"},
		"tray":      {"--profile", "debug", "--shell", "tray"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			b := &fakeBackend{windows: []window.Window{mainWindow()}}
			a, _ := newTestApp(t, b)
			assert.Error(t, a.Run(context.Background(), args, Env{}))
			assert.Zero(t, b.attachN)
		})
	}
}

func TestRunPropagatesBackendFailure(t *testing.T) {
	boom := errors.New("display lost")
	b := &fakeBackend{windows: []window.Window{mainWindow()}, runErr: boom}
	a, _ := newTestApp(t, b)

	assert.ErrorIs(t, a.Run(context.Background(), []string{"--profile", "debug"}, Env{}), boom)
}

func TestRunBridgeListenFailure(t *testing.T) {
	b := &fakeBackend{windows: []window.Window{mainWindow()}}
	a, _ := newTestApp(t, b)

	err := a.Run(context.Background(), []string{"--profile", "debug", "--bridge-addr", "not-an-address"}, Env{})
	assert.ErrorContains(t, err, "command bridge")
}

func TestRunVersionAndUsage(t *testing.T) {
	b := &fakeBackend{}
	a, out := newTestApp(t, b)

	require.NoError(t, a.Run(context.Background(), []string{"--version"}, Env{}))
	assert.Equal(t, "0.1.0\n", out.String())

	out.Reset()
	err := a.Run(context.Background(), []string{"--nope"}, Env{})
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), "--menu")

	out.Reset()
	err = a.Run(context.Background(), []string{"stray"}, Env{})
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), "unknown arg: stray")
}

func TestNewLeavesStreamsToProcess(t *testing.T) {
	a := New("Tiptapri")
	assert.Nil(t, a.Stdout, "logtarget must read os.Stdout after the console is attached")
	assert.Equal(t, os.Stdout, a.stdout())
	assert.Equal(t, os.Stderr, a.stderr())
}

func TestCommandsGreet(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	r, err := Commands(log)
	require.NoError(t, err)
	assert.Equal(t, []string{"greet"}, r.Names())

	out, err := r.Invoke("greet", json.RawMessage(`{"name":"Grace"}`))
	require.NoError(t, err)
	assert.Equal(t, "Hello, Grace! You've been greeted from Go!", out)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Grace", hook.LastEntry().Data["name"])

	_, err = r.Invoke("greet", json.RawMessage(`{"name":42}`))
	var be *bridge.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, bridge.CodeInvalidArgs, be.Code)
}
