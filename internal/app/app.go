// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package app bootstraps the Tiptapri shell.
//
// Run performs the startup sequence in a fixed order:
//   - resolve the build profile (flag, DEBUG variable, compiled default);
//   - select the log targets for the profile and materialise them;
//   - build the menu tree;
//   - register the frontend commands;
//   - run the devtools self-test against the main window (debug only);
//   - attach the menu and dispatcher to the shell, and start the optional
//     websocket command bridge;
//   - run the event loop and the shell's native loop until the user quits.
//
// Any failure before the native loop starts is fatal: Main reports it on
// stderr (and in a message box on Windows) and exits with status 1.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/kamaranl/tiptapri/internal/bridge"
	"github.com/kamaranl/tiptapri/internal/console"
	"github.com/kamaranl/tiptapri/internal/devtools"
	"github.com/kamaranl/tiptapri/internal/dispatch"
	"github.com/kamaranl/tiptapri/internal/logtarget"
	"github.com/kamaranl/tiptapri/internal/loop"
	"github.com/kamaranl/tiptapri/internal/menu"
	"github.com/kamaranl/tiptapri/internal/profile"
	"github.com/kamaranl/tiptapri/internal/shell"
	"github.com/kamaranl/tiptapri/internal/window"
	"github.com/sirupsen/logrus"
)

// Application holds the metadata and the shell backends available to Run.
type Application struct {
	Meta struct {
		License string
		Name    string
		Version string
	}
	// Shells maps each --shell value to the backend constructor.
	Shells map[shell.Kind]shell.Factory
	// LogDir overrides the default log directory when --log-dir is unset.
	LogDir string

	// Stdout and Stderr default to the process streams, resolved when used so
	// that a console attached during startup is picked up.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates an Application called name writing to the process streams.
func New(name string) *Application {
	a := &Application{
		Shells: make(map[shell.Kind]shell.Factory),
	}
	a.Meta.Name = name
	return a
}

// Main runs the application with the process arguments and environment and
// exits on failure.
func (a *Application) Main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := a.Run(ctx, os.Args[1:], LookupEnv(envKeys(a.Meta.Name)...))
	stop()

	switch {
	case err == nil:
		return
	case errors.Is(err, ErrUsage):
		// Run already printed the flag error and usage.
		os.Exit(2)
	default:
		msg := fmt.Sprintf("%s: %v", a.Meta.Name, err)
		fmt.Fprintln(a.stderr(), msg)
		msgbox("Fatal Error", msg)
		os.Exit(1)
	}
}

// Run executes the startup sequence and blocks until the shell exits or ctx
// is cancelled.
func (a *Application) Run(ctx context.Context, args []string, env Env) error {
	cfg, err := ParseFlags(a.Meta.Name, args, env)
	if err != nil {
		fmt.Fprint(a.stderr(), cfg.Usage())
		return err
	}
	if cfg.Help {
		fmt.Fprint(a.stderr(), cfg.Usage())
		return nil
	}
	if cfg.Version {
		fmt.Fprintln(a.stdout(), a.Meta.Version)
		return nil
	}

	// 1. profile
	p, err := profile.Resolve(cfg.Profile, env["DEBUG"])
	if err != nil {
		return err
	}

	// 2. log targets
	con := console.New(p.IsDebug())
	defer func() { _ = con.Detach() }()

	logDir := cfg.LogDir
	if logDir == "" {
		logDir = a.LogDir
	}
	sinks, err := logtarget.New(a.Meta.Name, logtarget.Select(p), logtarget.Options{
		Level:   cfg.LogLevel,
		Dir:     logDir,
		Stdout:  a.Stdout,
		Console: con,
	})
	if err != nil {
		return fmt.Errorf("log targets: %w", err)
	}
	defer func() { _ = sinks.Close() }()

	log := sinks.Logger.WithField("profile", p)
	log.WithField("targets", sinks.Set).Debug("Log targets ready")

	// 3. menu
	variant, err := menu.ParseVariant(cfg.Menu)
	if err != nil {
		return err
	}
	tree, err := menu.Build(variant, a.Meta.Name, runtime.GOOS)
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	log.WithField("menu", variant).Debugf("Menu built with %d items", len(tree.IDs()))

	// 4. commands
	commands, err := Commands(log)
	if err != nil {
		return fmt.Errorf("commands: %w", err)
	}

	backend, windows, err := a.openShell(cfg.Shell, shell.Config{
		Name:    a.Meta.Name,
		Version: a.Meta.Version,
		License: a.Meta.License,
		Profile: p,
		Log:     log,
		Console: sinks.Console,
		LogFile: sinks.File,
	})
	if err != nil {
		return err
	}

	// 5. devtools
	if err := devtools.SelfTest(p, windows, log); err != nil {
		return err
	}

	// 6. attach
	events := loop.New(dispatch.New(log), commands, log)
	if err := backend.Attach(tree, shell.Hooks{Activate: events.Activate, Call: events.Call}); err != nil {
		return fmt.Errorf("attach menu: %w", err)
	}

	if cfg.BridgeAddr != "" {
		srv := bridge.NewServer(events, sinks.Console, log)
		if err := srv.Listen(cfg.BridgeAddr); err != nil {
			return fmt.Errorf("command bridge: %w", err)
		}
		defer func() { _ = srv.Close() }()

		go func() {
			if err := srv.Serve(); err != nil {
				log.WithError(err).Error("Command bridge stopped")
			}
		}()
	}

	// 7. run
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		<-events.Done()
	}()
	go events.Run(ctx)

	log.Info("Application started")
	if err := backend.Run(ctx); err != nil {
		return fmt.Errorf("run loop: %w", err)
	}
	log.Info("Application stopped")
	return nil
}

// stdout returns the writer for version output. It is read at call time
// because the console package may rebind os.Stdout during startup.
func (a *Application) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

// stderr returns the writer for usage and fatal error output.
func (a *Application) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}

// openShell creates the backend named kind and registers its windows.
func (a *Application) openShell(kind string, cfg shell.Config) (shell.Backend, *window.Registry, error) {
	k, err := shell.ParseKind(kind)
	if err != nil {
		return nil, nil, err
	}
	factory, ok := a.Shells[k]
	if !ok {
		return nil, nil, fmt.Errorf("shell %q is not available in this build", k)
	}

	backend, err := factory(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s shell: %w", k, err)
	}

	windows := window.NewRegistry()
	for _, w := range backend.Windows() {
		if err := windows.Add(w); err != nil {
			return nil, nil, err
		}
	}
	return backend, windows, nil
}

// Commands returns the registry of commands exposed to the frontend.
func Commands(log logrus.FieldLogger) (*bridge.Registry, error) {
	r := bridge.NewRegistry()
	if err := r.Register("greet", bridge.StringCommand("name", greeter(log))); err != nil {
		return nil, err
	}
	return r, nil
}

func greeter(log logrus.FieldLogger) func(string) string {
	return func(name string) string {
		log.WithField("name", name).Info("greet")
		return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
	}
}
