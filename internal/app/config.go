// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kamaranl/tiptapri/internal/menu"
	"github.com/kamaranl/tiptapri/internal/profile"
	"github.com/kamaranl/tiptapri/internal/shell"
	"github.com/spf13/pflag"
)

// ErrUsage marks command-line errors; the process exits with status 2.
var ErrUsage = errors.New("usage")

// Config holds the parsed command line.
type Config struct {
	Profile    string
	Menu       string
	Shell      string
	LogLevel   string
	LogDir     string
	BridgeAddr string
	Version    bool
	Help       bool

	usage string
}

// Usage is the flag help text.
func (c Config) Usage() string { return c.usage }

// Env holds the environment variables the application reads.
type Env map[string]string

// LookupEnv collects the variables named by keys from the process
// environment. Unset variables are absent from the map.
func LookupEnv(keys ...string) Env {
	env := make(Env, len(keys))
	for _, key := range keys {
		if value, exists := os.LookupEnv(key); exists {
			env[key] = value
		}
	}
	return env
}

// envKeys lists the variables read by an application called name.
func envKeys(name string) []string {
	return []string{"DEBUG", argsVar(name)}
}

// argsVar names the variable that injects arguments in debug runs, e.g.
// TIPTAPRI_CLI_ARGS="--shell;tray".
func argsVar(name string) string {
	return strings.ToUpper(name) + "_CLI_ARGS"
}

// ParseFlags parses args (without the program name). In debug runs a
// semicolon separated argument list in the <NAME>_CLI_ARGS variable replaces
// args.
func ParseFlags(name string, args []string, env Env) (Config, error) {
	if injected := env[argsVar(name)]; injected != "" && debugRun(env) {
		args = strings.Split(injected, ";")
	}

	var cfg Config
	fs := pflag.NewFlagSet(strings.ToLower(name), pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringVar(&cfg.Profile, "profile", "", "Build profile override: debug|release")
	fs.StringVar(&cfg.Menu, "menu", string(menu.VariantCustom), "Menu bar: custom|default")
	fs.StringVar(&cfg.Shell, "shell", string(shell.KindWindow), "Shell: window|tray")
	fs.StringVar(&cfg.LogLevel, "log-level", "INFO", "Log level: DEBUG|INFO|WARN|ERROR|FATAL|PANIC")
	fs.StringVar(&cfg.LogDir, "log-dir", "", "Directory for log files in release runs")
	fs.StringVar(&cfg.BridgeAddr, "bridge-addr", "", "Serve the command bridge over websocket on this address")
	fs.BoolVar(&cfg.Version, "version", false, "Prints version")

	var usage bytes.Buffer
	fs.SetOutput(&usage)
	fs.Usage = func() {
		fmt.Fprintf(&usage, "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
	}

	err := fs.Parse(args)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		cfg.Help = true
	case err != nil:
		cfg.usage = usage.String()
		return cfg, fmt.Errorf("%w: %v", ErrUsage, err)
	case fs.NArg() > 0:
		fmt.Fprintf(&usage, "unknown arg: %s\n", fs.Arg(0))
		fs.Usage()
		cfg.usage = usage.String()
		return cfg, fmt.Errorf("%w: unknown arg: %s", ErrUsage, fs.Arg(0))
	}
	cfg.usage = usage.String()
	return cfg, nil
}

// debugRun reports whether argument injection is allowed.
func debugRun(env Env) bool {
	if v, ok := env["DEBUG"]; ok {
		p, err := profile.Resolve("", v)
		return err == nil && p.IsDebug()
	}
	return profile.Default().IsDebug()
}
