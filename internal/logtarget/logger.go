// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package logtarget

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamaranl/tiptapri/internal/console"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFormatter embeds logrus.TextFormatter and swaps double quotes in the
// message for single quotes so quoted identifiers stay readable in the
// key=value output.
type LogFormatter struct{ logrus.TextFormatter }

// Format implements logrus.Formatter.
func (f *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Message = strings.ReplaceAll(entry.Message, `"`, `'`)
	b, err := f.TextFormatter.Format(entry)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Options tune how a Set is materialised.
type Options struct {
	// Level is a logrus level name. Empty means "info".
	Level string
	// Dir is the log directory for the LogDir sink. Empty means DefaultDir(name).
	Dir string
	// Stdout overrides the standard output writer (tests).
	Stdout io.Writer
	// Console attaches the parent console before writing to stdout. Nil skips it.
	Console *console.Console
	// ConsoleCapacity bounds the embedded-view console history.
	ConsoleCapacity int
}

// Sinks is the materialised Set: the logger plus handles on the sinks that
// other components read from or must close.
type Sinks struct {
	Set     Set
	Logger  *logrus.Logger
	Console *ConsoleHook // nil unless Set has Webview
	File    string       // empty unless Set has LogDir

	rotator *lumberjack.Logger
}

// DefaultDir is the per-user log directory for the application name.
func DefaultDir(name string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, name, "logs")
}

// New builds the logger for set. It is called once at startup; an unusable log
// directory is reported as an error because release builds have no other
// persistent record.
func New(name string, set Set, opts Options) (*Sinks, error) {
	log := logrus.New()
	log.SetFormatter(&LogFormatter{logrus.TextFormatter{DisableColors: true, FullTimestamp: true}})

	level := logrus.InfoLevel
	if opts.Level != "" {
		lvl, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = lvl
	}
	log.SetLevel(level)

	s := &Sinks{Set: set, Logger: log}
	writers := []io.Writer{}
	var stdout io.Writer

	if set.Has(Stdout) {
		if opts.Console != nil {
			// No parent console (launched from a file manager) is not fatal.
			_ = opts.Console.Attach()
		}
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		stdout = bestEffort{out}
	}

	if set.Has(LogDir) {
		dir := opts.Dir
		if dir == "" {
			dir = DefaultDir(name)
		}
		file, err := probe(dir, name)
		if err != nil {
			return nil, err
		}
		s.File = file
		s.rotator = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 4,
			MaxAge:     28,
		}
		writers = append(writers, s.rotator)
	}

	// The file goes first: io.MultiWriter stops at the first failing writer.
	if stdout != nil {
		writers = append(writers, stdout)
	}

	if set.Has(Webview) {
		s.Console = NewConsoleHook(opts.ConsoleCapacity)
		log.AddHook(s.Console)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(io.MultiWriter(writers...))
	}

	return s, nil
}

// bestEffort wraps the stdout sink of a GUI-subsystem binary, whose standard
// handles are invalid when no parent console could be attached. Write errors
// are dropped so the remaining sinks still receive the record.
type bestEffort struct{ w io.Writer }

// Write forwards p to the wrapped writer and always reports success.
func (b bestEffort) Write(p []byte) (int, error) {
	_, _ = b.w.Write(p)
	return len(p), nil
}

// Close flushes and closes the file sink, if any.
func (s *Sinks) Close() error {
	if s == nil || s.rotator == nil {
		return nil
	}
	return s.rotator.Close()
}

// probe creates dir and checks that a file can be created in it.
func probe(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("invalid log directory: %w", err)
	}

	file := filepath.Join(dir, name+".log")
	tmp := file + ".TMP"

	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("invalid log directory: %w", err)
	}
	if err := errors.Join(f.Close(), os.Remove(tmp)); err != nil {
		return "", fmt.Errorf("failed to probe %q: %w", tmp, err)
	}

	return file, nil
}
