// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package bridge is the registry of backend commands callable from the
// frontend view, plus a websocket transport for web frontends.
//
// Commands receive their arguments as a JSON object (the shape the frontend's
// invoke call sends) and return a string. Failures are reported to the caller
// as *Error values carrying a JSON-RPC style code; nothing a caller sends can
// crash the process.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Error codes reported to frontend callers.
const (
	CodeParseError     = -32700
	CodeUnknownCommand = -32601
	CodeInvalidArgs    = -32602
	CodeInternal       = -32603
)

// Error is a command failure reported to the caller.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("bridge error %d: %s", e.Code, e.Message)
}

// ErrDuplicateCommand is returned by Register for a name already in use.
var ErrDuplicateCommand = errors.New("command already registered")

// Command is a frontend-invokable function.
type Command interface {
	Invoke(args json.RawMessage) (string, error)
}

// CommandFunc adapts a plain function to Command.
type CommandFunc func(args json.RawMessage) (string, error)

// Invoke implements Command.
func (f CommandFunc) Invoke(args json.RawMessage) (string, error) { return f(args) }

// StringCommand adapts fn, which takes a single string parameter named param,
// to Command. The arguments must be a JSON object holding param as a string.
func StringCommand(param string, fn func(string) string) Command {
	return CommandFunc(func(args json.RawMessage) (string, error) {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(args, &fields); err != nil || fields == nil {
			return "", &Error{Code: CodeInvalidArgs, Message: "arguments must be a JSON object"}
		}
		raw, ok := fields[param]
		if !ok {
			return "", &Error{Code: CodeInvalidArgs, Message: fmt.Sprintf("missing required argument %q", param)}
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return "", &Error{Code: CodeInvalidArgs, Message: fmt.Sprintf("argument %q must be a string", param)}
		}
		return fn(value), nil
	})
}

// Registry maps command names to commands. Register is used during startup;
// Invoke and Names are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register associates name with cmd.
func (r *Registry) Register(name string, cmd Command) error {
	if name == "" {
		return errors.New("command name is empty")
	}
	if cmd == nil {
		return fmt.Errorf("command %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.commands[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, name)
	}
	r.commands[name] = cmd
	return nil
}

// Names lists the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for n := range r.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the command registered as name with args. Errors are always
// *Error values.
func (r *Registry) Invoke(name string, args json.RawMessage) (result string, err error) {
	r.mu.RLock()
	cmd, ok := r.commands[name]
	r.mu.RUnlock()
	if !ok {
		return "", &Error{Code: CodeUnknownCommand, Message: fmt.Sprintf("unknown command %q", name)}
	}

	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	defer func() {
		if rec := recover(); rec != nil {
			result, err = "", &Error{Code: CodeInternal, Message: fmt.Sprintf("command %q panicked: %v", name, rec)}
		}
	}()

	result, err = cmd.Invoke(args)
	if err != nil {
		var berr *Error
		if !errors.As(err, &berr) {
			err = &Error{Code: CodeInternal, Message: err.Error()}
		}
	}
	return result, err
}
