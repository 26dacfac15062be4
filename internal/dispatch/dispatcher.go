// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package dispatch routes menu activations to their handlers.
//
// The dispatcher has two states, Idle and Handling. Dispatch moves it to
// Handling for the duration of one synchronous handler and back to Idle when
// the handler returns or panics. Identifiers without a registered handler go
// to the default arm, which only logs.
package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// State is the dispatcher's state.
type State int32

const (
	Idle State = iota
	Handling
)

// String returns the lower-case state name used in log fields.
func (s State) String() string {
	if s == Handling {
		return "handling"
	}
	return "idle"
}

// Handler runs synchronously on the event loop and must return promptly.
type Handler func(log logrus.FieldLogger, id string)

// Dispatcher routes menu item identifiers to handlers. Dispatch is called
// from the single event loop goroutine.
type Dispatcher struct {
	log   logrus.FieldLogger
	state atomic.Int32

	mu       sync.RWMutex
	handlers map[Action]Handler
	fallback Handler
}

// New creates a Dispatcher with the placeholder handlers for File Open and
// File Save installed. Every other identifier reaches the default arm.
func New(log logrus.FieldLogger) *Dispatcher {
	d := &Dispatcher{
		log:      log.WithField("component", "menu"),
		handlers: make(map[Action]Handler),
		fallback: notImplemented,
	}
	d.Handle(ActionFileOpen, func(log logrus.FieldLogger, id string) {
		log.Infof("File_Open :: %q", id)
	})
	d.Handle(ActionFileSave, func(log logrus.FieldLogger, id string) {
		log.Infof("FileSave :: %q", id)
	})
	return d
}

// notImplemented is the default arm. It logs the identifier at warn level and
// returns, so unknown or placeholder items never fail.
//
// Parameters:
//
//	log - The dispatcher logger, already carrying the menu_id field.
//	id  - The identifier of the activated item.
func notImplemented(log logrus.FieldLogger, id string) {
	log.Warnf("not implemented :: %q", id)
}

// Handle installs h for a, replacing any previous handler. Handlers are
// installed during startup, before the event loop runs.
func (d *Dispatcher) Handle(a Action, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if a == ActionUnknown {
		d.fallback = h
		return
	}
	d.handlers[a] = h
}

// Handled reports whether a has a dedicated handler.
func (d *Dispatcher) Handled(a Action) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.handlers[a]
	return ok
}

// State returns the current state.
func (d *Dispatcher) State() State { return State(d.state.Load()) }

// Dispatch runs the handler for id. It never fails: a panicking handler is
// logged and swallowed so the event loop keeps running.
func (d *Dispatcher) Dispatch(id string) {
	d.state.Store(int32(Handling))
	defer d.state.Store(int32(Idle))

	log := d.log.WithField("menu_id", id)
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("menu handler panicked: %v", r)
		}
	}()

	d.lookup(id)(log, id)
}

// lookup returns the handler installed for id, or the default arm when id is
// not a known action or its action has no dedicated handler.
func (d *Dispatcher) lookup(id string) Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if a, ok := ParseAction(id); ok {
		if h, ok := d.handlers[a]; ok {
			return h
		}
	}
	return d.fallback
}
