// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

// Package loop serialises menu activations and frontend command invocations.
//
// Shell backends deliver events from whatever goroutine their toolkit uses;
// the Loop hands them to the handlers one at a time, in arrival order, on its
// own goroutine. Handlers are synchronous and expected to return promptly. A
// panicking handler is recovered and logged, and the loop carries on with the
// next event.
package loop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrStopped is returned by Call and Post once the loop has exited.
var ErrStopped = errors.New("event loop stopped")

// DefaultQueueSize is the event buffer used by New.
const DefaultQueueSize = 64

// MenuHandler handles menu activations.
type MenuHandler interface {
	Dispatch(id string)
}

// CommandHandler handles frontend command invocations.
type CommandHandler interface {
	Invoke(name string, args json.RawMessage) (string, error)
}

// Event is a unit of work for the loop.
type Event interface {
	handle(l *Loop)
}

// MenuEvent is the activation of the menu item ID.
type MenuEvent struct {
	ID string
}

// handle passes the activated identifier to the loop's menu handler.
func (e MenuEvent) handle(l *Loop) { l.menu.Dispatch(e.ID) }

// Reply carries a command result back to the caller.
type Reply struct {
	Result string
	Err    error
}

// CommandEvent is a frontend invocation of Name. The result is delivered on
// Reply when it is non-nil; Reply should be buffered.
type CommandEvent struct {
	Name  string
	Args  json.RawMessage
	Reply chan<- Reply
}

// handle invokes the named command and, when the caller asked for one, sends
// the result back on Reply. Reply is expected to be buffered so the loop never
// blocks on a caller that gave up waiting.
func (e CommandEvent) handle(l *Loop) {
	res, err := l.commands.Invoke(e.Name, e.Args)
	if e.Reply != nil {
		e.Reply <- Reply{Result: res, Err: err}
	}
}

// Loop drains events on a single goroutine.
type Loop struct {
	menu     MenuHandler
	commands CommandHandler
	log      logrus.FieldLogger

	events chan Event
	done   chan struct{}
	once   sync.Once

	mu      sync.RWMutex
	stopped bool
	handled uint64
}

// New creates a Loop delivering to menu and commands.
func New(menu MenuHandler, commands CommandHandler, log logrus.FieldLogger) *Loop {
	return &Loop{
		menu:     menu,
		commands: commands,
		log:      log.WithField("component", "loop"),
		events:   make(chan Event, DefaultQueueSize),
		done:     make(chan struct{}),
	}
}

// Run processes events until ctx is cancelled. Events still queued when ctx
// ends are dropped; pending Calls receive ErrStopped.
func (l *Loop) Run(ctx context.Context) {
	defer l.stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-l.events:
			l.handle(ev)
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Handled is the number of events taken off the queue so far.
func (l *Loop) Handled() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handled
}

// Post queues ev. It blocks while the queue is full and fails once the loop
// has stopped.
func (l *Loop) Post(ev Event) error {
	l.mu.RLock()
	stopped := l.stopped
	l.mu.RUnlock()
	if stopped {
		return ErrStopped
	}

	select {
	case l.events <- ev:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Activate posts a MenuEvent for id. It is the callback shell backends wire
// to their menu items.
func (l *Loop) Activate(id string) {
	if err := l.Post(MenuEvent{ID: id}); err != nil {
		l.log.WithField("menu_id", id).WithError(err).Warn("Menu event dropped")
	}
}

// Call posts a command invocation and waits for its result.
func (l *Loop) Call(name string, args json.RawMessage) (string, error) {
	reply := make(chan Reply, 1)
	if err := l.Post(CommandEvent{Name: name, Args: args, Reply: reply}); err != nil {
		return "", err
	}

	select {
	case r := <-reply:
		return r.Result, r.Err
	case <-l.done:
		// the event may have been handled just before the loop stopped
		select {
		case r := <-reply:
			return r.Result, r.Err
		default:
			return "", ErrStopped
		}
	}
}

// handle counts ev and runs it on the loop goroutine. A panic raised by the
// handler is recovered and logged; for a CommandEvent the caller is answered
// with an error so Call does not wait forever.
//
// Parameters:
//
//	ev - The event taken off the queue.
func (l *Loop) handle(ev Event) {
	l.mu.Lock()
	l.handled++
	l.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			l.log.WithField("event", fmt.Sprintf("%T", ev)).Errorf("Event handler panicked: %v", r)
			if ce, ok := ev.(CommandEvent); ok && ce.Reply != nil {
				select {
				case ce.Reply <- Reply{Err: fmt.Errorf("command %q panicked: %v", ce.Name, r)}:
				default:
				}
			}
		}
	}()

	ev.handle(l)
}

// stop marks the loop stopped and closes Done. It is safe to call more than
// once; only the first call has an effect.
func (l *Loop) stop() {
	l.once.Do(func() {
		l.mu.Lock()
		l.stopped = true
		l.mu.Unlock()
		close(l.done)
	})
}
