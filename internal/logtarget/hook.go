// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package logtarget

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultConsoleCapacity is the number of records the embedded-view console keeps.
const DefaultConsoleCapacity = 500

// Record is one log entry as shown in the embedded-view console.
type Record struct {
	Time    time.Time     `json:"time"`
	Level   string        `json:"level"`
	Message string        `json:"message"`
	Fields  logrus.Fields `json:"fields,omitempty"`
}

// Line renders r the way the diagnostics panel displays it.
func (r Record) Line() string {
	var b strings.Builder
	b.WriteString(r.Time.Format("15:04:05.000"))
	b.WriteString(" ")
	b.WriteString(strings.ToUpper(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	return b.String()
}

// ConsoleHook is the embedded-view console sink. It keeps a bounded history of
// records and fans new records out to subscribers (the diagnostics panel and
// connected bridge clients). Slow subscribers drop records rather than stall
// the logger.
type ConsoleHook struct {
	mu       sync.RWMutex
	capacity int
	records  []Record
	subs     map[int]chan Record
	nextSub  int
}

// NewConsoleHook creates a ConsoleHook keeping up to capacity records.
func NewConsoleHook(capacity int) *ConsoleHook {
	if capacity <= 0 {
		capacity = DefaultConsoleCapacity
	}
	return &ConsoleHook{
		capacity: capacity,
		subs:     make(map[int]chan Record),
	}
}

// Levels implements logrus.Hook.
func (h *ConsoleHook) Levels() []logrus.Level { return logrus.AllLevels }

// Fire implements logrus.Hook.
func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	rec := Record{
		Time:    entry.Time,
		Level:   entry.Level.String(),
		Message: entry.Message,
	}
	if len(entry.Data) > 0 {
		rec.Fields = make(logrus.Fields, len(entry.Data))
		for k, v := range entry.Data {
			if err, ok := v.(error); ok {
				v = err.Error()
			}
			rec.Fields[k] = v
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.records) == h.capacity {
		copy(h.records, h.records[1:])
		h.records = h.records[:len(h.records)-1]
	}
	h.records = append(h.records, rec)

	for _, ch := range h.subs {
		select {
		case ch <- rec:
		default:
		}
	}
	return nil
}

// Records returns a copy of the retained history, oldest first.
func (h *ConsoleHook) Records() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Subscribe returns a channel receiving every record fired after the call and a
// function that ends the subscription and closes the channel.
func (h *ConsoleHook) Subscribe() (<-chan Record, func()) {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	ch := make(chan Record, 64)
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			close(ch)
			h.mu.Unlock()
		})
	}
}
