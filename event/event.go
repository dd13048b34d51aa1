// Package event provides a zero-payload publish/subscribe channel.
//
// Delivery is synchronous and ordered: Invoke calls every handler that was
// subscribed at the moment of the call, in subscription order, on the calling
// goroutine. There is no buffering and no replay.
package event

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Handler is called on every Invoke.
type Handler func()

// Subscription identifies a subscribed handler.
type Subscription struct {
	ID string
	ev *Event
}

// Cancel removes the handler from the event it was subscribed to.
// It reports whether the handler was still subscribed.
func (s Subscription) Cancel() bool {
	if s.ev == nil {
		return false
	}
	return s.ev.Unsubscribe(s)
}

type entry struct {
	id string
	fn Handler
}

// Event is safe for concurrent use. The zero value is ready to use.
type Event struct {
	mu       sync.Mutex
	handlers []entry
}

func New() *Event {
	return &Event{}
}

// Subscribe registers fn. A nil fn is ignored and yields a zero Subscription.
func (e *Event) Subscribe(fn Handler) Subscription {
	if fn == nil {
		return Subscription{}
	}
	id := uuid.NewString()

	e.mu.Lock()
	e.handlers = append(e.handlers, entry{id: id, fn: fn})
	e.mu.Unlock()

	return Subscription{ID: id, ev: e}
}

func (e *Event) Unsubscribe(s Subscription) bool {
	if s.ID == "" {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	i := slices.IndexFunc(e.handlers, func(h entry) bool { return h.id == s.ID })
	if i < 0 {
		return false
	}
	e.handlers = slices.Delete(e.handlers, i, i+1)
	return true
}

// Len returns the number of current subscribers.
func (e *Event) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}

// Invoke notifies the current subscribers. Handlers subscribed or
// unsubscribed while Invoke runs take effect on the next call.
func (e *Event) Invoke() {
	e.mu.Lock()
	snapshot := slices.Clone(e.handlers)
	e.mu.Unlock()

	for _, h := range snapshot {
		h.fn()
	}
}
