package events

import (
	"context"
	"sync"
)

// HandlerFunc reacts to one event. A non-nil error aborts dispatch of the
// current event and is returned to the emitter; the bus itself does no
// logging or retries.
type HandlerFunc func(ctx context.Context, ev Event) error

// Bus is the in-process dispatcher the platform raises events on.
// Handlers for a kind run synchronously, in subscription order, on the
// emitter's goroutine. Subscription is expected at startup; Emit may be
// called from any goroutine afterwards.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind][]HandlerFunc
}

// NewBus creates an empty dispatcher.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]HandlerFunc)}
}

// Subscribe registers a handler for one event kind.
func (b *Bus) Subscribe(kind Kind, h HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[kind] = append(b.handlers[kind], h)
}

// Emit delivers the event to every handler registered for its kind.
// The first handler error stops delivery and is returned unchanged.
// Emitting an event nobody subscribed to is a no-op.
func (b *Bus) Emit(ctx context.Context, ev Event) error {
	b.mu.RLock()
	hs := b.handlers[ev.Kind()]
	b.mu.RUnlock()

	for _, h := range hs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := h(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}
