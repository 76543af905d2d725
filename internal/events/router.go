package events

import (
	"log/slog"
	"sync"
)

// DefaultBufferSize is the default channel buffer size for subscribers.
const DefaultBufferSize = 256

// Router fans events out from the engine to its consumers. Producers emit,
// consumers subscribe; delivery is non-blocking so a stalled consumer can
// never stall the trial loop.
type Router struct {
	subscribers []chan Event
	bufferSize  int
	mu          sync.RWMutex
	closed      bool
}

// NewRouter creates a router with the given default subscriber buffer size.
// Sizes <= 0 fall back to DefaultBufferSize.
func NewRouter(bufferSize int) *Router {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Router{bufferSize: bufferSize}
}

// Emit publishes an event to all subscribers. If a subscriber's channel is
// full the event is dropped for that subscriber and a warning is logged.
// Emit is safe to call concurrently and after Close (no-op).
func (r *Router) Emit(event Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return
	}

	for _, ch := range r.subscribers {
		select {
		case ch <- event:
		default:
			slog.Warn("event dropped: subscriber channel full", "event_type", event.Type())
		}
	}
}

// Subscribe returns a channel receiving all emitted events, using the
// router's default buffer size. The channel is closed when the router is.
func (r *Router) Subscribe() <-chan Event {
	return r.SubscribeBuffered(r.bufferSize)
}

// SubscribeBuffered returns a subscription channel with an explicit buffer
// size, for consumers that must not drop events.
func (r *Router) SubscribeBuffered(size int) <-chan Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, size)
	r.subscribers = append(r.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel. Unknown
// channels are ignored.
func (r *Router) Unsubscribe(ch <-chan Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, sub := range r.subscribers {
		if sub == ch {
			r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// Close closes all subscriber channels and marks the router closed.
// Safe to call multiple times.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.closed = true
	for _, ch := range r.subscribers {
		close(ch)
	}
	r.subscribers = nil
}
