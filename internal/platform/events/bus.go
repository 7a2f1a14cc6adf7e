package events

import (
	"context"
	"sync"
	"time"

	"github.com/fanconnect/portal/internal/platform/logging"
)

// Event names published by the store after each mutating operation.
const (
	UserRegistered    = "user.registered"
	UserLoggedIn      = "user.logged_in"
	TeamAdded         = "team.added"
	TeamDeleted       = "team.deleted"
	PlayerAdded       = "player.added"
	PlayerDeleted     = "player.deleted"
	MatchScheduled    = "match.scheduled"
	MatchCompleted    = "match.completed"
	BookingCreated    = "booking.created"
	StandingsComputed = "standings.computed"
)

// Event carries the affected record to subscribers.
type Event struct {
	Name       string    `json:"name"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Handler receives events synchronously on the publisher's goroutine.
type Handler func(ctx context.Context, event Event)

// Bus is a synchronous publish/subscribe dispatcher. Delivery is
// at-most-once and best-effort: a panicking handler is logged and skipped,
// remaining handlers still run, and nothing is retried or persisted.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	all      []Handler
	logger   *logging.Logger
	now      func() time.Time
}

func NewBus(logger *logging.Logger) *Bus {
	if logger == nil {
		logger = logging.Default()
	}
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
		now:      time.Now,
	}
}

// Subscribe registers a handler for one event name.
func (b *Bus) Subscribe(name string, handler Handler) {
	if name == "" || handler == nil {
		return
	}
	b.mu.Lock()
	b.handlers[name] = append(b.handlers[name], handler)
	b.mu.Unlock()
}

// SubscribeAll registers a handler for every event name.
func (b *Bus) SubscribeAll(handler Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	b.all = append(b.all, handler)
	b.mu.Unlock()
}

// Publish dispatches the event to all-event handlers first, then to the
// name-specific handlers, in subscription order.
func (b *Bus) Publish(ctx context.Context, name string, payload any) {
	if b == nil || name == "" {
		return
	}

	event := Event{Name: name, Payload: payload, OccurredAt: b.now()}

	b.mu.RLock()
	targets := make([]Handler, 0, len(b.all)+len(b.handlers[name]))
	targets = append(targets, b.all...)
	targets = append(targets, b.handlers[name]...)
	b.mu.RUnlock()

	for _, handler := range targets {
		b.dispatch(ctx, handler, event)
	}
}

func (b *Bus) dispatch(ctx context.Context, handler Handler, event Event) {
	defer func() {
		if rec := recover(); rec != nil {
			b.logger.ErrorContext(ctx, "event handler panicked", "event", event.Name, "panic", rec)
		}
	}()
	handler(ctx, event)
}
