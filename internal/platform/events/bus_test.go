package events

import (
	"context"
	"testing"
	"time"

	"github.com/fanconnect/portal/internal/platform/logging"
)

func TestBus_DispatchOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus(logging.NewNop())

	var order []string
	bus.SubscribeAll(func(ctx context.Context, event Event) {
		order = append(order, "all:"+event.Name)
	})
	bus.Subscribe(TeamAdded, func(ctx context.Context, event Event) {
		order = append(order, "named:"+event.Name)
	})
	bus.Subscribe(TeamDeleted, func(ctx context.Context, event Event) {
		order = append(order, "other:"+event.Name)
	})

	bus.Publish(context.Background(), TeamAdded, nil)

	want := []string{"all:" + TeamAdded, "named:" + TeamAdded}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	bus := NewBus(logging.NewNop())

	delivered := false
	bus.Subscribe(MatchCompleted, func(ctx context.Context, event Event) {
		panic("handler blew up")
	})
	bus.Subscribe(MatchCompleted, func(ctx context.Context, event Event) {
		delivered = true
	})

	bus.Publish(context.Background(), MatchCompleted, nil)
	if !delivered {
		t.Fatalf("expected later handler to run after a panic")
	}
}

func TestBus_EventCarriesPayloadAndTimestamp(t *testing.T) {
	t.Parallel()

	bus := NewBus(logging.NewNop())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bus.now = func() time.Time { return fixed }

	var got Event
	bus.Subscribe(BookingCreated, func(ctx context.Context, event Event) {
		got = event
	})
	bus.Publish(context.Background(), BookingCreated, 42)

	if got.Name != BookingCreated || got.Payload != 42 {
		t.Fatalf("unexpected event %+v", got)
	}
	if !got.OccurredAt.Equal(fixed) {
		t.Fatalf("expected fixed timestamp, got %v", got.OccurredAt)
	}
}
