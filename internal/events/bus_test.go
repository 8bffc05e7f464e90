package events

import (
	"context"
	"errors"
	"testing"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	bus.Subscribe(KindCustomerDeleted, func(ctx context.Context, ev Event) error {
		order = append(order, 1)
		return nil
	})
	bus.Subscribe(KindCustomerDeleted, func(ctx context.Context, ev Event) error {
		order = append(order, 2)
		return nil
	})

	if err := bus.Emit(context.Background(), CustomerDeleted{CustomerID: "42"}); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected handlers in order [1 2], got %v", order)
	}
}

func TestBus_ErrorStopsDispatch(t *testing.T) {
	bus := NewBus()
	boom := errors.New("boom")

	bus.Subscribe(KindShipmentCreated, func(ctx context.Context, ev Event) error {
		return boom
	})
	secondRan := false
	bus.Subscribe(KindShipmentCreated, func(ctx context.Context, ev Event) error {
		secondRan = true
		return nil
	})

	err := bus.Emit(context.Background(), ShipmentCreated{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected handler error to propagate, got %v", err)
	}
	if secondRan {
		t.Error("second handler ran after first returned an error")
	}
}

func TestBus_NoSubscribersIsNoOp(t *testing.T) {
	bus := NewBus()
	if err := bus.Emit(context.Background(), TrackingNumberSet{}); err != nil {
		t.Fatalf("expected nil for unsubscribed kind, got %v", err)
	}
}

func TestBus_CancelledContextAbortsDelivery(t *testing.T) {
	bus := NewBus()
	ran := false
	bus.Subscribe(KindCustomerDeleted, func(ctx context.Context, ev Event) error {
		ran = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := bus.Emit(ctx, CustomerDeleted{}); err == nil {
		t.Fatal("expected context error")
	}
	if ran {
		t.Error("handler ran on cancelled context")
	}
}
