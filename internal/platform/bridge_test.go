package platform

import (
	"context"
	"testing"

	"github.com/shalu-233/nopcommerce/internal/events"
)

func TestBridge_CustomerDeleted(t *testing.T) {
	bus := events.NewBus()
	var got events.CustomerDeleted
	bus.Subscribe(events.KindCustomerDeleted, func(ctx context.Context, ev events.Event) error {
		got = ev.(events.CustomerDeleted)
		return nil
	})

	b := NewBridge(bus)
	msg := []byte(`{"event":"customer.deleted","sales_channel_id":"sc1","payload":{"customer_id":"c9"}}`)
	if err := b.Handle(context.Background(), nil, msg); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if got.CustomerID != "c9" || got.SalesChannelID != "sc1" {
		t.Fatalf("wrong event: %+v", got)
	}
}

func TestBridge_TrackingSet(t *testing.T) {
	bus := events.NewBus()
	var got events.TrackingNumberSet
	bus.Subscribe(events.KindTrackingNumberSet, func(ctx context.Context, ev events.Event) error {
		got = ev.(events.TrackingNumberSet)
		return nil
	})

	b := NewBridge(bus)
	msg := []byte(`{"event":"shipment.tracking_set","sales_channel_id":"sc1","payload":{"shipment":{"id":"s1","carrier":{"name":"UPS"}},"tracking_number":"1Z"}}`)
	if err := b.Handle(context.Background(), nil, msg); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if got.Shipment == nil || got.Shipment.ID != "s1" || got.TrackingNumber != "1Z" {
		t.Fatalf("wrong event: %+v", got)
	}
}

func TestBridge_UnknownEventSkipped(t *testing.T) {
	bus := events.NewBus()
	b := NewBridge(bus)
	msg := []byte(`{"event":"order.placed","payload":{}}`)
	if err := b.Handle(context.Background(), nil, msg); err != nil {
		t.Fatalf("unknown events must not error: %v", err)
	}
}

func TestBridge_MalformedJSONRedelivered(t *testing.T) {
	bus := events.NewBus()
	b := NewBridge(bus)
	if err := b.Handle(context.Background(), nil, []byte("{not json")); err == nil {
		t.Fatal("expected decode error so the message is redelivered")
	}
}
