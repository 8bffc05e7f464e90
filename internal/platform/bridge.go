// Package platform bridges the platform's Kafka event stream onto the
// in-process dispatcher. Entity events (customer deletion, shipment
// lifecycle) arrive over the wire; page-model events stay in-process.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/shalu-233/nopcommerce/internal/events"
	"github.com/shalu-233/nopcommerce/internal/models"
)

// envelope is the platform's wire format for domain events.
type envelope struct {
	Event          string          `json:"event"`
	SalesChannelID string          `json:"sales_channel_id"`
	Payload        json.RawMessage `json:"payload"`
}

// Bridge decodes platform messages and emits typed events on the bus.
type Bridge struct {
	bus *events.Bus
}

// NewBridge creates a bridge emitting onto the given dispatcher.
func NewBridge(bus *events.Bus) *Bridge {
	return &Bridge{bus: bus}
}

// Handle is the kafka consumer callback. Unknown event names are skipped so
// the offset commits; malformed JSON is returned as an error and redelivered.
func (b *Bridge) Handle(ctx context.Context, key []byte, value []byte) error {
	var env envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return fmt.Errorf("failed to decode platform event: %v", err)
	}

	switch env.Event {
	case "customer.deleted":
		var payload struct {
			CustomerID string `json:"customer_id"`
		}
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode customer.deleted payload: %v", err)
		}
		return b.bus.Emit(ctx, events.CustomerDeleted{
			SalesChannelID: env.SalesChannelID,
			CustomerID:     payload.CustomerID,
		})

	case "shipment.created":
		var shipment models.Shipment
		if err := json.Unmarshal(env.Payload, &shipment); err != nil {
			return fmt.Errorf("failed to decode shipment.created payload: %v", err)
		}
		return b.bus.Emit(ctx, events.ShipmentCreated{
			SalesChannelID: env.SalesChannelID,
			Shipment:       &shipment,
		})

	case "shipment.tracking_set":
		var payload struct {
			Shipment       models.Shipment `json:"shipment"`
			TrackingNumber string          `json:"tracking_number"`
		}
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode shipment.tracking_set payload: %v", err)
		}
		return b.bus.Emit(ctx, events.TrackingNumberSet{
			SalesChannelID: env.SalesChannelID,
			Shipment:       &payload.Shipment,
			TrackingNumber: payload.TrackingNumber,
		})

	default:
		// not for this plugin; commit and move on
		log.Printf("bridge: skipping event %q", env.Event)
		return nil
	}
}
