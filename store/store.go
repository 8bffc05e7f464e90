package store

import (
	"context"
	"errors"

	"github.com/shalu-233/nopcommerce/internal/models"
)

// ErrShipmentNotFound is returned when a shipment id does not resolve to a record.
var ErrShipmentNotFound = errors.New("shipment not found")

// AttributeStore persists generic key/value attributes on platform entities.
// Saving an existing key overwrites its value.
type AttributeStore interface {
	SaveAttribute(ctx context.Context, entityType, entityID, key, value string) error
}

// ShipmentStore defines the read access the plugin needs on shipments.
type ShipmentStore interface {
	// GetShipmentByID resolves a persisted shipment or returns ErrShipmentNotFound.
	GetShipmentByID(ctx context.Context, id string) (models.Shipment, error)
}
