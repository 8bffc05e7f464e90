package store

import (
	"context"
	"sync"

	"github.com/shalu-233/nopcommerce/internal/models"
)

type attrKey struct {
	entityType string
	entityID   string
	key        string
}

// MemoryStore is an in-memory AttributeStore and ShipmentStore used in tests
// and when the worker runs without a database.
type MemoryStore struct {
	mu         sync.RWMutex
	shipments  map[string]models.Shipment
	attributes map[attrKey]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		shipments:  make(map[string]models.Shipment),
		attributes: make(map[attrKey]string),
	}
}

// PutShipment seeds a shipment record.
func (s *MemoryStore) PutShipment(shipment models.Shipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipments[shipment.ID] = shipment
}

func (s *MemoryStore) GetShipmentByID(ctx context.Context, id string) (models.Shipment, error) {
	// Check if the context is canceled or timed out
	select {
	case <-ctx.Done():
		return models.Shipment{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	shipment, ok := s.shipments[id]
	if !ok {
		return models.Shipment{}, ErrShipmentNotFound
	}
	return shipment, nil
}

func (s *MemoryStore) SaveAttribute(ctx context.Context, entityType, entityID, key, value string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attributes[attrKey{entityType, entityID, key}] = value
	return nil
}

// GetAttribute reads an attribute back; test helper.
func (s *MemoryStore) GetAttribute(entityType, entityID, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.attributes[attrKey{entityType, entityID, key}]
	return v, ok
}
