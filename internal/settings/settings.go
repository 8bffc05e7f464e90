package settings

import (
	"context"
	"errors"
	"sync"
)

// ErrSettingsNotFound is returned when no settings row exists for a sales channel.
var ErrSettingsNotFound = errors.New("plugin settings not found for sales channel")

// Settings holds the plugin configuration for one sales channel.
// Connection state is never stored; it is derived from these fields.
type Settings struct {
	SalesChannelID      string
	SecretKey           string // provider API secret key
	MerchantID          string // provider merchant account id
	OnboardingCompleted bool   // credentials granted through the provider onboarding flow
	ManualCredentials   bool   // credentials entered by hand instead of onboarding
	PaymentMethodActive bool   // plugin payment method enabled for the channel
	VaultEnabled        bool   // customers may store reusable payment tokens
	TrackingEnabled     bool   // push shipment tracking numbers to the provider
	MerchantIDRequired  bool   // provider account type demands a merchant id
}

// Store resolves the per-sales-channel settings.
type Store interface {
	GetSettings(ctx context.Context, salesChannelID string) (Settings, error)
}

// MemoryStore keeps settings in a map. Used in tests and when the worker
// runs without a database; a default entry answers unknown channels.
type MemoryStore struct {
	mu       sync.RWMutex
	byID     map[string]Settings
	fallback *Settings
}

// NewMemoryStore creates an empty in-memory settings store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]Settings)}
}

// Put stores settings for one sales channel.
func (s *MemoryStore) Put(cfg Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[cfg.SalesChannelID] = cfg
}

// SetFallback installs settings returned for channels without an entry.
func (s *MemoryStore) SetFallback(cfg Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = &cfg
}

func (s *MemoryStore) GetSettings(ctx context.Context, salesChannelID string) (Settings, error) {
	select {
	case <-ctx.Done():
		return Settings{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cfg, ok := s.byID[salesChannelID]; ok {
		return cfg, nil
	}
	if s.fallback != nil {
		cfg := *s.fallback
		cfg.SalesChannelID = salesChannelID
		return cfg, nil
	}
	return Settings{}, ErrSettingsNotFound
}
