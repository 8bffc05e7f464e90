package settings

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_GetSettings(t *testing.T) {
	s := NewMemoryStore()
	s.Put(Settings{SalesChannelID: "sc1", MerchantID: "m1"})

	cfg, err := s.GetSettings(context.Background(), "sc1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if cfg.MerchantID != "m1" {
		t.Errorf("wrong settings: %+v", cfg)
	}
}

func TestMemoryStore_UnknownChannelWithoutFallback(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.GetSettings(context.Background(), "nope"); !errors.Is(err, ErrSettingsNotFound) {
		t.Fatalf("expected ErrSettingsNotFound, got %v", err)
	}
}

func TestMemoryStore_FallbackAnswersUnknownChannels(t *testing.T) {
	s := NewMemoryStore()
	s.SetFallback(Settings{SecretKey: "sk_test", TrackingEnabled: true})

	cfg, err := s.GetSettings(context.Background(), "sc9")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if cfg.SalesChannelID != "sc9" || !cfg.TrackingEnabled {
		t.Errorf("fallback not applied: %+v", cfg)
	}
}
