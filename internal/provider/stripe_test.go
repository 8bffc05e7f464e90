package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shalu-233/nopcommerce/internal/models"
	"github.com/shalu-233/nopcommerce/internal/settings"
)

func TestIsConnected(t *testing.T) {
	m := NewStripeManager()

	cases := []struct {
		name string
		cfg  settings.Settings
		want bool
	}{
		{"no credentials", settings.Settings{}, false},
		{"key only", settings.Settings{SecretKey: "sk_test"}, false},
		{"key and merchant id", settings.Settings{SecretKey: "sk_test", MerchantID: "m1"}, true},
		{"key and onboarding", settings.Settings{SecretKey: "sk_test", OnboardingCompleted: true}, true},
		{"merchant id without key", settings.Settings{MerchantID: "m1"}, false},
	}
	for _, tc := range cases {
		if got := m.IsConnected(tc.cfg); got != tc.want {
			t.Errorf("%s: IsConnected = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsActive(t *testing.T) {
	m := NewStripeManager()

	if m.IsActive(settings.Settings{PaymentMethodActive: true}) {
		t.Error("active without a secret key should be false")
	}
	if !m.IsActive(settings.Settings{PaymentMethodActive: true, SecretKey: "sk_test"}) {
		t.Error("enabled method with key should be active")
	}
}

func TestSetTracking_PostsToProvider(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	m := NewStripeManagerWithEndpoint(srv.URL, srv.Client())
	cfg := settings.Settings{SecretKey: "sk_test", MerchantID: "m1"}
	shipment := &models.Shipment{
		ID:             "s1",
		OrderID:        "o1",
		TrackingNumber: "1Z999",
		Carrier:        models.Carrier{Name: "UPS"},
	}

	if err := m.SetTracking(context.Background(), cfg, shipment); err != nil {
		t.Fatalf("SetTracking failed: %v", err)
	}
	if gotAuth != "Bearer sk_test" {
		t.Errorf("wrong auth header: %q", gotAuth)
	}
	if gotBody["tracking_number"] != "1Z999" || gotBody["carrier"] != "UPS" {
		t.Errorf("wrong payload: %v", gotBody)
	}
}

func TestSetTracking_ProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewStripeManagerWithEndpoint(srv.URL, srv.Client())
	cfg := settings.Settings{SecretKey: "sk_test", MerchantID: "m1"}

	err := m.SetTracking(context.Background(), cfg, &models.Shipment{TrackingNumber: "x"})
	if !errors.Is(err, ErrProviderDown) {
		t.Fatalf("expected ErrProviderDown, got %v", err)
	}
}

func TestSetTracking_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	m := NewStripeManagerWithEndpoint(srv.URL, srv.Client())
	cfg := settings.Settings{SecretKey: "sk_test", MerchantID: "m1"}

	err := m.SetTracking(context.Background(), cfg, &models.Shipment{TrackingNumber: "x"})
	if !errors.Is(err, ErrTrackingRejected) {
		t.Fatalf("expected ErrTrackingRejected, got %v", err)
	}
}

func TestSetTracking_NotConnected(t *testing.T) {
	m := NewStripeManager()
	err := m.SetTracking(context.Background(), settings.Settings{}, &models.Shipment{})
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}
