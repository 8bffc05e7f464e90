// Package provider mediates all calls to the external payment provider.
package provider

import (
	"context"

	"github.com/shalu-233/nopcommerce/internal/models"
	"github.com/shalu-233/nopcommerce/internal/settings"
)

// PaymentToken is a reusable payment instrument a customer stored in the
// provider vault.
type PaymentToken struct {
	ID    string // provider-side token id
	Type  string // e.g. "card"
	Label string // display label, e.g. "visa •••• 4242"
}

// ServiceManager is the gateway the event consumer delegates provider side
// effects to. IsActive and IsConnected are pure checks derived from the
// channel settings; the remaining calls hit the provider API.
type ServiceManager interface {
	// IsActive reports whether the plugin payment method is usable on the channel.
	IsActive(cfg settings.Settings) bool

	// IsConnected reports whether the channel has working provider credentials.
	IsConnected(cfg settings.Settings) bool

	// GetPaymentTokens lists the vaulted payment tokens of one customer.
	GetPaymentTokens(ctx context.Context, cfg settings.Settings, customerID string) ([]PaymentToken, error)

	// DeletePaymentTokens removes every vaulted token of one customer.
	DeletePaymentTokens(ctx context.Context, cfg settings.Settings, customerID string) error

	// SetTracking pushes a shipment's tracking number to the provider's
	// carrier-tracking API.
	SetTracking(ctx context.Context, cfg settings.Settings, shipment *models.Shipment) error
}
