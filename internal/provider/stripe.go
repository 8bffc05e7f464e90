package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/shalu-233/nopcommerce/internal/models"
	"github.com/shalu-233/nopcommerce/internal/settings"
)

const defaultTrackingAPIBase = "https://api.paygate.example.com/v1"

// StripeManager implements ServiceManager against Stripe for the vault
// operations and the provider's REST tracking endpoint for shipments.
// Credentials are channel-scoped, so the Stripe client is built per call
// from the settings rather than held globally.
type StripeManager struct {
	httpClient      *http.Client
	trackingAPIBase string
}

// NewStripeManager creates a manager with the production tracking endpoint.
func NewStripeManager() *StripeManager {
	return &StripeManager{
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		trackingAPIBase: defaultTrackingAPIBase,
	}
}

// NewStripeManagerWithEndpoint allows overriding the tracking endpoint and
// HTTP client, used in tests.
func NewStripeManagerWithEndpoint(base string, hc *http.Client) *StripeManager {
	return &StripeManager{httpClient: hc, trackingAPIBase: base}
}

// IsActive reports whether the payment method can be offered on the channel:
// the method is enabled and credentials exist to charge through.
func (m *StripeManager) IsActive(cfg settings.Settings) bool {
	return cfg.PaymentMethodActive && cfg.SecretKey != ""
}

// IsConnected is a pure settings check: a secret key plus either a merchant
// id or a completed onboarding counts as connected.
func (m *StripeManager) IsConnected(cfg settings.Settings) bool {
	if cfg.SecretKey == "" {
		return false
	}
	return cfg.MerchantID != "" || cfg.OnboardingCompleted
}

// apiFor builds a Stripe client bound to the channel's secret key.
func (m *StripeManager) apiFor(cfg settings.Settings) (*client.API, error) {
	if cfg.SecretKey == "" {
		return nil, ErrNotConnected
	}
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	return sc, nil
}

// GetPaymentTokens lists the customer's saved card payment methods.
func (m *StripeManager) GetPaymentTokens(ctx context.Context, cfg settings.Settings, customerID string) ([]PaymentToken, error) {
	sc, err := m.apiFor(cfg)
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentMethodListParams{
		Customer: stripe.String(customerID),
		Type:     stripe.String(string(stripe.PaymentMethodTypeCard)),
	}
	params.Context = ctx

	var tokens []PaymentToken
	iter := sc.PaymentMethods.List(params)
	for iter.Next() {
		pm := iter.PaymentMethod()
		token := PaymentToken{ID: pm.ID, Type: string(pm.Type)}
		if pm.Card != nil {
			token.Label = fmt.Sprintf("%s •••• %s", pm.Card.Brand, pm.Card.Last4)
		}
		tokens = append(tokens, token)
	}
	if err := iter.Err(); err != nil {
		return nil, m.mapStripeError(err)
	}
	return tokens, nil
}

// DeletePaymentTokens detaches every saved payment method of the customer.
func (m *StripeManager) DeletePaymentTokens(ctx context.Context, cfg settings.Settings, customerID string) error {
	sc, err := m.apiFor(cfg)
	if err != nil {
		return err
	}

	tokens, err := m.GetPaymentTokens(ctx, cfg, customerID)
	if err != nil {
		return err
	}
	for _, token := range tokens {
		detach := &stripe.PaymentMethodDetachParams{}
		detach.Context = ctx
		if _, err := sc.PaymentMethods.Detach(token.ID, detach); err != nil {
			return m.mapStripeError(err)
		}
	}
	return nil
}

// SetTracking posts the tracking number to the provider's tracking API.
func (m *StripeManager) SetTracking(ctx context.Context, cfg settings.Settings, shipment *models.Shipment) error {
	if !m.IsConnected(cfg) {
		return ErrNotConnected
	}

	trackReq := map[string]interface{}{
		"merchant_id":     cfg.MerchantID,
		"order_id":        shipment.OrderID,
		"tracking_number": shipment.TrackingNumber,
		"carrier":         shipment.Carrier.Name,
	}
	reqBody, err := json.Marshal(trackReq)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", m.trackingAPIBase+"/shipments/tracking", bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create tracking request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call tracking API: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode >= http.StatusInternalServerError:
		return ErrProviderDown
	default:
		return fmt.Errorf("%w: status %s", ErrTrackingRejected, resp.Status)
	}
}

// mapStripeError converts stripe-go errors into domain errors so the library
// does not leak into the handlers.
func (m *StripeManager) mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
			return ErrProviderDown
		}
		return fmt.Errorf("provider error (%s): %s", stripeErr.Code, stripeErr.Msg)
	}
	return fmt.Errorf("provider gateway error: %w", err)
}
