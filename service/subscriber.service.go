// Package service contains the plugin's event consumer: the handlers that
// react to platform events and delegate their side effects to the payment
// provider, the attribute store and the request bag.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/shalu-233/nopcommerce/internal/events"
	"github.com/shalu-233/nopcommerce/internal/locale"
	"github.com/shalu-233/nopcommerce/internal/models"
	"github.com/shalu-233/nopcommerce/internal/provider"
	"github.com/shalu-233/nopcommerce/internal/request"
	"github.com/shalu-233/nopcommerce/internal/settings"
	"github.com/shalu-233/nopcommerce/pkg/kafka"
	"github.com/shalu-233/nopcommerce/store"
)

const (
	// PaymentMethodSystemName is the plugin's reserved payment method name.
	PaymentMethodSystemName = "Payments.PayGate"

	// CarrierAttributeKey is the generic attribute key the carrier name is
	// persisted under on a shipment.
	CarrierAttributeKey = "paygate_carrier"

	// carrierFormField is the admin shipment form field carrying the carrier.
	carrierFormField = "paygate_carrier"

	// carrierBagKey is the request bag key bridging form submission and
	// shipment creation within one request.
	carrierBagKey = "paygate_carrier"

	// navigation ids
	navigationItemID   = "paygate-payment-tokens"
	ordersNavigationID = "orders"

	// entity type used for shipment attributes
	shipmentEntityType = "shipment"
)

// Subscriber reacts to the six platform event kinds. Each handler runs its
// guard clauses and performs at most one delegated side effect; failures from
// collaborators propagate unchanged to the dispatcher.
type Subscriber struct {
	provider   provider.ServiceManager
	settings   settings.Store
	attributes store.AttributeStore
	shipments  store.ShipmentStore
	catalog    *locale.Catalog
	producer   kafka.Publisher // optional outbound confirmations
}

// NewSubscriber wires the consumer with its collaborators. producer may be
// nil when no outbound topic is configured.
func NewSubscriber(
	pm provider.ServiceManager,
	cfgStore settings.Store,
	attributes store.AttributeStore,
	shipments store.ShipmentStore,
	catalog *locale.Catalog,
	producer kafka.Publisher,
) *Subscriber {
	return &Subscriber{
		provider:   pm,
		settings:   cfgStore,
		attributes: attributes,
		shipments:  shipments,
		catalog:    catalog,
		producer:   producer,
	}
}

// Register subscribes every handler on the dispatcher.
func (s *Subscriber) Register(bus *events.Bus) {
	bus.Subscribe(events.KindCustomerDeleted, s.OnCustomerDeleted)
	bus.Subscribe(events.KindPageModelPrepared, s.OnPageModelPrepared)
	bus.Subscribe(events.KindPageModelReceived, s.OnPageModelReceived)
	bus.Subscribe(events.KindShipmentCreated, s.OnShipmentCreated)
	bus.Subscribe(events.KindTrackingNumberSet, s.OnTrackingNumberSet)
	bus.Subscribe(events.KindSystemWarningsCollect, s.OnSystemWarningsCollect)
}

// OnCustomerDeleted removes the customer's vaulted payment tokens at the
// provider. No guards: token cleanup follows every account deletion.
func (s *Subscriber) OnCustomerDeleted(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.CustomerDeleted)
	if !ok {
		return nil
	}
	cfg, err := s.settings.GetSettings(ctx, ev.SalesChannelID)
	if err != nil {
		return err
	}
	if err := s.provider.DeletePaymentTokens(ctx, cfg, ev.CustomerID); err != nil {
		return err
	}
	if s.producer != nil {
		// fire-and-forget confirmation for downstream audit consumers
		go s.producer.Publish(context.Background(), ev.CustomerID, map[string]interface{}{
			"event":       "customer.tokens_deleted",
			"customer_id": ev.CustomerID,
		})
	}
	return nil
}

// OnPageModelPrepared mutates checkout and account page models in place.
func (s *Subscriber) OnPageModelPrepared(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.PageModelPrepared)
	if !ok {
		return nil
	}
	switch m := ev.Model.(type) {
	case *models.PaymentMethodListModel:
		s.filterOwnPaymentMethod(m)
		return nil
	case *models.AccountNavigationModel:
		return s.injectAccountNavigation(ctx, ev.SalesChannelID, m)
	default:
		return nil
	}
}

// filterOwnPaymentMethod removes the plugin's own entry from the checkout
// list. The method is offered through the provider's wallet flow instead of
// the generic selector, so the duplicate entry is hidden.
func (s *Subscriber) filterOwnPaymentMethod(m *models.PaymentMethodListModel) {
	kept := m.Methods[:0]
	for _, method := range m.Methods {
		if method.SystemName != PaymentMethodSystemName {
			kept = append(kept, method)
		}
	}
	m.Methods = kept
}

// injectAccountNavigation inserts the stored-payment-methods entry right
// after the orders entry when the customer can actually manage tokens.
func (s *Subscriber) injectAccountNavigation(ctx context.Context, salesChannelID string, m *models.AccountNavigationModel) error {
	cfg, err := s.settings.GetSettings(ctx, salesChannelID)
	if err != nil {
		return err
	}
	if !s.provider.IsActive(cfg) {
		return nil
	}
	if !cfg.VaultEnabled {
		tokens, err := s.provider.GetPaymentTokens(ctx, cfg, m.CustomerID)
		if err != nil {
			return err
		}
		if len(tokens) == 0 {
			return nil
		}
	}

	pos := 0
	for i, item := range m.Items {
		if item.ID == ordersNavigationID {
			pos = i + 1
			break
		}
	}
	if pos == 0 {
		// Orders entry absent. Falling back to the front of the list.
		log.Printf("account navigation: %q entry missing, inserting %q first", ordersNavigationID, navigationItemID)
	}

	entry := models.NavigationItem{
		ID:    navigationItemID,
		Label: s.catalog.Get(locale.KeyAccountNavigation),
		Path:  "/account/payment-tokens",
	}
	m.Items = append(m.Items, models.NavigationItem{})
	copy(m.Items[pos+1:], m.Items[pos:])
	m.Items[pos] = entry
	return nil
}

// OnPageModelReceived captures the carrier from a submitted shipment form.
// Existing shipments get the attribute immediately; for shipments still being
// created the value is stashed in the request bag and picked up by
// OnShipmentCreated later in the same request.
func (s *Subscriber) OnPageModelReceived(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.PageModelReceived)
	if !ok {
		return nil
	}
	m, ok := ev.Model.(*models.ShipmentFormModel)
	if !ok {
		return nil
	}
	cfg, err := s.settings.GetSettings(ctx, ev.SalesChannelID)
	if err != nil {
		return err
	}
	if !s.provider.IsConnected(cfg) || !cfg.TrackingEnabled {
		return nil
	}
	carrier, ok := ev.Form[carrierFormField]
	if !ok {
		return nil
	}

	if m.ShipmentID != "" {
		shipment, err := s.shipments.GetShipmentByID(ctx, m.ShipmentID)
		if err == nil {
			return s.attributes.SaveAttribute(ctx, shipmentEntityType, shipment.ID, CarrierAttributeKey, carrier)
		}
		if !errors.Is(err, store.ErrShipmentNotFound) {
			return err
		}
		// id no longer resolves; treat like a not-yet-created shipment
	}

	if carrier == "" {
		return nil
	}
	if bag, ok := request.BagFrom(ctx); ok {
		bag.Stash(carrierBagKey, carrier)
	}
	return nil
}

// OnShipmentCreated persists a carrier stashed earlier in the same request
// onto the freshly created shipment.
func (s *Subscriber) OnShipmentCreated(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.ShipmentCreated)
	if !ok {
		return nil
	}
	cfg, err := s.settings.GetSettings(ctx, ev.SalesChannelID)
	if err != nil {
		return err
	}
	if !s.provider.IsConnected(cfg) || !cfg.TrackingEnabled {
		return nil
	}
	if ev.Shipment == nil {
		return nil
	}
	bag, ok := request.BagFrom(ctx)
	if !ok {
		return nil
	}
	carrier, ok := bag.Take(carrierBagKey)
	if !ok {
		return nil
	}
	return s.attributes.SaveAttribute(ctx, shipmentEntityType, ev.Shipment.ID, CarrierAttributeKey, carrier)
}

// OnTrackingNumberSet pushes the assigned tracking number to the provider's
// carrier-tracking API.
func (s *Subscriber) OnTrackingNumberSet(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.TrackingNumberSet)
	if !ok {
		return nil
	}
	cfg, err := s.settings.GetSettings(ctx, ev.SalesChannelID)
	if err != nil {
		return err
	}
	if !s.provider.IsConnected(cfg) || !cfg.TrackingEnabled {
		return nil
	}
	if ev.Shipment == nil {
		return nil
	}
	shipment := *ev.Shipment
	if ev.TrackingNumber != "" {
		shipment.TrackingNumber = ev.TrackingNumber
	}
	return s.provider.SetTracking(ctx, cfg, &shipment)
}

// OnSystemWarningsCollect appends a merchant-id warning to the admin report.
// The wording depends on how the credentials were configured.
func (s *Subscriber) OnSystemWarningsCollect(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.SystemWarningsCollect)
	if !ok || ev.Warnings == nil {
		return nil
	}
	cfg, err := s.settings.GetSettings(ctx, ev.SalesChannelID)
	if err != nil {
		return err
	}
	if !s.provider.IsConnected(cfg) || !cfg.MerchantIDRequired {
		return nil
	}

	key := locale.KeyWarningOnboardingCreds
	if cfg.ManualCredentials {
		key = locale.KeyWarningManualCreds
	}
	*ev.Warnings = append(*ev.Warnings, events.Warning{
		Level:   events.WarningLevelWarning,
		Text:    s.catalog.Get(key),
		Escaped: false,
	})
	return nil
}
