package events

import "github.com/shalu-233/nopcommerce/internal/models"

// Kind identifies one of the event types the plugin reacts to.
type Kind string

const (
	KindCustomerDeleted       Kind = "customer.deleted"
	KindPageModelPrepared     Kind = "page.model.prepared"
	KindPageModelReceived     Kind = "page.model.received"
	KindShipmentCreated       Kind = "shipment.created"
	KindTrackingNumberSet     Kind = "shipment.tracking_set"
	KindSystemWarningsCollect Kind = "system.warnings.collect"
)

// Event is the tagged union of all platform events this module consumes.
// Every concrete event names its kind explicitly so the dispatcher routes
// without reflection.
type Event interface {
	Kind() Kind
}

// CustomerDeleted fires after a customer account has been removed.
type CustomerDeleted struct {
	SalesChannelID string
	CustomerID     string
}

func (CustomerDeleted) Kind() Kind { return KindCustomerDeleted }

// PageModelPrepared fires after the platform has built a page model and
// before it is rendered. The model is mutable and shared with the caller.
type PageModelPrepared struct {
	SalesChannelID string
	Model          models.PageModel
}

func (PageModelPrepared) Kind() Kind { return KindPageModelPrepared }

// PageModelReceived fires when a submitted admin form has been bound to its
// page model. Form holds the raw submitted fields.
type PageModelReceived struct {
	SalesChannelID string
	Model          models.PageModel
	Form           map[string]string
}

func (PageModelReceived) Kind() Kind { return KindPageModelReceived }

// ShipmentCreated fires once a shipment row has been persisted.
// Shipment may be nil when the platform raised the event without a record.
type ShipmentCreated struct {
	SalesChannelID string
	Shipment       *models.Shipment
}

func (ShipmentCreated) Kind() Kind { return KindShipmentCreated }

// TrackingNumberSet fires when an operator assigns a tracking number to an
// existing shipment.
type TrackingNumberSet struct {
	SalesChannelID string
	Shipment       *models.Shipment
	TrackingNumber string
}

func (TrackingNumberSet) Kind() Kind { return KindTrackingNumberSet }

// WarningLevel classifies a system warning record.
type WarningLevel string

const (
	WarningLevelWarning WarningLevel = "warning"
	WarningLevelError   WarningLevel = "error"
)

// Warning is one record in the admin system-warnings report.
type Warning struct {
	Level   WarningLevel `json:"level"`
	Text    string       `json:"text"`
	Escaped bool         `json:"escaped"` // true when Text is pre-encoded HTML
}

// SystemWarningsCollect fires while the platform assembles its system
// warnings report. Handlers append to the caller-owned slice.
type SystemWarningsCollect struct {
	SalesChannelID string
	Warnings       *[]Warning
}

func (SystemWarningsCollect) Kind() Kind { return KindSystemWarningsCollect }
