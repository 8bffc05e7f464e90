package models

// Shipment is the platform's shipment entity as it appears in event payloads.
// Only the fields the plugin reads are mapped; everything else stays with the
// platform's own shipment service.
type Shipment struct {
	ID             string  `json:"id"`              // platform shipment id
	OrderID        string  `json:"order_id"`        // owning order
	Status         string  `json:"status"`          // e.g. pre_transit, delivered
	TrackingNumber string  `json:"tracking_number"` // carrier tracking number, empty until assigned
	Carrier        Carrier `json:"carrier"`
}

// Carrier holds the carrier details attached to a shipment.
type Carrier struct {
	Name        string `json:"name"`         // e.g. FedEx
	TrackingURL string `json:"tracking_url"` // carrier-hosted tracking page
}
