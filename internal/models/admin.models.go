package models

// PageModel is the admin/storefront page model carried by the model lifecycle
// events. It is a sealed union: exactly one of the concrete types below, so
// handlers switch on the type instead of probing runtime shapes.
type PageModel interface {
	isPageModel()
}

// PaymentMethodListModel is the checkout page model listing the payment
// methods offered to the customer. Handlers may mutate Methods in place.
type PaymentMethodListModel struct {
	Methods []PaymentMethod
}

func (*PaymentMethodListModel) isPageModel() {}

// PaymentMethod is one selectable entry in the checkout payment method list.
type PaymentMethod struct {
	SystemName string // unique system name, e.g. "Payments.CheckMoneyOrder"
	Label      string
}

// AccountNavigationModel is the customer account page model with its side
// navigation. Handlers may insert items in place.
type AccountNavigationModel struct {
	CustomerID string
	Items      []NavigationItem
}

func (*AccountNavigationModel) isPageModel() {}

// NavigationItem is one entry in the customer account navigation.
type NavigationItem struct {
	ID    string // stable route id, e.g. "orders"
	Label string
	Path  string
}

// ShipmentFormModel is the admin shipment form model submitted when an
// operator creates or edits a shipment. ShipmentID is empty while the
// shipment has not been persisted yet.
type ShipmentFormModel struct {
	ShipmentID string
}

func (*ShipmentFormModel) isPageModel() {}
