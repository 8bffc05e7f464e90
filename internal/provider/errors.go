package provider

import "errors"

var (
	// ErrProviderDown signals a provider-side outage (5xx responses).
	ErrProviderDown = errors.New("payment provider is unavailable")

	// ErrNotConnected is returned when an API call is attempted without credentials.
	ErrNotConnected = errors.New("payment provider credentials are not configured")

	// ErrTrackingRejected is returned when the carrier-tracking API refuses a push.
	ErrTrackingRejected = errors.New("provider rejected the tracking update")
)
