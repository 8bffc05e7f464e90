// Package locale provides the plugin's localized resource strings.
// The platform owns the full localization service; the plugin only ships the
// handful of snippets it inserts into platform surfaces.
package locale

// Catalog maps resource keys to localized strings per locale.
type Catalog struct {
	defaultLocale string
	resources     map[string]map[string]string
}

// Resource keys used by the plugin.
const (
	KeyAccountNavigation      = "plugins.payments.paygate.account.paymenttokens"
	KeyWarningManualCreds     = "plugins.payments.paygate.warning.merchantid.manual"
	KeyWarningOnboardingCreds = "plugins.payments.paygate.warning.merchantid.onboarding"
)

// NewCatalog builds the catalog with the plugin's built-in snippets.
func NewCatalog(defaultLocale string) *Catalog {
	return &Catalog{
		defaultLocale: defaultLocale,
		resources: map[string]map[string]string{
			"en-US": {
				KeyAccountNavigation:      "Stored payment methods",
				KeyWarningManualCreds:     "PayGate: a merchant ID is required for the configured account. Enter it on the plugin credentials page.",
				KeyWarningOnboardingCreds: "PayGate: a merchant ID is required for the configured account. Re-run the provider onboarding to obtain one.",
			},
			"de-DE": {
				KeyAccountNavigation:      "Gespeicherte Zahlungsarten",
				KeyWarningManualCreds:     "PayGate: für das konfigurierte Konto wird eine Händler-ID benötigt. Bitte auf der Zugangsdaten-Seite eintragen.",
				KeyWarningOnboardingCreds: "PayGate: für das konfigurierte Konto wird eine Händler-ID benötigt. Bitte das Provider-Onboarding erneut ausführen.",
			},
		},
	}
}

// Get resolves a key in the default locale. Unknown keys resolve to the key
// itself so a missing snippet stays visible instead of rendering empty.
func (c *Catalog) Get(key string) string {
	return c.GetLocale(c.defaultLocale, key)
}

// GetLocale resolves a key for a specific locale, falling back to the
// default locale and finally to the key itself.
func (c *Catalog) GetLocale(localeID, key string) string {
	if m, ok := c.resources[localeID]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if localeID != c.defaultLocale {
		if m, ok := c.resources[c.defaultLocale]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	return key
}
