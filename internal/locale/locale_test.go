package locale

import "testing"

func TestCatalog_DefaultLocale(t *testing.T) {
	c := NewCatalog("en-US")
	got := c.Get(KeyAccountNavigation)
	if got != "Stored payment methods" {
		t.Fatalf("unexpected resource: %q", got)
	}
}

func TestCatalog_FallbackToDefault(t *testing.T) {
	c := NewCatalog("en-US")
	// fr-FR is not shipped; the default locale answers
	got := c.GetLocale("fr-FR", KeyAccountNavigation)
	if got != "Stored payment methods" {
		t.Fatalf("expected default locale fallback, got %q", got)
	}
}

func TestCatalog_UnknownKeyStaysVisible(t *testing.T) {
	c := NewCatalog("en-US")
	if got := c.Get("plugins.payments.paygate.nope"); got != "plugins.payments.paygate.nope" {
		t.Fatalf("expected key echo, got %q", got)
	}
}
