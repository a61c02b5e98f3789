package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(header, query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	target := "/"
	if query != "" {
		target += "?" + query
	}
	c.Request = httptest.NewRequest("GET", target, nil)
	if header != "" {
		c.Request.Header.Set("Accept-Language", header)
	}
	return c
}

func TestResolveLocaleDefaultsToSpanish(t *testing.T) {
	c := newTestContext("", "")
	if got := ResolveLocale(c); got != "es" {
		t.Fatalf("expected default locale es, got %s", got)
	}
}

func TestResolveLocaleFromAcceptLanguage(t *testing.T) {
	c := newTestContext("en-US,en;q=0.9", "")
	if got := ResolveLocale(c); got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestResolveLocaleQueryWinsOverHeader(t *testing.T) {
	c := newTestContext("en-US", "locale=es")
	if got := ResolveLocale(c); got != "es" {
		t.Fatalf("expected es, got %s", got)
	}
}

func TestResolveLocaleUnsupportedFallsBack(t *testing.T) {
	c := newTestContext("fr-FR", "")
	if got := ResolveLocale(c); got != "es" {
		t.Fatalf("expected fallback es, got %s", got)
	}
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	if got := T("es", "error.does_not_exist"); got != "error.does_not_exist" {
		t.Fatalf("expected key passthrough, got %s", got)
	}
}

func TestEveryKeyExistsInAllLocales(t *testing.T) {
	for key := range messages["es"] {
		if _, ok := messages["en"][key]; !ok {
			t.Fatalf("key %s missing from en catalog", key)
		}
	}
	for key := range messages["en"] {
		if _, ok := messages["es"][key]; !ok {
			t.Fatalf("key %s missing from es catalog", key)
		}
	}
}

func TestSprintfFormatsArguments(t *testing.T) {
	got := Sprintf("en", "error.rate_limited", 30)
	if got != "too many requests, retry in 30 seconds" {
		t.Fatalf("unexpected formatted message: %s", got)
	}
}
