package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultLocale is the locale used when the request carries no preference.
// The console ships to Spanish-speaking tenants first.
const DefaultLocale = "es"

var supportedLocales = map[string]bool{
	"es": true,
	"en": true,
}

// ResolveLocale picks the response locale from the query string or the
// Accept-Language header, falling back to the default.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale := normalizeLocale(c.Query("locale")); locale != "" {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		lang := strings.SplitN(strings.TrimSpace(part), ";", 2)[0]
		if locale := normalizeLocale(lang); locale != "" {
			return locale
		}
	}
	return DefaultLocale
}

func normalizeLocale(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if idx := strings.IndexAny(trimmed, "-_"); idx > 0 {
		trimmed = trimmed[:idx]
	}
	if supportedLocales[trimmed] {
		return trimmed
	}
	return ""
}

// T returns the message for key in the given locale. Unknown keys are returned
// verbatim so a missing translation is visible instead of silent.
func T(locale, key string) string {
	if catalog, ok := messages[normalizeOrDefault(locale)]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats the message for key with the given arguments.
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeOrDefault(locale string) string {
	if normalized := normalizeLocale(locale); normalized != "" {
		return normalized
	}
	return DefaultLocale
}
