package public

import (
	"errors"
	"strings"
	"time"

	"github.com/lealtad-next/internal/cache"
	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/i18n"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// GetConfig returns the console bootstrap configuration: supported locales,
// whether the login form needs a captcha, and the app name.
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	data := map[string]interface{}{
		"default_locale": i18n.DefaultLocale,
		"locales":        []string{"es", "en"},
		"captcha": map[string]interface{}{
			"enabled":  h.CaptchaService.Enabled(),
			"provider": h.Config.Captcha.Provider,
		},
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}

// lookupActiveTenant resolves a landing-page slug to an active tenant.
func (h *Handler) lookupActiveTenant(slug string) (*models.Tenant, error) {
	tenant, err := h.TenantRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if tenant == nil || !tenant.IsActive {
		return nil, service.ErrTenantNotFound
	}
	return tenant, nil
}

// GetTenantProfile returns the public branding of a tenant landing page.
func (h *Handler) GetTenantProfile(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	tenant, err := h.lookupActiveTenant(slug)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			respondError(c, response.CodeNotFound, "error.tenant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{
		"id":   tenant.ID,
		"name": tenant.Name,
		"slug": tenant.Slug,
	})
}
