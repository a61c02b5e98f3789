package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lealtad-next/internal/authz"
	"github.com/lealtad-next/internal/cache"
	"github.com/lealtad-next/internal/config"
	adminhandlers "github.com/lealtad-next/internal/http/handlers/admin"
	publichandlers "github.com/lealtad-next/internal/http/handlers/public"
	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/logger"
	"github.com/lealtad-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the public and staff API groups.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "lt"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	redeemRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:redeem", redisPrefix),
		WindowSeconds: cfg.Security.RedeemRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.RedeemRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// Public surface: console bootstrap config, tenant landing pages and
		// the customer self-service QR flow.
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/tenants/:slug", publicHandler.GetTenantProfile)
			public.GET("/tenants/:slug/campaigns", publicHandler.GetTenantCampaigns)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
			public.GET("/redemptions/qr/:token", publicHandler.ValidateCouponByQR)
			public.POST("/redemptions/qr/:token/redeem",
				RateLimitMiddleware(redisClient, redeemRule, KeyByIP),
				publicHandler.RedeemCouponByQR)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login",
				RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")),
				adminHandler.AdminLogin)

			// Account self-service needs a valid token but no role.
			authenticated := admin.Group("")
			authenticated.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authenticated.GET("/profile", adminHandler.GetAdminProfile)
				authenticated.PUT("/password", adminHandler.UpdateAdminPassword)
			}

			authorized := admin.Group("")
			authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				// Campaigns
				authorized.GET("/campaigns", adminHandler.GetAdminCampaigns)
				authorized.POST("/campaigns", adminHandler.CreateCampaign)
				authorized.GET("/campaigns/:id", adminHandler.GetAdminCampaign)
				authorized.PUT("/campaigns/:id", adminHandler.UpdateCampaign)
				authorized.POST("/campaigns/:id/activate", adminHandler.ActivateCampaign)
				authorized.POST("/campaigns/:id/deactivate", adminHandler.DeactivateCampaign)

				// Reward configuration
				authorized.GET("/campaigns/:id/reward", adminHandler.GetCampaignReward)
				authorized.PUT("/campaigns/:id/reward", adminHandler.UpsertCampaignReward)

				// Coupons
				authorized.POST("/campaigns/:id/coupons", adminHandler.IssueCoupons)
				authorized.GET("/coupons", adminHandler.GetAdminCoupons)
				authorized.POST("/coupons/:id/sent", adminHandler.MarkCouponSent)
				authorized.POST("/coupons/:id/activate", adminHandler.MarkCouponActive)
				authorized.POST("/coupons/:id/cancel", adminHandler.CancelCoupon)

				// Redemption counter
				authorized.GET("/redemptions", adminHandler.GetRedemptions)
				authorized.GET("/redemptions/validate/code/:code", adminHandler.ValidateCouponByCode)
				authorized.GET("/redemptions/validate/qr/:token", adminHandler.ValidateCouponByQR)
				authorized.POST("/redemptions/redeem/code/:code", adminHandler.RedeemCouponByCode)
				authorized.POST("/redemptions/redeem/qr/:token", adminHandler.RedeemCouponByQR)

				// Role management
				authorized.GET("/authz/me", adminHandler.GetAuthzMe)
				authorized.GET("/authz/roles", adminHandler.ListAuthzRoles)
				authorized.GET("/authz/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
				authorized.PUT("/authz/admins/:id/roles", adminHandler.SetAuthzAdminRoles)
				authorized.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
					response.Success(ctx, buildAdminPermissionCatalog(r))
				})
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// buildAdminPermissionCatalog enumerates the protected staff routes so role
// editors can offer a picker instead of free-form paths.
func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		if item.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	if segments[1] == "authz" {
		return "authz"
	}
	return segments[1]
}
