package admin

import (
	"strconv"

	handlershared "github.com/lealtad-next/internal/http/handlers/shared"
	"github.com/lealtad-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "admin_id", "error.admin_id_invalid", "error.admin_id_type_invalid")
}

// getTenantID resolves the tenant every write operation is scoped to. Regular
// staff carry their tenant in the token; platform operators (tenant 0) must
// name the tenant explicitly via the tenant_id query parameter.
func getTenantID(c *gin.Context) (uint, bool) {
	tenantID, ok := handlershared.GetContextUintWithKeys(c, "tenant_id", "error.tenant_missing", "error.tenant_missing")
	if !ok {
		return 0, false
	}
	if tenantID == 0 {
		if raw := c.Query("tenant_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err == nil && parsed > 0 {
				return uint(parsed), true
			}
		}
		respondError(c, response.CodeBadRequest, "error.tenant_missing", nil)
		return 0, false
	}
	return tenantID, true
}

// tenantScope resolves the tenant used to filter listings. Unlike getTenantID
// a platform operator may leave it at 0 to see every tenant.
func tenantScope(c *gin.Context) (uint, bool) {
	tenantID, ok := handlershared.GetContextUintWithKeys(c, "tenant_id", "error.tenant_missing", "error.tenant_missing")
	if !ok {
		return 0, false
	}
	if tenantID == 0 {
		if raw := c.Query("tenant_id"); raw != "" {
			if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
				return uint(parsed), true
			}
		}
	}
	return tenantID, true
}
