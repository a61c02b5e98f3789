package admin

import (
	"github.com/lealtad-next/internal/authz"
	"github.com/lealtad-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetAuthzMe returns the caller's role assignments.
func (h *Handler) GetAuthzMe(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{
		"admin_id": adminID,
		"roles":    roles,
	})
}

// ListAuthzRoles returns the built-in role matrix.
func (h *Handler) ListAuthzRoles(c *gin.Context) {
	seeds := authz.BuiltinRoleSeeds()
	roles := make([]gin.H, 0, len(seeds))
	for _, seed := range seeds {
		policies := make([]gin.H, 0, len(seed.Policies))
		for _, policy := range seed.Policies {
			policies = append(policies, gin.H{
				"object": policy.Object,
				"action": policy.Action,
			})
		}
		roles = append(roles, gin.H{
			"role":     seed.Role,
			"inherits": seed.Inherits,
			"policies": policies,
		})
	}
	response.Success(c, roles)
}

// GetAuthzAdminRoles returns the roles of one staff account.
func (h *Handler) GetAuthzAdminRoles(c *gin.Context) {
	adminID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{
		"admin_id": adminID,
		"roles":    roles,
	})
}

// SetAuthzAdminRolesRequest replaces a staff account's role set.
type SetAuthzAdminRolesRequest struct {
	Roles []string `json:"roles"`
}

// SetAuthzAdminRoles replaces the role assignments of one staff account.
func (h *Handler) SetAuthzAdminRoles(c *gin.Context) {
	adminID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SetAuthzAdminRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthzService.SetAdminRoles(adminID, req.Roles); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{
		"admin_id": adminID,
		"roles":    roles,
	})
}
