package admin

import (
	"errors"

	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the staff login payload.
type LoginRequest struct {
	Username       string                `json:"username" binding:"required"`
	Password       string                `json:"password" binding:"required"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// LoginResponse is the staff login result.
type LoginResponse struct {
	Token     string                 `json:"token"`
	User      map[string]interface{} `json:"user"`
	ExpiresAt string                 `json:"expires_at"`
}

// AdminLogin authenticates a staff member.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(req.CaptchaPayload.toServicePayload()); captchaErr != nil {
			switch {
			case errors.Is(captchaErr, service.ErrCaptchaRequired):
				respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
				return
			case errors.Is(captchaErr, service.ErrCaptchaInvalid):
				respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
				return
			default:
				respondError(c, response.CodeInternal, "error.captcha_config_invalid", captchaErr)
				return
			}
		}
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "error.invalid_credentials", nil)
			return
		}
		if errors.Is(err, service.ErrAccountDisabled) {
			respondError(c, response.CodeForbidden, "error.account_disabled", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, LoginResponse{
		Token: token,
		User: map[string]interface{}{
			"id":        admin.ID,
			"username":  admin.Username,
			"tenant_id": admin.TenantID,
			"is_super":  admin.IsSuper,
		},
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetAdminProfile returns the caller's account plus their granted roles.
func (h *Handler) GetAdminProfile(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	admin, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "error.not_found", nil)
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(admin.ID)
	if err != nil {
		requestLog(c).Warnw("admin_profile_roles_failed", "admin_id", admin.ID, "error", err)
		roles = []string{}
	}

	response.Success(c, gin.H{
		"id":            admin.ID,
		"username":      admin.Username,
		"email":         admin.Email,
		"tenant_id":     admin.TenantID,
		"is_super":      admin.IsSuper,
		"roles":         roles,
		"last_login_at": admin.LastLoginAt,
	})
}

// UpdatePasswordRequest is the change-password payload.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateAdminPassword changes the caller's password and revokes every token
// issued before the change.
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrOldPasswordWrong) {
			respondError(c, response.CodeBadRequest, "error.password_old_invalid", nil)
			return
		}
		if errors.Is(err, service.ErrWeakPassword) {
			respondError(c, response.CodeBadRequest, "error.password_weak", nil)
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeNotFound, "error.not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.password_update_failed", err)
		return
	}

	response.Success(c, nil)
}
