package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/i18n"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/repository"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RedeemCouponRequest is the commit-phase payload for counter staff.
type RedeemCouponRequest struct {
	OriginalAmount float64                `json:"original_amount" binding:"required"`
	Location       string                 `json:"location"`
	Metadata       map[string]interface{} `json:"metadata"`
}

// ValidateCouponByCode classifies a coupon without changing any state.
// Counter staff run this before asking for the purchase amount.
func (h *Handler) ValidateCouponByCode(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	outcome, err := h.RedemptionService.ValidateByCode(code, tenantID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, outcome)
}

// ValidateCouponByQR classifies a coupon looked up by its QR token.
func (h *Handler) ValidateCouponByQR(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	outcome, err := h.RedemptionService.ValidateByQRToken(token, tenantID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, outcome)
}

// RedeemCouponByCode commits a redemption for a manually entered code.
func (h *Handler) RedeemCouponByCode(c *gin.Context) {
	h.redeemCoupon(c, c.Param("code"), constants.RedemptionChannelManual, h.RedemptionService.RedeemByCode)
}

// RedeemCouponByQR commits a redemption for a scanned QR token.
func (h *Handler) RedeemCouponByQR(c *gin.Context) {
	h.redeemCoupon(c, c.Param("token"), constants.RedemptionChannelQRAdmin, h.RedemptionService.RedeemByQRToken)
}

func (h *Handler) redeemCoupon(c *gin.Context, lookup, channel string, commit func(lookup string, tenantID uint, req service.RedeemRequest) (*service.RedemptionReceipt, error)) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	lookup = strings.TrimSpace(lookup)
	if lookup == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	receipt, err := commit(lookup, tenantID, service.RedeemRequest{
		RedeemedBy:     callerName(c),
		Channel:        channel,
		OriginalAmount: models.NewMoneyFromFloat(req.OriginalAmount),
		Location:       req.Location,
		Metadata:       models.JSON(req.Metadata),
	})
	if err != nil {
		respondRedemptionError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "message.redemption_success"), receipt)
}

// GetRedemptions lists the redemption audit trail, newest first.
func (h *Handler) GetRedemptions(c *gin.Context) {
	tenantID, ok := tenantScope(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var couponID uint
	if raw := c.Query("coupon_id"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			couponID = uint(parsed)
		}
	}

	filter := repository.RedemptionListFilter{
		Page:     page,
		PageSize: pageSize,
		TenantID: tenantID,
		CouponID: couponID,
		Channel:  c.Query("channel"),
	}
	if raw := c.Query("created_from"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedFrom = &parsed
		}
	}
	if raw := c.Query("created_to"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedTo = &parsed
		}
	}

	redemptions, total, err := h.RedemptionService.ListRedemptions(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, redemptions, pagination)
}

// respondRedemptionError maps the redemption taxonomy to localized responses.
// Each rejection keeps its own key so the counter screen can branch on it.
func respondRedemptionError(c *gin.Context, err error) {
	var insufficient *service.InsufficientAmountError
	switch {
	case errors.Is(err, service.ErrCouponNotFound):
		respondError(c, response.CodeNotFound, "error.coupon_not_found", nil)
	case errors.Is(err, service.ErrCouponAlreadyRedeemed):
		respondError(c, response.CodeBadRequest, "error.coupon_already_redeemed", nil)
	case errors.Is(err, service.ErrCouponExpired):
		respondError(c, response.CodeBadRequest, "error.coupon_expired", nil)
	case errors.Is(err, service.ErrCouponExhausted):
		respondError(c, response.CodeBadRequest, "error.coupon_exhausted", nil)
	case errors.As(err, &insufficient):
		locale := i18n.ResolveLocale(c)
		msg := i18n.Sprintf(locale, "error.redemption_insufficient_amount", insufficient.Minimum.String())
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
	case errors.Is(err, service.ErrAmountInvalid):
		respondError(c, response.CodeBadRequest, "error.redemption_amount_invalid", nil)
	case errors.Is(err, service.ErrCouponNotEligible):
		respondError(c, response.CodeBadRequest, "error.coupon_not_eligible", nil)
	default:
		respondError(c, response.CodeInternal, "error.redemption_failed", err)
	}
}

func callerName(c *gin.Context) string {
	if value, ok := c.Get("username"); ok {
		if name, ok := value.(string); ok && name != "" {
			return name
		}
	}
	if id, ok := c.Get("admin_id"); ok {
		if adminID, ok := id.(uint); ok {
			return "admin:" + strconv.FormatUint(uint64(adminID), 10)
		}
	}
	return ""
}
