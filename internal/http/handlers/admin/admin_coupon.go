package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/repository"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

// IssueCouponsRequest is the batch issuance payload.
type IssueCouponsRequest struct {
	Recipients []service.CouponRecipient `json:"recipients" binding:"required"`
	ExpiresAt  *time.Time                `json:"expires_at"`
}

// IssueCoupons creates one coupon per recipient for a campaign.
func (h *Handler) IssueCoupons(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req IssueCouponsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	coupons, err := h.CouponAdminService.Issue(tenantID, campaignID, service.IssueInput{
		Recipients: req.Recipients,
		ExpiresAt:  req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampaignNotFound):
			respondError(c, response.CodeNotFound, "error.campaign_not_found", nil)
		case errors.Is(err, service.ErrBatchSizeInvalid):
			respondError(c, response.CodeBadRequest, "error.coupon_batch_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.coupon_issue_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"issued":  len(coupons),
		"coupons": coupons,
	})
}

// GetAdminCoupons lists coupons with filters.
func (h *Handler) GetAdminCoupons(c *gin.Context) {
	tenantID, ok := tenantScope(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var campaignID uint
	if raw := c.Query("campaign_id"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			campaignID = uint(parsed)
		}
	}

	coupons, total, err := h.CouponAdminService.List(repository.CouponListFilter{
		Page:          page,
		PageSize:      pageSize,
		TenantID:      tenantID,
		CampaignID:    campaignID,
		Status:        c.Query("status"),
		Code:          c.Query("code"),
		CustomerEmail: c.Query("customer_email"),
	})
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
	response.SuccessWithPage(c, coupons, pagination)
}

// MarkCouponSent records that a coupon left through a distribution channel.
func (h *Handler) MarkCouponSent(c *gin.Context) {
	h.transitionCoupon(c, h.CouponAdminService.MarkSent)
}

// MarkCouponActive records that the customer received the coupon.
func (h *Handler) MarkCouponActive(c *gin.Context) {
	h.transitionCoupon(c, h.CouponAdminService.MarkActive)
}

// CancelCoupon voids a coupon so it can no longer be redeemed.
func (h *Handler) CancelCoupon(c *gin.Context) {
	h.transitionCoupon(c, h.CouponAdminService.Cancel)
}

func (h *Handler) transitionCoupon(c *gin.Context, transition func(tenantID, couponID uint) (*models.Coupon, error)) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	couponID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	coupon, err := transition(tenantID, couponID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			respondError(c, response.CodeNotFound, "error.coupon_not_found", nil)
		case errors.Is(err, service.ErrCouponNotEligible):
			respondError(c, response.CodeBadRequest, "error.coupon_not_eligible", nil)
		default:
			respondError(c, response.CodeInternal, "error.coupon_cancel_failed", err)
		}
		return
	}

	response.Success(c, coupon)
}
