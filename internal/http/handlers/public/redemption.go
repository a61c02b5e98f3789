package public

import (
	"strings"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/i18n"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerRedeemRequest is the self-service commit payload.
type CustomerRedeemRequest struct {
	OriginalAmount float64                `json:"original_amount" binding:"required"`
	CustomerEmail  string                 `json:"customer_email"`
	Metadata       map[string]interface{} `json:"metadata"`
}

// ValidateCouponByQR classifies a coupon from a scanned QR link. The token is
// an opaque random value, so the lookup runs unscoped: the customer never
// knows a tenant id.
func (h *Handler) ValidateCouponByQR(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	outcome, err := h.RedemptionService.ValidateByQRToken(token, 0)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, outcome)
}

// RedeemCouponByQR commits a self-service redemption from a QR link.
func (h *Handler) RedeemCouponByQR(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req CustomerRedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	redeemedBy := strings.TrimSpace(req.CustomerEmail)
	if redeemedBy == "" {
		redeemedBy = "customer"
	}

	receipt, err := h.RedemptionService.RedeemByQRToken(token, 0, service.RedeemRequest{
		RedeemedBy:     redeemedBy,
		Channel:        constants.RedemptionChannelQRWeb,
		OriginalAmount: models.NewMoneyFromFloat(req.OriginalAmount),
		Metadata:       models.JSON(req.Metadata),
	})
	if err != nil {
		respondCustomerRedeemError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "message.redemption_success"), receipt)
}
