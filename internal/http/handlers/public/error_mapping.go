package public

import (
	"errors"

	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/i18n"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps one business error to an API response.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var customerRedeemErrorRules = []mappedHandlerError{
	{target: service.ErrCouponNotFound, code: response.CodeNotFound, key: "error.coupon_not_found"},
	{target: service.ErrCouponAlreadyRedeemed, code: response.CodeBadRequest, key: "error.coupon_already_redeemed"},
	{target: service.ErrCouponExpired, code: response.CodeBadRequest, key: "error.coupon_expired"},
	{target: service.ErrCouponExhausted, code: response.CodeBadRequest, key: "error.coupon_exhausted"},
	{target: service.ErrAmountInvalid, code: response.CodeBadRequest, key: "error.redemption_amount_invalid"},
	{target: service.ErrCouponNotEligible, code: response.CodeBadRequest, key: "error.coupon_not_eligible"},
}

// respondCustomerRedeemError handles the self-service taxonomy. The minimum
// purchase rejection carries the amount, so it is formatted before the
// generic table runs.
func respondCustomerRedeemError(c *gin.Context, err error) {
	var insufficient *service.InsufficientAmountError
	if errors.As(err, &insufficient) {
		locale := i18n.ResolveLocale(c)
		msg := i18n.Sprintf(locale, "error.redemption_insufficient_amount", insufficient.Minimum.String())
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	respondWithMappedError(c, err, customerRedeemErrorRules, response.CodeInternal, "error.redemption_failed")
}
