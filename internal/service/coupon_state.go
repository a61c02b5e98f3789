package service

import (
	"strings"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"
)

// CouponEligibility classifies a coupon for a redemption attempt.
type CouponEligibility string

// Eligibility verdicts.
const (
	EligibilityValid           CouponEligibility = "VALID"
	EligibilityNotFound        CouponEligibility = "NOT_FOUND"
	EligibilityAlreadyRedeemed CouponEligibility = "ALREADY_REDEEMED"
	EligibilityExpired         CouponEligibility = "EXPIRED"
	EligibilityInvalid         CouponEligibility = "INVALID"
)

// CouponEvaluation is the verdict plus the reason for INVALID.
type CouponEvaluation struct {
	Eligibility CouponEligibility
	Reason      string
}

// EvaluateCoupon classifies a coupon against the clock. The redeemed check
// runs before the expiry check: a redeemed coupon always reports already
// redeemed even when its expiry has also passed, because the user-facing
// message differs.
func EvaluateCoupon(coupon *models.Coupon, now time.Time) CouponEvaluation {
	if coupon == nil {
		return CouponEvaluation{Eligibility: EligibilityNotFound}
	}

	status := strings.TrimSpace(coupon.Status)
	if status == constants.CouponStatusRedeemed || coupon.RedeemedAt != nil {
		return CouponEvaluation{Eligibility: EligibilityAlreadyRedeemed}
	}
	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(now) {
		return CouponEvaluation{Eligibility: EligibilityExpired}
	}

	switch status {
	case constants.CouponStatusCreated, constants.CouponStatusSent, constants.CouponStatusActive:
		return CouponEvaluation{Eligibility: EligibilityValid}
	case constants.CouponStatusExpired:
		return CouponEvaluation{Eligibility: EligibilityExpired}
	case constants.CouponStatusCancelled:
		return CouponEvaluation{Eligibility: EligibilityInvalid, Reason: "cancelled"}
	default:
		return CouponEvaluation{Eligibility: EligibilityInvalid, Reason: "unknown status: " + status}
	}
}

// EligibilityError maps a non-valid verdict to its business error.
func (e CouponEvaluation) EligibilityError() error {
	switch e.Eligibility {
	case EligibilityValid:
		return nil
	case EligibilityNotFound:
		return ErrCouponNotFound
	case EligibilityAlreadyRedeemed:
		return ErrCouponAlreadyRedeemed
	case EligibilityExpired:
		return ErrCouponExpired
	default:
		return ErrCouponNotEligible
	}
}
