package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"
)

func TestEvaluateCouponVerdicts(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name   string
		coupon *models.Coupon
		want   CouponEligibility
	}{
		{"missing coupon", nil, EligibilityNotFound},
		{"created is valid", &models.Coupon{Status: constants.CouponStatusCreated}, EligibilityValid},
		{"sent is valid", &models.Coupon{Status: constants.CouponStatusSent}, EligibilityValid},
		{"active is valid", &models.Coupon{Status: constants.CouponStatusActive}, EligibilityValid},
		{"active with future expiry is valid", &models.Coupon{Status: constants.CouponStatusActive, ExpiresAt: &future}, EligibilityValid},
		{"redeemed status", &models.Coupon{Status: constants.CouponStatusRedeemed}, EligibilityAlreadyRedeemed},
		{"redeemed timestamp without status", &models.Coupon{Status: constants.CouponStatusActive, RedeemedAt: &past}, EligibilityAlreadyRedeemed},
		{"past expiry", &models.Coupon{Status: constants.CouponStatusActive, ExpiresAt: &past}, EligibilityExpired},
		{"expired stored status", &models.Coupon{Status: constants.CouponStatusExpired}, EligibilityExpired},
		{"cancelled", &models.Coupon{Status: constants.CouponStatusCancelled}, EligibilityInvalid},
		{"unknown status", &models.Coupon{Status: "GARBAGE"}, EligibilityInvalid},
	}

	for _, tc := range cases {
		got := EvaluateCoupon(tc.coupon, now)
		if got.Eligibility != tc.want {
			t.Fatalf("%s: want %s got %s", tc.name, tc.want, got.Eligibility)
		}
	}
}

func TestEvaluateCouponRedeemedWinsOverExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)

	coupon := &models.Coupon{
		Status:     constants.CouponStatusRedeemed,
		ExpiresAt:  &past,
		RedeemedAt: &past,
	}
	got := EvaluateCoupon(coupon, now)
	if got.Eligibility != EligibilityAlreadyRedeemed {
		t.Fatalf("redeemed and expired coupon want ALREADY_REDEEMED got %s", got.Eligibility)
	}
}

func TestEvaluateCouponInvalidCarriesReason(t *testing.T) {
	got := EvaluateCoupon(&models.Coupon{Status: constants.CouponStatusCancelled}, time.Now())
	if got.Eligibility != EligibilityInvalid {
		t.Fatalf("want INVALID got %s", got.Eligibility)
	}
	if got.Reason == "" {
		t.Fatal("invalid verdict should carry a reason")
	}
}

func TestEligibilityErrorMapping(t *testing.T) {
	cases := []struct {
		eval CouponEvaluation
		want error
	}{
		{CouponEvaluation{Eligibility: EligibilityValid}, nil},
		{CouponEvaluation{Eligibility: EligibilityNotFound}, ErrCouponNotFound},
		{CouponEvaluation{Eligibility: EligibilityAlreadyRedeemed}, ErrCouponAlreadyRedeemed},
		{CouponEvaluation{Eligibility: EligibilityExpired}, ErrCouponExpired},
		{CouponEvaluation{Eligibility: EligibilityInvalid, Reason: "cancelled"}, ErrCouponNotEligible},
	}
	for _, tc := range cases {
		got := tc.eval.EligibilityError()
		if !errors.Is(got, tc.want) && !(got == nil && tc.want == nil) {
			t.Fatalf("eligibility %s: want %v got %v", tc.eval.Eligibility, tc.want, got)
		}
	}
}
