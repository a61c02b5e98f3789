package service

import "errors"

// Business errors. Handlers map these to localized messages; anything not in
// this list is treated as an infrastructure failure.
var (
	// auth
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountDisabled      = errors.New("account disabled")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")
	ErrOldPasswordWrong     = errors.New("old password wrong")
	ErrWeakPassword         = errors.New("weak password")

	// tenant scoping
	ErrTenantNotFound = errors.New("tenant not found")

	// campaign
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrCampaignIncomplete = errors.New("campaign incomplete")
	ErrCampaignDates      = errors.New("campaign end date must be after start date")
	ErrCampaignTitle      = errors.New("campaign title required")

	// reward configuration
	ErrRewardTypeRequired        = errors.New("reward type required")
	ErrRewardDescriptionRequired = errors.New("reward description required")
	ErrRewardDescriptionTooLong  = errors.New("reward description too long")
	ErrRewardPercentRange        = errors.New("reward percent out of range")
	ErrRewardFixedPositive       = errors.New("reward fixed amount must be positive")
	ErrRewardProductRequired     = errors.New("reward product required")
	ErrRewardQuantitiesPositive  = errors.New("reward quantities must be positive")
	ErrRewardCustomRequired      = errors.New("reward custom config required")

	// coupon / redemption
	ErrCouponNotFound        = errors.New("coupon not found")
	ErrCouponAlreadyRedeemed = errors.New("coupon already redeemed")
	ErrCouponExpired         = errors.New("coupon expired")
	ErrCouponNotEligible     = errors.New("coupon not eligible")
	ErrCouponExhausted       = errors.New("coupon exhausted")
	ErrInsufficientAmount    = errors.New("purchase amount below minimum")
	ErrAmountInvalid         = errors.New("purchase amount invalid")
	ErrBatchSizeInvalid      = errors.New("coupon batch size invalid")
)
