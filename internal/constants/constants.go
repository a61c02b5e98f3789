package constants

// Campaign status
const (
	CampaignStatusDraft     = "DRAFT"
	CampaignStatusActive    = "ACTIVE"
	CampaignStatusInactive  = "INACTIVE"
	CampaignStatusScheduled = "SCHEDULED"
)

// Reward types
const (
	RewardTypeNone            = "NONE"
	RewardTypePercentDiscount = "PERCENT_DISCOUNT"
	RewardTypeFixedAmount     = "FIXED_AMOUNT"
	RewardTypeFreeProduct     = "FREE_PRODUCT"
	RewardTypeBuyXGetY        = "BUY_X_GET_Y"
	RewardTypeCustom          = "CUSTOM"
)

// Coupon lifecycle status
const (
	CouponStatusCreated   = "CREATED"
	CouponStatusSent      = "SENT"
	CouponStatusActive    = "ACTIVE"
	CouponStatusRedeemed  = "REDEEMED"
	CouponStatusExpired   = "EXPIRED"
	CouponStatusCancelled = "CANCELLED"
)

// Redemption channels
const (
	RedemptionChannelQRWeb   = "QR_WEB"
	RedemptionChannelQRAdmin = "QR_ADMIN"
	RedemptionChannelManual  = "MANUAL"
	RedemptionChannelAPI     = "API"
)

// RewardDescriptionMaxLen caps the human-readable reward description.
const RewardDescriptionMaxLen = 500

// Campaign completeness severity
const (
	CompletenessSeverityNone           = "NONE"
	CompletenessSeverityActionRequired = "ACTION_REQUIRED"
)

// Queue names
const (
	QueueDefault = "default"
)

// Async task type names
const (
	TaskRedemptionNotify = "redemption:notify"
	TaskCouponExpire     = "coupon:expire_sweep"
)

// Captcha provider identifiers
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)
