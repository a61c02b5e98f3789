package repository

import "time"

// CampaignListFilter filters campaign listings.
type CampaignListFilter struct {
	Page     int
	PageSize int
	TenantID uint
	Status   string
	Search   string
}

// CouponListFilter filters coupon listings.
type CouponListFilter struct {
	Page          int
	PageSize      int
	TenantID      uint
	CampaignID    uint
	Status        string
	Code          string
	CustomerEmail string
}

// RedemptionListFilter filters redemption history listings.
type RedemptionListFilter struct {
	Page        int
	PageSize    int
	TenantID    uint
	CouponID    uint
	Channel     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
