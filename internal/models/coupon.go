package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon is an issued, individually redeemable instance of a campaign's
// offer, tied to one customer. Transitions are forward-only; REDEEMED,
// EXPIRED and CANCELLED are terminal.
type Coupon struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	CampaignID    uint           `gorm:"index;not null" json:"campaign_id"`
	TenantID      uint           `gorm:"index;not null" json:"tenant_id"`
	Code          string         `gorm:"uniqueIndex;not null" json:"code"`
	QRToken       string         `gorm:"uniqueIndex;not null" json:"qr_token"`
	Status        string         `gorm:"index;not null;default:CREATED" json:"status"`
	ExpiresAt     *time.Time     `gorm:"index" json:"expires_at"`
	RedeemedAt    *time.Time     `json:"redeemed_at"`
	RedeemedBy    string         `json:"redeemed_by"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `gorm:"index" json:"customer_email"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Coupon) TableName() string {
	return "coupons"
}
