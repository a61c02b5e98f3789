package models

import (
	"time"

	"gorm.io/gorm"
)

// Redemption is the immutable audit record of one successful redemption.
type Redemption struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	CouponID       uint           `gorm:"index;not null" json:"coupon_id"`
	TenantID       uint           `gorm:"index;not null" json:"tenant_id"`
	Channel        string         `gorm:"not null" json:"channel"`
	RedeemedBy     string         `json:"redeemed_by"`
	OriginalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"original_amount"`
	DiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`
	FinalAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"final_amount"`
	Location       string         `json:"location"`
	Metadata       JSON           `gorm:"type:text" json:"metadata"`
	Success        bool           `gorm:"not null;default:true" json:"success"`
	Message        string         `json:"message"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Redemption) TableName() string {
	return "redemptions"
}
