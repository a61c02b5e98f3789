package models

import (
	"time"

	"gorm.io/gorm"
)

// Reward is the benefit configuration attached to one campaign. Value carries
// the percentage for PERCENT_DISCOUNT and the amount for FIXED_AMOUNT.
type Reward struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CampaignID   uint           `gorm:"uniqueIndex;not null" json:"campaign_id"`
	Type         string         `gorm:"not null;default:NONE" json:"type"`
	Value        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"value"`
	ProductID    uint           `json:"product_id"`
	BuyQuantity  int            `json:"buy_quantity"`
	FreeQuantity int            `json:"free_quantity"`
	CustomConfig string         `gorm:"type:text" json:"custom_config"`
	Description  string         `gorm:"size:500" json:"description"`
	MinPurchase  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_purchase"`
	UsageLimit   int            `gorm:"not null;default:1" json:"usage_limit"`
	UsageCount   int            `gorm:"not null;default:0" json:"usage_count"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Reward) TableName() string {
	return "rewards"
}

// EffectiveUsageLimit normalizes legacy rows where the limit was stored as
// zero or negative; enforcement always sees at least 1.
func (r *Reward) EffectiveUsageLimit() int {
	if r == nil || r.UsageLimit <= 0 {
		return 1
	}
	return r.UsageLimit
}
