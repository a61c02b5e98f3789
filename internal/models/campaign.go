package models

import (
	"time"

	"gorm.io/gorm"
)

// Campaign is a promotional offer owned by one tenant.
type Campaign struct {
	ID         uint        `gorm:"primarykey" json:"id"`
	TenantID   uint        `gorm:"index;not null" json:"tenant_id"`
	Title      string      `gorm:"not null" json:"title"`
	TemplateID *uint       `json:"template_id"`
	PromoType  string      `json:"promo_type"`  // legacy display field
	PromoValue string      `json:"promo_value"` // legacy display field
	StartsAt   *time.Time  `gorm:"index" json:"starts_at"`
	EndsAt     *time.Time  `gorm:"index" json:"ends_at"`
	Channels   StringSlice `gorm:"type:text" json:"channels"`
	Tags       StringSlice `gorm:"type:text" json:"tags"`
	Status     string      `gorm:"index;not null;default:DRAFT" json:"status"`
	Automatic  bool        `gorm:"not null;default:false" json:"automatic"`
	// NoRewardAck records the tenant's explicit choice to run the campaign
	// without an attached reward.
	NoRewardAck bool           `gorm:"not null;default:false" json:"no_reward_ack"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Campaign) TableName() string {
	return "campaigns"
}
