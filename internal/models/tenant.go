package models

import (
	"time"

	"gorm.io/gorm"
)

// Tenant is a business account that owns campaigns, coupons and staff.
type Tenant struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	Email     string         `gorm:"index" json:"email"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Tenant) TableName() string {
	return "tenants"
}
