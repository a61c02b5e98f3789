package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is a staff account scoped to one tenant. A zero TenantID marks a
// platform operator with cross-tenant access.
type Admin struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	TenantID           uint           `gorm:"index" json:"tenant_id"`
	Username           string         `gorm:"uniqueIndex;not null" json:"username"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string         `gorm:"not null" json:"-"`
	IsSuper            bool           `gorm:"not null;default:false" json:"is_super"`
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`
	TokenInvalidBefore *time.Time     `json:"-"`
	LastLoginAt        *time.Time     `json:"last_login_at"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Admin) TableName() string {
	return "admins"
}
