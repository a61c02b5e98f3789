package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/lealtad-next/internal/models"

	"gorm.io/gorm"
)

// AdminRepository is the staff account data access interface.
type AdminRepository interface {
	GetByID(id uint) (*models.Admin, error)
	GetByUsername(username string) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	UpdatePasswordHash(id uint, hash string) error
	TouchLastLogin(id uint, at time.Time) error
}

// GormAdminRepository is the GORM implementation.
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a staff account repository.
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// GetByID fetches a staff account by id.
func (r *GormAdminRepository) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByUsername fetches a staff account by username.
func (r *GormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ?", strings.TrimSpace(username)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByEmail fetches a staff account by email. Tenant resolution for staff
// callers goes through here.
func (r *GormAdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.Where("lower(email) = ?", normalized).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// Create inserts a staff account.
func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// Update saves a staff account.
func (r *GormAdminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

// UpdatePasswordHash replaces the password hash.
func (r *GormAdminRepository) UpdatePasswordHash(id uint, hash string) error {
	return r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

// TouchLastLogin records the last successful login time.
func (r *GormAdminRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}
