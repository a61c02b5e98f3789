package repository

import (
	"errors"
	"strings"

	"github.com/lealtad-next/internal/models"

	"gorm.io/gorm"
)

// TenantRepository is the tenant data access interface.
type TenantRepository interface {
	GetByID(id uint) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	Create(tenant *models.Tenant) error
	Update(tenant *models.Tenant) error
	List(page, pageSize int) ([]models.Tenant, int64, error)
}

// GormTenantRepository is the GORM implementation.
type GormTenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a tenant repository.
func NewTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// GetByID fetches a tenant by id.
func (r *GormTenantRepository) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

// GetBySlug fetches a tenant by slug.
func (r *GormTenantRepository) GetBySlug(slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.Where("slug = ?", strings.TrimSpace(slug)).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

// Create inserts a tenant.
func (r *GormTenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// Update saves a tenant.
func (r *GormTenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

// List returns tenants with pagination.
func (r *GormTenantRepository) List(page, pageSize int) ([]models.Tenant, int64, error) {
	query := r.db.Model(&models.Tenant{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tenants []models.Tenant
	if err := applyPagination(query, page, pageSize).Order("id desc").Find(&tenants).Error; err != nil {
		return nil, 0, err
	}
	return tenants, total, nil
}
