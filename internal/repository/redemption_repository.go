package repository

import (
	"strings"

	"github.com/lealtad-next/internal/models"

	"gorm.io/gorm"
)

// RedemptionRepository is the redemption audit record access interface.
type RedemptionRepository interface {
	Create(redemption *models.Redemption) error
	List(filter RedemptionListFilter) ([]models.Redemption, int64, error)
	CountByTenant(tenantID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormRedemptionRepository
}

// GormRedemptionRepository is the GORM implementation.
type GormRedemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository creates a redemption repository.
func NewRedemptionRepository(db *gorm.DB) *GormRedemptionRepository {
	return &GormRedemptionRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormRedemptionRepository) WithTx(tx *gorm.DB) *GormRedemptionRepository {
	if tx == nil {
		return r
	}
	return &GormRedemptionRepository{db: tx}
}

// Create inserts an audit record.
func (r *GormRedemptionRepository) Create(redemption *models.Redemption) error {
	return r.db.Create(redemption).Error
}

// List returns redemption records matching the filter, newest first.
func (r *GormRedemptionRepository) List(filter RedemptionListFilter) ([]models.Redemption, int64, error) {
	query := r.db.Model(&models.Redemption{})

	if filter.TenantID > 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.CouponID > 0 {
		query = query.Where("coupon_id = ?", filter.CouponID)
	}
	if strings.TrimSpace(filter.Channel) != "" {
		query = query.Where("channel = ?", strings.TrimSpace(filter.Channel))
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var redemptions []models.Redemption
	if err := applyPagination(query, filter.Page, filter.PageSize).Order("id desc").Find(&redemptions).Error; err != nil {
		return nil, 0, err
	}
	return redemptions, total, nil
}

// CountByTenant returns the total redemption count for a tenant.
func (r *GormRedemptionRepository) CountByTenant(tenantID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Redemption{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error
	return total, err
}
