package repository

import (
	"errors"
	"strings"

	"github.com/lealtad-next/internal/models"

	"gorm.io/gorm"
)

// CampaignRepository is the campaign data access interface.
type CampaignRepository interface {
	GetByID(id uint) (*models.Campaign, error)
	GetByIDForTenant(id, tenantID uint) (*models.Campaign, error)
	Create(campaign *models.Campaign) error
	Update(campaign *models.Campaign) error
	UpdateStatus(id uint, status string) error
	List(filter CampaignListFilter) ([]models.Campaign, int64, error)
	WithTx(tx *gorm.DB) *GormCampaignRepository
}

// GormCampaignRepository is the GORM implementation.
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a campaign repository.
func NewCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCampaignRepository) WithTx(tx *gorm.DB) *GormCampaignRepository {
	if tx == nil {
		return r
	}
	return &GormCampaignRepository{db: tx}
}

// GetByID fetches a campaign by id.
func (r *GormCampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

// GetByIDForTenant fetches a campaign by id scoped to a tenant.
func (r *GormCampaignRepository) GetByIDForTenant(id, tenantID uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

// Create inserts a campaign.
func (r *GormCampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// Update saves a campaign.
func (r *GormCampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// UpdateStatus updates only the campaign status column.
func (r *GormCampaignRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Campaign{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// List returns campaigns matching the filter.
func (r *GormCampaignRepository) List(filter CampaignListFilter) ([]models.Campaign, int64, error) {
	query := r.db.Model(&models.Campaign{})

	if filter.TenantID > 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if strings.TrimSpace(filter.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(filter.Status))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaigns []models.Campaign
	if err := applyPagination(query, filter.Page, filter.PageSize).Order("id desc").Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}
