package repository

import (
	"errors"

	"github.com/lealtad-next/internal/models"

	"gorm.io/gorm"
)

// RewardRepository is the reward data access interface.
type RewardRepository interface {
	GetByID(id uint) (*models.Reward, error)
	GetByCampaignID(campaignID uint) (*models.Reward, error)
	ListByCampaignIDs(campaignIDs []uint) ([]models.Reward, error)
	Create(reward *models.Reward) error
	Update(reward *models.Reward) error
	IncrementUsageCount(id uint, limit int) (int64, error)
	WithTx(tx *gorm.DB) *GormRewardRepository
}

// GormRewardRepository is the GORM implementation.
type GormRewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository creates a reward repository.
func NewRewardRepository(db *gorm.DB) *GormRewardRepository {
	return &GormRewardRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormRewardRepository) WithTx(tx *gorm.DB) *GormRewardRepository {
	if tx == nil {
		return r
	}
	return &GormRewardRepository{db: tx}
}

// GetByID fetches a reward by id.
func (r *GormRewardRepository) GetByID(id uint) (*models.Reward, error) {
	var reward models.Reward
	if err := r.db.First(&reward, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reward, nil
}

// GetByCampaignID fetches the reward attached to a campaign.
func (r *GormRewardRepository) GetByCampaignID(campaignID uint) (*models.Reward, error) {
	var reward models.Reward
	if err := r.db.Where("campaign_id = ?", campaignID).First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reward, nil
}

// ListByCampaignIDs fetches rewards for a set of campaigns.
func (r *GormRewardRepository) ListByCampaignIDs(campaignIDs []uint) ([]models.Reward, error) {
	if len(campaignIDs) == 0 {
		return []models.Reward{}, nil
	}
	var rewards []models.Reward
	if err := r.db.Where("campaign_id IN ?", campaignIDs).Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

// Create inserts a reward.
func (r *GormRewardRepository) Create(reward *models.Reward) error {
	return r.db.Create(reward).Error
}

// Update saves a reward.
func (r *GormRewardRepository) Update(reward *models.Reward) error {
	return r.db.Save(reward).Error
}

// IncrementUsageCount bumps the usage counter only while it is still below
// the limit, returning the number of affected rows. A zero result means the
// reward is exhausted.
func (r *GormRewardRepository) IncrementUsageCount(id uint, limit int) (int64, error) {
	if limit <= 0 {
		limit = 1
	}
	result := r.db.Model(&models.Reward{}).
		Where("id = ? AND usage_count < ?", id, limit).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1))
	return result.RowsAffected, result.Error
}
