package service

import (
	"strings"

	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/repository"
)

// RewardAdminService manages the reward attached to a campaign.
type RewardAdminService struct {
	campaignRepo repository.CampaignRepository
	rewardRepo   repository.RewardRepository
	resolver     *RewardResolver
}

// NewRewardAdminService creates a reward admin service.
func NewRewardAdminService(
	campaignRepo repository.CampaignRepository,
	rewardRepo repository.RewardRepository,
	resolver *RewardResolver,
) *RewardAdminService {
	return &RewardAdminService{
		campaignRepo: campaignRepo,
		rewardRepo:   rewardRepo,
		resolver:     resolver,
	}
}

// RewardInput is the upsert payload.
type RewardInput struct {
	Type         string
	Value        models.Money
	ProductID    uint
	BuyQuantity  int
	FreeQuantity int
	CustomConfig string
	Description  string
	MinPurchase  models.Money
	UsageLimit   int
}

// Get returns the reward attached to a campaign, nil when none exists.
func (s *RewardAdminService) Get(tenantID, campaignID uint) (*models.Reward, error) {
	campaign, err := s.campaignRepo.GetByIDForTenant(campaignID, tenantID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return s.rewardRepo.GetByCampaignID(campaign.ID)
}

// Upsert creates or replaces the campaign's reward after the configuration
// passes validation. Usage count survives an edit; the limit can be raised
// but the counter is never reset.
func (s *RewardAdminService) Upsert(tenantID, campaignID uint, input RewardInput) (*models.Reward, error) {
	campaign, err := s.campaignRepo.GetByIDForTenant(campaignID, tenantID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	candidate := &models.Reward{
		CampaignID:   campaign.ID,
		Type:         strings.TrimSpace(input.Type),
		Value:        input.Value,
		ProductID:    input.ProductID,
		BuyQuantity:  input.BuyQuantity,
		FreeQuantity: input.FreeQuantity,
		CustomConfig: input.CustomConfig,
		Description:  strings.TrimSpace(input.Description),
		MinPurchase:  input.MinPurchase,
		UsageLimit:   input.UsageLimit,
	}
	if candidate.UsageLimit <= 0 {
		candidate.UsageLimit = 1
	}
	if err := s.resolver.ValidateConfig(candidate); err != nil {
		return nil, err
	}

	existing, err := s.rewardRepo.GetByCampaignID(campaign.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := s.rewardRepo.Create(candidate); err != nil {
			return nil, err
		}
		return candidate, nil
	}

	existing.Type = candidate.Type
	existing.Value = candidate.Value
	existing.ProductID = candidate.ProductID
	existing.BuyQuantity = candidate.BuyQuantity
	existing.FreeQuantity = candidate.FreeQuantity
	existing.CustomConfig = candidate.CustomConfig
	existing.Description = candidate.Description
	existing.MinPurchase = candidate.MinPurchase
	existing.UsageLimit = candidate.UsageLimit
	if err := s.rewardRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
