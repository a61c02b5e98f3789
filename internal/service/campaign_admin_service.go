package service

import (
	"strings"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/repository"
)

// CampaignAdminService manages campaigns for tenant staff.
type CampaignAdminService struct {
	campaignRepo repository.CampaignRepository
	rewardRepo   repository.RewardRepository
	couponRepo   repository.CouponRepository
	validator    *CampaignValidator
}

// NewCampaignAdminService creates a campaign admin service.
func NewCampaignAdminService(
	campaignRepo repository.CampaignRepository,
	rewardRepo repository.RewardRepository,
	couponRepo repository.CouponRepository,
	validator *CampaignValidator,
) *CampaignAdminService {
	return &CampaignAdminService{
		campaignRepo: campaignRepo,
		rewardRepo:   rewardRepo,
		couponRepo:   couponRepo,
		validator:    validator,
	}
}

// CampaignInput is the create/update payload.
type CampaignInput struct {
	Title       string
	TemplateID  *uint
	PromoType   string
	PromoValue  string
	StartsAt    *time.Time
	EndsAt      *time.Time
	Channels    []string
	Tags        []string
	Automatic   bool
	NoRewardAck bool
}

// CampaignView is a campaign annotated with its completeness verdict and
// coupon counts, the shape the listing screen renders.
type CampaignView struct {
	models.Campaign
	Completeness CompletenessResult `json:"completeness"`
	CouponCounts map[string]int64   `json:"coupon_counts,omitempty"`
}

// IncompleteCampaignError carries the ordered missing items that block an
// activation. errors.Is matches ErrCampaignIncomplete.
type IncompleteCampaignError struct {
	Missing []string
}

func (e *IncompleteCampaignError) Error() string {
	return "campaign incomplete: " + strings.Join(e.Missing, ", ")
}

// Is makes the typed error match the sentinel.
func (e *IncompleteCampaignError) Is(target error) bool {
	return target == ErrCampaignIncomplete
}

func validateCampaignInput(input CampaignInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrCampaignTitle
	}
	if input.StartsAt != nil && input.EndsAt != nil && !input.EndsAt.After(*input.StartsAt) {
		return ErrCampaignDates
	}
	return nil
}

// Create creates a DRAFT campaign for a tenant.
func (s *CampaignAdminService) Create(tenantID uint, input CampaignInput) (*models.Campaign, error) {
	if err := validateCampaignInput(input); err != nil {
		return nil, err
	}
	campaign := &models.Campaign{
		TenantID:    tenantID,
		Title:       strings.TrimSpace(input.Title),
		TemplateID:  input.TemplateID,
		PromoType:   input.PromoType,
		PromoValue:  input.PromoValue,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Channels:    models.StringSlice(input.Channels),
		Tags:        models.StringSlice(input.Tags),
		Status:      constants.CampaignStatusDraft,
		Automatic:   input.Automatic,
		NoRewardAck: input.NoRewardAck,
	}
	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Update edits a campaign, scoped to the tenant.
func (s *CampaignAdminService) Update(tenantID, campaignID uint, input CampaignInput) (*models.Campaign, error) {
	if err := validateCampaignInput(input); err != nil {
		return nil, err
	}
	campaign, err := s.campaignRepo.GetByIDForTenant(campaignID, tenantID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	campaign.Title = strings.TrimSpace(input.Title)
	campaign.TemplateID = input.TemplateID
	campaign.PromoType = input.PromoType
	campaign.PromoValue = input.PromoValue
	campaign.StartsAt = input.StartsAt
	campaign.EndsAt = input.EndsAt
	campaign.Channels = models.StringSlice(input.Channels)
	campaign.Tags = models.StringSlice(input.Tags)
	campaign.Automatic = input.Automatic
	campaign.NoRewardAck = input.NoRewardAck

	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// Get returns one campaign with its completeness verdict and coupon counts.
func (s *CampaignAdminService) Get(tenantID, campaignID uint) (*CampaignView, error) {
	campaign, err := s.campaignRepo.GetByIDForTenant(campaignID, tenantID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	reward, err := s.rewardRepo.GetByCampaignID(campaign.ID)
	if err != nil {
		return nil, err
	}
	counts, err := s.couponRepo.CountByCampaign(campaign.ID)
	if err != nil {
		return nil, err
	}
	return &CampaignView{
		Campaign:     *campaign,
		Completeness: s.validator.Validate(campaign, reward),
		CouponCounts: counts,
	}, nil
}

// List returns campaigns annotated with their completeness verdicts. The
// listing screen shows the verdict badge on every row, so the rewards are
// fetched in one query instead of per campaign.
func (s *CampaignAdminService) List(filter repository.CampaignListFilter) ([]CampaignView, int64, error) {
	campaigns, total, err := s.campaignRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, 0, len(campaigns))
	for _, campaign := range campaigns {
		ids = append(ids, campaign.ID)
	}
	rewards, err := s.rewardRepo.ListByCampaignIDs(ids)
	if err != nil {
		return nil, 0, err
	}
	byCampaign := make(map[uint]*models.Reward, len(rewards))
	for idx := range rewards {
		byCampaign[rewards[idx].CampaignID] = &rewards[idx]
	}

	views := make([]CampaignView, 0, len(campaigns))
	for idx := range campaigns {
		campaign := campaigns[idx]
		views = append(views, CampaignView{
			Campaign:     campaign,
			Completeness: s.validator.Validate(&campaign, byCampaign[campaign.ID]),
		})
	}
	return views, total, nil
}

// Activate moves a campaign to ACTIVE after the completeness gate passes.
func (s *CampaignAdminService) Activate(tenantID, campaignID uint) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByIDForTenant(campaignID, tenantID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	reward, err := s.rewardRepo.GetByCampaignID(campaign.ID)
	if err != nil {
		return nil, err
	}

	result := s.validator.Validate(campaign, reward)
	if !result.ConfigComplete {
		return nil, &IncompleteCampaignError{Missing: result.MissingItems}
	}

	status := constants.CampaignStatusActive
	if campaign.StartsAt != nil && campaign.StartsAt.After(time.Now()) {
		status = constants.CampaignStatusScheduled
	}
	if err := s.campaignRepo.UpdateStatus(campaign.ID, status); err != nil {
		return nil, err
	}
	campaign.Status = status
	return campaign, nil
}

// Deactivate moves a campaign to INACTIVE.
func (s *CampaignAdminService) Deactivate(tenantID, campaignID uint) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByIDForTenant(campaignID, tenantID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if err := s.campaignRepo.UpdateStatus(campaign.ID, constants.CampaignStatusInactive); err != nil {
		return nil, err
	}
	campaign.Status = constants.CampaignStatusInactive
	return campaign, nil
}
