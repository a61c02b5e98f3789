package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/logger"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/queue"
	"github.com/lealtad-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RedemptionService is the only code path allowed to move a coupon into
// REDEEMED and to increment a reward's usage count. Everything else reads.
type RedemptionService struct {
	couponRepo     repository.CouponRepository
	rewardRepo     repository.RewardRepository
	redemptionRepo repository.RedemptionRepository
	campaignRepo   repository.CampaignRepository
	resolver       *RewardResolver
	queueClient    *queue.Client
}

// NewRedemptionService creates a redemption service.
func NewRedemptionService(
	couponRepo repository.CouponRepository,
	rewardRepo repository.RewardRepository,
	redemptionRepo repository.RedemptionRepository,
	campaignRepo repository.CampaignRepository,
	resolver *RewardResolver,
	queueClient *queue.Client,
) *RedemptionService {
	return &RedemptionService{
		couponRepo:     couponRepo,
		rewardRepo:     rewardRepo,
		redemptionRepo: redemptionRepo,
		campaignRepo:   campaignRepo,
		resolver:       resolver,
		queueClient:    queueClient,
	}
}

// CouponSummary is the coupon slice of a validation outcome.
type CouponSummary struct {
	ID            uint       `json:"id"`
	Code          string     `json:"code"`
	Status        string     `json:"status"`
	CampaignID    uint       `json:"campaign_id"`
	CampaignTitle string     `json:"campaign_title"`
	CustomerName  string     `json:"customer_name"`
	ExpiresAt     *time.Time `json:"expires_at"`
	RedeemedAt    *time.Time `json:"redeemed_at"`
}

// RewardSummary is the reward slice of a validation outcome, enough for the
// caller to render the purchase-amount form before committing.
type RewardSummary struct {
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Value       models.Money `json:"value"`
	MinPurchase models.Money `json:"min_purchase"`
	UsageLimit  int          `json:"usage_limit"`
	UsageCount  int          `json:"usage_count"`
}

// ValidationOutcome is the result of the read-only validation phase.
type ValidationOutcome struct {
	Eligibility CouponEligibility `json:"eligibility"`
	Reason      string            `json:"reason,omitempty"`
	Coupon      *CouponSummary    `json:"coupon,omitempty"`
	Reward      *RewardSummary    `json:"reward,omitempty"`
}

// RedeemRequest carries the commit-phase input.
type RedeemRequest struct {
	RedeemedBy     string
	Channel        string
	OriginalAmount models.Money
	Location       string
	Metadata       models.JSON
}

// RedemptionReceipt is returned on a successful commit.
type RedemptionReceipt struct {
	RedemptionID   uint         `json:"redemption_id"`
	CouponID       uint         `json:"coupon_id"`
	Code           string       `json:"code"`
	CampaignID     uint         `json:"campaign_id"`
	Channel        string       `json:"channel"`
	OriginalAmount models.Money `json:"original_amount"`
	DiscountAmount models.Money `json:"discount_amount"`
	FinalAmount    models.Money `json:"final_amount"`
	RedeemedAt     time.Time    `json:"redeemed_at"`
	RedeemedBy     string       `json:"redeemed_by"`
}

// InsufficientAmountError carries the minimum so handlers can report the
// shortfall. errors.Is matches ErrInsufficientAmount.
type InsufficientAmountError struct {
	Minimum models.Money
}

func (e *InsufficientAmountError) Error() string {
	return fmt.Sprintf("purchase amount below minimum %s", e.Minimum.String())
}

// Is makes the typed error match the sentinel.
func (e *InsufficientAmountError) Is(target error) bool {
	return target == ErrInsufficientAmount
}

// ValidateByCode classifies a coupon looked up by its human-entered code.
// Staff flow only, always tenant scoped.
func (s *RedemptionService) ValidateByCode(code string, tenantID uint) (*ValidationOutcome, error) {
	coupon, err := s.couponRepo.GetByCode(code, tenantID)
	if err != nil {
		return nil, err
	}
	return s.buildOutcome(coupon)
}

// ValidateByQRToken classifies a coupon looked up by its QR token. A tenantID
// of zero is the anonymous customer flow.
func (s *RedemptionService) ValidateByQRToken(token string, tenantID uint) (*ValidationOutcome, error) {
	coupon, err := s.couponRepo.GetByQRToken(token, tenantID)
	if err != nil {
		return nil, err
	}
	return s.buildOutcome(coupon)
}

// RedeemByCode commits a redemption for a code lookup (staff manual flow).
func (s *RedemptionService) RedeemByCode(code string, tenantID uint, req RedeemRequest) (*RedemptionReceipt, error) {
	if err := validateRedeemRequest(&req); err != nil {
		return nil, err
	}
	coupon, err := s.couponRepo.GetByCode(code, tenantID)
	if err != nil {
		return nil, err
	}
	return s.redeem(coupon, req)
}

// RedeemByQRToken commits a redemption for a QR lookup. A tenantID of zero is
// the anonymous customer flow.
func (s *RedemptionService) RedeemByQRToken(token string, tenantID uint, req RedeemRequest) (*RedemptionReceipt, error) {
	if err := validateRedeemRequest(&req); err != nil {
		return nil, err
	}
	coupon, err := s.couponRepo.GetByQRToken(token, tenantID)
	if err != nil {
		return nil, err
	}
	return s.redeem(coupon, req)
}

func validateRedeemRequest(req *RedeemRequest) error {
	if req.OriginalAmount.Decimal.LessThanOrEqual(decimal.Zero) {
		return ErrAmountInvalid
	}
	switch strings.TrimSpace(req.Channel) {
	case constants.RedemptionChannelQRWeb,
		constants.RedemptionChannelQRAdmin,
		constants.RedemptionChannelManual,
		constants.RedemptionChannelAPI:
	default:
		// channel only affects audit metadata, never eligibility
		req.Channel = constants.RedemptionChannelAPI
	}
	return nil
}

func (s *RedemptionService) buildOutcome(coupon *models.Coupon) (*ValidationOutcome, error) {
	eval := EvaluateCoupon(coupon, time.Now())
	outcome := &ValidationOutcome{
		Eligibility: eval.Eligibility,
		Reason:      eval.Reason,
	}
	if coupon == nil {
		return outcome, nil
	}

	summary := &CouponSummary{
		ID:           coupon.ID,
		Code:         coupon.Code,
		Status:       coupon.Status,
		CampaignID:   coupon.CampaignID,
		CustomerName: coupon.CustomerName,
		ExpiresAt:    coupon.ExpiresAt,
		RedeemedAt:   coupon.RedeemedAt,
	}
	if campaign, err := s.campaignRepo.GetByID(coupon.CampaignID); err != nil {
		return nil, err
	} else if campaign != nil {
		summary.CampaignTitle = campaign.Title
	}
	outcome.Coupon = summary

	if eval.Eligibility != EligibilityValid {
		return outcome, nil
	}

	reward, err := s.rewardRepo.GetByCampaignID(coupon.CampaignID)
	if err != nil {
		return nil, err
	}
	if reward != nil {
		outcome.Reward = &RewardSummary{
			Type:        reward.Type,
			Description: reward.Description,
			Value:       reward.Value,
			MinPurchase: reward.MinPurchase,
			UsageLimit:  reward.EffectiveUsageLimit(),
			UsageCount:  reward.UsageCount,
		}
	}
	return outcome, nil
}

// redeem re-runs the full eligibility chain and commits the REDEEMED
// transition, the usage-count increment and the audit record as one
// transaction. The conditional updates make two concurrent attempts resolve
// to exactly one success.
func (s *RedemptionService) redeem(coupon *models.Coupon, req RedeemRequest) (*RedemptionReceipt, error) {
	now := time.Now()

	eval := EvaluateCoupon(coupon, now)
	if err := eval.EligibilityError(); err != nil {
		return nil, err
	}

	reward, err := s.rewardRepo.GetByCampaignID(coupon.CampaignID)
	if err != nil {
		return nil, err
	}

	hasReward := reward != nil && strings.TrimSpace(reward.Type) != "" &&
		strings.TrimSpace(reward.Type) != constants.RewardTypeNone
	if hasReward {
		if reward.UsageCount >= reward.EffectiveUsageLimit() {
			return nil, ErrCouponExhausted
		}
		if req.OriginalAmount.Decimal.LessThan(reward.MinPurchase.Decimal) {
			return nil, &InsufficientAmountError{Minimum: reward.MinPurchase}
		}
	}

	discount, final := s.resolver.ComputeDiscount(reward, req.OriginalAmount)

	record := &models.Redemption{
		CouponID:       coupon.ID,
		TenantID:       coupon.TenantID,
		Channel:        req.Channel,
		RedeemedBy:     req.RedeemedBy,
		OriginalAmount: req.OriginalAmount,
		DiscountAmount: discount,
		FinalAmount:    final,
		Location:       req.Location,
		Metadata:       req.Metadata,
		Success:        true,
		Message:        "redeemed",
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		couponRepo := s.couponRepo.WithTx(tx)
		rewardRepo := s.rewardRepo.WithTx(tx)
		redemptionRepo := s.redemptionRepo.WithTx(tx)

		affected, err := couponRepo.MarkRedeemed(coupon.ID, now, req.RedeemedBy)
		if err != nil {
			return err
		}
		if affected == 0 {
			// a concurrent request committed first
			return ErrCouponAlreadyRedeemed
		}

		if hasReward {
			affected, err = rewardRepo.IncrementUsageCount(reward.ID, reward.EffectiveUsageLimit())
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrCouponExhausted
			}
		}

		return redemptionRepo.Create(record)
	})
	if err != nil {
		return nil, err
	}

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueRedemptionNotify(queue.RedemptionNotifyPayload{
			RedemptionID: record.ID,
			CouponID:     coupon.ID,
			TenantID:     coupon.TenantID,
			Channel:      req.Channel,
		}); err != nil {
			logger.Warnw("redemption_notify_enqueue_failed",
				"redemption_id", record.ID,
				"coupon_id", coupon.ID,
				"error", err,
			)
		}
	}

	return &RedemptionReceipt{
		RedemptionID:   record.ID,
		CouponID:       coupon.ID,
		Code:           coupon.Code,
		CampaignID:     coupon.CampaignID,
		Channel:        req.Channel,
		OriginalAmount: req.OriginalAmount,
		DiscountAmount: discount,
		FinalAmount:    final,
		RedeemedAt:     now,
		RedeemedBy:     req.RedeemedBy,
	}, nil
}

// ListRedemptions returns the audit history for a tenant.
func (s *RedemptionService) ListRedemptions(filter repository.RedemptionListFilter) ([]models.Redemption, int64, error) {
	return s.redemptionRepo.List(filter)
}
