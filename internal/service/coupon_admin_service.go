package service

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/lealtad-next/internal/config"
	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/repository"

	"github.com/google/uuid"
)

// Ambiguous glyphs (0/O, 1/I) are excluded since codes are read out loud and
// typed by hand at the counter.
const couponCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const couponCodeMaxRetries = 5

// CouponAdminService issues and manages coupons for tenant staff.
type CouponAdminService struct {
	campaignRepo repository.CampaignRepository
	couponRepo   repository.CouponRepository
	cfg          config.CouponConfig
}

// NewCouponAdminService creates a coupon admin service.
func NewCouponAdminService(
	campaignRepo repository.CampaignRepository,
	couponRepo repository.CouponRepository,
	cfg config.CouponConfig,
) *CouponAdminService {
	return &CouponAdminService{
		campaignRepo: campaignRepo,
		couponRepo:   couponRepo,
		cfg:          cfg,
	}
}

// CouponRecipient identifies one customer in an issuance batch.
type CouponRecipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IssueInput is the batch issuance payload.
type IssueInput struct {
	Recipients []CouponRecipient
	ExpiresAt  *time.Time
}

// Issue creates one coupon per recipient for a campaign. Every coupon gets a
// unique human-readable code and an opaque QR token.
func (s *CouponAdminService) Issue(tenantID, campaignID uint, input IssueInput) ([]*models.Coupon, error) {
	maxBatch := s.cfg.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = 1000
	}
	if len(input.Recipients) == 0 || len(input.Recipients) > maxBatch {
		return nil, ErrBatchSizeInvalid
	}

	campaign, err := s.campaignRepo.GetByIDForTenant(campaignID, tenantID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	expiresAt := input.ExpiresAt
	if expiresAt == nil {
		days := s.cfg.DefaultExpiry
		if days <= 0 {
			days = 90
		}
		deadline := time.Now().AddDate(0, 0, days)
		expiresAt = &deadline
	}

	coupons := make([]*models.Coupon, 0, len(input.Recipients))
	for _, recipient := range input.Recipients {
		code, err := s.generateCouponCode()
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, &models.Coupon{
			CampaignID:    campaign.ID,
			TenantID:      tenantID,
			Code:          code,
			QRToken:       uuid.NewString(),
			Status:        constants.CouponStatusCreated,
			ExpiresAt:     expiresAt,
			CustomerName:  strings.TrimSpace(recipient.Name),
			CustomerEmail: strings.ToLower(strings.TrimSpace(recipient.Email)),
		})
	}

	if err := s.couponRepo.CreateBatch(coupons); err != nil {
		if isUniqueViolation(err) {
			// regenerate the whole batch once on a code collision
			for _, coupon := range coupons {
				code, genErr := s.generateCouponCode()
				if genErr != nil {
					return nil, genErr
				}
				coupon.ID = 0
				coupon.Code = code
				coupon.QRToken = uuid.NewString()
			}
			if err := s.couponRepo.CreateBatch(coupons); err != nil {
				return nil, err
			}
			return coupons, nil
		}
		return nil, err
	}
	return coupons, nil
}

// MarkSent moves a CREATED coupon to SENT once delivery is handed off.
func (s *CouponAdminService) MarkSent(tenantID, couponID uint) (*models.Coupon, error) {
	coupon, err := s.getScopedCoupon(tenantID, couponID)
	if err != nil {
		return nil, err
	}
	if coupon.Status != constants.CouponStatusCreated {
		return nil, ErrCouponNotEligible
	}
	if err := s.couponRepo.UpdateStatus(coupon.ID, constants.CouponStatusSent); err != nil {
		return nil, err
	}
	coupon.Status = constants.CouponStatusSent
	return coupon, nil
}

// MarkActive moves a CREATED or SENT coupon to ACTIVE.
func (s *CouponAdminService) MarkActive(tenantID, couponID uint) (*models.Coupon, error) {
	coupon, err := s.getScopedCoupon(tenantID, couponID)
	if err != nil {
		return nil, err
	}
	if coupon.Status != constants.CouponStatusCreated && coupon.Status != constants.CouponStatusSent {
		return nil, ErrCouponNotEligible
	}
	if err := s.couponRepo.UpdateStatus(coupon.ID, constants.CouponStatusActive); err != nil {
		return nil, err
	}
	coupon.Status = constants.CouponStatusActive
	return coupon, nil
}

// Cancel moves a coupon to CANCELLED. Terminal coupons are left untouched.
func (s *CouponAdminService) Cancel(tenantID, couponID uint) (*models.Coupon, error) {
	coupon, err := s.getScopedCoupon(tenantID, couponID)
	if err != nil {
		return nil, err
	}
	affected, err := s.couponRepo.MarkCancelled(coupon.ID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCouponNotEligible
	}
	coupon.Status = constants.CouponStatusCancelled
	return coupon, nil
}

// List returns coupons matching the filter.
func (s *CouponAdminService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}

func (s *CouponAdminService) getScopedCoupon(tenantID, couponID uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(couponID)
	if err != nil {
		return nil, err
	}
	if coupon == nil || (tenantID > 0 && coupon.TenantID != tenantID) {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

func (s *CouponAdminService) generateCouponCode() (string, error) {
	length := s.cfg.CodeLength
	if length <= 0 {
		length = 10
	}
	var builder strings.Builder
	builder.Grow(length)
	max := big.NewInt(int64(len(couponCodeAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(couponCodeAlphabet[n.Int64()])
	}
	return builder.String(), nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
