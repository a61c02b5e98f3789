package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"

	"gorm.io/gorm"
)

// CouponRepository is the coupon data access interface.
type CouponRepository interface {
	GetByID(id uint) (*models.Coupon, error)
	GetByCode(code string, tenantID uint) (*models.Coupon, error)
	GetByQRToken(token string, tenantID uint) (*models.Coupon, error)
	Create(coupon *models.Coupon) error
	CreateBatch(coupons []*models.Coupon) error
	Update(coupon *models.Coupon) error
	UpdateStatus(id uint, status string) error
	MarkRedeemed(id uint, at time.Time, redeemedBy string) (int64, error)
	MarkCancelled(id uint) (int64, error)
	ExpireDue(now time.Time) (int64, error)
	List(filter CouponListFilter) ([]models.Coupon, int64, error)
	CountByCampaign(campaignID uint) (map[string]int64, error)
	WithTx(tx *gorm.DB) *GormCouponRepository
}

// GormCouponRepository is the GORM implementation.
type GormCouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a coupon repository.
func NewCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCouponRepository) WithTx(tx *gorm.DB) *GormCouponRepository {
	if tx == nil {
		return r
	}
	return &GormCouponRepository{db: tx}
}

// GetByID fetches a coupon by id.
func (r *GormCouponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// GetByCode fetches a coupon by its human-readable code. A tenantID of zero
// skips tenant scoping (platform operators).
func (r *GormCouponRepository) GetByCode(code string, tenantID uint) (*models.Coupon, error) {
	query := r.db.Where("code = ?", strings.TrimSpace(code))
	if tenantID > 0 {
		query = query.Where("tenant_id = ?", tenantID)
	}
	var coupon models.Coupon
	if err := query.First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// GetByQRToken fetches a coupon by its QR token. A tenantID of zero skips
// tenant scoping, which is what the customer-facing scan endpoint uses.
func (r *GormCouponRepository) GetByQRToken(token string, tenantID uint) (*models.Coupon, error) {
	query := r.db.Where("qr_token = ?", strings.TrimSpace(token))
	if tenantID > 0 {
		query = query.Where("tenant_id = ?", tenantID)
	}
	var coupon models.Coupon
	if err := query.First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// Create inserts a coupon.
func (r *GormCouponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

// CreateBatch inserts a batch of coupons in chunks.
func (r *GormCouponRepository) CreateBatch(coupons []*models.Coupon) error {
	if len(coupons) == 0 {
		return nil
	}
	return r.db.CreateInBatches(coupons, 200).Error
}

// Update saves a coupon.
func (r *GormCouponRepository) Update(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

// UpdateStatus updates only the coupon status column.
func (r *GormCouponRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Coupon{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// MarkRedeemed flips the coupon to REDEEMED only if it is not already
// REDEEMED, returning the number of affected rows. A zero result means a
// concurrent caller won the commit.
func (r *GormCouponRepository) MarkRedeemed(id uint, at time.Time, redeemedBy string) (int64, error) {
	result := r.db.Model(&models.Coupon{}).
		Where("id = ? AND status <> ?", id, constants.CouponStatusRedeemed).
		Updates(map[string]interface{}{
			"status":      constants.CouponStatusRedeemed,
			"redeemed_at": at,
			"redeemed_by": redeemedBy,
		})
	return result.RowsAffected, result.Error
}

// MarkCancelled flips the coupon to CANCELLED unless it is already in a
// terminal state, returning the number of affected rows.
func (r *GormCouponRepository) MarkCancelled(id uint) (int64, error) {
	result := r.db.Model(&models.Coupon{}).
		Where("id = ? AND status NOT IN ?", id, []string{
			constants.CouponStatusRedeemed,
			constants.CouponStatusExpired,
			constants.CouponStatusCancelled,
		}).
		Update("status", constants.CouponStatusCancelled)
	return result.RowsAffected, result.Error
}

// ExpireDue flips all overdue non-terminal coupons to EXPIRED and returns
// how many were swept. The redemption path re-checks expiry on read, so the
// sweep only keeps stored statuses in line with wall-clock reality.
func (r *GormCouponRepository) ExpireDue(now time.Time) (int64, error) {
	result := r.db.Model(&models.Coupon{}).
		Where("expires_at IS NOT NULL AND expires_at < ? AND status IN ?", now, []string{
			constants.CouponStatusCreated,
			constants.CouponStatusSent,
			constants.CouponStatusActive,
		}).
		Update("status", constants.CouponStatusExpired)
	return result.RowsAffected, result.Error
}

// List returns coupons matching the filter.
func (r *GormCouponRepository) List(filter CouponListFilter) ([]models.Coupon, int64, error) {
	query := r.db.Model(&models.Coupon{})

	if filter.TenantID > 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.CampaignID > 0 {
		query = query.Where("campaign_id = ?", filter.CampaignID)
	}
	if strings.TrimSpace(filter.Status) != "" {
		query = query.Where("status = ?", strings.TrimSpace(filter.Status))
	}
	if code := strings.TrimSpace(filter.Code); code != "" {
		query = query.Where("code = ?", code)
	}
	if email := strings.TrimSpace(filter.CustomerEmail); email != "" {
		query = query.Where("customer_email = ?", strings.ToLower(email))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var coupons []models.Coupon
	if err := applyPagination(query, filter.Page, filter.PageSize).Order("id desc").Find(&coupons).Error; err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

// CountByCampaign returns per-status coupon counts for a campaign.
func (r *GormCouponRepository) CountByCampaign(campaignID uint) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := r.db.Model(&models.Coupon{}).
		Select("status, count(*) as total").
		Where("campaign_id = ?", campaignID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
