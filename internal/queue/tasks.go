package queue

import (
	"encoding/json"

	"github.com/lealtad-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskRedemptionNotify notifies the tenant about a successful redemption.
	TaskRedemptionNotify = constants.TaskRedemptionNotify
	// TaskCouponExpire sweeps overdue coupons into EXPIRED.
	TaskCouponExpire = constants.TaskCouponExpire
)

// RedemptionNotifyPayload is the redemption notification task payload.
type RedemptionNotifyPayload struct {
	RedemptionID uint   `json:"redemption_id"`
	CouponID     uint   `json:"coupon_id"`
	TenantID     uint   `json:"tenant_id"`
	Channel      string `json:"channel"`
}

// CouponExpirePayload is the expiry sweep task payload. TenantID zero sweeps
// every tenant.
type CouponExpirePayload struct {
	TenantID uint `json:"tenant_id"`
}

// NewRedemptionNotifyTask creates a redemption notification task.
func NewRedemptionNotifyTask(payload RedemptionNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRedemptionNotify, body), nil
}

// NewCouponExpireTask creates an expiry sweep task.
func NewCouponExpireTask(payload CouponExpirePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCouponExpire, body), nil
}
