package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lealtad-next/internal/logger"
	"github.com/lealtad-next/internal/provider"
	"github.com/lealtad-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles async tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registers task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskRedemptionNotify, c.handleRedemptionNotify)
	mux.HandleFunc(queue.TaskCouponExpire, c.handleCouponExpire)
}

// handleRedemptionNotify logs the redemption for the tenant's activity feed.
// Delivery channels (email, webhooks) hang off this handler; today it only
// records the event.
func (c *Consumer) handleRedemptionNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_redemption_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.RedemptionNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_redemption_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.CouponID == 0 {
		logger.Debugw("worker_redemption_notify_skip_invalid_payload", "coupon_id", payload.CouponID)
		return nil
	}

	coupon, err := c.CouponRepo.GetByID(payload.CouponID)
	if err != nil {
		logger.Warnw("worker_redemption_notify_fetch_coupon_failed", "coupon_id", payload.CouponID, "error", err)
		return err
	}
	if coupon == nil {
		logger.Debugw("worker_redemption_notify_skip_coupon_not_found", "coupon_id", payload.CouponID)
		return nil
	}

	logger.Infow("redemption_notified",
		"redemption_id", payload.RedemptionID,
		"coupon_id", coupon.ID,
		"coupon_code", coupon.Code,
		"tenant_id", payload.TenantID,
		"channel", payload.Channel,
	)
	return nil
}

// handleCouponExpire flips overdue coupons to EXPIRED.
func (c *Consumer) handleCouponExpire(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_coupon_expire_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CouponExpirePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_coupon_expire_unmarshal_failed", "error", err)
		return err
	}

	swept, err := c.CouponRepo.ExpireDue(time.Now())
	if err != nil {
		logger.Warnw("worker_coupon_expire_sweep_failed", "error", err)
		return err
	}
	if swept > 0 {
		logger.Infow("coupon_expire_swept", "count", swept, "tenant_id", payload.TenantID)
	}
	return nil
}
