package worker

import (
	"context"
	"errors"
	"time"

	"github.com/lealtad-next/internal/config"
	"github.com/lealtad-next/internal/logger"
	"github.com/lealtad-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Service runs the async queue consumer plus the periodic expiry sweep.
type Service struct {
	name          string
	server        *asynq.Server
	mux           *asynq.ServeMux
	consumer      *Consumer
	sweepInterval time.Duration
}

// NewService creates the worker service.
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)

	interval := time.Duration(cfg.ExpireSweepMinutes) * time.Minute
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Service{
		name:          "worker",
		server:        server,
		mux:           mux,
		consumer:      consumer,
		sweepInterval: interval,
	}, nil
}

// Name returns the service name.
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the consumer and the sweep loop until the context ends.
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.CouponRepo != nil {
		go s.runExpireSweepLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop shuts the consumer down.
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runExpireSweepLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.CouponRepo == nil {
		return
	}
	runOnce := func() {
		swept, err := s.consumer.CouponRepo.ExpireDue(time.Now())
		if err != nil {
			logger.Warnw("worker_expire_sweep_failed", "error", err)
			return
		}
		if swept > 0 {
			logger.Infow("worker_expire_sweep_done", "count", swept)
		}
	}
	runOnce()

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
