package provider

import (
	"github.com/lealtad-next/internal/authz"
	"github.com/lealtad-next/internal/cache"
	"github.com/lealtad-next/internal/config"
	"github.com/lealtad-next/internal/logger"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/queue"
	"github.com/lealtad-next/internal/repository"
	"github.com/lealtad-next/internal/service"
)

// Container wires repositories and services.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	TenantRepo     repository.TenantRepository
	AdminRepo      repository.AdminRepository
	CampaignRepo   repository.CampaignRepository
	RewardRepo     repository.RewardRepository
	CouponRepo     repository.CouponRepository
	RedemptionRepo repository.RedemptionRepository

	// Services
	AuthzService         *authz.Service
	AuthService          *service.AuthService
	CaptchaService       *service.CaptchaService
	RewardResolver       *service.RewardResolver
	CampaignValidator    *service.CampaignValidator
	CampaignAdminService *service.CampaignAdminService
	RewardAdminService   *service.RewardAdminService
	CouponAdminService   *service.CouponAdminService
	RedemptionService    *service.RedemptionService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.TenantRepo = repository.NewTenantRepository(db)
	c.AdminRepo = repository.NewAdminRepository(db)
	c.CampaignRepo = repository.NewCampaignRepository(db)
	c.RewardRepo = repository.NewRewardRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.RedemptionRepo = repository.NewRedemptionRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.RewardResolver = service.NewRewardResolver()
	c.CampaignValidator = service.NewCampaignValidator()
	c.CampaignAdminService = service.NewCampaignAdminService(c.CampaignRepo, c.RewardRepo, c.CouponRepo, c.CampaignValidator)
	c.RewardAdminService = service.NewRewardAdminService(c.CampaignRepo, c.RewardRepo, c.RewardResolver)
	c.CouponAdminService = service.NewCouponAdminService(c.CampaignRepo, c.CouponRepo, c.Config.Coupon)
	c.RedemptionService = service.NewRedemptionService(c.CouponRepo, c.RewardRepo, c.RedemptionRepo, c.CampaignRepo, c.RewardResolver, c.QueueClient)
}
