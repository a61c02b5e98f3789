package service

import (
	"strings"
	"sync"
	"time"

	"github.com/lealtad-next/internal/config"
	"github.com/lealtad-next/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaVerifyPayload is the verification input attached to a login request.
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge is a generated image challenge.
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService guards the staff login form. Provider "none" disables it.
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu         sync.Mutex
	imageStore base64Captcha.Store
}

// NewCaptchaService creates a captcha service.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Enabled reports whether login requires a captcha.
func (s *CaptchaService) Enabled() bool {
	return s != nil && strings.TrimSpace(s.cfg.Provider) == constants.CaptchaProviderImage
}

// GenerateImageChallenge generates an image challenge.
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if !s.Enabled() {
		return nil, ErrCaptchaConfigInvalid
	}

	store := s.ensureImageStore()
	driver := base64Captcha.NewDriverString(
		s.cfg.Image.Height,
		s.cfg.Image.Width,
		s.cfg.Image.NoiseCount,
		s.cfg.Image.ShowLine,
		s.cfg.Image.Length,
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, store)
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}

	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify checks a challenge answer. A no-op when captcha is disabled.
func (s *CaptchaService) Verify(payload CaptchaVerifyPayload) error {
	if !s.Enabled() {
		return nil
	}

	captchaID := strings.TrimSpace(payload.CaptchaID)
	captchaCode := strings.TrimSpace(payload.CaptchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	if !s.ensureImageStore().Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureImageStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageStore != nil {
		return s.imageStore
	}
	maxStore := s.cfg.Image.MaxStore
	if maxStore <= 0 {
		maxStore = 10240
	}
	expire := s.cfg.Image.ExpireSeconds
	if expire <= 0 {
		expire = 300
	}
	s.imageStore = base64Captcha.NewMemoryStore(maxStore, time.Duration(expire)*time.Second)
	return s.imageStore
}
