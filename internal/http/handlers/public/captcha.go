package public

import (
	"errors"

	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha returns a fresh image challenge for the login form.
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil {
		respondError(c, response.CodeInternal, "error.captcha_config_invalid", service.ErrCaptchaConfigInvalid)
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		if errors.Is(err, service.ErrCaptchaConfigInvalid) {
			respondError(c, response.CodeBadRequest, "error.captcha_config_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.captcha_config_invalid", err)
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
