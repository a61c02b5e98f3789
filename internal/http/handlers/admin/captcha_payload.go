package admin

import "github.com/lealtad-next/internal/service"

// CaptchaPayloadRequest is the captcha slice of a login request.
type CaptchaPayloadRequest struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

func (r CaptchaPayloadRequest) toServicePayload() service.CaptchaVerifyPayload {
	return service.CaptchaVerifyPayload{
		CaptchaID:   r.CaptchaID,
		CaptchaCode: r.CaptchaCode,
	}
}
