package i18n

// messages holds the per-locale catalogs. Every rejection in the redemption
// taxonomy keeps its own key: the redemption screens branch their presentation
// per category, so a generic error string is not enough.
var messages = map[string]map[string]string{
	"es": {
		"success": "operación exitosa",

		"error.bad_request":  "solicitud inválida",
		"error.unauthorized": "no autorizado",
		"error.forbidden":    "acceso denegado",
		"error.not_found":    "recurso no encontrado",
		"error.internal":     "error interno del servidor",

		"error.auth_header_missing":     "falta el encabezado de autorización",
		"error.auth_header_invalid":     "encabezado de autorización inválido",
		"error.token_invalid":           "token inválido",
		"error.token_revoked":           "la sesión ha sido revocada",
		"error.jwt_secret_missing":      "configuración de autenticación incompleta",
		"error.invalid_credentials":     "usuario o contraseña incorrectos",
		"error.login_too_many":          "demasiados intentos de inicio de sesión, intenta en %d segundos",
		"error.rate_limited":            "demasiadas solicitudes, intenta en %d segundos",
		"error.rate_limit_unavailable":  "servicio no disponible, intenta más tarde",
		"error.captcha_required":        "se requiere el código de verificación",
		"error.captcha_invalid":         "código de verificación incorrecto",
		"error.account_disabled":        "la cuenta está deshabilitada",
		"error.password_old_invalid":    "la contraseña actual es incorrecta",
		"error.password_weak":           "la contraseña debe tener al menos 8 caracteres con letras y números",
		"error.captcha_config_invalid":  "configuración del código de verificación inválida",
		"error.admin_id_invalid":        "identificador de usuario inválido",
		"error.admin_id_type_invalid":   "identificador de usuario con tipo inválido",
		"error.tenant_missing":          "no se pudo resolver el negocio del usuario",
		"error.tenant_not_found":        "negocio no encontrado",
		"error.password_update_failed":  "no se pudo actualizar la contraseña",

		"error.campaign_not_found":      "campaña no encontrada",
		"error.campaign_invalid":        "datos de campaña inválidos",
		"error.campaign_dates_invalid":  "la fecha de fin debe ser posterior a la de inicio",
		"error.campaign_title_required": "la campaña necesita un título",
		"error.campaign_incomplete":     "la campaña no está lista para activarse",
		"error.campaign_status_invalid": "estado de campaña inválido",
		"error.campaign_create_failed":  "no se pudo crear la campaña",
		"error.campaign_update_failed":  "no se pudo actualizar la campaña",

		"error.reward_not_found":            "recompensa no encontrada",
		"error.reward_type_required":        "selecciona un tipo de recompensa",
		"error.reward_description_required": "la descripción de la recompensa es obligatoria",
		"error.reward_description_too_long": "la descripción no puede superar los 500 caracteres",
		"error.reward_percent_range":        "el porcentaje debe ser mayor que 0 y hasta 100",
		"error.reward_fixed_positive":       "el monto fijo debe ser mayor que 0",
		"error.reward_product_required":     "selecciona el producto gratuito",
		"error.reward_quantities_positive":  "las cantidades de compra y regalo deben ser mayores que 0",
		"error.reward_custom_required":      "describe la configuración personalizada",
		"error.reward_save_failed":          "no se pudo guardar la recompensa",

		"error.coupon_not_found":        "cupón inválido o no encontrado",
		"error.coupon_already_redeemed": "este cupón ya fue canjeado",
		"error.coupon_expired":          "este cupón ha expirado",
		"error.coupon_not_eligible":     "este cupón no puede canjearse",
		"error.coupon_exhausted":        "la recompensa alcanzó su límite de usos",
		"error.coupon_invalid":          "datos de cupón inválidos",
		"error.coupon_issue_failed":     "no se pudieron emitir los cupones",
		"error.coupon_cancel_failed":    "no se pudo cancelar el cupón",
		"error.coupon_batch_invalid":    "el lote debe incluir entre 1 y el máximo de destinatarios permitido",

		"error.redemption_insufficient_amount": "el monto de compra es menor al mínimo requerido (%s)",
		"error.redemption_amount_invalid":      "el monto de compra debe ser un número mayor que 0",
		"error.redemption_failed":              "no se pudo completar el canje, intenta de nuevo",

		"message.redemption_success": "cupón canjeado con éxito",

		"missing.campaign_title":    "agrega un título a la campaña",
		"missing.campaign_schedule": "define una fecha de inicio anterior a la de fin",
		"missing.campaign_channels": "configura al menos un canal de distribución",
		"missing.campaign_reward":   "adjunta una recompensa o confirma que la campaña no tendrá una",
	},
	"en": {
		"success": "success",

		"error.bad_request":  "bad request",
		"error.unauthorized": "unauthorized",
		"error.forbidden":    "forbidden",
		"error.not_found":    "resource not found",
		"error.internal":     "internal server error",

		"error.auth_header_missing":     "authorization header missing",
		"error.auth_header_invalid":     "authorization header invalid",
		"error.token_invalid":           "invalid token",
		"error.token_revoked":           "session has been revoked",
		"error.jwt_secret_missing":      "authentication is not configured",
		"error.invalid_credentials":     "invalid username or password",
		"error.login_too_many":          "too many login attempts, retry in %d seconds",
		"error.rate_limited":            "too many requests, retry in %d seconds",
		"error.rate_limit_unavailable":  "service unavailable, try again later",
		"error.captcha_required":        "captcha is required",
		"error.captcha_invalid":         "captcha code is incorrect",
		"error.account_disabled":        "this account is disabled",
		"error.password_old_invalid":    "current password is incorrect",
		"error.password_weak":           "password needs at least 8 characters mixing letters and digits",
		"error.captcha_config_invalid":  "captcha configuration is invalid",
		"error.admin_id_invalid":        "invalid staff identifier",
		"error.admin_id_type_invalid":   "staff identifier has an invalid type",
		"error.tenant_missing":          "could not resolve the caller's business",
		"error.tenant_not_found":        "business not found",
		"error.password_update_failed":  "could not update the password",

		"error.campaign_not_found":      "campaign not found",
		"error.campaign_invalid":        "invalid campaign data",
		"error.campaign_dates_invalid":  "end date must be after start date",
		"error.campaign_title_required": "campaign needs a title",
		"error.campaign_incomplete":     "campaign is not ready to be activated",
		"error.campaign_status_invalid": "invalid campaign status",
		"error.campaign_create_failed":  "could not create the campaign",
		"error.campaign_update_failed":  "could not update the campaign",

		"error.reward_not_found":            "reward not found",
		"error.reward_type_required":        "select a reward type",
		"error.reward_description_required": "reward description is required",
		"error.reward_description_too_long": "description cannot exceed 500 characters",
		"error.reward_percent_range":        "percentage must be greater than 0 and at most 100",
		"error.reward_fixed_positive":       "fixed amount must be greater than 0",
		"error.reward_product_required":     "select the free product",
		"error.reward_quantities_positive":  "buy and free quantities must be greater than 0",
		"error.reward_custom_required":      "describe the custom configuration",
		"error.reward_save_failed":          "could not save the reward",

		"error.coupon_not_found":        "invalid or unknown coupon",
		"error.coupon_already_redeemed": "this coupon has already been redeemed",
		"error.coupon_expired":          "this coupon has expired",
		"error.coupon_not_eligible":     "this coupon cannot be redeemed",
		"error.coupon_exhausted":        "the reward reached its usage limit",
		"error.coupon_invalid":          "invalid coupon data",
		"error.coupon_issue_failed":     "could not issue the coupons",
		"error.coupon_cancel_failed":    "could not cancel the coupon",
		"error.coupon_batch_invalid":    "batch must contain between 1 and the allowed maximum of recipients",

		"error.redemption_insufficient_amount": "purchase amount is below the required minimum (%s)",
		"error.redemption_amount_invalid":      "purchase amount must be a number greater than 0",
		"error.redemption_failed":              "could not complete the redemption, try again",

		"message.redemption_success": "coupon redeemed successfully",

		"missing.campaign_title":    "add a title to the campaign",
		"missing.campaign_schedule": "set a start date earlier than the end date",
		"missing.campaign_channels": "configure at least one distribution channel",
		"missing.campaign_reward":   "attach a reward or confirm the campaign intentionally has none",
	},
}
