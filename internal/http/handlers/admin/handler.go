package admin

import (
	handlershared "github.com/lealtad-next/internal/http/handlers/shared"
	"github.com/lealtad-next/internal/provider"
)

// Handler serves the staff console API.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}
