package public

import (
	"github.com/lealtad-next/internal/provider"
)

// Handler serves the public, unauthenticated API: the tenant landing config
// and the customer self-service redemption flow.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
