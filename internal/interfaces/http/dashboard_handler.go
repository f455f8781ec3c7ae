package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
)

// DashboardHandler expõe os contadores e o resumo financeiro.
type DashboardHandler struct {
	ctrl *state.Controller
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(ctrl *state.Controller) *DashboardHandler {
	return &DashboardHandler{ctrl: ctrl}
}

// Summary GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.ctrl.Dashboard())
}
