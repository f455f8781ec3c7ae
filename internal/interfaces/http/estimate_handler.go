package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
)

// EstimateHandler expõe a calculadora de custos de projeto.
type EstimateHandler struct {
	ctrl *state.Controller
}

// NewEstimateHandler constrói o handler.
func NewEstimateHandler(ctrl *state.Controller) *EstimateHandler {
	return &EstimateHandler{ctrl: ctrl}
}

// Calculate POST /api/calculadora
//
// Sem persistência: recebe os parâmetros do formulário e devolve a
// decomposição do custo na hora.
func (h *EstimateHandler) Calculate(c *fiber.Ctx) error {
	var in dto.EstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	return c.JSON(h.ctrl.Estimate(in))
}
