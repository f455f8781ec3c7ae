package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
)

// TravelExpenseHandler trata as requisições HTTP de viáticos.
type TravelExpenseHandler struct {
	ctrl *state.Controller
}

// NewTravelExpenseHandler constrói o handler.
func NewTravelExpenseHandler(ctrl *state.Controller) *TravelExpenseHandler {
	return &TravelExpenseHandler{ctrl: ctrl}
}

// List GET /api/viaticos
func (h *TravelExpenseHandler) List(c *fiber.Ctx) error {
	list, status := h.ctrl.TravelExpenses()
	c.Set("X-Collection-Status", string(status))
	return c.JSON(list)
}

// Create POST /api/viaticos
func (h *TravelExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTravelExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	expense, err := h.ctrl.CreateTravelExpense(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// Update PUT /api/viaticos/:id
func (h *TravelExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTravelExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	expense, err := h.ctrl.UpdateTravelExpense(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expense)
}

// Delete DELETE /api/viaticos/:id
func (h *TravelExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.ctrl.DeleteTravelExpense(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StartEdit POST /api/viaticos/:id/edicao
func (h *TravelExpenseHandler) StartEdit(c *fiber.Ctx) error {
	if err := h.ctrl.StartEditTravelExpense(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"editing": h.ctrl.EditingTravelExpense()})
}

// CancelEdit DELETE /api/viaticos/edicao
func (h *TravelExpenseHandler) CancelEdit(c *fiber.Ctx) error {
	h.ctrl.CancelEditTravelExpense()
	return c.SendStatus(fiber.StatusNoContent)
}
