package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
)

// ServiceHandler trata as requisições HTTP do catálogo de serviços.
type ServiceHandler struct {
	ctrl *state.Controller
}

// NewServiceHandler constrói o handler.
func NewServiceHandler(ctrl *state.Controller) *ServiceHandler {
	return &ServiceHandler{ctrl: ctrl}
}

// List GET /api/servicos
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	list, status := h.ctrl.Services()
	c.Set("X-Collection-Status", string(status))
	return c.JSON(list)
}

// Create POST /api/servicos
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	service, err := h.ctrl.CreateService(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// Update PUT /api/servicos/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	service, err := h.ctrl.UpdateService(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(service)
}

// Delete DELETE /api/servicos/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.ctrl.DeleteService(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StartEdit POST /api/servicos/:id/edicao
func (h *ServiceHandler) StartEdit(c *fiber.Ctx) error {
	if err := h.ctrl.StartEditService(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"editing": h.ctrl.EditingService()})
}

// CancelEdit DELETE /api/servicos/edicao
func (h *ServiceHandler) CancelEdit(c *fiber.Ctx) error {
	h.ctrl.CancelEditService()
	return c.SendStatus(fiber.StatusNoContent)
}
