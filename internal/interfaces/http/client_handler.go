package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
)

// ClientHandler trata as requisições HTTP de clientes.
type ClientHandler struct {
	ctrl *state.Controller
}

// NewClientHandler constrói o handler.
func NewClientHandler(ctrl *state.Controller) *ClientHandler {
	return &ClientHandler{ctrl: ctrl}
}

// List GET /api/clientes
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, status := h.ctrl.Clients()
	c.Set("X-Collection-Status", string(status))
	return c.JSON(list)
}

// Create POST /api/clientes
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	client, err := h.ctrl.CreateClient(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// Update PUT /api/clientes/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	client, err := h.ctrl.UpdateClient(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clientes/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.ctrl.DeleteClient(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StartEdit POST /api/clientes/:id/edicao
func (h *ClientHandler) StartEdit(c *fiber.Ctx) error {
	if err := h.ctrl.StartEditClient(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"editing": h.ctrl.EditingClient()})
}

// CancelEdit DELETE /api/clientes/edicao
func (h *ClientHandler) CancelEdit(c *fiber.Ctx) error {
	h.ctrl.CancelEditClient()
	return c.SendStatus(fiber.StatusNoContent)
}
