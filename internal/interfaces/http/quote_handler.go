package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/dto"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
)

// QuoteHandler trata as requisições HTTP de orçamentos.
type QuoteHandler struct {
	ctrl *state.Controller
}

// NewQuoteHandler constrói o handler.
func NewQuoteHandler(ctrl *state.Controller) *QuoteHandler {
	return &QuoteHandler{ctrl: ctrl}
}

// List GET /api/orcamentos
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	list, status := h.ctrl.Quotes()
	c.Set("X-Collection-Status", string(status))
	return c.JSON(list)
}

// Create POST /api/orcamentos
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.ctrl.CreateQuote(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// Update PUT /api/orcamentos/:id
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.ctrl.UpdateQuote(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(quote)
}

// Delete DELETE /api/orcamentos/:id
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.ctrl.DeleteQuote(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StartEdit POST /api/orcamentos/:id/edicao
func (h *QuoteHandler) StartEdit(c *fiber.Ctx) error {
	if err := h.ctrl.StartEditQuote(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"editing": h.ctrl.EditingQuote()})
}

// CancelEdit DELETE /api/orcamentos/edicao
func (h *QuoteHandler) CancelEdit(c *fiber.Ctx) error {
	h.ctrl.CancelEditQuote()
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF GET /api/orcamentos/:id/pdf
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := h.ctrl.QuotePDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orcamento-`+id+`.pdf"`)
	return c.Send(doc)
}
