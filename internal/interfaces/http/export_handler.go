package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/viniciushcruz95-cmd/Verde-Oeste-hidrosemeadura/internal/application/state"
)

// ExportHandler entrega o snapshot JSON das coleções para backup.
type ExportHandler struct {
	ctrl *state.Controller
}

// NewExportHandler constrói o handler.
func NewExportHandler(ctrl *state.Controller) *ExportHandler {
	return &ExportHandler{ctrl: ctrl}
}

// Export GET /api/export
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	doc := h.ctrl.Export()
	filename := "verde-oeste-" + time.Now().UTC().Format("2006-01-02") + ".json"
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(doc)
}
