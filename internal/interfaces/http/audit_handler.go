package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ledger/internal/application/audit"
	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
)

// AuditHandler lectura del log de auditoría (solo admin).
type AuditHandler struct {
	auditor *audit.Auditor
}

// NewAuditHandler construye el handler.
func NewAuditHandler(auditor *audit.Auditor) *AuditHandler {
	return &AuditHandler{auditor: auditor}
}

// ListByEntity godoc
// @Summary      Log de auditoría de una entidad
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        entity_type  path   string  true   "transaction, item, vendor, batch"
// @Param        entity_id    path   string  true   "ID de la entidad"
// @Param        limit        query  int     false  "tamaño de página"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {array}  entity.AuditLogEntry
// @Router       /api/audit/{entity_type}/{entity_id} [get]
func (h *AuditHandler) ListByEntity(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	entries, err := h.auditor.ListByEntity(c.Params("entity_type"), c.Params("entity_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
