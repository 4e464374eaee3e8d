package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/application/snapshot"
)

// SnapshotHandler lecturas de valoración: MAC vigente e historial (protegido).
type SnapshotHandler struct {
	uc *snapshot.QueryUseCase
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(uc *snapshot.QueryUseCase) *SnapshotHandler {
	return &SnapshotHandler{uc: uc}
}

// CurrentMac godoc
// @Summary      MAC vigente de un ítem
// @Description  Devuelve el snapshot de valoración más reciente: cantidad en
//
//	mano, costo promedio móvil y valor total.
//
// @Tags         valuation
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.SnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/mac [get]
func (h *SnapshotHandler) CurrentMac(c *fiber.Ctx) error {
	snap, err := h.uc.CurrentMac(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSnapshotResponse(snap))
}

// History godoc
// @Summary      Historial de valoración de un ítem
// @Tags         valuation
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del ítem"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.SnapshotResponse
// @Router       /api/items/{id}/mac/history [get]
func (h *SnapshotHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	snaps, err := h.uc.History(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SnapshotResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, toSnapshotResponse(s))
	}
	return c.JSON(out)
}
