package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ledger/internal/application/batch"
	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/application/ledger"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// BatchHandler maneja las peticiones HTTP de lotes de compra (protegido).
type BatchHandler struct {
	uc      *batch.OpenBatchUseCase
	queryUC *ledger.QueryUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *batch.OpenBatchUseCase, queryUC *ledger.QueryUseCase) *BatchHandler {
	return &BatchHandler{uc: uc, queryUC: queryUC}
}

// Open godoc
// @Summary      Abrir lote de compra
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenBatchRequest  true  "vendor_id, transaction_date opcional, notes"
// @Success      201   {object}  dto.BatchResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.VendorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "vendor_id es requerido"})
	}
	var txnDate time.Time
	if in.TransactionDate != nil {
		txnDate = *in.TransactionDate
	}
	res, err := h.uc.Open(c.Context(), GetUserID(c), in.VendorID, txnDate, in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchResponse(res.Batch))
}

// GetByID godoc
// @Summary      Obtener lote
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	b, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toBatchResponse(b))
}

// ListTransactions godoc
// @Summary      Entradas del ledger de un lote
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del lote"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/batches/{id}/transactions [get]
func (h *BatchHandler) ListTransactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	txns, err := h.queryUC.ListByBatch(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	return c.JSON(out)
}

func toBatchResponse(b *entity.InventoryBatch) dto.BatchResponse {
	return dto.BatchResponse{
		ID:              b.ID,
		VendorID:        b.VendorID,
		TransactionDate: b.TransactionDate,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		CreatedBy:       b.CreatedBy,
	}
}
