package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/application/ledger"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// LedgerHandler maneja las peticiones HTTP del libro mayor (protegido).
type LedgerHandler struct {
	appendUC  *ledger.AppendUseCase
	correctUC *ledger.CorrectUseCase
	queryUC   *ledger.QueryUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(appendUC *ledger.AppendUseCase, correctUC *ledger.CorrectUseCase, queryUC *ledger.QueryUseCase) *LedgerHandler {
	return &LedgerHandler{appendUC: appendUC, correctUC: correctUC, queryUC: queryUC}
}

// Append godoc
// @Summary      Registrar una entrada en el libro mayor
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendTransactionRequest  true  "type, item_id, quantity con signo, unit_price, shipping"
// @Success      201   {object}  dto.AppendTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *LedgerHandler) Append(c *fiber.Ctx) error {
	var in dto.AppendTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	draft := ledger.TransactionDraft{
		ActorID:      GetUserID(c),
		Type:         in.Type,
		ItemID:       in.ItemID,
		VendorID:     in.VendorID,
		BatchID:      in.BatchID,
		RelatedTxnID: in.RelatedTxnID,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		Shipping:     in.Shipping,
	}
	if in.Timestamp != nil {
		draft.Timestamp = *in.Timestamp
	}
	if in.RefundAmount != nil || in.RestockingFee != nil {
		ret := &ledger.ReturnInput{}
		if in.RefundAmount != nil {
			ret.RefundAmount = *in.RefundAmount
		}
		if in.RestockingFee != nil {
			ret.RestockingFee = *in.RestockingFee
		}
		draft.Return = ret
	}
	res, err := h.appendUC.Append(c.Context(), draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AppendTransactionResponse{
		Transaction:   toTransactionResponse(res.Transaction),
		Snapshot:      toSnapshotResponse(res.Snapshot),
		AuditDegraded: res.AuditDegraded,
	})
}

// Correct godoc
// @Summary      Corregir una entrada del libro mayor
// @Description  Genera un reversal con cantidad negada más la entrada corregida,
//
//	enlazadas por un registro de corrección. La original nunca se muta.
//
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transacción original"
// @Param        body  body  dto.CorrectTransactionRequest  true  "valores corregidos + reason"
// @Success      201   {object}  dto.CorrectTransactionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/corrections [post]
func (h *LedgerHandler) Correct(c *fiber.Ctx) error {
	originalID := c.Params("id")
	var in dto.CorrectTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	draft := ledger.CorrectionDraft{
		ActorID:   GetUserID(c),
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Shipping:  in.Shipping,
		VendorID:  in.VendorID,
		BatchID:   in.BatchID,
	}
	res, err := h.correctUC.Correct(c.Context(), originalID, draft, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CorrectTransactionResponse{
		Reversal:      toTransactionResponse(res.Reversal),
		Corrected:     toTransactionResponse(res.Corrected),
		CorrectionID:  res.Correction.ID,
		Reason:        res.Correction.Reason,
		Snapshot:      toSnapshotResponse(res.Snapshot),
		AuditDegraded: res.AuditDegraded,
	})
}

// GetByID godoc
// @Summary      Obtener una entrada del libro mayor
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *LedgerHandler) GetByID(c *fiber.Ctx) error {
	txn, err := h.queryUC.GetTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTransactionResponse(txn))
}

// ListByItem godoc
// @Summary      Historia del ledger para un ítem
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del ítem"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/items/{id}/transactions [get]
func (h *LedgerHandler) ListByItem(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	txns, err := h.queryUC.ListByItem(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	return c.JSON(out)
}

// ListCorrections godoc
// @Summary      Correcciones aplicadas sobre una transacción
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción original"
// @Success      200  {array}  entity.Correction
// @Router       /api/transactions/{id}/corrections [get]
func (h *LedgerHandler) ListCorrections(c *fiber.Ctx) error {
	corrs, err := h.queryUC.ListCorrections(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(corrs)
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           t.ID,
		Type:         t.Type,
		Timestamp:    t.Timestamp,
		VendorID:     t.VendorID,
		BatchID:      t.BatchID,
		ItemID:       t.ItemID,
		Quantity:     t.Quantity,
		UnitPrice:    t.UnitPrice,
		Shipping:     t.Shipping,
		TotalCost:    t.TotalCost,
		RelatedTxnID: t.RelatedTxnID,
		CreatedAt:    t.CreatedAt,
		CreatedBy:    t.CreatedBy,
	}
}

func toSnapshotResponse(s *entity.MacSnapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		ID:             s.ID,
		ItemID:         s.ItemID,
		QuantityOnHand: s.QuantityOnHand,
		MovingAvgCost:  s.MovingAvgCost,
		TotalValue:     s.TotalValue,
		SnapshotTs:     s.SnapshotTs,
	}
}
