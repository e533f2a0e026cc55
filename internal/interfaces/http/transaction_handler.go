package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// TransactionHandler maneja las peticiones HTTP del libro de transacciones (protegido).
type TransactionHandler struct {
	uc *ledger.RecordTransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.RecordTransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar transacción de stock
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "product_id, type (in|out|adjustment|return), quantity, reference_number, notes"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Record(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.RecordTransaction(c.Context(), ledger.TransactionInputDTO{
		UserID:          userID,
		ProductID:       in.ProductID,
		Type:            in.Type,
		Quantity:        in.Quantity,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
	})
	if err != nil {
		return transactionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(tx))
}

// List godoc
// @Summary      Listar transacciones del usuario
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.List(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toTransactionList(list))
}

// ListByProduct godoc
// @Summary      Listar transacciones de un producto
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/transactions/product/{productId} [get]
func (h *TransactionHandler) ListByProduct(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID := c.Params("productId")
	list, err := h.uc.ListByProduct(userID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toTransactionList(list))
}

// GetByID godoc
// @Summary      Obtener transacción por ID
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	tx, err := h.uc.GetByID(userID, c.Params("id"))
	if err != nil {
		return transactionError(c, err)
	}
	return c.JSON(toTransactionResponse(tx))
}

// Summary godoc
// @Summary      Resumen de transacciones del usuario
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransactionSummaryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/transactions/stats/summary [get]
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	sum, err := h.uc.Summarize(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TransactionSummaryResponse{
		TotalTransactions: sum.TotalTransactions,
		TotalStockIn:      sum.TotalStockIn,
		TotalStockOut:     sum.TotalStockOut,
		TotalAdjustments:  sum.TotalAdjustments,
	})
}

// transactionError traduce errores del motor a respuestas HTTP. Los errores de
// negocio son deterministas y se muestran; ErrConflict indica contención y el
// caller puede reintentar (nada quedó confirmado).
func transactionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo o cantidad inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "contención sobre el producto, reintente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toTransactionResponse(tx *entity.StockTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              tx.ID,
		Type:            tx.Type,
		Quantity:        tx.Quantity,
		PreviousStock:   tx.PreviousStock,
		NewStock:        tx.NewStock,
		ReferenceNumber: tx.ReferenceNumber,
		Notes:           tx.Notes,
		CreatedAt:       tx.CreatedAt,
		Product: dto.TransactionProductRef{
			ID:   tx.ProductID,
			Name: tx.ProductName,
			Unit: tx.ProductUnit,
		},
		Owner: dto.TransactionOwnerRef{
			ID:       tx.UserID,
			Username: tx.OwnerUsername,
		},
	}
}

func toTransactionList(list []*entity.StockTransaction) dto.TransactionListResponse {
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, toTransactionResponse(tx))
	}
	return dto.TransactionListResponse{Results: len(items), Items: items}
}
