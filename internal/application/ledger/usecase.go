package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	domledger "github.com/jhoicas/stocktrack-api/internal/domain/ledger"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// RecordTransactionUseCase registra movimientos de stock de forma transaccional
// (in, out, adjustment, return) con bloqueo de fila (SELECT FOR UPDATE) y
// Commit/Rollback. También expone las lecturas del libro: listado, detalle y resumen.
type RecordTransactionUseCase struct {
	txRunner TxRunner
	txRepo   repository.StockTransactionRepository // atado al pool, solo lecturas
}

// NewRecordTransactionUseCase construye el caso de uso.
func NewRecordTransactionUseCase(txRunner TxRunner, txRepo repository.StockTransactionRepository) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{txRunner: txRunner, txRepo: txRepo}
}

// TransactionInputDTO entrada para registrar un movimiento de stock.
type TransactionInputDTO struct {
	UserID          string
	ProductID       string
	Type            string
	Quantity        int
	ReferenceNumber string
	Notes           string
}

// RecordTransaction inicia una transacción, bloquea la fila del producto
// (SELECT FOR UPDATE), aplica la función de transición según el tipo, deriva el
// nuevo estado, actualiza el producto e inserta el registro en el libro; hace
// Commit o Rollback. Devuelve la transacción registrada con producto y dueño.
//
// Cualquier fallo (validación, no encontrado, stock insuficiente, error de BD)
// aborta la secuencia completa: ningún estado queda a medias.
func (uc *RecordTransactionUseCase) RecordTransaction(ctx context.Context, input TransactionInputDTO) (*entity.StockTransaction, error) {
	// Validar antes de tocar la BD
	if input.UserID == "" || input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domledger.ValidType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	recorded := &entity.StockTransaction{
		ID:              uuid.New().String(),
		ProductID:       input.ProductID,
		UserID:          input.UserID,
		Type:            input.Type,
		Quantity:        input.Quantity,
		ReferenceNumber: input.ReferenceNumber,
		Notes:           input.Notes,
		CreatedAt:       now,
	}

	err := uc.txRunner.Run(ctx, func(
		txRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto para serializar escritores concurrentes
		// sobre el mismo producto (productos distintos no se bloquean entre sí).
		product, err := productRepo.GetForUpdate(input.ProductID, input.UserID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		previous := product.Stock
		newStock, err := domledger.Apply(previous, input.Type, input.Quantity)
		if err != nil {
			return err
		}
		status := domledger.DeriveStatus(product.Status, newStock)

		// Producto y libro se escriben en la misma transacción SQL.
		if err := productRepo.UpdateStock(product.ID, newStock, status); err != nil {
			return err
		}
		recorded.PreviousStock = previous
		recorded.NewStock = newStock
		return txRepo.Create(recorded)
	})
	if err != nil {
		return nil, err
	}

	// Releer ya confirmada para adjuntar producto y dueño; si la lectura falla,
	// la transacción quedó registrada igual y se devuelve el snapshot local.
	complete, err := uc.txRepo.GetByIDAndUser(recorded.ID, input.UserID)
	if err != nil || complete == nil {
		return recorded, nil
	}
	return complete, nil
}

// Summarize devuelve los agregados del libro del usuario: total de transacciones,
// unidades entradas (in), unidades salidas (out) y conteo de ajustes.
// Lectura pura, sin bloqueo; read-committed es suficiente.
func (uc *RecordTransactionUseCase) Summarize(userID string) (*entity.TransactionSummary, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.txRepo.Summary(userID)
}

// List devuelve las transacciones del usuario, más recientes primero.
func (uc *RecordTransactionUseCase) List(userID string) ([]*entity.StockTransaction, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.txRepo.ListByUser(userID)
}

// ListByProduct devuelve las transacciones de un producto del usuario, más recientes primero.
func (uc *RecordTransactionUseCase) ListByProduct(userID, productID string) ([]*entity.StockTransaction, error) {
	if userID == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.txRepo.ListByProductAndUser(productID, userID)
}

// GetByID devuelve una transacción del usuario, o ErrNotFound.
func (uc *RecordTransactionUseCase) GetByID(userID, id string) (*entity.StockTransaction, error) {
	if userID == "" || id == "" {
		return nil, domain.ErrInvalidInput
	}
	tx, err := uc.txRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}
