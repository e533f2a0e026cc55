package ledger

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// o se confirman juntos el update del producto y el insert de la transacción,
// o no se confirma ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
	) error) error
}
