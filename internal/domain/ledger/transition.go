package ledger

import (
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// Apply calcula el nuevo nivel de stock a partir del nivel previo, el tipo de
// transacción y la cantidad (magnitud >= 1).
//
//	in, return     -> previo + cantidad
//	adjustment     -> previo + cantidad (los ajustes son siempre incremento;
//	                  una baja de stock se registra como "out")
//	out            -> previo - cantidad; si cantidad > previo, InsufficientStockError
//
// Tipo desconocido o cantidad < 1 devuelven ErrInvalidInput. Con entradas válidas
// el resultado nunca es negativo.
func Apply(previousStock int, txType string, quantity int) (int, error) {
	if quantity < 1 {
		return 0, domain.ErrInvalidInput
	}
	switch txType {
	case entity.TransactionTypeIn, entity.TransactionTypeReturn, entity.TransactionTypeAdjustment:
		return previousStock + quantity, nil
	case entity.TransactionTypeOut:
		if quantity > previousStock {
			return 0, &domain.InsufficientStockError{Available: previousStock, Requested: quantity}
		}
		return previousStock - quantity, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

// DeriveStatus recalcula el estado del producto tras una mutación de stock.
// Se deriva siempre dentro del mismo paso atómico que actualiza el stock, para
// que stock y status no puedan divergir:
//
//	newStock == 0                          -> out-of-stock
//	newStock > 0 y estaba out-of-stock     -> active
//	en cualquier otro caso                 -> sin cambio (discontinued se respeta)
func DeriveStatus(currentStatus string, newStock int) string {
	if newStock == 0 {
		return entity.ProductStatusOutOfStock
	}
	if currentStatus == entity.ProductStatusOutOfStock {
		return entity.ProductStatusActive
	}
	return currentStatus
}

// ValidType indica si el tipo corresponde a una transacción de stock conocida.
func ValidType(txType string) bool {
	switch txType {
	case entity.TransactionTypeIn, entity.TransactionTypeOut,
		entity.TransactionTypeAdjustment, entity.TransactionTypeReturn:
		return true
	}
	return false
}
