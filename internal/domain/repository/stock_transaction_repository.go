package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// StockTransactionRepository define el puerto de persistencia para el libro de
// transacciones (DIP). La tabla es append-only: no existen Update ni Delete.
type StockTransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	GetByIDAndUser(id, userID string) (*entity.StockTransaction, error)
	ListByUser(userID string) ([]*entity.StockTransaction, error)
	ListByProductAndUser(productID, userID string) ([]*entity.StockTransaction, error)
	Summary(userID string) (*entity.TransactionSummary, error)
}
