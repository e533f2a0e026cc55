package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla stock_transactions es append-only: este adaptador no tiene UPDATE
// ni DELETE, por contrato del puerto.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create persiste una transacción de stock (insert, nunca update).
func (r *StockTransactionRepo) Create(tx *entity.StockTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_transactions (id, product_id, user_id, type, quantity, previous_stock, new_stock, reference_number, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.UserID, tx.Type, tx.Quantity,
		tx.PreviousStock, tx.NewStock,
		nullable(tx.ReferenceNumber), nullable(tx.Notes), tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

const transactionSelect = `
	SELECT t.id, t.product_id, t.user_id, t.type, t.quantity, t.previous_stock, t.new_stock,
	       COALESCE(t.reference_number, ''), COALESCE(t.notes, ''), t.created_at,
	       p.name, p.unit, u.username
	FROM stock_transactions t
	JOIN products p ON p.id = t.product_id
	JOIN users u ON u.id = t.user_id`

// GetByIDAndUser obtiene una transacción del usuario con producto y dueño adjuntos.
func (r *StockTransactionRepo) GetByIDAndUser(id, userID string) (*entity.StockTransaction, error) {
	query := transactionSelect + ` WHERE t.id = $1 AND t.user_id = $2`
	var tx entity.StockTransaction
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&tx.ID, &tx.ProductID, &tx.UserID, &tx.Type, &tx.Quantity,
		&tx.PreviousStock, &tx.NewStock, &tx.ReferenceNumber, &tx.Notes, &tx.CreatedAt,
		&tx.ProductName, &tx.ProductUnit, &tx.OwnerUsername,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return &tx, nil
}

// ListByUser lista las transacciones del usuario, más recientes primero.
func (r *StockTransactionRepo) ListByUser(userID string) ([]*entity.StockTransaction, error) {
	query := transactionSelect + ` WHERE t.user_id = $1 ORDER BY t.created_at DESC`
	return r.list(query, userID)
}

// ListByProductAndUser lista las transacciones de un producto del usuario,
// más recientes primero.
func (r *StockTransactionRepo) ListByProductAndUser(productID, userID string) ([]*entity.StockTransaction, error) {
	query := transactionSelect + ` WHERE t.product_id = $1 AND t.user_id = $2 ORDER BY t.created_at DESC`
	return r.list(query, productID, userID)
}

// Summary agrega el libro del usuario en una sola consulta: conteo total,
// unidades "in", unidades "out" y conteo de "adjustment". Sumas ausentes son 0.
func (r *StockTransactionRepo) Summary(userID string) (*entity.TransactionSummary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity) FILTER (WHERE type = 'in'), 0),
		       COALESCE(SUM(quantity) FILTER (WHERE type = 'out'), 0),
		       COUNT(*) FILTER (WHERE type = 'adjustment')
		FROM stock_transactions
		WHERE user_id = $1`
	var s entity.TransactionSummary
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&s.TotalTransactions, &s.TotalStockIn, &s.TotalStockOut, &s.TotalAdjustments,
	)
	if err != nil {
		return nil, fmt.Errorf("transaction summary: %w", err)
	}
	return &s, nil
}

func (r *StockTransactionRepo) list(query string, args ...any) ([]*entity.StockTransaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var tx entity.StockTransaction
		if err := rows.Scan(&tx.ID, &tx.ProductID, &tx.UserID, &tx.Type, &tx.Quantity,
			&tx.PreviousStock, &tx.NewStock, &tx.ReferenceNumber, &tx.Notes, &tx.CreatedAt,
			&tx.ProductName, &tx.ProductUnit, &tx.OwnerUsername); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}
