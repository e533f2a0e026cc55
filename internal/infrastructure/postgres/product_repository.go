package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, user_id, name, description, unique_code, unit, stock, status,
	category_id, supplier_id, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, user_id, name, description, unique_code, unit, stock, status, category_id, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.UserID, product.Name, product.Description, product.UniqueCode,
		product.Unit, product.Stock, product.Status,
		nullable(product.CategoryID), nullable(product.SupplierID),
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un producto por ID, scoped al usuario dueño.
func (r *ProductRepo) GetByIDAndUser(id, userID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND user_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, userID))
}

// GetForUpdate obtiene el producto del usuario y bloquea la fila (SELECT FOR
// UPDATE) para serializar escritores concurrentes del mismo producto. Solo
// tiene sentido con un Querier atado a una transacción.
func (r *ProductRepo) GetForUpdate(id, userID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND user_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, userID))
}

// Update actualiza campos descriptivos. No toca Stock ni Status (se manejan
// vía el motor de transacciones).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, unique_code = $4, unit = $5, category_id = $6, supplier_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.UniqueCode, product.Unit,
		nullable(product.CategoryID), nullable(product.SupplierID), product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza stock y status (solo usado por el motor de transacciones,
// dentro de la misma tx que inserta el registro del libro).
func (r *ProductRepo) UpdateStock(productID string, stock int, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, status = $3, updated_at = now() WHERE id = $1`,
		productID, stock, status,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// ListByUser lista productos del usuario con nombres de categoría y proveedor,
// modificados más recientemente primero.
func (r *ProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.user_id, p.name, p.description, p.unique_code, p.unit, p.stock, p.status,
		       p.category_id, p.supplier_id, p.created_at, p.updated_at,
		       COALESCE(c.name, ''), COALESCE(s.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.user_id = $1
		ORDER BY p.updated_at DESC, p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var categoryID, supplierID *string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.UniqueCode, &p.Unit,
			&p.Stock, &p.Status, &categoryID, &supplierID, &p.CreatedAt, &p.UpdatedAt,
			&p.CategoryName, &p.SupplierName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if categoryID != nil {
			p.CategoryID = *categoryID
		}
		if supplierID != nil {
			p.SupplierID = *supplierID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto del usuario.
func (r *ProductRepo) Delete(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID, supplierID *string
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.UniqueCode, &p.Unit,
		&p.Stock, &p.Status, &categoryID, &supplierID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	return &p, nil
}

// nullable convierte "" a NULL para columnas FK opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
