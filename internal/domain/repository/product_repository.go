package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Stock y Status solo se escriben vía UpdateStock, desde el motor de transacciones.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByIDAndUser(id, userID string) (*entity.Product, error)
	// GetForUpdate obtiene el producto del usuario y bloquea la fila
	// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
	GetForUpdate(id, userID string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int, status string) error
	ListByUser(userID string) ([]*entity.Product, error)
	Delete(id, userID string) error
}
