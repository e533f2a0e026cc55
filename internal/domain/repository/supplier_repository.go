package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByIDAndUser(id, userID string) (*entity.Supplier, error)
	GetByEmailAndUser(email, userID string) (*entity.Supplier, error)
	ListByUser(userID string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id, userID string) error
}
