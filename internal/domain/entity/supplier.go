package entity

import "time"

// Estados válidos para Supplier.
const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
)

// Supplier representa un proveedor de un usuario. Email único por usuario.
type Supplier struct {
	ID            string
	UserID        string
	Name          string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
	Status        string // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
