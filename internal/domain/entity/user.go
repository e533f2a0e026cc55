package entity

import "time"

// User representa una cuenta del sistema. Es la frontera de tenencia:
// productos, proveedores y transacciones se consultan siempre por UserID.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
