package entity

import "time"

// Estados válidos para Product.
const (
	ProductStatusActive       = "active"
	ProductStatusDiscontinued = "discontinued"
	ProductStatusOutOfStock   = "out-of-stock"
)

// Product representa un producto del inventario de un usuario.
// Stock y Status se mutan exclusivamente a través del motor de transacciones
// una vez existen movimientos; el CRUD solo toca los campos descriptivos.
type Product struct {
	ID          string
	UserID      string
	Name        string
	Description string
	UniqueCode  string // código legible único, generado a partir de la categoría
	Unit        string // etiqueta de unidad de medida (pcs, kg, caja...)
	Stock       int    // nunca negativo
	Status      string // active, discontinued, out-of-stock
	CategoryID  string // vacío si no tiene categoría
	SupplierID  string // vacío si no tiene proveedor
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Nombres asociados para respuestas (se llenan en consultas con JOIN; no se persisten).
	CategoryName string
	SupplierName string
}
