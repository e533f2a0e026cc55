package dto

import "time"

// CreateProductRequest entrada para crear un producto. El stock inicial es
// opcional; después del primer movimiento solo el motor de transacciones lo toca.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	Unit        string `json:"unit" validate:"required,min=1,max=20"`
	Stock       int    `json:"stock" validate:"min=0"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	SupplierID  string `json:"supplier_id" validate:"required,uuid"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock ni Status:
// se manejan vía transacciones).
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
	Unit        *string `json:"unit" validate:"omitempty,min=1,max=20"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
	SupplierID  *string `json:"supplier_id" validate:"omitempty,uuid"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	UniqueCode   string    `json:"unique_code"`
	Unit         string    `json:"unit"`
	Stock        int       `json:"stock"`
	Status       string    `json:"status"`
	CategoryID   string    `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	SupplierID   string    `json:"supplier_id,omitempty"`
	SupplierName string    `json:"supplier_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductListResponse listado de productos del usuario.
type ProductListResponse struct {
	Results int               `json:"results"`
	Items   []ProductResponse `json:"items"`
}
