package dto

import "time"

// RecordTransactionRequest entrada para registrar un movimiento de stock.
// Quantity es magnitud (>= 1); la dirección la determina Type.
type RecordTransactionRequest struct {
	ProductID       string `json:"product_id" validate:"required,uuid"`
	Type            string `json:"type" validate:"required,oneof=in out adjustment return"`
	Quantity        int    `json:"quantity" validate:"required,min=1"`
	ReferenceNumber string `json:"reference_number" validate:"omitempty,max=50"`
	Notes           string `json:"notes"`
}

// TransactionProductRef referencia mínima al producto en respuestas.
type TransactionProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// TransactionOwnerRef referencia mínima al usuario en respuestas.
type TransactionOwnerRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TransactionResponse salida de una transacción de stock.
type TransactionResponse struct {
	ID              string                `json:"id"`
	Type            string                `json:"type"`
	Quantity        int                   `json:"quantity"`
	PreviousStock   int                   `json:"previous_stock"`
	NewStock        int                   `json:"new_stock"`
	ReferenceNumber string                `json:"reference_number,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	Product         TransactionProductRef `json:"product"`
	Owner           TransactionOwnerRef   `json:"owner"`
}

// TransactionListResponse listado de transacciones (más recientes primero).
type TransactionListResponse struct {
	Results int                   `json:"results"`
	Items   []TransactionResponse `json:"items"`
}

// TransactionSummaryResponse agregados de transacciones del usuario.
type TransactionSummaryResponse struct {
	TotalTransactions int `json:"total_transactions"`
	TotalStockIn      int `json:"total_stock_in"`
	TotalStockOut     int `json:"total_stock_out"`
	TotalAdjustments  int `json:"total_adjustments"`
}
