package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIn         = "in"         // entrada (recepción)
	TransactionTypeOut        = "out"        // salida (venta, despacho)
	TransactionTypeAdjustment = "adjustment" // ajuste (corrección, siempre incremento)
	TransactionTypeReturn     = "return"     // devolución de cliente/proveedor
)

// StockTransaction representa un movimiento de stock ya aplicado: libro append-only,
// nunca se actualiza ni se borra. PreviousStock y NewStock son el snapshot del
// producto inmediatamente antes y después de la mutación.
type StockTransaction struct {
	ID              string
	ProductID       string
	UserID          string
	Type            string
	Quantity        int // magnitud, siempre >= 1; la dirección la da el tipo
	PreviousStock   int
	NewStock        int
	ReferenceNumber string // número de orden/factura, vacío si no aplica
	Notes           string
	CreatedAt       time.Time

	// Datos asociados para respuestas (JOIN con products y users; no se persisten aquí).
	ProductName   string
	ProductUnit   string
	OwnerUsername string
}

// TransactionSummary agregados de transacciones de un usuario.
type TransactionSummary struct {
	TotalTransactions int
	TotalStockIn      int // suma de cantidades tipo "in"
	TotalStockOut     int // suma de cantidades tipo "out"
	TotalAdjustments  int // conteo de tipo "adjustment"
}
