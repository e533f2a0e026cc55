package ledger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la función de transición: para cada fila de la tabla, el nuevo stock
// debe ser exactamente f(previo, tipo, cantidad) y nunca negativo.
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_TablaDeTransicion(t *testing.T) {
	cases := []struct {
		name     string
		previous int
		txType   string
		quantity int
		want     int
	}{
		{"entrada suma", 20, entity.TransactionTypeIn, 10, 30},
		{"devolución suma", 35, entity.TransactionTypeReturn, 5, 40},
		{"ajuste suma", 7, entity.TransactionTypeAdjustment, 2, 9},
		{"salida resta", 10, entity.TransactionTypeOut, 8, 2},
		{"salida exacta deja cero", 5, entity.TransactionTypeOut, 5, 0},
		{"entrada desde cero", 0, entity.TransactionTypeIn, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ledger.Apply(tc.previous, tc.txType, tc.quantity)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0, "el stock resultante nunca puede ser negativo")
		})
	}
}

func TestApply_SalidaMayorQueDisponible(t *testing.T) {
	_, err := ledger.Apply(35, entity.TransactionTypeOut, 40)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var detail *domain.InsufficientStockError
	require.True(t, errors.As(err, &detail), "el error debe exponer disponible y solicitado")
	assert.Equal(t, 35, detail.Available)
	assert.Equal(t, 40, detail.Requested)
}

func TestApply_TipoInvalido(t *testing.T) {
	_, err := ledger.Apply(10, "transfer", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_CantidadInvalida(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		_, err := ledger.Apply(10, entity.TransactionTypeIn, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de estado: se recalcula junto con el stock en el mismo paso atómico.
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		newStock int
		want     string
	}{
		{"stock cero marca agotado", entity.ProductStatusActive, 0, entity.ProductStatusOutOfStock},
		{"reposición reactiva agotado", entity.ProductStatusOutOfStock, 3, entity.ProductStatusActive},
		{"activo con stock sigue activo", entity.ProductStatusActive, 12, entity.ProductStatusActive},
		{"discontinuado no se reactiva", entity.ProductStatusDiscontinued, 5, entity.ProductStatusDiscontinued},
		{"discontinuado en cero marca agotado", entity.ProductStatusDiscontinued, 0, entity.ProductStatusOutOfStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ledger.DeriveStatus(tc.current, tc.newStock))
		})
	}
}

func TestValidType(t *testing.T) {
	for _, valid := range []string{"in", "out", "adjustment", "return"} {
		assert.True(t, ledger.ValidType(valid))
	}
	for _, invalid := range []string{"", "transfer", "IN", "venta"} {
		assert.False(t, ledger.ValidType(invalid))
	}
}
