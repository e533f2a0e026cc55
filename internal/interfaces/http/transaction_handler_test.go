package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stocktrack-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (suficientes para ejercitar el mapeo HTTP del motor)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	product      *entity.Product
	transactions []*entity.StockTransaction
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(*entity.Product) error { return nil }

func (r *memProductRepo) GetByIDAndUser(id, userID string) (*entity.Product, error) {
	return r.GetForUpdate(id, userID)
}

func (r *memProductRepo) GetForUpdate(id, userID string) (*entity.Product, error) {
	p := r.store.product
	if p == nil || p.ID != id || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(*entity.Product) error { return nil }

func (r *memProductRepo) UpdateStock(productID string, stock int, status string) error {
	r.store.product.Stock = stock
	r.store.product.Status = status
	return nil
}

func (r *memProductRepo) ListByUser(string) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Delete(string, string) error                  { return nil }

type memTxRepo struct{ store *memStore }

func (r *memTxRepo) Create(tx *entity.StockTransaction) error {
	cp := *tx
	r.store.transactions = append(r.store.transactions, &cp)
	return nil
}

func (r *memTxRepo) GetByIDAndUser(id, userID string) (*entity.StockTransaction, error) {
	for _, tx := range r.store.transactions {
		if tx.ID == id && tx.UserID == userID {
			cp := *tx
			cp.ProductName = r.store.product.Name
			cp.ProductUnit = r.store.product.Unit
			cp.OwnerUsername = "usuario_test"
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTxRepo) ListByUser(userID string) ([]*entity.StockTransaction, error) {
	out := make([]*entity.StockTransaction, 0)
	for i := len(r.store.transactions) - 1; i >= 0; i-- {
		if r.store.transactions[i].UserID == userID {
			out = append(out, r.store.transactions[i])
		}
	}
	return out, nil
}

func (r *memTxRepo) ListByProductAndUser(productID, userID string) ([]*entity.StockTransaction, error) {
	out := make([]*entity.StockTransaction, 0)
	for i := len(r.store.transactions) - 1; i >= 0; i-- {
		tx := r.store.transactions[i]
		if tx.ProductID == productID && tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *memTxRepo) Summary(userID string) (*entity.TransactionSummary, error) {
	sum := &entity.TransactionSummary{}
	for _, tx := range r.store.transactions {
		if tx.UserID != userID {
			continue
		}
		sum.TotalTransactions++
		switch tx.Type {
		case entity.TransactionTypeIn:
			sum.TotalStockIn += tx.Quantity
		case entity.TransactionTypeOut:
			sum.TotalStockOut += tx.Quantity
		case entity.TransactionTypeAdjustment:
			sum.TotalAdjustments++
		}
	}
	return sum, nil
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(repository.StockTransactionRepository, repository.ProductRepository) error) error {
	return fn(&memTxRepo{store: r.store}, &memProductRepo{store: r.store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const txProductID = "10000000-0000-0000-0000-000000000001"

func buildTransactionApp(store *memStore) *fiber.App {
	uc := ledger.NewRecordTransactionUseCase(&memTxRunner{store: store}, &memTxRepo{store: store})
	handler := apphttp.NewTransactionHandler(uc)

	app := fiber.New()
	group := app.Group("/api/transactions", apphttp.AuthMiddleware(testJWTSecret))
	group.Post("/", handler.Record)
	group.Get("/", handler.List)
	group.Get("/stats/summary", handler.Summary)
	group.Get("/:id", handler.GetByID)
	return app
}

func seededStore(stock int) *memStore {
	return &memStore{product: &entity.Product{
		ID:     txProductID,
		UserID: testUserID,
		Name:   "Tornillo M6",
		Unit:   "unidad",
		Stock:  stock,
		Status: entity.ProductStatusActive,
	}}
}

func postTransaction(t *testing.T, app *fiber.App, body map[string]interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/transactions/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Movimiento válido → 201 con snapshots y producto/dueño adjuntos.
func TestTransactionHandler_Record_Salida_Retorna201(t *testing.T) {
	store := seededStore(20)
	app := buildTransactionApp(store)

	resp := postTransaction(t, app, map[string]interface{}{
		"product_id": txProductID,
		"type":       "out",
		"quantity":   5,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(20), body["previous_stock"])
	assert.Equal(t, float64(15), body["new_stock"])
	assert.Equal(t, "out", body["type"])

	product := body["product"].(map[string]interface{})
	assert.Equal(t, "Tornillo M6", product["name"])
	owner := body["owner"].(map[string]interface{})
	assert.Equal(t, testUserID, owner["id"])

	assert.Equal(t, 15, store.product.Stock, "el stock del producto debe quedar actualizado")
}

// Stock insuficiente → 409 INSUFFICIENT_STOCK con disponible y solicitado.
func TestTransactionHandler_Record_StockInsuficiente_Retorna409(t *testing.T) {
	store := seededStore(3)
	app := buildTransactionApp(store)

	resp := postTransaction(t, app, map[string]interface{}{
		"product_id": txProductID,
		"type":       "out",
		"quantity":   10,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody["code"])
	assert.Contains(t, errBody["message"], "disponible 3")
	assert.Contains(t, errBody["message"], "solicitado 10")

	assert.Equal(t, 3, store.product.Stock, "un rechazo no debe tocar el stock")
	assert.Empty(t, store.transactions, "un rechazo no debe registrar nada en el libro")
}

// Tipo desconocido → 400 VALIDATION, sin efectos.
func TestTransactionHandler_Record_TipoInvalido_Retorna400(t *testing.T) {
	store := seededStore(10)
	app := buildTransactionApp(store)

	resp := postTransaction(t, app, map[string]interface{}{
		"product_id": txProductID,
		"type":       "transfer",
		"quantity":   1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.transactions)
}

// Producto inexistente (o de otro usuario) → 404 NOT_FOUND.
func TestTransactionHandler_Record_ProductoAjeno_Retorna404(t *testing.T) {
	store := seededStore(10)
	store.product.UserID = "00000000-0000-0000-0000-00000000dead"
	app := buildTransactionApp(store)

	resp := postTransaction(t, app, map[string]interface{}{
		"product_id": txProductID,
		"type":       "in",
		"quantity":   1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Sin token → 401 antes de llegar al handler.
func TestTransactionHandler_Record_SinToken_Retorna401(t *testing.T) {
	app := buildTransactionApp(seededStore(10))

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Listado → más recientes primero, con results y items.
func TestTransactionHandler_List_MasRecientesPrimero(t *testing.T) {
	store := seededStore(50)
	app := buildTransactionApp(store)

	for _, q := range []int{5, 7} {
		resp := postTransaction(t, app, map[string]interface{}{
			"product_id": txProductID,
			"type":       "out",
			"quantity":   q,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/", nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Results int `json:"results"`
		Items   []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 2, body.Results)
	assert.Equal(t, 7, body.Items[0].Quantity, "la última transacción debe ir primero")
	assert.Equal(t, 5, body.Items[1].Quantity)
}

// Resumen → agregados del libro del usuario.
func TestTransactionHandler_Summary_Agregados(t *testing.T) {
	store := seededStore(100)
	app := buildTransactionApp(store)

	movements := []struct {
		typ string
		qty int
	}{
		{"in", 10},
		{"out", 4},
		{"adjustment", 2},
	}
	for _, m := range movements {
		resp := postTransaction(t, app, map[string]interface{}{
			"product_id": txProductID,
			"type":       m.typ,
			"quantity":   m.qty,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/stats/summary", nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body["total_transactions"])
	assert.Equal(t, 10, body["total_stock_in"])
	assert.Equal(t, 4, body["total_stock_out"])
	assert.Equal(t, 1, body["total_adjustments"])
}

// Transacción inexistente → 404.
func TestTransactionHandler_GetByID_NoExiste_Retorna404(t *testing.T) {
	app := buildTransactionApp(seededStore(10))

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/20000000-0000-0000-0000-000000000001", nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Conflicto de serialización → 409 CONFLICT (reintentable).
func TestTransactionHandler_Record_Conflicto_Retorna409(t *testing.T) {
	store := seededStore(10)
	uc := ledger.NewRecordTransactionUseCase(conflictRunner{}, &memTxRepo{store: store})
	handler := apphttp.NewTransactionHandler(uc)

	app := fiber.New()
	app.Post("/api/transactions/", apphttp.AuthMiddleware(testJWTSecret), handler.Record)

	resp := postTransaction(t, app, map[string]interface{}{
		"product_id": txProductID,
		"type":       "out",
		"quantity":   1,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "CONFLICT", errBody["code"])
}

type conflictRunner struct{}

func (conflictRunner) Run(context.Context, func(repository.StockTransactionRepository, repository.ProductRepository) error) error {
	return domain.ErrConflict
}
