package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/stocktrack-api/internal/interfaces/http"
)

// Sin archivo de especificación, la app debe arrancar igual (sin panic) y el
// resto de rutas seguir funcionando; solo queda sin montar la UI.
func TestMountSwagger_ArchivoAusente_NoMontaYLaAppSigueViva(t *testing.T) {
	app := fiber.New()
	mounted := apphttp.MountSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), "StockTrack API")
	assert.False(t, mounted, "sin archivo no debe montarse la UI")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Con el archivo presente, la UI queda montada y /docs responde.
func TestMountSwagger_ArchivoPresente_SirveDocs(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"StockTrack API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(specPath, []byte(spec), 0o600))

	app := fiber.New()
	mounted := apphttp.MountSwagger(app, specPath, "StockTrack API")
	require.True(t, mounted)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El swagger.json versionado en el repo debe existir y ser montable tal cual
// lo referencia cmd/api.
func TestMountSwagger_ArchivoDelRepo_Montable(t *testing.T) {
	specPath := filepath.Join("..", "..", "..", "docs", "swagger.json")
	if _, err := os.Stat(specPath); err != nil {
		t.Fatalf("docs/swagger.json debe estar versionado: %v", err)
	}

	app := fiber.New()
	assert.True(t, apphttp.MountSwagger(app, specPath, "StockTrack API"))
}
