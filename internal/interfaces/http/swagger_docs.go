package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// MountSwagger registra la UI de Swagger en /docs si el archivo de
// especificación existe y devuelve si quedó montada. El middleware de contrib
// lee el archivo al construirse y hace panic si falta; un checkout sin docs
// generados debe poder arrancar igual, solo sin la UI.
func MountSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
