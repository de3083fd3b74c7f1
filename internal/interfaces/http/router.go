package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-ingest/internal/application/upload"
	"github.com/jhoicas/retail-ingest/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UploadUC      *upload.UseCase
	JWTSecret     string
	UploaderRoles []jwt.Role // roles que pueden subir y borrar; el listado solo exige token
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	uploads := protected.Group("/uploads")
	uploadHandler := NewUploadHandler(deps.UploadUC)
	canWrite := RequireRole(deps.UploaderRoles...)
	uploads.Get("/", uploadHandler.List)
	uploads.Get("/:id", uploadHandler.Get)
	uploads.Post("/", canWrite, uploadHandler.Create)
	uploads.Delete("/", canWrite, uploadHandler.DeleteAll)
	uploads.Delete("/:id", canWrite, uploadHandler.Delete)
}
