// @title        Retail Ingest API
// @version      1.0
// @description  Carga y normalización de libros de ventas, productos y traspasos.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/retail-ingest/docs"
	"github.com/jhoicas/retail-ingest/internal/application/upload"
	"github.com/jhoicas/retail-ingest/internal/infrastructure/postgres"
	"github.com/jhoicas/retail-ingest/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/retail-ingest/internal/interfaces/http"
	"github.com/jhoicas/retail-ingest/pkg/config"
	"github.com/jhoicas/retail-ingest/pkg/jwt"
	"github.com/jhoicas/retail-ingest/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	uploadRepo := postgres.NewUploadRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	uploadUC := upload.NewUseCase(xlsx.NewReader(), txRunner, uploadRepo, upload.Config{
		ExcludedStores:    cfg.Ingest.ExcludedStores,
		RejectOnErrors:    cfg.Ingest.RejectOnErrors,
		MaxReportedErrors: cfg.Ingest.MaxReportedErrors,
	}, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Retail Ingest API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UploadUC:      uploadUC,
		JWTSecret:     cfg.JWT.Secret,
		UploaderRoles: jwt.ParseRoles(cfg.Ingest.UploaderRoles),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
