package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/Documentos-api/docs"
	"github.com/jhoicas/Documentos-api/internal/application/billing"
	"github.com/jhoicas/Documentos-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Documentos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Documentos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Documentos-api/internal/interfaces/http"
	"github.com/jhoicas/Documentos-api/pkg/config"
	"github.com/jhoicas/Documentos-api/pkg/logger"
)

// @title                       Documentos API
// @version                     1.0
// @description                 Cálculo de totales, descuentos e impuestos de documentos comerciales.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("pricing_mode", cfg.Pricing.DefaultMode).
		Msg("iniciando aplicación")

	if cfg.DB.MigrateOnStart {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	documentRepo := postgres.NewDocumentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pricingMetrics := metrics.NewPricingCollector(cfg.Pricing.MetricsNamespace, prometheus.DefaultRegisterer)
	pricingUC := billing.NewPricingUseCase(pricingMetrics, log)
	documentUC := billing.NewDocumentUseCase(
		txRunner, documentRepo, pricingUC,
		validator.New(validator.WithRequiredStructEnabled()), log,
	)

	// PDF: representación gráfica de los documentos confirmados
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	pdfUC := billing.NewPDFUseCase(documentRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Documentos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		PricingUC:          pricingUC,
		DocumentUC:         documentUC,
		PDFUC:              pdfUC,
		JWTSecret:          cfg.JWT.Secret,
		DefaultPricingMode: cfg.Pricing.DefaultMode,
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
