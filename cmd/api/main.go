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

	"github.com/jhoicas/invoice-maker/internal/application/usecase"
	"github.com/jhoicas/invoice-maker/internal/infrastructure/jsonfile"
	infrapdf "github.com/jhoicas/invoice-maker/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/invoice-maker/internal/interfaces/http"
	"github.com/jhoicas/invoice-maker/pkg/config"
	"github.com/jhoicas/invoice-maker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Path).
		Msg("iniciando aplicación")

	invoiceRepo, err := jsonfile.NewInvoiceRepository(cfg.Storage.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento de facturas")
	}

	defaults := usecase.EditorDefaults{
		CompanyName:    cfg.Defaults.CompanyName,
		CompanyAddress: cfg.Defaults.CompanyAddress,
		CompanyLogo:    cfg.Defaults.CompanyLogo,
		Currency:       cfg.Defaults.Currency,
	}
	theme := usecase.DocumentTheme{
		Background: cfg.Export.BackgroundColor,
		Border:     cfg.Export.BorderColor,
		Text:       cfg.Export.TextColor,
		Accent:     cfg.Export.AccentColor,
		Shadow:     cfg.Export.Shadow,
		Filter:     cfg.Export.Filter,
	}

	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, defaults)
	editorUC := usecase.NewEditorUseCase(invoiceRepo, defaults)

	pdfRenderer := infrapdf.NewMarotoInvoiceRenderer()
	exportUC := usecase.NewExportUseCase(invoiceRepo, pdfRenderer, theme, cfg.Export.Timeout(), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la descarga del PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice Maker API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC: invoiceUC,
		EditorUC:  editorUC,
		ExportUC:  exportUC,
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
