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
	"github.com/tu-usuario/facturacion-tw/internal/application/invoicing"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
	"github.com/tu-usuario/facturacion-tw/internal/infrastructure/localstore"
	"github.com/tu-usuario/facturacion-tw/internal/infrastructure/seed"
	httpRouter "github.com/tu-usuario/facturacion-tw/internal/interfaces/http"
	"github.com/tu-usuario/facturacion-tw/pkg/config"
	"github.com/tu-usuario/facturacion-tw/pkg/logger"
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
		Str("store", cfg.Store.Dir).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Store.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	var seedInvoices []entity.Invoice
	var seedClients []entity.Client
	if cfg.Store.Seed {
		seedInvoices = seed.Invoices()
		seedClients = seed.Clients()
	} else {
		// Sin semilla igual se necesita el cliente genérico
		seedClients = []entity.Client{entity.ConsumidorFinal()}
	}

	invoiceRepo := localstore.NewInvoiceRepository(store, seedInvoices, log)
	clientRepo := localstore.NewClientRepository(store, seedClients, log)

	invoiceUC := invoicing.NewInvoiceUseCase(invoiceRepo, clientRepo)
	clientUC := invoicing.NewClientUseCase(clientRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturación TW API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC: invoiceUC,
		ClientUC:  clientUC,
		Catalog:   seed.Catalog(),
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
