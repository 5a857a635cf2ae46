package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturacion-tw/internal/application/invoicing"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC *invoicing.InvoiceUseCase
	ClientUC  *invoicing.ClientUseCase
	Catalog   []entity.Product
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/stats", invoiceHandler.Stats)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)

	// Catálogos estáticos
	catalogHandler := NewCatalogHandler(deps.Catalog)
	catalog := api.Group("/catalog")
	catalog.Get("/products", catalogHandler.Products)
	catalog.Get("/payment-methods", catalogHandler.PaymentMethods)
	api.Get("/currencies", catalogHandler.Currencies)
}
