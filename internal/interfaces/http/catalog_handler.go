package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturacion-tw/internal/application/dto"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
	"github.com/tu-usuario/facturacion-tw/pkg/money"
)

// CatalogHandler expone los catálogos estáticos que consume el formulario
// de creación: productos/servicios, métodos de pago y tasas de cambio.
type CatalogHandler struct {
	products []entity.Product
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(products []entity.Product) *CatalogHandler {
	return &CatalogHandler{products: products}
}

// Products catálogo de productos y servicios.
// GET /api/catalog/products
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	out := make([]dto.ProductResponse, 0, len(h.products))
	for _, p := range h.products {
		out = append(out, dto.ProductResponse{
			ID:     p.ID,
			Type:   p.Type,
			Name:   p.Name,
			Price:  p.Price,
			TaxPct: p.TaxPct,
		})
	}
	return c.JSON(out)
}

// PaymentMethods catálogo cerrado de métodos de pago.
// GET /api/catalog/payment-methods
func (h *CatalogHandler) PaymentMethods(c *fiber.Ctx) error {
	return c.JSON(entity.PaymentMethods)
}

// Currencies snapshot estático de tasas de cambio (COP por unidad).
// GET /api/currencies
func (h *CatalogHandler) Currencies(c *fiber.Ctx) error {
	rates := money.Rates()
	out := make([]dto.CurrencyResponse, 0, len(rates))
	for _, code := range []string{money.COP, money.USD, money.EUR} {
		out = append(out, dto.CurrencyResponse{Code: code, Rate: rates[code]})
	}
	return c.JSON(out)
}
