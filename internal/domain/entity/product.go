package entity

import "github.com/shopspring/decimal"

// Tipos de ítem del catálogo.
const (
	CatalogProduct = "producto"
	CatalogService = "servicio"
)

// Product es un ítem del catálogo de productos y servicios que se ofrece al
// armar una factura. El precio es de lista; la línea puede editarlo.
type Product struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"` // producto | servicio
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	TaxPct decimal.Decimal `json:"taxPct"` // IVA por defecto del ítem
}
