package billing

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

// Tarifas fijas del documento (Colombia).
var (
	// AIURate porcentaje del cargo AIU sobre el subtotal (contratos de
	// intermediación de servicios).
	AIURate = decimal.NewFromFloat(0.10)
	// BagTaxRate valor fijo por unidad del impuesto a la bolsa plástica.
	BagTaxRate = decimal.NewFromInt(73)
)

var hundred = decimal.NewFromInt(100)

// SafeAmount convierte un número de entrada a decimal tratando NaN e
// infinitos como cero. Ningún valor mal formado debe llegar a los totales
// almacenados.
func SafeAmount(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// CalculateLine recalcula los campos derivados de una línea a partir de
// precio, cantidad y porcentajes de descuento e impuesto:
//
//	subtotal  = price * quantity
//	discount  = subtotal * (discountPct / 100)
//	tax       = (subtotal - discount) * (taxPct / 100)
//	total     = subtotal - discount + tax
//
// Es idempotente: los campos derivados previos no participan del cálculo.
func CalculateLine(item *entity.InvoiceItem) {
	subtotal := item.Price.Mul(item.Quantity)
	discount := subtotal.Mul(item.DiscountPct.Div(hundred))
	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(item.TaxPct.Div(hundred))

	item.Subtotal = subtotal
	item.Discount = discount
	item.Tax = tax
	item.Total = taxable.Add(tax)
}

// DocumentTotals agregados del documento.
type DocumentTotals struct {
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	AIUValue      decimal.Decimal
	BagTaxValue   decimal.Decimal
	GrandTotal    decimal.Decimal
}

// Adjustments ajustes a nivel de documento.
type Adjustments struct {
	Transport decimal.Decimal // Cargo de transporte
	Bonus     decimal.Decimal // Descuento por bono
	HasAIU    bool            // Agrega AIURate * subtotal
	BagCount  int64           // Unidades de impuesto bolsa plástica
}

// CalculateDocument recalcula las líneas y agrega los totales del documento:
//
//	grandTotal = subtotal - totalDiscount + totalTax
//	           + transport - bonus + aiu + bagTax
//
// Un bono mayor que los cargos produce un gran total negativo; no se
// recorta a cero (regla de negocio sin confirmar, ver DESIGN.md).
func CalculateDocument(items []entity.InvoiceItem, adj Adjustments) DocumentTotals {
	var t DocumentTotals
	for i := range items {
		CalculateLine(&items[i])
		t.Subtotal = t.Subtotal.Add(items[i].Subtotal)
		t.TotalDiscount = t.TotalDiscount.Add(items[i].Discount)
		t.TotalTax = t.TotalTax.Add(items[i].Tax)
	}
	if adj.HasAIU {
		t.AIUValue = t.Subtotal.Mul(AIURate)
	}
	if adj.BagCount > 0 {
		t.BagTaxValue = decimal.NewFromInt(adj.BagCount).Mul(BagTaxRate)
	}
	t.GrandTotal = t.Subtotal.
		Sub(t.TotalDiscount).
		Add(t.TotalTax).
		Add(adj.Transport).
		Sub(adj.Bonus).
		Add(t.AIUValue).
		Add(t.BagTaxValue)
	return t
}

// Normalize aplica los invariantes del documento tras cualquier mutación:
// con pago de contado la fecha de vencimiento es la fecha de emisión, y los
// campos derivados se recalculan siempre.
func Normalize(inv *entity.Invoice) {
	if inv.PaymentType == entity.PaymentTypeContado {
		inv.DueDate = inv.IssueDate
	}
	Recalculate(inv)
}

// Recalculate recalcula en sitio las líneas y los totales de la factura.
// Se invoca tras cada mutación y al cargar registros persistidos: los
// totales almacenados son un caché, nunca la fuente de verdad.
func Recalculate(inv *entity.Invoice) {
	t := CalculateDocument(inv.Items, Adjustments{
		Transport: inv.Transport,
		Bonus:     inv.Bonus,
		HasAIU:    inv.HasAIU,
		BagCount:  inv.BagCount,
	})
	inv.Subtotal = t.Subtotal
	inv.TotalDiscount = t.TotalDiscount
	inv.TotalTax = t.TotalTax
	inv.Total = t.GrandTotal
}
