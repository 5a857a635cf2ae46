package billing_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturacion-tw/internal/domain/billing"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

func item(price, qty, discountPct, taxPct int64) entity.InvoiceItem {
	return entity.InvoiceItem{
		Price:       decimal.NewFromInt(price),
		Quantity:    decimal.NewFromInt(qty),
		DiscountPct: decimal.NewFromInt(discountPct),
		TaxPct:      decimal.NewFromInt(taxPct),
	}
}

func assertDecimal(t *testing.T, expected string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(expected)),
		"%s: esperado %s, obtenido %s", msg, expected, got.String())
}

// TestCalculateLine_EscenarioReferencia valida el vector de referencia de la
// línea: precio 1000, cantidad 2, descuento 10%, IVA 19%.
func TestCalculateLine_EscenarioReferencia(t *testing.T) {
	it := item(1000, 2, 10, 19)
	billing.CalculateLine(&it)

	assertDecimal(t, "2000", it.Subtotal, "subtotal")
	assertDecimal(t, "200", it.Discount, "descuento")
	assertDecimal(t, "342", it.Tax, "impuesto")
	assertDecimal(t, "2142", it.Total, "total de línea")
}

func TestCalculateLine_SinDescuentoNiImpuesto(t *testing.T) {
	it := item(500, 1, 0, 0)
	billing.CalculateLine(&it)
	assertDecimal(t, "500", it.Total, "total de línea")

	zero := item(0, 1, 0, 0)
	billing.CalculateLine(&zero)
	assertDecimal(t, "0", zero.Total, "línea con precio cero")
}

// TestCalculateLine_Idempotente verifica que recalcular dos veces con el
// mismo input produce el mismo output: los derivados previos no participan.
func TestCalculateLine_Idempotente(t *testing.T) {
	it := item(1000, 2, 10, 19)
	billing.CalculateLine(&it)
	first := it.Total
	billing.CalculateLine(&it)
	assert.True(t, it.Total.Equal(first), "recalcular no debe acumular")
}

// TestCalculateDocument_EscenarioReferencia valida el documento completo del
// escenario de tres líneas.
func TestCalculateDocument_EscenarioReferencia(t *testing.T) {
	items := []entity.InvoiceItem{
		item(1000, 2, 10, 19),
		item(500, 1, 0, 0),
		item(0, 1, 0, 0),
	}
	totals := billing.CalculateDocument(items, billing.Adjustments{})

	assertDecimal(t, "2500", totals.Subtotal, "subtotal del documento")
	assertDecimal(t, "200", totals.TotalDiscount, "descuento total")
	assertDecimal(t, "342", totals.TotalTax, "impuesto total")
	assertDecimal(t, "2642", totals.GrandTotal, "gran total")
}

func TestCalculateDocument_AIU(t *testing.T) {
	// Subtotal 100000 -> AIU agrega exactamente 10000
	items := []entity.InvoiceItem{item(100000, 1, 0, 0)}

	sin := billing.CalculateDocument(items, billing.Adjustments{})
	con := billing.CalculateDocument(items, billing.Adjustments{HasAIU: true})

	assertDecimal(t, "10000", con.AIUValue, "valor AIU")
	assertDecimal(t, "10000", con.GrandTotal.Sub(sin.GrandTotal), "incremento por AIU")
}

func TestCalculateDocument_ImpuestoBolsa(t *testing.T) {
	items := []entity.InvoiceItem{item(1000, 1, 0, 0)}
	totals := billing.CalculateDocument(items, billing.Adjustments{BagCount: 3})

	assertDecimal(t, "219", totals.BagTaxValue, "3 bolsas x 73")
	assertDecimal(t, "1219", totals.GrandTotal, "gran total con bolsas")
}

func TestCalculateDocument_TransporteYBono(t *testing.T) {
	items := []entity.InvoiceItem{item(1000, 1, 0, 0)}
	totals := billing.CalculateDocument(items, billing.Adjustments{
		Transport: decimal.NewFromInt(250),
		Bonus:     decimal.NewFromInt(100),
	})
	assertDecimal(t, "1150", totals.GrandTotal, "1000 + 250 - 100")
}

// TestCalculateDocument_BonoMayorQueCargos documenta que el gran total puede
// quedar negativo: no se recorta a cero.
func TestCalculateDocument_BonoMayorQueCargos(t *testing.T) {
	items := []entity.InvoiceItem{item(100, 1, 0, 0)}
	totals := billing.CalculateDocument(items, billing.Adjustments{
		Bonus: decimal.NewFromInt(500),
	})
	assertDecimal(t, "-400", totals.GrandTotal, "gran total negativo permitido")
}

// TestCalculateDocument_SinAcoplamientoEntreLineas cambia una línea y
// verifica que los totales de las demás no se mueven.
func TestCalculateDocument_SinAcoplamientoEntreLineas(t *testing.T) {
	items := []entity.InvoiceItem{
		item(1000, 2, 10, 19),
		item(500, 1, 0, 0),
	}
	billing.CalculateDocument(items, billing.Adjustments{})
	secondBefore := items[1].Total

	items[0].Price = decimal.NewFromInt(9999)
	billing.CalculateDocument(items, billing.Adjustments{})

	assert.True(t, items[1].Total.Equal(secondBefore),
		"cambiar la línea 0 no debe afectar la línea 1")
}

func TestSafeAmount(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"valor normal", 1234.5, "1234.5"},
		{"NaN se trata como cero", math.NaN(), "0"},
		{"infinito positivo se trata como cero", math.Inf(1), "0"},
		{"infinito negativo se trata como cero", math.Inf(-1), "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.SafeAmount(tt.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"esperado %s, obtenido %s", tt.want, got.String())
		})
	}
}

// TestNormalize_ContadoFuerzaVencimiento verifica el invariante de fechas:
// con pago de contado la fecha de vencimiento es la de emisión.
func TestNormalize_ContadoFuerzaVencimiento(t *testing.T) {
	issue := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	inv := entity.Invoice{
		PaymentType: entity.PaymentTypeContado,
		IssueDate:   issue,
		DueDate:     issue.AddDate(0, 0, 30),
		Items:       []entity.InvoiceItem{item(1000, 1, 0, 0)},
	}
	billing.Normalize(&inv)

	require.True(t, inv.DueDate.Equal(issue), "contado: dueDate debe igualar issueDate")
	assertDecimal(t, "1000", inv.Total, "totales recalculados")
}

func TestNormalize_CreditoConservaVencimiento(t *testing.T) {
	issue := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	due := issue.AddDate(0, 0, 60)
	inv := entity.Invoice{
		PaymentType: entity.PaymentTypeCredito,
		IssueDate:   issue,
		DueDate:     due,
	}
	billing.Normalize(&inv)
	assert.True(t, inv.DueDate.Equal(due), "crédito: dueDate se fija aparte")
}
