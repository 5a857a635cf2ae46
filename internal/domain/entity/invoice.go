package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. No hay máquina de estados: cualquier estado
// puede asignarse al crear o editar.
const (
	StatusDraft    = "draft"    // Borrador
	StatusPending  = "pending"  // Pendiente
	StatusSent     = "sent"     // Enviada al cliente
	StatusPaid     = "paid"     // Pagada
	StatusRejected = "rejected" // Rechazada
	StatusOverdue  = "overdue"  // Vencida
)

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPending, StatusSent, StatusPaid, StatusRejected, StatusOverdue:
		return true
	}
	return false
}

// Monedas soportadas. La conversión es solo de presentación (ver pkg/money).
const (
	CurrencyCOP = "COP"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// ValidCurrency indica si c es una moneda soportada.
func ValidCurrency(c string) bool {
	return c == CurrencyCOP || c == CurrencyUSD || c == CurrencyEUR
}

// Tipos de pago. Con pago de contado la fecha de vencimiento es la misma
// fecha de emisión; a crédito se fija aparte.
const (
	PaymentTypeContado = "contado"
	PaymentTypeCredito = "credito"
)

// PaymentMethods catálogo cerrado de métodos de pago.
var PaymentMethods = []string{
	"efectivo",
	"giro-referenciado",
	"debito-ach",
	"tarjeta-debito",
	"transferencia-credito",
	"cheque",
	"transferencia-debito-bancaria",
	"consignacion-bancaria",
	"tarjeta-credito",
	"otro",
	"transferencia-debito-interbancario",
	"transferencia-credito-bancario",
	"credito-ach",
}

// ValidPaymentMethod indica si m pertenece al catálogo de métodos de pago.
func ValidPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

// Tipos de factura (venta es el tipo por defecto).
const (
	InvoiceTypeVenta        = "venta"
	InvoiceTypeExportacion  = "exportacion"
	InvoiceTypeContingencia = "contingencia"
	InvoiceTypeMandato      = "mandato"
)

// ValidInvoiceType indica si t es un tipo de factura conocido.
func ValidInvoiceType(t string) bool {
	switch t {
	case InvoiceTypeVenta, InvoiceTypeExportacion, InvoiceTypeContingencia, InvoiceTypeMandato:
		return true
	}
	return false
}

// Origen de un registro en el listado combinado.
const (
	OriginSeed  = "seed"  // Registro del set semilla (solo lectura)
	OriginLocal = "local" // Registro persistido localmente
)

// InvoiceItem es una línea de la factura. Subtotal, Discount, Tax y Total
// son derivados: se recalculan en cada mutación y nunca se confía en el
// valor almacenado (ver billing.Recalculate).
type InvoiceItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
	DiscountPct decimal.Decimal `json:"discountPct"` // Porcentaje 0-100
	TaxPct      decimal.Decimal `json:"taxPct"`      // Porcentaje IVA (0, 5, 19)
	Subtotal    decimal.Decimal `json:"subtotal"`    // Derivado: price * quantity
	Discount    decimal.Decimal `json:"discount"`    // Derivado
	Tax         decimal.Decimal `json:"tax"`         // Derivado
	Total       decimal.Decimal `json:"total"`       // Derivado
}

// Invoice es el documento de factura completo. Los totales del documento son
// función pura de las líneas y los ajustes del documento; no se editan
// directamente.
type Invoice struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"` // Formato TW####
	InvoiceType   string          `json:"invoiceType"`
	Institute     string          `json:"institute,omitempty"` // Parte emisora
	Customer      Client          `json:"customer"`            // Snapshot del cliente
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       time.Time       `json:"dueDate"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentType   string          `json:"paymentType"` // contado | credito
	PurchaseOrder string          `json:"purchaseOrder,omitempty"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`      // Derivado
	TotalDiscount decimal.Decimal `json:"totalDiscount"` // Derivado
	TotalTax      decimal.Decimal `json:"totalTax"`      // Derivado
	Total         decimal.Decimal `json:"total"`         // Derivado (gran total)
	Transport     decimal.Decimal `json:"transport"`     // Cargo de transporte
	Bonus         decimal.Decimal `json:"bonus"`         // Descuento por bono
	HasAIU        bool            `json:"hasAIU"`        // Agrega 10% del subtotal
	BagCount      int64           `json:"bagCount"`      // Unidades de impuesto bolsa plástica
	Notes         string          `json:"notes,omitempty"`
	Status        string          `json:"status"`
	Origin        string          `json:"origin,omitempty"` // seed | local (asignado al listar)
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
