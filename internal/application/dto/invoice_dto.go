package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest línea de factura tal como llega del formulario. Los
// números vienen como float y se sanean en el caso de uso (NaN/Inf -> 0).
type InvoiceItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	DiscountPct float64 `json:"discountPct"`
	TaxPct      float64 `json:"taxPct"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// Las fechas van como YYYY-MM-DD.
type CreateInvoiceRequest struct {
	InvoiceType   string               `json:"invoiceType,omitempty"`
	Institute     string               `json:"institute,omitempty"`
	CustomerID    string               `json:"customerId"`
	IssueDate     string               `json:"issueDate,omitempty"`
	DueDate       string               `json:"dueDate,omitempty"`
	Currency      string               `json:"currency,omitempty"`
	PaymentMethod string               `json:"paymentMethod,omitempty"`
	PaymentType   string               `json:"paymentType,omitempty"`
	PurchaseOrder string               `json:"purchaseOrder,omitempty"`
	Items         []InvoiceItemRequest `json:"items"`
	Transport     float64              `json:"transport,omitempty"`
	Bonus         float64              `json:"bonus,omitempty"`
	HasAIU        bool                 `json:"hasAIU,omitempty"`
	BagCount      int64                `json:"bagCount,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	Status        string               `json:"status,omitempty"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id. Solo los campos
// presentes se aplican; opera únicamente sobre registros persistidos.
type UpdateInvoiceRequest struct {
	CustomerID    *string               `json:"customerId,omitempty"`
	IssueDate     *string               `json:"issueDate,omitempty"`
	DueDate       *string               `json:"dueDate,omitempty"`
	Currency      *string               `json:"currency,omitempty"`
	PaymentMethod *string               `json:"paymentMethod,omitempty"`
	PaymentType   *string               `json:"paymentType,omitempty"`
	PurchaseOrder *string               `json:"purchaseOrder,omitempty"`
	Items         *[]InvoiceItemRequest `json:"items,omitempty"`
	Transport     *float64              `json:"transport,omitempty"`
	Bonus         *float64              `json:"bonus,omitempty"`
	HasAIU        *bool                 `json:"hasAIU,omitempty"`
	BagCount      *int64                `json:"bagCount,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
	Status        *string               `json:"status,omitempty"`
}

// InvoiceItemResponse línea con sus derivados calculados.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
	DiscountPct decimal.Decimal `json:"discountPct"`
	TaxPct      decimal.Decimal `json:"taxPct"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse factura completa en respuestas.
type InvoiceResponse struct {
	ID             string                `json:"id"`
	Number         string                `json:"number"`
	InvoiceType    string                `json:"invoiceType"`
	Institute      string                `json:"institute,omitempty"`
	Customer       ClientResponse        `json:"customer"`
	IssueDate      string                `json:"issueDate"`
	DueDate        string                `json:"dueDate"`
	Currency       string                `json:"currency"`
	PaymentMethod  string                `json:"paymentMethod"`
	PaymentType    string                `json:"paymentType"`
	PurchaseOrder  string                `json:"purchaseOrder,omitempty"`
	Items          []InvoiceItemResponse `json:"items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	TotalDiscount  decimal.Decimal       `json:"totalDiscount"`
	TotalTax       decimal.Decimal       `json:"totalTax"`
	AIUValue       decimal.Decimal       `json:"aiuValue"`
	BagTaxValue    decimal.Decimal       `json:"bagTaxValue"`
	Total          decimal.Decimal       `json:"total"`
	TotalFormatted string                `json:"totalFormatted"` // Monto presentado según la moneda
	Transport      decimal.Decimal       `json:"transport"`
	Bonus          decimal.Decimal       `json:"bonus"`
	HasAIU         bool                  `json:"hasAIU"`
	BagCount       int64                 `json:"bagCount"`
	Notes          string                `json:"notes,omitempty"`
	Status         string                `json:"status"`
	Origin         string                `json:"origin"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// ListInvoicesResponse página del listado filtrado.
type ListInvoicesResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductResponse ítem del catálogo.
type ProductResponse struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	TaxPct decimal.Decimal `json:"taxPct"`
}

// CurrencyResponse tasa de cambio de presentación.
type CurrencyResponse struct {
	Code string          `json:"code"`
	Rate decimal.Decimal `json:"rate"` // COP por unidad
}
