package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoicePatch campos parciales para actualizar una factura persistida.
// Solo los campos no nulos se aplican.
type InvoicePatch struct {
	Customer      *Client          `json:"customer,omitempty"`
	IssueDate     *time.Time       `json:"issueDate,omitempty"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	PaymentType   *string          `json:"paymentType,omitempty"`
	PurchaseOrder *string          `json:"purchaseOrder,omitempty"`
	Items         *[]InvoiceItem   `json:"items,omitempty"`
	Transport     *decimal.Decimal `json:"transport,omitempty"`
	Bonus         *decimal.Decimal `json:"bonus,omitempty"`
	HasAIU        *bool            `json:"hasAIU,omitempty"`
	BagCount      *int64           `json:"bagCount,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

// ApplyTo fusiona los campos presentes del patch sobre la factura.
// No toca identidad, número ni timestamps; eso es del repositorio.
func (p InvoicePatch) ApplyTo(inv *Invoice) {
	if p.Customer != nil {
		inv.Customer = *p.Customer
	}
	if p.IssueDate != nil {
		inv.IssueDate = *p.IssueDate
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Currency != nil {
		inv.Currency = *p.Currency
	}
	if p.PaymentMethod != nil {
		inv.PaymentMethod = *p.PaymentMethod
	}
	if p.PaymentType != nil {
		inv.PaymentType = *p.PaymentType
	}
	if p.PurchaseOrder != nil {
		inv.PurchaseOrder = *p.PurchaseOrder
	}
	if p.Items != nil {
		inv.Items = *p.Items
	}
	if p.Transport != nil {
		inv.Transport = *p.Transport
	}
	if p.Bonus != nil {
		inv.Bonus = *p.Bonus
	}
	if p.HasAIU != nil {
		inv.HasAIU = *p.HasAIU
	}
	if p.BagCount != nil {
		inv.BagCount = *p.BagCount
	}
	if p.Notes != nil {
		inv.Notes = *p.Notes
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
}
