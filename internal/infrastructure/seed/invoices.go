package seed

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-tw/internal/domain/billing"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

// Invoices devuelve las facturas semilla del listado. Son de solo lectura:
// el repositorio nunca las modifica ni las persiste. Los totales se
// calculan aquí con el mismo motor que usa el resto del sistema.
func Invoices() []entity.Invoice {
	clients := Clients()
	byID := make(map[string]entity.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}

	item := func(id, name string, price int64, qty int64, discountPct, taxPct int64) entity.InvoiceItem {
		return entity.InvoiceItem{
			ID:          id,
			Name:        name,
			Price:       decimal.NewFromInt(price),
			Quantity:    decimal.NewFromInt(qty),
			DiscountPct: decimal.NewFromInt(discountPct),
			TaxPct:      decimal.NewFromInt(taxPct),
		}
	}
	day := func(d int) time.Time {
		return time.Date(2025, time.January, d, 10, 0, 0, 0, time.UTC)
	}

	invoices := []entity.Invoice{
		{
			ID:            "invoice-seed-1",
			Number:        "TW0001",
			InvoiceType:   entity.InvoiceTypeVenta,
			Institute:     "TW Formación",
			Customer:      byID["client-seed-1"],
			IssueDate:     day(2),
			Currency:      entity.CurrencyCOP,
			PaymentMethod: "transferencia-credito",
			PaymentType:   entity.PaymentTypeContado,
			Items: []entity.InvoiceItem{
				item("item-seed-1a", "Licencia de Software Anual", 1200000, 2, 10, 19),
				item("item-seed-1b", "Soporte Técnico Remoto", 60000, 3, 0, 19),
			},
			Status:    entity.StatusPaid,
			CreatedAt: day(2),
			UpdatedAt: day(2),
		},
		{
			ID:            "invoice-seed-2",
			Number:        "TW0002",
			InvoiceType:   entity.InvoiceTypeVenta,
			Institute:     "TW Formación",
			Customer:      byID["client-seed-2"],
			IssueDate:     day(8),
			DueDate:       day(8).AddDate(0, 0, 30),
			Currency:      entity.CurrencyCOP,
			PaymentMethod: "credito-ach",
			PaymentType:   entity.PaymentTypeCredito,
			PurchaseOrder: "OC-2025-0114",
			Items: []entity.InvoiceItem{
				item("item-seed-2a", "Hora de Consultoría Técnica", 150000, 10, 0, 19),
			},
			Status:    entity.StatusPending,
			CreatedAt: day(8),
			UpdatedAt: day(8),
		},
		{
			ID:            "invoice-seed-3",
			Number:        "TW0003",
			InvoiceType:   entity.InvoiceTypeVenta,
			Institute:     "TW Formación",
			Customer:      byID["client-seed-3"],
			IssueDate:     day(12),
			Currency:      entity.CurrencyUSD,
			PaymentMethod: "tarjeta-credito",
			PaymentType:   entity.PaymentTypeContado,
			Items: []entity.InvoiceItem{
				item("item-seed-3a", "Auditoría de Código", 500000, 1, 0, 19),
				item("item-seed-3b", "Clase Personalizada (Virtual)", 80000, 4, 5, 0),
			},
			Notes:     "Pago confirmado con la pasarela.",
			Status:    entity.StatusSent,
			CreatedAt: day(12),
			UpdatedAt: day(13),
		},
		{
			ID:            "invoice-seed-4",
			Number:        "TW0004",
			InvoiceType:   entity.InvoiceTypeVenta,
			Institute:     "TW Formación",
			Customer:      byID["client-seed-1"],
			IssueDate:     day(15),
			DueDate:       day(15).AddDate(0, 0, 60),
			Currency:      entity.CurrencyCOP,
			PaymentMethod: "cheque",
			PaymentType:   entity.PaymentTypeCredito,
			Items: []entity.InvoiceItem{
				item("item-seed-4a", "Laptop Educativa Básica", 1500000, 5, 0, 19),
			},
			Transport: decimal.NewFromInt(120000),
			BagCount:  3,
			Status:    entity.StatusOverdue,
			CreatedAt: day(15),
			UpdatedAt: day(15),
		},
		{
			ID:            "invoice-seed-5",
			Number:        "TW0005",
			InvoiceType:   entity.InvoiceTypeMandato,
			Institute:     "TW Formación",
			Customer:      byID[entity.ConsumidorFinalID],
			IssueDate:     day(20),
			Currency:      entity.CurrencyCOP,
			PaymentMethod: "efectivo",
			PaymentType:   entity.PaymentTypeContado,
			Items: []entity.InvoiceItem{
				item("item-seed-5a", "Servicio de Instalación y Configuración", 200000, 1, 0, 19),
			},
			HasAIU:    true,
			Status:    entity.StatusRejected,
			CreatedAt: day(20),
			UpdatedAt: day(21),
		},
		{
			ID:            "invoice-seed-6",
			Number:        "TW0006",
			InvoiceType:   entity.InvoiceTypeVenta,
			Institute:     "TW Formación",
			Customer:      byID["client-seed-2"],
			IssueDate:     day(25),
			Currency:      entity.CurrencyEUR,
			PaymentMethod: "otro",
			PaymentType:   entity.PaymentTypeContado,
			Items: []entity.InvoiceItem{
				item("item-seed-6a", "Kit de Bienvenida Estudiante", 85000, 20, 15, 19),
				item("item-seed-6b", "Libro Guía de Programación", 45000, 20, 0, 0),
			},
			Bonus:     decimal.NewFromInt(50000),
			Status:    entity.StatusDraft,
			CreatedAt: day(25),
			UpdatedAt: day(25),
		},
	}

	for i := range invoices {
		billing.Normalize(&invoices[i])
	}
	return invoices
}
