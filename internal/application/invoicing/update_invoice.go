package invoicing

import (
	"time"

	"github.com/tu-usuario/facturacion-tw/internal/application/dto"
	"github.com/tu-usuario/facturacion-tw/internal/domain"
	"github.com/tu-usuario/facturacion-tw/internal/domain/billing"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

// Update aplica campos parciales sobre una factura persistida. Si el patch
// cambia el tipo de pago a contado, la fecha de vencimiento queda igual a
// la de emisión en la misma operación (invariante del documento).
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	patch, err := uc.toPatch(in)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invoices.Update(id, patch)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Delete elimina una factura persistida. false si el id no existía.
func (uc *InvoiceUseCase) Delete(id string) (bool, error) {
	return uc.invoices.Remove(id)
}

// Clear borra todos los registros persistidos (utilidad de reset).
func (uc *InvoiceUseCase) Clear() error {
	return uc.invoices.Clear()
}

// toPatch valida y traduce el request parcial al patch de dominio.
func (uc *InvoiceUseCase) toPatch(in dto.UpdateInvoiceRequest) (entity.InvoicePatch, error) {
	var p entity.InvoicePatch

	if in.CustomerID != nil {
		customer, err := uc.clients.GetByID(*in.CustomerID)
		if err != nil {
			return p, err
		}
		p.Customer = customer
	}
	if in.IssueDate != nil {
		t, err := time.Parse(dateLayout, *in.IssueDate)
		if err != nil {
			return p, domain.ErrInvalidInput
		}
		p.IssueDate = &t
	}
	if in.DueDate != nil {
		t, err := time.Parse(dateLayout, *in.DueDate)
		if err != nil {
			return p, domain.ErrInvalidInput
		}
		p.DueDate = &t
	}
	if in.Currency != nil {
		if !entity.ValidCurrency(*in.Currency) {
			return p, domain.ErrInvalidInput
		}
		p.Currency = in.Currency
	}
	if in.PaymentMethod != nil {
		if !entity.ValidPaymentMethod(*in.PaymentMethod) {
			return p, domain.ErrInvalidInput
		}
		p.PaymentMethod = in.PaymentMethod
	}
	if in.PaymentType != nil {
		if *in.PaymentType != entity.PaymentTypeContado && *in.PaymentType != entity.PaymentTypeCredito {
			return p, domain.ErrInvalidInput
		}
		p.PaymentType = in.PaymentType
	}
	if in.PurchaseOrder != nil {
		p.PurchaseOrder = in.PurchaseOrder
	}
	if in.Items != nil {
		items, err := mapItems(*in.Items)
		if err != nil {
			return p, err
		}
		p.Items = &items
	}
	if in.Transport != nil {
		v := billing.SafeAmount(*in.Transport)
		p.Transport = &v
	}
	if in.Bonus != nil {
		v := billing.SafeAmount(*in.Bonus)
		p.Bonus = &v
	}
	if in.HasAIU != nil {
		p.HasAIU = in.HasAIU
	}
	if in.BagCount != nil {
		if *in.BagCount < 0 {
			return p, domain.ErrInvalidInput
		}
		p.BagCount = in.BagCount
	}
	if in.Notes != nil {
		p.Notes = in.Notes
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return p, domain.ErrInvalidInput
		}
		p.Status = in.Status
	}
	return p, nil
}
