package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-tw/internal/application/dto"
	"github.com/tu-usuario/facturacion-tw/internal/domain"
	"github.com/tu-usuario/facturacion-tw/internal/domain/billing"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
	"github.com/tu-usuario/facturacion-tw/internal/domain/repository"
	"github.com/tu-usuario/facturacion-tw/pkg/money"
)

// Formato de fechas del formulario.
const dateLayout = "2006-01-02"

// InvoiceUseCase casos de uso de facturación: crear, consultar, buscar,
// actualizar y eliminar facturas.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, clients repository.ClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, clients: clients}
}

// Create valida el formulario, arma el documento, calcula totales y lo
// persiste. Sin cliente seleccionado no se persiste nada
// (ErrCustomerRequired).
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrCustomerRequired
	}
	customer, err := uc.clients.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	inv := entity.Invoice{
		InvoiceType:   defaultString(in.InvoiceType, entity.InvoiceTypeVenta),
		Institute:     in.Institute,
		Customer:      *customer,
		Currency:      defaultString(in.Currency, entity.CurrencyCOP),
		PaymentMethod: defaultString(in.PaymentMethod, "efectivo"),
		PaymentType:   defaultString(in.PaymentType, entity.PaymentTypeContado),
		PurchaseOrder: in.PurchaseOrder,
		Transport:     billing.SafeAmount(in.Transport),
		Bonus:         billing.SafeAmount(in.Bonus),
		HasAIU:        in.HasAIU,
		BagCount:      in.BagCount,
		Notes:         in.Notes,
		Status:        defaultString(in.Status, entity.StatusPending),
	}

	if !entity.ValidInvoiceType(inv.InvoiceType) ||
		!entity.ValidCurrency(inv.Currency) ||
		!entity.ValidPaymentMethod(inv.PaymentMethod) ||
		!entity.ValidStatus(inv.Status) {
		return nil, domain.ErrInvalidInput
	}
	if inv.PaymentType != entity.PaymentTypeContado && inv.PaymentType != entity.PaymentTypeCredito {
		return nil, domain.ErrInvalidInput
	}
	if inv.BagCount < 0 {
		return nil, domain.ErrInvalidInput
	}

	inv.IssueDate, err = parseDate(in.IssueDate, time.Now())
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	inv.DueDate, err = parseDate(in.DueDate, inv.IssueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	inv.Items, err = mapItems(in.Items)
	if err != nil {
		return nil, err
	}

	last, err := uc.invoices.LastNumber()
	if err != nil {
		return nil, err
	}
	inv.Number = billing.NextNumber(last)

	billing.Normalize(&inv)
	stored, err := uc.invoices.Append(inv)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(stored), nil
}

// GetByID obtiene una factura del listado combinado.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func parseDate(s string, def time.Time) (time.Time, error) {
	if s == "" {
		return def, nil
	}
	return time.Parse(dateLayout, s)
}

// mapItems sanea los números del formulario y valida los invariantes de
// línea: precio no negativo, cantidad positiva, descuento entre 0 y 100.
func mapItems(in []dto.InvoiceItemRequest) ([]entity.InvoiceItem, error) {
	items := make([]entity.InvoiceItem, 0, len(in))
	for _, it := range in {
		item := entity.InvoiceItem{
			ID:          "item-" + uuid.NewString(),
			Name:        it.Name,
			Description: it.Description,
			Price:       billing.SafeAmount(it.Price),
			Quantity:    billing.SafeAmount(it.Quantity),
			DiscountPct: billing.SafeAmount(it.DiscountPct),
			TaxPct:      billing.SafeAmount(it.TaxPct),
		}
		if item.Price.IsNegative() || !item.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if item.DiscountPct.IsNegative() || item.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		if item.TaxPct.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, item)
	}
	return items, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	t := billing.CalculateDocument(inv.Items, billing.Adjustments{
		Transport: inv.Transport,
		Bonus:     inv.Bonus,
		HasAIU:    inv.HasAIU,
		BagCount:  inv.BagCount,
	})
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		Number:         inv.Number,
		InvoiceType:    inv.InvoiceType,
		Institute:      inv.Institute,
		Customer:       toClientResponse(&inv.Customer),
		IssueDate:      inv.IssueDate.Format(dateLayout),
		DueDate:        inv.DueDate.Format(dateLayout),
		Currency:       inv.Currency,
		PaymentMethod:  inv.PaymentMethod,
		PaymentType:    inv.PaymentType,
		PurchaseOrder:  inv.PurchaseOrder,
		Items:          make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		Subtotal:       t.Subtotal,
		TotalDiscount:  t.TotalDiscount,
		TotalTax:       t.TotalTax,
		AIUValue:       t.AIUValue,
		BagTaxValue:    t.BagTaxValue,
		Total:          t.GrandTotal,
		TotalFormatted: money.Format(t.GrandTotal, inv.Currency),
		Transport:      inv.Transport,
		Bonus:          inv.Bonus,
		HasAIU:         inv.HasAIU,
		BagCount:       inv.BagCount,
		Notes:          inv.Notes,
		Status:         inv.Status,
		Origin:         inv.Origin,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
			DiscountPct: it.DiscountPct,
			TaxPct:      it.TaxPct,
			Subtotal:    it.Subtotal,
			Discount:    it.Discount,
			Tax:         it.Tax,
			Total:       it.Total,
		})
	}
	return resp
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:                     c.ID,
		PersonType:             c.PersonType,
		IDType:                 c.IDType,
		TaxID:                  c.TaxID,
		Name:                   c.Name,
		TradeName:              c.TradeName,
		EconomicActivity:       c.EconomicActivity,
		IVAResponsibility:      c.IVAResponsibility,
		FiscalResponsibilities: c.FiscalResponsibilities,
		Email:                  c.Email,
		Phone:                  c.Phone,
		Avatar:                 c.Avatar,
	}
}
