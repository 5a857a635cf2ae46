package invoicing

import (
	"time"

	"github.com/tu-usuario/facturacion-tw/internal/application/dto"
	"github.com/tu-usuario/facturacion-tw/internal/domain"
	"github.com/tu-usuario/facturacion-tw/internal/domain/billing"
)

// SearchQuery criterios de búsqueda tal como llegan del listado. Las fechas
// van como YYYY-MM-DD; vacías significan sin cota.
type SearchQuery struct {
	Client    string
	Number    string
	Status    string
	StartDate string
	EndDate   string
	Order     string // asc | desc
}

// toFilter traduce la query al filtro de dominio.
func (q SearchQuery) toFilter() (billing.Filter, error) {
	f := billing.Filter{
		Client: q.Client,
		Number: q.Number,
		Status: q.Status,
		Order:  q.Order,
	}
	if q.StartDate != "" {
		t, err := time.Parse(dateLayout, q.StartDate)
		if err != nil {
			return f, domain.ErrInvalidInput
		}
		f.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse(dateLayout, q.EndDate)
		if err != nil {
			return f, domain.ErrInvalidInput
		}
		// Cota superior inclusiva: hasta el final del día.
		t = t.Add(24*time.Hour - time.Nanosecond)
		f.EndDate = &t
	}
	return f, nil
}

// Search filtra y ordena el listado combinado y pagina el resultado.
func (uc *InvoiceUseCase) Search(q SearchQuery, page dto.PageRequest) (*dto.ListInvoicesResponse, error) {
	f, err := q.toFilter()
	if err != nil {
		return nil, err
	}
	list, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	filtered := billing.Apply(list, f)

	page.DefaultPage()
	start := page.Offset
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + page.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	resp := &dto.ListInvoicesResponse{
		Items: make([]dto.InvoiceResponse, 0, end-start),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(filtered)},
	}
	for i := start; i < end; i++ {
		resp.Items = append(resp.Items, *toInvoiceResponse(&filtered[i]))
	}
	return resp, nil
}

// Stats cuenta facturas por estado sobre el listado filtrado (las tarjetas
// del tablero reflejan el filtro activo).
func (uc *InvoiceUseCase) Stats(q SearchQuery) (*billing.Stats, error) {
	f, err := q.toFilter()
	if err != nil {
		return nil, err
	}
	list, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	s := billing.CalculateStats(billing.Apply(list, f))
	return &s, nil
}
