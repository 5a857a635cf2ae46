package billing

import (
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

// Orden del resultado por fecha de emisión.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Filter criterios de búsqueda del listado. Todos los campos son opcionales;
// un filtro vacío deja pasar el registro.
type Filter struct {
	Client    string     // Substring del nombre del cliente (sin distinguir mayúsculas)
	Number    string     // Substring del número de factura
	Status    string     // Estado exacto; vacío = todos
	StartDate *time.Time // Fecha de emisión >= StartDate (inclusive)
	EndDate   *time.Time // Fecha de emisión <= EndDate (inclusive)
	Order     string     // asc | desc (por defecto desc)
}

// Matches indica si la factura cumple todos los criterios del filtro.
func (f Filter) Matches(inv entity.Invoice) bool {
	if f.Client != "" &&
		!strings.Contains(strings.ToLower(inv.Customer.Name), strings.ToLower(f.Client)) {
		return false
	}
	if f.Number != "" &&
		!strings.Contains(strings.ToLower(inv.Number), strings.ToLower(f.Number)) {
		return false
	}
	if f.Status != "" && inv.Status != f.Status {
		return false
	}
	if f.StartDate != nil && inv.IssueDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && inv.IssueDate.After(*f.EndDate) {
		return false
	}
	return true
}

// Apply filtra y ordena el listado sin mutar la colección de entrada.
// El orden es estable: facturas con la misma fecha de emisión conservan su
// orden relativo original.
func Apply(invoices []entity.Invoice, f Filter) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if f.Matches(inv) {
			out = append(out, inv)
		}
	}
	asc := f.Order == OrderAsc
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].IssueDate.Before(out[j].IssueDate)
		}
		return out[j].IssueDate.Before(out[i].IssueDate)
	})
	return out
}

// Stats contadores del tablero de facturas.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Sent     int `json:"sent"`
	Problem  int `json:"problem"` // Vencidas
	Rejected int `json:"rejected"`
}

// CalculateStats cuenta facturas por estado para las tarjetas del listado.
func CalculateStats(invoices []entity.Invoice) Stats {
	s := Stats{Total: len(invoices)}
	for _, inv := range invoices {
		switch inv.Status {
		case entity.StatusPending:
			s.Pending++
		case entity.StatusSent:
			s.Sent++
		case entity.StatusOverdue:
			s.Problem++
		case entity.StatusRejected:
			s.Rejected++
		}
	}
	return s
}
