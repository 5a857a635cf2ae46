package localstore

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/facturacion-tw/internal/domain"
	"github.com/tu-usuario/facturacion-tw/internal/domain/billing"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
	"github.com/tu-usuario/facturacion-tw/pkg/logger"
)

// Slot del almacén local donde se serializa la colección de facturas.
const invoiceSlot = "invoices"

// InvoiceRepository colección de facturas sobre el almacén local, combinada
// con un set semilla de solo lectura para el listado.
type InvoiceRepository struct {
	store Storage
	seed  []entity.Invoice
	log   *logger.Logger
}

// NewInvoiceRepository construye el repositorio. seed puede ser nil.
func NewInvoiceRepository(store Storage, seed []entity.Invoice, log *logger.Logger) *InvoiceRepository {
	return &InvoiceRepository{store: store, seed: seed, log: log}
}

// newID identidad basada en tiempo más sufijo aleatorio
// (invoice-<unixms>-<sufijo>). El sufijo evita colisiones entre dos
// creaciones en el mismo milisegundo.
func newID(kind string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s", kind, time.Now().UnixMilli(), suffix)
}

// saved carga los registros persistidos. Un payload corrupto degrada a set
// vacío: se registra el diagnóstico y el listado sigue funcionando.
func (r *InvoiceRepository) saved() []entity.Invoice {
	data, ok, err := r.store.Get(invoiceSlot)
	if err != nil {
		r.log.Warn().Err(err).Msg("no se pudo leer el slot de facturas; se asume vacío")
		return nil
	}
	if !ok {
		return nil
	}
	var list []entity.Invoice
	if err := json.Unmarshal(data, &list); err != nil {
		r.log.Warn().Err(err).Msg("payload de facturas corrupto; se ignora el set persistido")
		return nil
	}
	// Los totales almacenados son un caché: se recalculan al cargar.
	for i := range list {
		billing.Recalculate(&list[i])
	}
	return list
}

func (r *InvoiceRepository) persist(list []entity.Invoice) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.store.Set(invoiceSlot, data)
}

// List devuelve semilla ∪ persistidas con su origen, ordenadas descendente
// por fecha de creación.
func (r *InvoiceRepository) List() ([]entity.Invoice, error) {
	saved := r.saved()
	out := make([]entity.Invoice, 0, len(saved)+len(r.seed))
	for _, inv := range saved {
		inv.Origin = entity.OriginLocal
		out = append(out, inv)
	}
	for _, inv := range r.seed {
		inv.Origin = entity.OriginSeed
		// Las líneas se copian: la semilla se comparte entre llamadas y los
		// derivados de línea se recalculan en sitio sobre el resultado.
		inv.Items = append([]entity.InvoiceItem(nil), inv.Items...)
		out = append(out, inv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].CreatedAt.Before(out[i].CreatedAt)
	})
	return out, nil
}

// GetByID busca en el listado combinado.
func (r *InvoiceRepository) GetByID(id string) (*entity.Invoice, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Append asigna identidad y timestamps, persiste y devuelve la copia
// almacenada.
func (r *InvoiceRepository) Append(inv entity.Invoice) (*entity.Invoice, error) {
	now := time.Now()
	inv.ID = newID("invoice")
	inv.CreatedAt = now
	inv.UpdatedAt = now
	inv.Origin = entity.OriginLocal

	list := append(r.saved(), inv)
	if err := r.persist(list); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Update aplica campos parciales sobre un registro persistido y refresca
// UpdatedAt. Los registros semilla no se tocan.
func (r *InvoiceRepository) Update(id string, patch entity.InvoicePatch) (*entity.Invoice, error) {
	list := r.saved()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		patch.ApplyTo(&list[i])
		billing.Normalize(&list[i])
		list[i].UpdatedAt = time.Now()
		if err := r.persist(list); err != nil {
			return nil, err
		}
		updated := list[i]
		updated.Origin = entity.OriginLocal
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

// Remove elimina por id entre los persistidos. false si no había registro.
func (r *InvoiceRepository) Remove(id string) (bool, error) {
	list := r.saved()
	filtered := list[:0:0]
	for _, inv := range list {
		if inv.ID != id {
			filtered = append(filtered, inv)
		}
	}
	if len(filtered) == len(list) {
		return false, nil
	}
	if err := r.persist(filtered); err != nil {
		return false, err
	}
	return true, nil
}

// Clear borra todos los registros persistidos.
func (r *InvoiceRepository) Clear() error {
	return r.store.Delete(invoiceSlot)
}

// LastNumber devuelve el número de factura con mayor secuencia del listado
// combinado, o cadena vacía si no hay facturas.
func (r *InvoiceRepository) LastNumber() (string, error) {
	list, err := r.List()
	if err != nil {
		return "", err
	}
	last := ""
	for _, inv := range list {
		if billing.Sequence(inv.Number) > billing.Sequence(last) {
			last = inv.Number
		}
	}
	return last, nil
}
