package localstore

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/tu-usuario/facturacion-tw/internal/domain"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
	"github.com/tu-usuario/facturacion-tw/pkg/logger"
)

// Slot del almacén local donde se serializan los clientes creados ad hoc.
// Es independiente del slot de facturas.
const clientSlot = "clients"

// ClientRepository colección de clientes sobre el almacén local, combinada
// con la semilla (incluye el "Consumidor Final").
type ClientRepository struct {
	store Storage
	seed  []entity.Client
	log   *logger.Logger
}

// NewClientRepository construye el repositorio.
func NewClientRepository(store Storage, seed []entity.Client, log *logger.Logger) *ClientRepository {
	return &ClientRepository{store: store, seed: seed, log: log}
}

func (r *ClientRepository) saved() []entity.Client {
	data, ok, err := r.store.Get(clientSlot)
	if err != nil {
		r.log.Warn().Err(err).Msg("no se pudo leer el slot de clientes; se asume vacío")
		return nil
	}
	if !ok {
		return nil
	}
	var list []entity.Client
	if err := json.Unmarshal(data, &list); err != nil {
		r.log.Warn().Err(err).Msg("payload de clientes corrupto; se ignora el set persistido")
		return nil
	}
	return list
}

func (r *ClientRepository) persist(list []entity.Client) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.store.Set(clientSlot, data)
}

// List devuelve semilla ∪ persistidos ordenados por nombre.
func (r *ClientRepository) List() ([]entity.Client, error) {
	saved := r.saved()
	out := make([]entity.Client, 0, len(saved)+len(r.seed))
	out = append(out, r.seed...)
	out = append(out, saved...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// GetByID busca en el listado combinado.
func (r *ClientRepository) GetByID(id string) (*entity.Client, error) {
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
func (r *ClientRepository) Append(c entity.Client) (*entity.Client, error) {
	now := time.Now()
	c.ID = newID("client")
	c.CreatedAt = now
	c.UpdatedAt = now

	list := append(r.saved(), c)
	if err := r.persist(list); err != nil {
		return nil, err
	}
	return &c, nil
}
