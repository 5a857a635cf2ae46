package repository

import "github.com/tu-usuario/facturacion-tw/internal/domain/entity"

// InvoiceRepository colección de facturas: set semilla de solo lectura unido
// con los registros persistidos localmente.
type InvoiceRepository interface {
	// List devuelve semilla ∪ persistidas, cada una con su Origin,
	// ordenadas descendente por fecha de creación. La paginación es un
	// asunto de presentación que se aplica después.
	List() ([]entity.Invoice, error)

	// GetByID busca en el listado combinado. (nil, ErrNotFound) si no existe.
	GetByID(id string) (*entity.Invoice, error)

	// Append asigna identidad nueva y timestamps, persiste el registro y
	// devuelve la copia almacenada. La identidad nunca se reutiliza en la
	// misma sesión.
	Append(inv entity.Invoice) (*entity.Invoice, error)

	// Update aplica campos parciales sobre un registro persistido (los
	// registros semilla son inmutables) y refresca UpdatedAt.
	// (nil, ErrNotFound) si el id no está entre los persistidos.
	Update(id string, patch entity.InvoicePatch) (*entity.Invoice, error)

	// Remove elimina por id entre los persistidos. Devuelve false si no
	// había registro con ese id (no-op idempotente).
	Remove(id string) (bool, error)

	// Clear borra todos los registros persistidos (utilidad de reset).
	Clear() error

	// LastNumber devuelve el mayor número de factura entre semilla y
	// persistidas, para generar el consecutivo.
	LastNumber() (string, error)
}
