package repository

import "github.com/tu-usuario/facturacion-tw/internal/domain/entity"

// ClientRepository colección de clientes: semilla (incluye "Consumidor
// Final") unida con los clientes creados desde el formulario.
type ClientRepository interface {
	// List devuelve semilla ∪ persistidos, ordenados por nombre.
	List() ([]entity.Client, error)

	// GetByID busca en el listado combinado. (nil, ErrNotFound) si no existe.
	GetByID(id string) (*entity.Client, error)

	// Append asigna identidad y timestamps, persiste y devuelve la copia
	// almacenada.
	Append(c entity.Client) (*entity.Client, error)
}
