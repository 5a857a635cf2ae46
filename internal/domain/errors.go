package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrCustomerRequired = errors.New("debe seleccionar un cliente")
	ErrInvalidEmail     = errors.New("correo electrónico inválido")
	ErrDuplicate        = errors.New("recurso duplicado")
)
