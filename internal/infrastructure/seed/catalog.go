// Package seed contiene los datos semilla de la aplicación: catálogo de
// productos y servicios, clientes y facturas de muestra para el listado.
package seed

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

// Catalog devuelve el catálogo de productos y servicios con su precio de
// lista y el IVA por defecto.
func Catalog() []entity.Product {
	p := func(id, name string, price int64, tax int64) entity.Product {
		return entity.Product{
			ID:     id,
			Type:   entity.CatalogProduct,
			Name:   name,
			Price:  decimal.NewFromInt(price),
			TaxPct: decimal.NewFromInt(tax),
		}
	}
	s := func(id, name string, price int64, tax int64) entity.Product {
		out := p(id, name, price, tax)
		out.Type = entity.CatalogService
		return out
	}
	return []entity.Product{
		p("prod-1", "Licencia de Software Anual", 1200000, 19),
		p("prod-2", "Kit de Bienvenida Estudiante", 85000, 19),
		p("prod-3", "Libro Guía de Programación", 45000, 0),
		p("prod-4", "Acceso Plataforma Premium (Mes)", 30000, 19),
		p("prod-5", "Laptop Educativa Básica", 1500000, 19),
		s("serv-1", "Hora de Consultoría Técnica", 150000, 19),
		s("serv-2", "Servicio de Instalación y Configuración", 200000, 19),
		s("serv-3", "Clase Personalizada (Virtual)", 80000, 0),
		s("serv-4", "Soporte Técnico Remoto", 60000, 19),
		s("serv-5", "Auditoría de Código", 500000, 19),
	}
}
