package seed

import (
	"time"

	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

// Clients devuelve los clientes semilla. El primero es el "Consumidor
// Final" genérico; los demás son clientes de muestra.
func Clients() []entity.Client {
	created := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	c := func(id, name, taxID, email, phone string) entity.Client {
		return entity.Client{
			ID:                id,
			PersonType:        entity.PersonTypeJuridica,
			IDType:            entity.IDTypeNIT,
			TaxID:             taxID,
			Name:              name,
			IVAResponsibility: "responsable",
			Email:             email,
			Phone:             phone,
			CreatedAt:         created,
			UpdatedAt:         created,
		}
	}
	return []entity.Client{
		entity.ConsumidorFinal(),
		c("client-seed-1", "Tecnologías Andinas S.A.S.", "900123456-7", "facturacion@tecandinas.co", "601 745 2231"),
		c("client-seed-2", "Instituto Creativo del Norte", "901456789-1", "pagos@icnorte.edu.co", "604 512 9087"),
		c("client-seed-3", "Comercializadora El Dorado Ltda.", "830987654-3", "compras@eldorado.com.co", "601 330 4455"),
	}
}
