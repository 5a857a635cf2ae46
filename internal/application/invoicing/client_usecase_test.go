package invoicing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturacion-tw/internal/application/dto"
	"github.com/tu-usuario/facturacion-tw/internal/domain"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

func validClient() dto.CreateClientRequest {
	return dto.CreateClientRequest{
		Name:  "Distribuidora del Valle",
		TaxID: "901987654",
		Email: "facturacion@delvalle.co",
	}
}

func TestClientCreate_AplicaDefectos(t *testing.T) {
	_, uc := setup(t)

	resp, err := uc.Create(validClient())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.PersonTypeJuridica, resp.PersonType)
	assert.Equal(t, entity.IDTypeNIT, resp.IDType)
}

func TestClientCreate_Validacion(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateClientRequest)
		want   error
	}{
		{"sin nombre", func(r *dto.CreateClientRequest) { r.Name = "" }, domain.ErrInvalidInput},
		{"sin identificación", func(r *dto.CreateClientRequest) { r.TaxID = "" }, domain.ErrInvalidInput},
		{"tipo de identificación desconocido", func(r *dto.CreateClientRequest) { r.IDType = "DNI" }, domain.ErrInvalidInput},
		{"tipo de persona desconocido", func(r *dto.CreateClientRequest) { r.PersonType = "mixta" }, domain.ErrInvalidInput},
		{"correo sin arroba", func(r *dto.CreateClientRequest) { r.Email = "facturacion.delvalle.co" }, domain.ErrInvalidEmail},
		{"correo sin dominio", func(r *dto.CreateClientRequest) { r.Email = "facturacion@" }, domain.ErrInvalidEmail},
		{"correo con espacios", func(r *dto.CreateClientRequest) { r.Email = "factu racion@delvalle.co" }, domain.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, uc := setup(t)
			in := validClient()
			tt.mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClientCreate_IdentificacionDuplicada(t *testing.T) {
	_, uc := setup(t)
	_, err := uc.Create(validClient())
	require.NoError(t, err)

	otro := validClient()
	otro.Name = "Otro Nombre SAS"
	_, err = uc.Create(otro)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "mismo taxId no se registra dos veces")

	// También contra la semilla
	seedDup := validClient()
	seedDup.TaxID = "900123456"
	_, err = uc.Create(seedDup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestClientList_IncluyeSemillaYCreados(t *testing.T) {
	_, uc := setup(t)
	_, err := uc.Create(validClient())
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)

	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Comercial Andina SAS", "Consumidor Final", "Distribuidora del Valle"}, names,
		"listado ordenado por nombre")
}

func TestClientGetByID(t *testing.T) {
	_, uc := setup(t)

	found, err := uc.GetByID(entity.ConsumidorFinalID)
	require.NoError(t, err)
	assert.Equal(t, "Consumidor Final", found.Name)

	_, err = uc.GetByID("client-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
