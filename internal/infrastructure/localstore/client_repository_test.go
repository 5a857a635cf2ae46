package localstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturacion-tw/internal/domain"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
	"github.com/tu-usuario/facturacion-tw/internal/infrastructure/localstore"
)

func newClientRepo(t *testing.T) *localstore.ClientRepository {
	t.Helper()
	seed := []entity.Client{
		entity.ConsumidorFinal(),
		{ID: "client-seed-1", Name: "Comercial Andina SAS", TaxID: "900123456"},
	}
	return localstore.NewClientRepository(localstore.NewMemory(), seed, testLogger())
}

func TestClientRepository_ListOrdenadoPorNombre(t *testing.T) {
	repo := newClientRepo(t)
	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Comercial Andina SAS", list[0].Name)
	assert.Equal(t, "Consumidor Final", list[1].Name)
}

func TestClientRepository_AppendYGetByID(t *testing.T) {
	repo := newClientRepo(t)

	created, err := repo.Append(entity.Client{Name: "Distribuidora del Valle", TaxID: "901987654"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Distribuidora del Valle", found.Name)

	_, err = repo.GetByID("client-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientRepository_ConsumidorFinalSiemprePresente(t *testing.T) {
	repo := newClientRepo(t)
	found, err := repo.GetByID(entity.ConsumidorFinalID)
	require.NoError(t, err)
	assert.Equal(t, "222222222222", found.TaxID)
}
