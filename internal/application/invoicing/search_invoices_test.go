package invoicing_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturacion-tw/internal/application/dto"
	"github.com/tu-usuario/facturacion-tw/internal/application/invoicing"
	"github.com/tu-usuario/facturacion-tw/internal/domain"
	"github.com/tu-usuario/facturacion-tw/internal/domain/entity"
)

func TestSearch_PorEstado(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Create(validRequest()) // queda pending
	require.NoError(t, err)

	resp, err := uc.Search(invoicing.SearchQuery{Status: entity.StatusPending}, dto.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Page.Total)
	assert.Equal(t, entity.StatusPending, resp.Items[0].Status)
}

func TestSearch_PorNumeroYCliente(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Create(validRequest())
	require.NoError(t, err)

	resp, err := uc.Search(invoicing.SearchQuery{Number: "0007", Client: "andina"}, dto.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Page.Total)
	assert.Equal(t, "TW0007", resp.Items[0].Number)
}

func TestSearch_RangoDeFechasInclusivo(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Create(validRequest()) // emitida 2025-02-01
	require.NoError(t, err)

	resp, err := uc.Search(invoicing.SearchQuery{
		StartDate: "2025-02-01",
		EndDate:   "2025-02-01",
	}, dto.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Page.Total, "una factura emitida el día de la cota entra en el rango")
	assert.Equal(t, "TW0007", resp.Items[0].Number)
}

func TestSearch_FechaMalFormada(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Search(invoicing.SearchQuery{StartDate: "01/02/2025"}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearch_Paginacion(t *testing.T) {
	uc, _ := setup(t)
	for i := 0; i < 3; i++ {
		_, err := uc.Create(validRequest())
		require.NoError(t, err)
	}

	resp, err := uc.Search(invoicing.SearchQuery{}, dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Page.Total, "el total refleja el listado filtrado completo")
	assert.Len(t, resp.Items, 2)

	resp, err = uc.Search(invoicing.SearchQuery{}, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)

	resp, err = uc.Search(invoicing.SearchQuery{}, dto.PageRequest{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Items, "offset fuera de rango devuelve página vacía, no error")
}

// TestSearch_LecturasConcurrentes lista en paralelo sobre la misma semilla y
// verifica que los totales recalculados en cada respuesta son estables. El
// recálculo escribe derivados de línea; cada respuesta debe operar sobre
// líneas propias (con -race esto detecta cualquier escritura compartida).
func TestSearch_LecturasConcurrentes(t *testing.T) {
	uc, _ := setup(t)
	expected := decimal.NewFromInt(2142)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				resp, err := uc.Search(invoicing.SearchQuery{Number: "TW0006"}, dto.PageRequest{})
				if !assert.NoError(t, err) {
					return
				}
				if !assert.Len(t, resp.Items, 1) {
					return
				}
				assert.True(t, resp.Items[0].Total.Equal(expected),
					"total esperado %s, obtenido %s", expected, resp.Items[0].Total)
			}
		}()
	}
	wg.Wait()
}

func TestStats_SobreElFiltroActivo(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.Create(validRequest()) // pending
	require.NoError(t, err)

	all, err := uc.Stats(invoicing.SearchQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, 1, all.Pending)

	paid, err := uc.Stats(invoicing.SearchQuery{Status: entity.StatusPaid})
	require.NoError(t, err)
	assert.Equal(t, 1, paid.Total, "las tarjetas cuentan sobre el listado filtrado")
	assert.Equal(t, 0, paid.Pending)
}
