package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturacion-tw/internal/infrastructure/localstore"
)

func TestFileStore_CicloCompleto(t *testing.T) {
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	// Slot inexistente
	_, ok, err := store.Get("invoices")
	require.NoError(t, err)
	assert.False(t, ok, "un slot nunca escrito reporta ausencia, no error")

	// Escritura y lectura
	require.NoError(t, store.Set("invoices", []byte(`[{"id":"a"}]`)))
	data, ok, err := store.Get("invoices")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, string(data))

	// Sobrescritura
	require.NoError(t, store.Set("invoices", []byte(`[]`)))
	data, _, _ = store.Get("invoices")
	assert.Equal(t, `[]`, string(data))

	// Borrado idempotente
	require.NoError(t, store.Delete("invoices"))
	require.NoError(t, store.Delete("invoices"), "borrar un slot ausente no es error")
	_, ok, err = store.Get("invoices")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_UnArchivoPorSlot(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("invoices", []byte(`[]`)))
	require.NoError(t, store.Set("clients", []byte(`[]`)))

	for _, name := range []string{"invoices.json", "clients.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "slot %s debe existir como archivo propio", name)
	}
}

func TestFileStore_EscrituraSinTemporalResidual(t *testing.T) {
	dir := t.TempDir()
	store, err := localstore.Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("invoices", []byte(`[]`)))
	_, err = os.Stat(filepath.Join(dir, "invoices.json.tmp"))
	assert.True(t, os.IsNotExist(err), "el temporal se renombra, no queda en disco")
}

func TestMemoryStore_AislaElBufferEscrito(t *testing.T) {
	store := localstore.NewMemory()
	payload := []byte(`[1,2]`)
	require.NoError(t, store.Set("invoices", payload))

	payload[0] = 'X'
	data, ok, err := store.Get("invoices")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, string(data), "mutar el buffer original no afecta lo guardado")
}
