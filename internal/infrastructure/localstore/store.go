// Package localstore implementa la persistencia local de la aplicación:
// un almacén clave-valor donde cada slot es un archivo JSON bajo un
// directorio de datos. Hay un único escritor (el proceso), así que no se
// necesita disciplina de bloqueo entre procesos.
package localstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage acceso por slot al almacén local. Las implementaciones devuelven
// (nil, false, nil) cuando el slot no existe.
type Storage interface {
	Get(slot string) ([]byte, bool, error)
	Set(slot string, data []byte) error
	Delete(slot string) error
}

// FileStore guarda cada slot como <dir>/<slot>.json.
type FileStore struct {
	dir string
}

// Open prepara el directorio de datos y devuelve el almacén.
func Open(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

// Get lee el contenido del slot.
func (s *FileStore) Get(slot string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set escribe el slot de forma atómica (archivo temporal + rename) para no
// dejar un payload a medias si el proceso muere durante la escritura.
func (s *FileStore) Set(slot string, data []byte) error {
	tmp := s.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(slot))
}

// Delete elimina el slot; no es error que no exista.
func (s *FileStore) Delete(slot string) error {
	err := os.Remove(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStore implementación en memoria para pruebas.
type MemoryStore struct {
	slots map[string][]byte
}

// NewMemory crea un almacén en memoria vacío.
func NewMemory() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

// Get lee el contenido del slot.
func (s *MemoryStore) Get(slot string) ([]byte, bool, error) {
	data, ok := s.slots[slot]
	return data, ok, nil
}

// Set escribe el slot.
func (s *MemoryStore) Set(slot string, data []byte) error {
	s.slots[slot] = append([]byte(nil), data...)
	return nil
}

// Delete elimina el slot.
func (s *MemoryStore) Delete(slot string) error {
	delete(s.slots, slot)
	return nil
}
