// Package filestore guarda notas en el sistema de archivos local.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore escribe archivos dentro de un directorio base.
type LocalStore struct {
	dir string
}

// NewLocalStore construye el store. dir vacío = directorio de trabajo actual.
func NewLocalStore(dir string) *LocalStore {
	if dir == "" {
		dir = "."
	}
	return &LocalStore{dir: dir}
}

// Save crea (o trunca) dir/name y escribe content. El archivo se cierra en todos
// los caminos; si la escritura fue correcta pero el cierre falla, se devuelve el error de cierre.
func (s *LocalStore) Save(name string, content []byte) (path string, err error) {
	path = filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("abrir %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("cerrar %s: %w", path, cerr))
		}
		if err != nil {
			path = ""
		}
	}()

	if _, err = f.Write(content); err != nil {
		return "", fmt.Errorf("escribir %s: %w", path, err)
	}
	return path, nil
}
