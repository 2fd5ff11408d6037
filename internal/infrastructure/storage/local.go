// Package storage guarda imágenes de producto en disco local. Los nombres se
// generan con un prefijo UUID para evitar colisiones y se rechaza cualquier
// nombre con separadores de ruta (path traversal).
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Tipos de contenido aceptados para imágenes.
var contentTypesPermitidos = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ContentTypePermitido indica si el content-type es una imagen aceptada.
func ContentTypePermitido(contentType string) bool {
	_, ok := contentTypesPermitidos[contentType]
	return ok
}

// LocalStorage almacenamiento de archivos en un directorio local.
type LocalStorage struct {
	dir string
}

// NewLocalStorage crea el directorio si no existe y devuelve el storage.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Guardar escribe el contenido con un nombre único derivado del content-type
// y devuelve el nombre de archivo generado.
func (s *LocalStorage) Guardar(contentType string, contenido []byte) (string, error) {
	ext, ok := contentTypesPermitidos[contentType]
	if !ok {
		return "", fmt.Errorf("content-type no permitido: %s", contentType)
	}
	nombre := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, nombre), contenido, 0o644); err != nil {
		return "", fmt.Errorf("guardar archivo: %w", err)
	}
	return nombre, nil
}

// Ruta devuelve la ruta absoluta de un archivo guardado, validando que el
// nombre no escape del directorio.
func (s *LocalStorage) Ruta(nombre string) (string, error) {
	if nombre == "" || strings.ContainsAny(nombre, `/\`) || strings.Contains(nombre, "..") {
		return "", fmt.Errorf("nombre de archivo inválido: %q", nombre)
	}
	ruta := filepath.Join(s.dir, nombre)
	if _, err := os.Stat(ruta); err != nil {
		return "", fmt.Errorf("archivo no encontrado: %w", err)
	}
	return ruta, nil
}

// Eliminar borra un archivo guardado (ignora si ya no existe).
func (s *LocalStorage) Eliminar(nombre string) error {
	ruta, err := s.Ruta(nombre)
	if err != nil {
		return nil
	}
	return os.Remove(ruta)
}
