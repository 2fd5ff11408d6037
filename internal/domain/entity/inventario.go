package entity

import "time"

// Inventario stock disponible de un producto (una fila por producto).
// Stock nunca debe quedar negativo; la resta se valida bajo SELECT FOR UPDATE.
type Inventario struct {
	ID                  string
	ProductoID          string
	Stock               int
	UltimaActualizacion time.Time
}
