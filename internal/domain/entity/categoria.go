package entity

// Categoria agrupa productos del catálogo (ej: "Retro 90s", "Selecciones").
type Categoria struct {
	ID          string
	Nombre      string
	Descripcion string
}
