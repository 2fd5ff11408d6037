package dto

// CategoriaRequest alta o modificación de categoría.
type CategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

// CategoriaResponse categoría serializada.
type CategoriaResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}
