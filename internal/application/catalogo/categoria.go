package catalogo

import (
	"github.com/google/uuid"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
)

// CreateCategoria da de alta una categoría (nombre único).
func (uc *UseCase) CreateCategoria(req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	c := &entity.Categoria{
		ID:          uuid.NewString(),
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	}
	if err := uc.categorias.Create(c); err != nil {
		return nil, err
	}
	return categoriaResponse(c), nil
}

// UpdateCategoria modifica una categoría existente.
func (uc *UseCase) UpdateCategoria(id string, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := uc.categorias.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	c.Nombre = req.Nombre
	c.Descripcion = req.Descripcion
	if err := uc.categorias.Update(c); err != nil {
		return nil, err
	}
	return categoriaResponse(c), nil
}

// DeleteCategoria elimina una categoría sin productos asociados.
func (uc *UseCase) DeleteCategoria(id string) error {
	c, err := uc.categorias.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.categorias.Delete(id)
}

// GetCategoria devuelve una categoría por id.
func (uc *UseCase) GetCategoria(id string) (*dto.CategoriaResponse, error) {
	c, err := uc.categorias.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return categoriaResponse(c), nil
}

// ListCategorias lista todas las categorías.
func (uc *UseCase) ListCategorias() ([]dto.CategoriaResponse, error) {
	categorias, err := uc.categorias.List()
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		result = append(result, *categoriaResponse(c))
	}
	return result, nil
}

func categoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion}
}
