package repository

import "github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"

// CategoriaRepository puerto de persistencia de categorías.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	GetByNombre(nombre string) (*entity.Categoria, error)
	Update(c *entity.Categoria) error
	Delete(id string) error
	List() ([]*entity.Categoria, error)
}
