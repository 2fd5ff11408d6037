// Package proveedor implementa la gestión de proveedores y sus asignaciones
// a productos con precio de costo.
package proveedor

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

// UseCase reglas de proveedores y asignaciones.
type UseCase struct {
	proveedores  repository.ProveedorRepository
	asignaciones repository.AsignacionRepository
	productos    repository.ProductoRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso de proveedores.
func NewUseCase(
	proveedores repository.ProveedorRepository,
	asignaciones repository.AsignacionRepository,
	productos repository.ProductoRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{proveedores: proveedores, asignaciones: asignaciones, productos: productos, log: log}
}

// Create da de alta un proveedor.
func (uc *UseCase) Create(req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p := &entity.Proveedor{
		ID:          uuid.NewString(),
		RazonSocial: req.RazonSocial,
		Contacto:    req.Contacto,
		Telefono:    req.Telefono,
		Direccion:   req.Direccion,
	}
	if err := uc.proveedores.Create(p); err != nil {
		return nil, err
	}
	return proveedorResponse(p), nil
}

// Update modifica un proveedor existente.
func (uc *UseCase) Update(id string, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := uc.proveedores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	p.RazonSocial = req.RazonSocial
	p.Contacto = req.Contacto
	p.Telefono = req.Telefono
	p.Direccion = req.Direccion
	if err := uc.proveedores.Update(p); err != nil {
		return nil, err
	}
	return proveedorResponse(p), nil
}

// Delete elimina un proveedor sin asignaciones vigentes.
func (uc *UseCase) Delete(id string) error {
	p, err := uc.proveedores.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}

	asignado, err := uc.proveedores.TieneAsignaciones(id)
	if err != nil {
		return err
	}
	if asignado {
		return domain.ErrConflict
	}
	return uc.proveedores.Delete(id)
}

// Get devuelve un proveedor por id.
func (uc *UseCase) Get(id string) (*dto.ProveedorResponse, error) {
	p, err := uc.proveedores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return proveedorResponse(p), nil
}

// List lista todos los proveedores.
func (uc *UseCase) List() ([]dto.ProveedorResponse, error) {
	proveedores, err := uc.proveedores.List()
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		result = append(result, *proveedorResponse(p))
	}
	return result, nil
}

// Asignar vincula un proveedor a un producto con su precio de costo.
// La pareja producto-proveedor es única.
func (uc *UseCase) Asignar(req dto.AsignacionRequest) (*dto.AsignacionResponse, error) {
	if req.PrecioCosto.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	prod, err := uc.productos.GetByID(req.ProductoID)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}

	prov, err := uc.proveedores.GetByID(req.ProveedorID)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, domain.ErrNotFound
	}

	existe, err := uc.asignaciones.Existe(req.ProductoID, req.ProveedorID)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrDuplicate
	}

	a := &entity.ProductoProveedor{
		ID:              uuid.NewString(),
		ProductoID:      req.ProductoID,
		ProveedorID:     req.ProveedorID,
		PrecioCosto:     req.PrecioCosto,
		FechaAsignacion: time.Now(),
	}
	if err := uc.asignaciones.Create(a); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("producto_id", a.ProductoID).
		Str("proveedor_id", a.ProveedorID).
		Msg("proveedor asignado a producto")
	return asignacionResponse(a), nil
}

// UpdatePrecioCosto actualiza el precio de costo de una asignación.
func (uc *UseCase) UpdatePrecioCosto(id string, req dto.UpdateAsignacionRequest) (*dto.AsignacionResponse, error) {
	if req.PrecioCosto.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	a, err := uc.asignaciones.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.asignaciones.UpdatePrecio(id, req.PrecioCosto); err != nil {
		return nil, err
	}
	a.PrecioCosto = req.PrecioCosto
	return asignacionResponse(a), nil
}

// Desasignar elimina una asignación producto-proveedor.
func (uc *UseCase) Desasignar(id string) error {
	a, err := uc.asignaciones.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.asignaciones.Delete(id)
}

// AsignacionesPorProducto lista los proveedores asignados a un producto.
func (uc *UseCase) AsignacionesPorProducto(productoID string) ([]dto.AsignacionResponse, error) {
	asignaciones, err := uc.asignaciones.PorProducto(productoID)
	if err != nil {
		return nil, err
	}
	return asignacionResponses(asignaciones), nil
}

// AsignacionesPorProveedor lista los productos asignados a un proveedor.
func (uc *UseCase) AsignacionesPorProveedor(proveedorID string) ([]dto.AsignacionResponse, error) {
	asignaciones, err := uc.asignaciones.PorProveedor(proveedorID)
	if err != nil {
		return nil, err
	}
	return asignacionResponses(asignaciones), nil
}

func proveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:          p.ID,
		RazonSocial: p.RazonSocial,
		Contacto:    p.Contacto,
		Telefono:    p.Telefono,
		Direccion:   p.Direccion,
	}
}

func asignacionResponse(a *entity.ProductoProveedor) *dto.AsignacionResponse {
	return &dto.AsignacionResponse{
		ID:              a.ID,
		ProductoID:      a.ProductoID,
		ProveedorID:     a.ProveedorID,
		PrecioCosto:     a.PrecioCosto,
		FechaAsignacion: a.FechaAsignacion,
	}
}

func asignacionResponses(asignaciones []*entity.ProductoProveedor) []dto.AsignacionResponse {
	result := make([]dto.AsignacionResponse, 0, len(asignaciones))
	for _, a := range asignaciones {
		result = append(result, *asignacionResponse(a))
	}
	return result
}
