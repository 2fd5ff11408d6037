package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/pricing"
)

// CreatePromocion da de alta una promoción (código único, descuento en (0, 100]).
func (uc *UseCase) CreatePromocion(req dto.PromocionRequest) (*dto.PromocionResponse, error) {
	if !pricing.Aplicable(req.Descuento) {
		return nil, domain.ErrInvalidInput
	}
	if !req.FechaFin.After(req.FechaInicio) {
		return nil, domain.ErrInvalidInput
	}

	p := &entity.Promocion{
		ID:          uuid.NewString(),
		Codigo:      req.Codigo,
		Descripcion: req.Descripcion,
		Descuento:   req.Descuento,
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
		Activa:      req.Activa,
	}
	if err := uc.promociones.Create(p); err != nil {
		return nil, err
	}
	return promocionResponse(p), nil
}

// UpdatePromocion modifica una promoción existente.
func (uc *UseCase) UpdatePromocion(id string, req dto.PromocionRequest) (*dto.PromocionResponse, error) {
	if !pricing.Aplicable(req.Descuento) {
		return nil, domain.ErrInvalidInput
	}
	if !req.FechaFin.After(req.FechaInicio) {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.promociones.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	p.Codigo = req.Codigo
	p.Descripcion = req.Descripcion
	p.Descuento = req.Descuento
	p.FechaInicio = req.FechaInicio
	p.FechaFin = req.FechaFin
	p.Activa = req.Activa
	if err := uc.promociones.Update(p); err != nil {
		return nil, err
	}
	return promocionResponse(p), nil
}

// SetActivaPromocion activa o desactiva una promoción.
func (uc *UseCase) SetActivaPromocion(id string, activa bool) error {
	p, err := uc.promociones.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.promociones.SetActiva(id, activa)
}

// GetPromocion devuelve una promoción por id.
func (uc *UseCase) GetPromocion(id string) (*dto.PromocionResponse, error) {
	p, err := uc.promociones.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return promocionResponse(p), nil
}

// ListPromociones lista promociones paginadas.
func (uc *UseCase) ListPromociones(page dto.PageRequest) ([]dto.PromocionResponse, error) {
	page.DefaultPage()
	promos, err := uc.promociones.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PromocionResponse, 0, len(promos))
	for _, p := range promos {
		result = append(result, *promocionResponse(p))
	}
	return result, nil
}

// AsociarPromocion vincula una promoción a un producto.
func (uc *UseCase) AsociarPromocion(promocionID, productoID string) error {
	promo, err := uc.promociones.GetByID(promocionID)
	if err != nil {
		return err
	}
	if promo == nil {
		return domain.ErrNotFound
	}

	prod, err := uc.productos.GetByID(productoID)
	if err != nil {
		return err
	}
	if prod == nil {
		return domain.ErrNotFound
	}

	return uc.promociones.Asociar(promocionID, productoID)
}

// DesasociarPromocion desvincula una promoción de un producto.
func (uc *UseCase) DesasociarPromocion(promocionID, productoID string) error {
	return uc.promociones.Desasociar(promocionID, productoID)
}

func promocionResponse(p *entity.Promocion) *dto.PromocionResponse {
	return &dto.PromocionResponse{
		ID:          p.ID,
		Codigo:      p.Codigo,
		Descripcion: p.Descripcion,
		Descuento:   p.Descuento,
		FechaInicio: p.FechaInicio,
		FechaFin:    p.FechaFin,
		Activa:      p.Activa,
		Vigente:     p.Vigente(time.Now()),
	}
}
