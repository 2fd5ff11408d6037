// Package inventario implementa la gestión de stock por producto.
package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

// UseCase reglas de inventario.
type UseCase struct {
	tx          TxRunner
	inventarios repository.InventarioRepository
	productos   repository.ProductoRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(tx TxRunner, inventarios repository.InventarioRepository, productos repository.ProductoRepository, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, inventarios: inventarios, productos: productos, log: log}
}

// GetByProducto devuelve el stock de un producto.
func (uc *UseCase) GetByProducto(productoID string) (*dto.InventarioResponse, error) {
	inv, err := uc.inventarios.GetByProducto(productoID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.responder(inv), nil
}

// List devuelve el inventario completo con los nombres de producto resueltos.
func (uc *UseCase) List() ([]dto.InventarioResponse, error) {
	inventarios, err := uc.inventarios.List()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(inventarios))
	for _, inv := range inventarios {
		ids = append(ids, inv.ProductoID)
	}
	productos, err := uc.productos.ByIDs(ids)
	if err != nil {
		return nil, err
	}

	result := make([]dto.InventarioResponse, 0, len(inventarios))
	for _, inv := range inventarios {
		resp := *uc.responder(inv)
		if p := productos[inv.ProductoID]; p != nil {
			resp.NombreProducto = p.Nombre
		}
		result = append(result, resp)
	}
	return result, nil
}

// SetStock fija el stock absoluto de un producto, creando el registro si no existe.
func (uc *UseCase) SetStock(ctx context.Context, productoID string, req dto.SetStockRequest) (*dto.InventarioResponse, error) {
	if req.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.productos.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	var resultado *entity.Inventario
	err = uc.tx.RunInventario(ctx, func(inventarioRepo repository.InventarioRepository) error {
		inv, err := inventarioRepo.GetByProductoForUpdate(productoID)
		if err != nil {
			return err
		}
		if inv == nil {
			inv = &entity.Inventario{ID: uuid.NewString(), ProductoID: productoID}
			inv.Stock = req.Stock
			inv.UltimaActualizacion = time.Now()
			resultado = inv
			return inventarioRepo.Create(inv)
		}

		inv.Stock = req.Stock
		inv.UltimaActualizacion = time.Now()
		resultado = inv
		return inventarioRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("producto_id", productoID).Int("stock", resultado.Stock).Msg("stock fijado")
	return uc.responder(resultado), nil
}

// Ajustar aplica un delta (positivo o negativo) al stock de un producto.
// Un ajuste que dejaría el stock negativo se rechaza.
func (uc *UseCase) Ajustar(ctx context.Context, productoID string, req dto.AjusteStockRequest) (*dto.InventarioResponse, error) {
	if req.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	var resultado *entity.Inventario
	err := uc.tx.RunInventario(ctx, func(inventarioRepo repository.InventarioRepository) error {
		inv, err := inventarioRepo.GetByProductoForUpdate(productoID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		if inv.Stock+req.Delta < 0 {
			return domain.ErrInsufficientStock
		}

		inv.Stock += req.Delta
		inv.UltimaActualizacion = time.Now()
		resultado = inv
		return inventarioRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("producto_id", productoID).
		Int("delta", req.Delta).
		Int("stock", resultado.Stock).
		Msg("stock ajustado")
	return uc.responder(resultado), nil
}

func (uc *UseCase) responder(inv *entity.Inventario) *dto.InventarioResponse {
	return &dto.InventarioResponse{
		ID:                  inv.ID,
		ProductoID:          inv.ProductoID,
		Stock:               inv.Stock,
		UltimaActualizacion: inv.UltimaActualizacion,
	}
}
