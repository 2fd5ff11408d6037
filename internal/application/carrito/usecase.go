// Package carrito implementa el carrito de compras: una línea por producto
// sin personalizar (se fusionan cantidades) y líneas independientes para
// productos personalizados.
package carrito

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/pricing"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

// UseCase reglas del carrito de compras.
type UseCase struct {
	carritos    repository.CarritoRepository
	productos   repository.ProductoRepository
	inventarios repository.InventarioRepository
	promociones repository.PromocionRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso del carrito.
func NewUseCase(
	carritos repository.CarritoRepository,
	productos repository.ProductoRepository,
	inventarios repository.InventarioRepository,
	promociones repository.PromocionRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		carritos:    carritos,
		productos:   productos,
		inventarios: inventarios,
		promociones: promociones,
		log:         log,
	}
}

// GetCarrito devuelve el carrito del usuario, creándolo si no existe.
func (uc *UseCase) GetCarrito(usuarioID string) (*dto.CarritoResponse, error) {
	c, err := uc.getOrCreate(usuarioID)
	if err != nil {
		return nil, err
	}
	return uc.responder(c)
}

// AddItem agrega un producto al carrito. Las líneas sin personalización del
// mismo producto se fusionan; las personalizadas siempre crean línea nueva.
func (uc *UseCase) AddItem(usuarioID string, req dto.AddItemRequest) (*dto.CarritoResponse, error) {
	if req.Cantidad < 1 {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.productos.GetByID(req.ProductoID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Activo {
		return nil, domain.ErrNotFound
	}

	c, err := uc.getOrCreate(usuarioID)
	if err != nil {
		return nil, err
	}

	detalles, err := uc.carritos.Detalles(c.ID)
	if err != nil {
		return nil, err
	}

	// Verificación de stock sobre la cantidad agregada del producto en todo
	// el carrito, no solo la línea nueva.
	if err := uc.verificarStock(req.ProductoID, cantidadEnCarrito(detalles, req.ProductoID, "")+req.Cantidad); err != nil {
		return nil, err
	}

	personalizado := req.Personalizacion != nil || req.Parche != nil

	if !personalizado {
		for _, d := range detalles {
			if d.ProductoID == req.ProductoID && !d.Personalizado {
				if err := uc.carritos.UpdateDetalleCantidad(d.ID, d.Cantidad+req.Cantidad); err != nil {
					return nil, err
				}
				return uc.responder(c)
			}
		}
	}

	// Precio base congelado al momento de agregar (mejor promoción vigente).
	promos, err := uc.promociones.PorProducto(req.ProductoID)
	if err != nil {
		return nil, err
	}
	precioBase, _ := pricing.PrecioFinal(p.Precio, promos, time.Now())

	d := &entity.DetalleCarrito{
		ID:            uuid.NewString(),
		CarritoID:     c.ID,
		ProductoID:    req.ProductoID,
		Cantidad:      req.Cantidad,
		PrecioBase:    precioBase,
		Personalizado: personalizado,
	}
	if req.Personalizacion != nil {
		d.PersTipo = req.Personalizacion.Tipo
		d.PersNombre = req.Personalizacion.Nombre
		d.PersNumero = req.Personalizacion.Numero
		d.PersPrecio = req.Personalizacion.Precio
	}
	if req.Parche != nil {
		d.ParcheTipo = req.Parche.Tipo
		d.ParchePrecio = req.Parche.Precio
	}
	if err := uc.carritos.CreateDetalle(d); err != nil {
		return nil, err
	}

	return uc.responder(c)
}

// UpdateItem cambia la cantidad de una línea del carrito del usuario.
func (uc *UseCase) UpdateItem(usuarioID, detalleID string, req dto.UpdateItemRequest) (*dto.CarritoResponse, error) {
	if req.Cantidad < 1 {
		return nil, domain.ErrInvalidInput
	}

	c, d, err := uc.detalleDelUsuario(usuarioID, detalleID)
	if err != nil {
		return nil, err
	}

	detalles, err := uc.carritos.Detalles(c.ID)
	if err != nil {
		return nil, err
	}

	// Se excluye la propia línea de la suma y se agrega la cantidad nueva.
	if err := uc.verificarStock(d.ProductoID, cantidadEnCarrito(detalles, d.ProductoID, d.ID)+req.Cantidad); err != nil {
		return nil, err
	}

	if err := uc.carritos.UpdateDetalleCantidad(d.ID, req.Cantidad); err != nil {
		return nil, err
	}
	return uc.responder(c)
}

// RemoveItem elimina una línea del carrito del usuario.
func (uc *UseCase) RemoveItem(usuarioID, detalleID string) (*dto.CarritoResponse, error) {
	c, d, err := uc.detalleDelUsuario(usuarioID, detalleID)
	if err != nil {
		return nil, err
	}
	if err := uc.carritos.DeleteDetalle(d.ID); err != nil {
		return nil, err
	}
	return uc.responder(c)
}

// Vaciar elimina todas las líneas del carrito del usuario.
func (uc *UseCase) Vaciar(usuarioID string) error {
	c, err := uc.carritos.GetByUsuario(usuarioID)
	if err != nil {
		return err
	}
	if c == nil {
		return nil
	}
	return uc.carritos.DeleteDetalles(c.ID)
}

func (uc *UseCase) getOrCreate(usuarioID string) (*entity.Carrito, error) {
	c, err := uc.carritos.GetByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	c = &entity.Carrito{
		ID:            uuid.NewString(),
		UsuarioID:     usuarioID,
		FechaCreacion: time.Now(),
	}
	if err := uc.carritos.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// detalleDelUsuario busca la línea y valida que pertenezca al carrito del usuario.
func (uc *UseCase) detalleDelUsuario(usuarioID, detalleID string) (*entity.Carrito, *entity.DetalleCarrito, error) {
	c, err := uc.carritos.GetByUsuario(usuarioID)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, domain.ErrNotFound
	}

	d, err := uc.carritos.GetDetalle(detalleID)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return nil, nil, domain.ErrNotFound
	}
	if d.CarritoID != c.ID {
		return nil, nil, domain.ErrForbidden
	}
	return c, d, nil
}

func (uc *UseCase) verificarStock(productoID string, cantidadTotal int) error {
	inv, err := uc.inventarios.GetByProducto(productoID)
	if err != nil {
		return err
	}
	disponible := 0
	if inv != nil {
		disponible = inv.Stock
	}
	if cantidadTotal > disponible {
		return domain.ErrInsufficientStock
	}
	return nil
}

// cantidadEnCarrito suma la cantidad del producto en todas las líneas,
// excluyendo opcionalmente una línea por id.
func cantidadEnCarrito(detalles []*entity.DetalleCarrito, productoID, excluirID string) int {
	total := 0
	for _, d := range detalles {
		if d.ProductoID == productoID && d.ID != excluirID {
			total += d.Cantidad
		}
	}
	return total
}

func (uc *UseCase) responder(c *entity.Carrito) (*dto.CarritoResponse, error) {
	detalles, err := uc.carritos.Detalles(c.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(detalles))
	for _, d := range detalles {
		ids = append(ids, d.ProductoID)
	}
	productos, err := uc.productos.ByIDs(ids)
	if err != nil {
		return nil, err
	}
	stocks, err := uc.inventarios.PorProductos(ids)
	if err != nil {
		return nil, err
	}

	resp := &dto.CarritoResponse{ID: c.ID, Items: []dto.CarritoItemResponse{}, Total: decimal.Zero}
	for _, d := range detalles {
		item := dto.CarritoItemResponse{
			ID:            d.ID,
			ProductoID:    d.ProductoID,
			Cantidad:      d.Cantidad,
			PrecioBase:    d.PrecioBase,
			Personalizado: d.Personalizado,
			Subtotal:      d.Subtotal(),
		}
		if p := productos[d.ProductoID]; p != nil {
			item.NombreProducto = p.Nombre
			item.ImageURL = p.ImageURL
		}
		if inv := stocks[d.ProductoID]; inv != nil {
			item.StockDisponible = inv.Stock
		}
		if d.PersTipo != "" {
			item.Personalizacion = &dto.PersonalizacionRequest{
				Tipo:   d.PersTipo,
				Nombre: d.PersNombre,
				Numero: d.PersNumero,
				Precio: d.PersPrecio,
			}
		}
		if d.ParcheTipo != "" {
			item.Parche = &dto.ParcheRequest{Tipo: d.ParcheTipo, Precio: d.ParchePrecio}
		}
		resp.Items = append(resp.Items, item)
		resp.Total = resp.Total.Add(item.Subtotal)
	}
	return resp, nil
}
