// Package pedido implementa el checkout del carrito y la gestión de pedidos,
// pagos y envíos. La creación del pedido es una transacción: verificación de
// stock con bloqueo de fila, snapshot de precios, descuento de inventario y
// vaciado del carrito se confirman juntos o no se confirman.
package pedido

import (
	"context"
	"fmt"
	"strings"
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

// UseCase reglas de pedidos.
type UseCase struct {
	tx       TxRunner
	pedidos  repository.PedidoRepository
	usuarios repository.UsuarioRepository
	recibos  ReciboGenerator
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de pedidos.
func NewUseCase(
	tx TxRunner,
	pedidos repository.PedidoRepository,
	usuarios repository.UsuarioRepository,
	recibos ReciboGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{tx: tx, pedidos: pedidos, usuarios: usuarios, recibos: recibos, log: log}
}

// CreatePedido convierte el carrito del usuario en un pedido PENDIENTE con
// pago PENDIENTE y envío EN_PREPARACION, descuenta stock y vacía el carrito.
func (uc *UseCase) CreatePedido(ctx context.Context, usuarioID string, req dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	metodo, ok := entity.ParseMetodoPago(req.MetodoPago)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	direccion := strings.TrimSpace(req.DireccionEnvio)
	if direccion == "" {
		return nil, domain.ErrInvalidInput
	}

	var creado *entity.Pedido

	err := uc.tx.Run(ctx, func(
		carritoRepo repository.CarritoRepository,
		inventarioRepo repository.InventarioRepository,
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
		promocionRepo repository.PromocionRepository,
	) error {
		carrito, err := carritoRepo.GetByUsuario(usuarioID)
		if err != nil {
			return err
		}
		if carrito == nil {
			return domain.ErrEmptyCart
		}
		detalles, err := carritoRepo.Detalles(carrito.ID)
		if err != nil {
			return err
		}
		if len(detalles) == 0 {
			return domain.ErrEmptyCart
		}

		// Cantidad agregada por producto: varias líneas (personalizadas o no)
		// del mismo producto consumen el mismo stock.
		porProducto := make(map[string]int)
		for _, d := range detalles {
			porProducto[d.ProductoID] += d.Cantidad
		}

		productoIDs := make([]string, 0, len(porProducto))
		for id := range porProducto {
			productoIDs = append(productoIDs, id)
		}
		productos, err := productoRepo.ByIDs(productoIDs)
		if err != nil {
			return err
		}

		// Bloqueo de filas de inventario y verificación de stock dentro de la tx.
		inventarios := make(map[string]*entity.Inventario, len(porProducto))
		for _, id := range productoIDs {
			p := productos[id]
			if p == nil || !p.Activo {
				return domain.ErrNotFound
			}
			inv, err := inventarioRepo.GetByProductoForUpdate(id)
			if err != nil {
				return err
			}
			if inv == nil {
				return fmt.Errorf("stock insuficiente: no hay %d unidades de %s (disponibles 0): %w",
					porProducto[id], p.Nombre, domain.ErrInsufficientStock)
			}
			if inv.Stock < porProducto[id] {
				return fmt.Errorf("stock insuficiente: no hay %d unidades de %s (disponibles %d): %w",
					porProducto[id], p.Nombre, inv.Stock, domain.ErrInsufficientStock)
			}
			inventarios[id] = inv
		}

		promos, err := promocionRepo.PorProductos(productoIDs)
		if err != nil {
			return err
		}

		pedido := &entity.Pedido{
			ID:        uuid.NewString(),
			UsuarioID: usuarioID,
			Fecha:     time.Now(),
			Estado:    entity.PedidoPendiente,
			Total:     decimal.Zero,
		}

		now := time.Now()
		lineas := make([]*entity.DetallePedido, 0, len(detalles))
		for _, d := range detalles {
			p := productos[d.ProductoID]

			// Snapshot del precio efectivo al momento de la compra, no del
			// precio congelado en el carrito.
			efectivo, _ := pricing.PrecioFinal(p.Precio, promos[d.ProductoID], now)
			unitario := efectivo.Add(d.PersPrecio).Add(d.ParchePrecio)
			cantidad := decimal.NewFromInt(int64(d.Cantidad))

			linea := &entity.DetallePedido{
				ID:             uuid.NewString(),
				PedidoID:       pedido.ID,
				ProductoID:     d.ProductoID,
				NombreProducto: p.Nombre,
				Cantidad:       d.Cantidad,
				PrecioUnitario: unitario,
				MontoDescuento: p.Precio.Sub(efectivo).Mul(cantidad),
				Subtotal:       unitario.Mul(cantidad),
			}
			lineas = append(lineas, linea)
			pedido.Total = pedido.Total.Add(linea.Subtotal)
		}

		if err := pedidoRepo.Create(pedido); err != nil {
			return err
		}
		for _, linea := range lineas {
			if err := pedidoRepo.CreateDetalle(linea); err != nil {
				return err
			}
		}

		pago := &entity.Pago{
			ID:       uuid.NewString(),
			PedidoID: pedido.ID,
			Metodo:   metodo,
			Estado:   entity.PagoPendiente,
			Monto:    pedido.Total,
		}
		if err := pedidoRepo.CreatePago(pago); err != nil {
			return err
		}

		envio := &entity.Envio{
			ID:        uuid.NewString(),
			PedidoID:  pedido.ID,
			Direccion: direccion,
			Estado:    entity.EnvioEnPreparacion,
		}
		if err := pedidoRepo.CreateEnvio(envio); err != nil {
			return err
		}

		// Descuento de stock por producto.
		for id, cantidad := range porProducto {
			inv := inventarios[id]
			inv.Stock -= cantidad
			if inv.Stock < 0 {
				return fmt.Errorf("stock insuficiente: no hay %d unidades de %s (disponibles %d): %w",
					cantidad, productos[id].Nombre, inv.Stock+cantidad, domain.ErrInsufficientStock)
			}
			inv.UltimaActualizacion = time.Now()
			if err := inventarioRepo.Update(inv); err != nil {
				return err
			}
		}

		if err := carritoRepo.DeleteDetalles(carrito.ID); err != nil {
			return err
		}

		creado = pedido
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("pedido_id", creado.ID).
		Str("usuario_id", usuarioID).
		Str("total", creado.Total.StringFixed(2)).
		Msg("pedido creado")

	return uc.responder(creado)
}

// GetPedido devuelve un pedido; si usuarioID no es vacío valida pertenencia.
func (uc *UseCase) GetPedido(id, usuarioID string) (*dto.PedidoResponse, error) {
	p, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if usuarioID != "" && p.UsuarioID != usuarioID {
		return nil, domain.ErrForbidden
	}
	return uc.responder(p)
}

// ListByUsuario lista el historial de pedidos de un usuario.
func (uc *UseCase) ListByUsuario(usuarioID string) ([]dto.PedidoResponse, error) {
	pedidos, err := uc.pedidos.ListByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	return uc.responderVarios(pedidos)
}

// ListAdmin lista todos los pedidos paginados.
func (uc *UseCase) ListAdmin(page dto.PageRequest) ([]dto.PedidoResponse, error) {
	page.DefaultPage()
	pedidos, err := uc.pedidos.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return uc.responderVarios(pedidos)
}

// UpdateEstado cambia el estado de un pedido (admin).
func (uc *UseCase) UpdateEstado(id string, req dto.UpdatePedidoEstadoRequest) (*dto.PedidoResponse, error) {
	estado := strings.ToUpper(strings.TrimSpace(req.Estado))
	if !entity.EstadoPedidoValido(estado) {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.pedidos.UpdateEstado(id, estado); err != nil {
		return nil, err
	}
	p.Estado = estado
	return uc.responder(p)
}

// UpdatePago cambia el estado del pago de un pedido. Al pasar a COMPLETADO se
// estampa la fecha de pago y el pedido pasa a PAGADO.
func (uc *UseCase) UpdatePago(pedidoID string, req dto.UpdatePagoRequest) (*dto.PedidoResponse, error) {
	estado := strings.ToUpper(strings.TrimSpace(req.Estado))
	if !entity.EstadoPagoValido(estado) {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.pedidos.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	pago, err := uc.pedidos.Pago(pedidoID)
	if err != nil {
		return nil, err
	}
	if pago == nil {
		// Pedidos antiguos sin registro de pago: se crea uno con método TARJETA.
		pago = &entity.Pago{
			ID:       uuid.NewString(),
			PedidoID: pedidoID,
			Metodo:   entity.MetodoTarjeta,
			Estado:   entity.PagoPendiente,
			Monto:    p.Total,
		}
		if err := uc.pedidos.CreatePago(pago); err != nil {
			return nil, err
		}
	}

	pago.Estado = estado
	if req.IDTransaccionExterna != "" {
		pago.IDTransaccionExterna = req.IDTransaccionExterna
	}
	if estado == entity.PagoCompletado && pago.FechaPago.IsZero() {
		pago.FechaPago = time.Now()
	}
	if err := uc.pedidos.UpdatePago(pago); err != nil {
		return nil, err
	}

	if estado == entity.PagoCompletado && p.Estado == entity.PedidoPendiente {
		if err := uc.pedidos.UpdateEstado(pedidoID, entity.PedidoPagado); err != nil {
			return nil, err
		}
		p.Estado = entity.PedidoPagado
	}

	return uc.responder(p)
}

// UpdateEnvio cambia el estado del envío. EN_CAMINO estampa la fecha de envío
// y pasa el pedido a ENVIADO; ENTREGADO pasa el pedido a ENTREGADO.
func (uc *UseCase) UpdateEnvio(pedidoID string, req dto.UpdateEnvioRequest) (*dto.PedidoResponse, error) {
	estado := strings.ToUpper(strings.TrimSpace(req.Estado))
	if !entity.EstadoEnvioValido(estado) {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.pedidos.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	envio, err := uc.pedidos.Envio(pedidoID)
	if err != nil {
		return nil, err
	}
	if envio == nil {
		return nil, domain.ErrNotFound
	}

	envio.Estado = estado
	if req.Direccion != "" {
		envio.Direccion = req.Direccion
	}
	if req.CodigoSeguimiento != "" {
		envio.CodigoSeguimiento = req.CodigoSeguimiento
	}
	if estado == entity.EnvioEnCamino && envio.FechaEnvio == nil {
		now := time.Now()
		envio.FechaEnvio = &now
	}
	if err := uc.pedidos.UpdateEnvio(envio); err != nil {
		return nil, err
	}

	switch estado {
	case entity.EnvioEnCamino:
		if err := uc.pedidos.UpdateEstado(pedidoID, entity.PedidoEnviado); err != nil {
			return nil, err
		}
		p.Estado = entity.PedidoEnviado
	case entity.EnvioEntregado:
		if err := uc.pedidos.UpdateEstado(pedidoID, entity.PedidoEntregado); err != nil {
			return nil, err
		}
		p.Estado = entity.PedidoEntregado
	}

	return uc.responder(p)
}

// Delete elimina un pedido (admin).
func (uc *UseCase) Delete(id string) error {
	p, err := uc.pedidos.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.pedidos.Delete(id)
}

// Recibo genera el comprobante PDF del pedido; si usuarioID no es vacío
// valida pertenencia.
func (uc *UseCase) Recibo(id, usuarioID string) ([]byte, error) {
	p, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if usuarioID != "" && p.UsuarioID != usuarioID {
		return nil, domain.ErrForbidden
	}

	detalles, err := uc.pedidos.Detalles(id)
	if err != nil {
		return nil, err
	}
	pago, err := uc.pedidos.Pago(id)
	if err != nil {
		return nil, err
	}
	envio, err := uc.pedidos.Envio(id)
	if err != nil {
		return nil, err
	}
	usuario, err := uc.usuarios.GetByID(p.UsuarioID)
	if err != nil {
		return nil, err
	}

	recibo, err := uc.recibos.GenerarRecibo(p, detalles, usuario, pago, envio)
	if err != nil {
		return nil, fmt.Errorf("generar recibo del pedido %s: %w", id, err)
	}
	return recibo, nil
}

func (uc *UseCase) responder(p *entity.Pedido) (*dto.PedidoResponse, error) {
	detalles, err := uc.pedidos.Detalles(p.ID)
	if err != nil {
		return nil, err
	}
	pago, err := uc.pedidos.Pago(p.ID)
	if err != nil {
		return nil, err
	}
	envio, err := uc.pedidos.Envio(p.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PedidoResponse{
		ID:        p.ID,
		UsuarioID: p.UsuarioID,
		Fecha:     p.Fecha,
		Estado:    p.Estado,
		Total:     p.Total,
		Detalles:  make([]dto.DetallePedidoResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, dto.DetallePedidoResponse{
			ID:             d.ID,
			ProductoID:     d.ProductoID,
			NombreProducto: d.NombreProducto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			MontoDescuento: d.MontoDescuento,
			Subtotal:       d.Subtotal,
		})
	}
	if pago != nil {
		pr := &dto.PagoResponse{
			ID:                   pago.ID,
			Metodo:               pago.Metodo,
			Estado:               pago.Estado,
			Monto:                pago.Monto,
			IDTransaccionExterna: pago.IDTransaccionExterna,
		}
		if !pago.FechaPago.IsZero() {
			fecha := pago.FechaPago
			pr.FechaPago = &fecha
		}
		resp.Pago = pr
	}
	if envio != nil {
		resp.Envio = &dto.EnvioResponse{
			ID:                envio.ID,
			Direccion:         envio.Direccion,
			Estado:            envio.Estado,
			CodigoSeguimiento: envio.CodigoSeguimiento,
			FechaEnvio:        envio.FechaEnvio,
		}
	}
	return resp, nil
}

func (uc *UseCase) responderVarios(pedidos []*entity.Pedido) ([]dto.PedidoResponse, error) {
	result := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		resp, err := uc.responder(p)
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}
