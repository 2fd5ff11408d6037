package pedido

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
)

// Fakes en memoria. El runner de transacciones restaura el estado completo
// cuando el callback devuelve error, imitando el rollback.

type fakeCarritoRepo struct {
	carritos map[string]*entity.Carrito
	detalles map[string]*entity.DetalleCarrito
}

var _ repository.CarritoRepository = (*fakeCarritoRepo)(nil)

func newFakeCarritoRepo() *fakeCarritoRepo {
	return &fakeCarritoRepo{
		carritos: make(map[string]*entity.Carrito),
		detalles: make(map[string]*entity.DetalleCarrito),
	}
}

func (r *fakeCarritoRepo) Create(c *entity.Carrito) error { r.carritos[c.UsuarioID] = c; return nil }

func (r *fakeCarritoRepo) GetByUsuario(usuarioID string) (*entity.Carrito, error) {
	return r.carritos[usuarioID], nil
}

func (r *fakeCarritoRepo) Detalles(carritoID string) ([]*entity.DetalleCarrito, error) {
	var result []*entity.DetalleCarrito
	for _, d := range r.detalles {
		if d.CarritoID == carritoID {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeCarritoRepo) GetDetalle(id string) (*entity.DetalleCarrito, error) {
	return r.detalles[id], nil
}

func (r *fakeCarritoRepo) CreateDetalle(d *entity.DetalleCarrito) error {
	r.detalles[d.ID] = d
	return nil
}

func (r *fakeCarritoRepo) UpdateDetalleCantidad(id string, cantidad int) error {
	if d, ok := r.detalles[id]; ok {
		d.Cantidad = cantidad
	}
	return nil
}

func (r *fakeCarritoRepo) DeleteDetalle(id string) error { delete(r.detalles, id); return nil }

func (r *fakeCarritoRepo) DeleteDetalles(carritoID string) error {
	for id, d := range r.detalles {
		if d.CarritoID == carritoID {
			delete(r.detalles, id)
		}
	}
	return nil
}

type fakeInventarioRepo struct {
	porProducto map[string]*entity.Inventario
}

var _ repository.InventarioRepository = (*fakeInventarioRepo)(nil)

func newFakeInventarioRepo() *fakeInventarioRepo {
	return &fakeInventarioRepo{porProducto: make(map[string]*entity.Inventario)}
}

func (r *fakeInventarioRepo) Create(inv *entity.Inventario) error {
	r.porProducto[inv.ProductoID] = inv
	return nil
}

func (r *fakeInventarioRepo) GetByProducto(id string) (*entity.Inventario, error) {
	return r.porProducto[id], nil
}

func (r *fakeInventarioRepo) GetByProductoForUpdate(id string) (*entity.Inventario, error) {
	return r.porProducto[id], nil
}

func (r *fakeInventarioRepo) Update(inv *entity.Inventario) error {
	r.porProducto[inv.ProductoID] = inv
	return nil
}

func (r *fakeInventarioRepo) List() ([]*entity.Inventario, error) {
	var result []*entity.Inventario
	for _, inv := range r.porProducto {
		result = append(result, inv)
	}
	return result, nil
}

func (r *fakeInventarioRepo) PorProductos(ids []string) (map[string]*entity.Inventario, error) {
	result := make(map[string]*entity.Inventario)
	for _, id := range ids {
		if inv, ok := r.porProducto[id]; ok {
			result[id] = inv
		}
	}
	return result, nil
}

type fakePedidoRepo struct {
	pedidos  map[string]*entity.Pedido
	detalles map[string][]*entity.DetallePedido
	pagos    map[string]*entity.Pago  // por pedidoID
	envios   map[string]*entity.Envio // por pedidoID
}

var _ repository.PedidoRepository = (*fakePedidoRepo)(nil)

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{
		pedidos:  make(map[string]*entity.Pedido),
		detalles: make(map[string][]*entity.DetallePedido),
		pagos:    make(map[string]*entity.Pago),
		envios:   make(map[string]*entity.Envio),
	}
}

func (r *fakePedidoRepo) Create(p *entity.Pedido) error { r.pedidos[p.ID] = p; return nil }

func (r *fakePedidoRepo) CreateDetalle(d *entity.DetallePedido) error {
	r.detalles[d.PedidoID] = append(r.detalles[d.PedidoID], d)
	return nil
}

func (r *fakePedidoRepo) CreatePago(p *entity.Pago) error   { r.pagos[p.PedidoID] = p; return nil }
func (r *fakePedidoRepo) CreateEnvio(e *entity.Envio) error { r.envios[e.PedidoID] = e; return nil }

func (r *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) { return r.pedidos[id], nil }

func (r *fakePedidoRepo) Detalles(pedidoID string) ([]*entity.DetallePedido, error) {
	return r.detalles[pedidoID], nil
}

func (r *fakePedidoRepo) Pago(pedidoID string) (*entity.Pago, error)   { return r.pagos[pedidoID], nil }
func (r *fakePedidoRepo) Envio(pedidoID string) (*entity.Envio, error) { return r.envios[pedidoID], nil }

func (r *fakePedidoRepo) ListByUsuario(usuarioID string) ([]*entity.Pedido, error) {
	var result []*entity.Pedido
	for _, p := range r.pedidos {
		if p.UsuarioID == usuarioID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePedidoRepo) List(limit, offset int) ([]*entity.Pedido, error) {
	var result []*entity.Pedido
	for _, p := range r.pedidos {
		result = append(result, p)
	}
	return result, nil
}

func (r *fakePedidoRepo) UpdateEstado(id, estado string) error {
	if p, ok := r.pedidos[id]; ok {
		p.Estado = estado
	}
	return nil
}

func (r *fakePedidoRepo) UpdatePago(p *entity.Pago) error   { r.pagos[p.PedidoID] = p; return nil }
func (r *fakePedidoRepo) UpdateEnvio(e *entity.Envio) error { r.envios[e.PedidoID] = e; return nil }

func (r *fakePedidoRepo) Delete(id string) error {
	delete(r.pedidos, id)
	delete(r.detalles, id)
	delete(r.pagos, id)
	delete(r.envios, id)
	return nil
}

func (r *fakePedidoRepo) CancelarPendientesAnteriores(limite time.Time) (int64, error) {
	var n int64
	for _, p := range r.pedidos {
		if p.Estado == entity.PedidoPendiente && p.Fecha.Before(limite) {
			p.Estado = entity.PedidoCancelado
			n++
		}
	}
	return n, nil
}

func (r *fakePedidoRepo) TotalVentasEnRango(desde, hasta time.Time) (decimal.Decimal, int64, error) {
	total := decimal.Zero
	var n int64
	for _, p := range r.pedidos {
		if p.Fecha.Before(desde) || !p.Fecha.Before(hasta) {
			continue
		}
		switch p.Estado {
		case entity.PedidoPagado, entity.PedidoEnviado, entity.PedidoEntregado:
			total = total.Add(p.Total)
			n++
		}
	}
	return total, n, nil
}

type stubProductoRepo struct {
	repository.ProductoRepository
	productos map[string]*entity.Producto
}

func (r *stubProductoRepo) GetByID(id string) (*entity.Producto, error) { return r.productos[id], nil }

func (r *stubProductoRepo) ByIDs(ids []string) (map[string]*entity.Producto, error) {
	result := make(map[string]*entity.Producto)
	for _, id := range ids {
		if p, ok := r.productos[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

type stubPromocionRepo struct {
	repository.PromocionRepository
	porProducto map[string][]*entity.Promocion
}

func (r *stubPromocionRepo) PorProducto(id string) ([]*entity.Promocion, error) {
	return r.porProducto[id], nil
}

func (r *stubPromocionRepo) PorProductos(ids []string) (map[string][]*entity.Promocion, error) {
	result := make(map[string][]*entity.Promocion)
	for _, id := range ids {
		if promos, ok := r.porProducto[id]; ok {
			result[id] = promos
		}
	}
	return result, nil
}

type stubUsuarioRepo struct {
	repository.UsuarioRepository
	usuarios map[string]*entity.Usuario
}

func (r *stubUsuarioRepo) GetByID(id string) (*entity.Usuario, error) { return r.usuarios[id], nil }

type stubReciboGenerator struct {
	llamadas int
}

func (g *stubReciboGenerator) GenerarRecibo(
	p *entity.Pedido,
	detalles []*entity.DetallePedido,
	usuario *entity.Usuario,
	pago *entity.Pago,
	envio *entity.Envio,
) ([]byte, error) {
	g.llamadas++
	return []byte("%PDF-recibo"), nil
}

// fakeTxRunner pasa los fakes al callback y restaura el estado si falla.
type fakeTxRunner struct {
	carritos    *fakeCarritoRepo
	inventarios *fakeInventarioRepo
	pedidos     *fakePedidoRepo
	productos   *stubProductoRepo
	promociones *stubPromocionRepo
}

var _ TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	carritoRepo repository.CarritoRepository,
	inventarioRepo repository.InventarioRepository,
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	promocionRepo repository.PromocionRepository,
) error) error {
	carritosAntes := snapshotDetallesCarrito(r.carritos)
	stockAntes := snapshotInventario(r.inventarios)
	pedidosAntes := snapshotPedidos(r.pedidos)

	if err := fn(r.carritos, r.inventarios, r.pedidos, r.productos, r.promociones); err != nil {
		r.carritos.detalles = carritosAntes
		r.inventarios.porProducto = stockAntes
		r.pedidos.pedidos = pedidosAntes
		return err
	}
	return nil
}

func snapshotDetallesCarrito(r *fakeCarritoRepo) map[string]*entity.DetalleCarrito {
	copia := make(map[string]*entity.DetalleCarrito, len(r.detalles))
	for id, d := range r.detalles {
		clon := *d
		copia[id] = &clon
	}
	return copia
}

func snapshotInventario(r *fakeInventarioRepo) map[string]*entity.Inventario {
	copia := make(map[string]*entity.Inventario, len(r.porProducto))
	for id, inv := range r.porProducto {
		clon := *inv
		copia[id] = &clon
	}
	return copia
}

func snapshotPedidos(r *fakePedidoRepo) map[string]*entity.Pedido {
	copia := make(map[string]*entity.Pedido, len(r.pedidos))
	for id, p := range r.pedidos {
		clon := *p
		copia[id] = &clon
	}
	return copia
}
