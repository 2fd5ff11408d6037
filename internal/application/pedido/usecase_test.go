package pedido

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

type testEnv struct {
	uc          *UseCase
	carritos    *fakeCarritoRepo
	inventarios *fakeInventarioRepo
	pedidos     *fakePedidoRepo
	promos      *stubPromocionRepo
	recibos     *stubReciboGenerator
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestEnv() *testEnv {
	carritos := newFakeCarritoRepo()
	inventarios := newFakeInventarioRepo()
	pedidos := newFakePedidoRepo()
	productos := &stubProductoRepo{productos: map[string]*entity.Producto{
		"prod-1": {ID: "prod-1", Nombre: "Milan 1990", Precio: dec("100"), Activo: true},
		"prod-2": {ID: "prod-2", Nombre: "Inter 1988", Precio: dec("80"), Activo: true},
	}}
	promos := &stubPromocionRepo{porProducto: make(map[string][]*entity.Promocion)}
	usuarios := &stubUsuarioRepo{usuarios: map[string]*entity.Usuario{
		"user-1": {ID: "user-1", Nombre: "Ana", Email: "ana@test.com"},
	}}
	recibos := &stubReciboGenerator{}

	inventarios.porProducto["prod-1"] = &entity.Inventario{ID: "inv-1", ProductoID: "prod-1", Stock: 10}
	inventarios.porProducto["prod-2"] = &entity.Inventario{ID: "inv-2", ProductoID: "prod-2", Stock: 1}

	tx := &fakeTxRunner{
		carritos:    carritos,
		inventarios: inventarios,
		pedidos:     pedidos,
		productos:   productos,
		promociones: promos,
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	return &testEnv{
		uc:          NewUseCase(tx, pedidos, usuarios, recibos, log),
		carritos:    carritos,
		inventarios: inventarios,
		pedidos:     pedidos,
		promos:      promos,
		recibos:     recibos,
	}
}

func (env *testEnv) conCarrito(detalles ...*entity.DetalleCarrito) {
	env.carritos.carritos["user-1"] = &entity.Carrito{ID: "cart-1", UsuarioID: "user-1"}
	for _, d := range detalles {
		d.CarritoID = "cart-1"
		env.carritos.detalles[d.ID] = d
	}
}

func lineaSimple(id, productoID string, cantidad int, precio string) *entity.DetalleCarrito {
	return &entity.DetalleCarrito{ID: id, ProductoID: productoID, Cantidad: cantidad, PrecioBase: dec(precio)}
}

func TestCreatePedido_FlujoCompleto(t *testing.T) {
	env := newTestEnv()
	env.conCarrito(
		lineaSimple("d1", "prod-1", 2, "100"),
		lineaSimple("d2", "prod-2", 1, "80"),
	)

	resp, err := env.uc.CreatePedido(context.Background(), "user-1", dto.CreatePedidoRequest{
		MetodoPago:     "yape",
		DireccionEnvio: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PedidoPendiente, resp.Estado)
	assert.Equal(t, "280.00", resp.Total.StringFixed(2))
	require.Len(t, resp.Detalles, 2)

	require.NotNil(t, resp.Pago)
	assert.Equal(t, entity.MetodoYape, resp.Pago.Metodo)
	assert.Equal(t, entity.PagoPendiente, resp.Pago.Estado)
	assert.Equal(t, "280.00", resp.Pago.Monto.StringFixed(2))
	assert.Nil(t, resp.Pago.FechaPago)

	require.NotNil(t, resp.Envio)
	assert.Equal(t, entity.EnvioEnPreparacion, resp.Envio.Estado)
	assert.Equal(t, "Av. Siempre Viva 742", resp.Envio.Direccion)

	// Stock descontado y carrito vacío.
	assert.Equal(t, 8, env.inventarios.porProducto["prod-1"].Stock)
	assert.Equal(t, 0, env.inventarios.porProducto["prod-2"].Stock)
	assert.Empty(t, env.carritos.detalles)
}

func TestCreatePedido_SnapshotDelPrecioVigente(t *testing.T) {
	env := newTestEnv()
	// La línea quedó congelada en 100 pero ahora hay una promoción del 20%.
	env.conCarrito(lineaSimple("d1", "prod-1", 1, "100"))
	env.promos.porProducto["prod-1"] = []*entity.Promocion{{
		ID: "promo-1", Codigo: "RETRO20", Descuento: dec("20"),
		FechaInicio: time.Now().Add(-time.Hour),
		FechaFin:    time.Now().Add(time.Hour),
		Activa:      true,
	}}

	resp, err := env.uc.CreatePedido(context.Background(), "user-1", dto.CreatePedidoRequest{
		MetodoPago:     "TARJETA",
		DireccionEnvio: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)

	require.Len(t, resp.Detalles, 1)
	assert.Equal(t, "80.00", resp.Detalles[0].PrecioUnitario.StringFixed(2))
	assert.Equal(t, "20.00", resp.Detalles[0].MontoDescuento.StringFixed(2))
	assert.Equal(t, "80.00", resp.Total.StringFixed(2))
}

func TestCreatePedido_RecargosEnElSubtotal(t *testing.T) {
	env := newTestEnv()
	env.conCarrito(&entity.DetalleCarrito{
		ID: "d1", ProductoID: "prod-1", Cantidad: 2, PrecioBase: dec("100"),
		Personalizado: true, PersTipo: "LEYENDA", PersNombre: "Gullit", PersNumero: "10",
		PersPrecio: dec("15"), ParcheTipo: "SCUDETTO", ParchePrecio: dec("5"),
	})

	resp, err := env.uc.CreatePedido(context.Background(), "user-1", dto.CreatePedidoRequest{
		MetodoPago:     "PLIN",
		DireccionEnvio: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)

	// (100 + 15 + 5) x 2
	assert.Equal(t, "240.00", resp.Total.StringFixed(2))
}

func TestCreatePedido_CarritoVacio(t *testing.T) {
	env := newTestEnv()
	env.conCarrito()

	_, err := env.uc.CreatePedido(context.Background(), "user-1", dto.CreatePedidoRequest{
		MetodoPago:     "YAPE",
		DireccionEnvio: "Av. Siempre Viva 742",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCreatePedido_MetodoPagoInvalido(t *testing.T) {
	env := newTestEnv()
	env.conCarrito(lineaSimple("d1", "prod-1", 1, "100"))

	_, err := env.uc.CreatePedido(context.Background(), "user-1", dto.CreatePedidoRequest{
		MetodoPago:     "BITCOIN",
		DireccionEnvio: "Av. Siempre Viva 742",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePedido_StockInsuficienteRevierteTodo(t *testing.T) {
	env := newTestEnv()
	// prod-2 tiene stock 1: dos líneas del mismo producto suman 2.
	env.conCarrito(
		lineaSimple("d1", "prod-1", 2, "100"),
		lineaSimple("d2", "prod-2", 1, "80"),
		&entity.DetalleCarrito{
			ID: "d3", ProductoID: "prod-2", Cantidad: 1, PrecioBase: dec("80"),
			Personalizado: true, PersTipo: "LEYENDA", PersPrecio: dec("15"),
		},
	)

	_, err := env.uc.CreatePedido(context.Background(), "user-1", dto.CreatePedidoRequest{
		MetodoPago:     "YAPE",
		DireccionEnvio: "Av. Siempre Viva 742",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	// El error nombra el producto y las cantidades en juego.
	assert.Contains(t, err.Error(), "Inter 1988")
	assert.Contains(t, err.Error(), "2 unidades")
	assert.Contains(t, err.Error(), "disponibles 1")

	// Nada quedó a medias: stock intacto, carrito intacto, sin pedidos.
	assert.Equal(t, 10, env.inventarios.porProducto["prod-1"].Stock)
	assert.Equal(t, 1, env.inventarios.porProducto["prod-2"].Stock)
	assert.Len(t, env.carritos.detalles, 3)
	assert.Empty(t, env.pedidos.pedidos)
}

func crearPedido(t *testing.T, env *testEnv) *dto.PedidoResponse {
	t.Helper()
	env.conCarrito(lineaSimple("d1", "prod-1", 1, "100"))
	resp, err := env.uc.CreatePedido(context.Background(), "user-1", dto.CreatePedidoRequest{
		MetodoPago:     "YAPE",
		DireccionEnvio: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)
	return resp
}

func TestGetPedido_ValidaPertenencia(t *testing.T) {
	env := newTestEnv()
	creado := crearPedido(t, env)

	_, err := env.uc.GetPedido(creado.ID, "user-1")
	assert.NoError(t, err)

	_, err = env.uc.GetPedido(creado.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Cadena vacía = acceso admin, sin chequeo de dueño.
	_, err = env.uc.GetPedido(creado.ID, "")
	assert.NoError(t, err)
}

func TestUpdatePago_CompletadoMarcaPedidoPagado(t *testing.T) {
	env := newTestEnv()
	creado := crearPedido(t, env)

	resp, err := env.uc.UpdatePago(creado.ID, dto.UpdatePagoRequest{
		Estado:               "completado",
		IDTransaccionExterna: "op-123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PedidoPagado, resp.Estado)
	require.NotNil(t, resp.Pago)
	assert.Equal(t, entity.PagoCompletado, resp.Pago.Estado)
	assert.NotNil(t, resp.Pago.FechaPago)
	assert.Equal(t, "op-123", resp.Pago.IDTransaccionExterna)
}

func TestUpdateEnvio_EnCaminoEstampaFechaYMarcaEnviado(t *testing.T) {
	env := newTestEnv()
	creado := crearPedido(t, env)

	resp, err := env.uc.UpdateEnvio(creado.ID, dto.UpdateEnvioRequest{
		Estado:            "EN_CAMINO",
		CodigoSeguimiento: "TRK-001",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PedidoEnviado, resp.Estado)
	require.NotNil(t, resp.Envio)
	assert.Equal(t, entity.EnvioEnCamino, resp.Envio.Estado)
	assert.NotNil(t, resp.Envio.FechaEnvio)
	assert.Equal(t, "TRK-001", resp.Envio.CodigoSeguimiento)

	// ENTREGADO cierra el ciclo sin pisar la fecha de envío.
	fechaEnvio := *resp.Envio.FechaEnvio
	resp, err = env.uc.UpdateEnvio(creado.ID, dto.UpdateEnvioRequest{Estado: "ENTREGADO"})
	require.NoError(t, err)
	assert.Equal(t, entity.PedidoEntregado, resp.Estado)
	assert.Equal(t, fechaEnvio, *resp.Envio.FechaEnvio)
}

func TestUpdateEnvio_EstadoInvalido(t *testing.T) {
	env := newTestEnv()
	creado := crearPedido(t, env)

	_, err := env.uc.UpdateEnvio(creado.ID, dto.UpdateEnvioRequest{Estado: "PERDIDO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecibo_GeneraPDFyValidaPertenencia(t *testing.T) {
	env := newTestEnv()
	creado := crearPedido(t, env)

	pdf, err := env.uc.Recibo(creado.ID, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 1, env.recibos.llamadas)

	_, err = env.uc.Recibo(creado.ID, "user-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete_PedidoInexistente(t *testing.T) {
	env := newTestEnv()

	err := env.uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
