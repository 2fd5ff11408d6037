package catalogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
)

func crearCategoria(t *testing.T, uc *UseCase, nombre string) *dto.CategoriaResponse {
	t.Helper()
	cat, err := uc.CreateCategoria(dto.CategoriaRequest{Nombre: nombre, Descripcion: "retro"})
	require.NoError(t, err)
	return cat
}

func crearProducto(t *testing.T, uc *UseCase, categoriaID, nombre, precio string) *dto.ProductoResponse {
	t.Helper()
	p, err := uc.CreateProducto(dto.CreateProductoRequest{
		Nombre:      nombre,
		Descripcion: "camiseta retro",
		Talla:       entity.TallaM,
		Precio:      dec(precio),
		CategoriaID: categoriaID,
	})
	require.NoError(t, err)
	return p
}

func TestCreateProducto_CreaInventarioEnCero(t *testing.T) {
	uc, _, _, _, inventarios := newTestUseCase()
	cat := crearCategoria(t, uc, "Serie A")

	p := crearProducto(t, uc, cat.ID, "Milan 1990", "99.99")

	inv := inventarios.porProducto[p.ID]
	require.NotNil(t, inv)
	assert.Equal(t, 0, inv.Stock)
	assert.Equal(t, 0, p.Stock)
	assert.True(t, p.Activo)
}

func TestCreateProducto_TallaInvalida(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()
	cat := crearCategoria(t, uc, "Serie A")

	_, err := uc.CreateProducto(dto.CreateProductoRequest{
		Nombre:      "Milan 1990",
		Talla:       "XXXL",
		Precio:      dec("99.99"),
		CategoriaID: cat.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProducto_CategoriaInexistente(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()

	_, err := uc.CreateProducto(dto.CreateProductoRequest{
		Nombre:      "Milan 1990",
		Talla:       entity.TallaM,
		Precio:      dec("99.99"),
		CategoriaID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProducto_AplicaMejorPromocionVigente(t *testing.T) {
	uc, _, _, promos, _ := newTestUseCase()
	cat := crearCategoria(t, uc, "Serie A")
	p := crearProducto(t, uc, cat.ID, "Milan 1990", "99.99")

	menor := promoVigente("promo-1", "RETRO10", "10")
	mayor := promoVigente("promo-2", "RETRO15", "15")
	require.NoError(t, promos.Create(menor))
	require.NoError(t, promos.Create(mayor))
	require.NoError(t, promos.Asociar(menor.ID, p.ID))
	require.NoError(t, promos.Asociar(mayor.ID, p.ID))

	resp, err := uc.GetProducto(p.ID)
	require.NoError(t, err)

	// 99.99 con 15% = 84.99 (redondeo half-up a 2 decimales).
	assert.Equal(t, "84.99", resp.Precio.StringFixed(2))
	require.NotNil(t, resp.PrecioOriginal)
	assert.Equal(t, "99.99", resp.PrecioOriginal.StringFixed(2))
	require.NotNil(t, resp.DescuentoAplicado)
	assert.Equal(t, "15", resp.DescuentoAplicado.String())
	assert.Equal(t, "RETRO15", resp.NombrePromocion)
	assert.Len(t, resp.PromocionesAsociadas, 2)
}

func TestGetProducto_SinPromocionVigenteMantienePrecio(t *testing.T) {
	uc, _, _, promos, _ := newTestUseCase()
	cat := crearCategoria(t, uc, "Serie A")
	p := crearProducto(t, uc, cat.ID, "Milan 1990", "99.99")

	inactiva := promoVigente("promo-1", "RETRO10", "10")
	inactiva.Activa = false
	require.NoError(t, promos.Create(inactiva))
	require.NoError(t, promos.Asociar(inactiva.ID, p.ID))

	resp, err := uc.GetProducto(p.ID)
	require.NoError(t, err)

	assert.Equal(t, "99.99", resp.Precio.StringFixed(2))
	assert.Nil(t, resp.PrecioOriginal)
	assert.Empty(t, resp.NombrePromocion)
}

func TestListCatalogo_ExcluyeInactivos(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()
	cat := crearCategoria(t, uc, "Serie A")
	activo := crearProducto(t, uc, cat.ID, "Milan 1990", "99.99")
	inactivo := crearProducto(t, uc, cat.ID, "Inter 1988", "89.99")
	require.NoError(t, uc.SetActivoProducto(inactivo.ID, false))

	lista, err := uc.ListCatalogo(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, activo.ID, lista[0].ID)

	admin, err := uc.ListAdmin(dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestSetLeyendas_ReemplazaElSet(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()
	cat := crearCategoria(t, uc, "Serie A")
	p := crearProducto(t, uc, cat.ID, "Milan 1990", "99.99")

	resp, err := uc.SetLeyendas(p.ID, []dto.LeyendaRequest{
		{Nombre: "Van Basten", Numero: 9},
		{Nombre: "Gullit", Numero: 10},
	})
	require.NoError(t, err)
	require.Len(t, resp.Leyendas, 2)

	resp, err = uc.SetLeyendas(p.ID, []dto.LeyendaRequest{{Nombre: "Maldini", Numero: 3}})
	require.NoError(t, err)
	require.Len(t, resp.Leyendas, 1)
	assert.Equal(t, "MALDINI", resp.Leyendas[0].Nombre, "el nombre del dorsal se guarda en mayúsculas")
}

func TestCreatePromocion_DescuentoFueraDeRango(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()

	base := dto.PromocionRequest{
		Codigo:      "RETRO0",
		FechaInicio: promoVigente("x", "x", "10").FechaInicio,
		FechaFin:    promoVigente("x", "x", "10").FechaFin,
		Activa:      true,
	}

	base.Descuento = dec("0")
	_, err := uc.CreatePromocion(base)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	base.Descuento = dec("101")
	_, err = uc.CreatePromocion(base)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	base.Descuento = dec("100")
	_, err = uc.CreatePromocion(base)
	assert.NoError(t, err)
}

func TestAsociarPromocion_ProductoInexistente(t *testing.T) {
	uc, _, _, promos, _ := newTestUseCase()
	promo := promoVigente("promo-1", "RETRO10", "10")
	require.NoError(t, promos.Create(promo))

	err := uc.AsociarPromocion(promo.ID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategoria_Inexistente(t *testing.T) {
	uc, _, _, _, _ := newTestUseCase()

	err := uc.DeleteCategoria("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
