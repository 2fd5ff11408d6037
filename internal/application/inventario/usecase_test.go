package inventario

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
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

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

// fakeTxRunner pasa el repo directo; no hay estado parcial que revertir en
// estos casos de uso de una sola escritura.
type fakeTxRunner struct {
	inventarios *fakeInventarioRepo
}

var _ TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunInventario(ctx context.Context, fn func(repository.InventarioRepository) error) error {
	return fn(r.inventarios)
}

func newTestUseCase() (*UseCase, *fakeInventarioRepo) {
	inventarios := newFakeInventarioRepo()
	productos := &stubProductoRepo{productos: map[string]*entity.Producto{
		"prod-1": {ID: "prod-1", Nombre: "Milan 1990", Precio: decimal.RequireFromString("99.99"), Activo: true},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewUseCase(&fakeTxRunner{inventarios: inventarios}, inventarios, productos, log), inventarios
}

func TestSetStock_CreaRegistroSiNoExiste(t *testing.T) {
	uc, repo := newTestUseCase()

	resp, err := uc.SetStock(context.Background(), "prod-1", dto.SetStockRequest{Stock: 7})
	require.NoError(t, err)

	assert.Equal(t, 7, resp.Stock)
	assert.NotNil(t, repo.porProducto["prod-1"])
	assert.WithinDuration(t, time.Now(), resp.UltimaActualizacion, time.Second)
}

func TestSetStock_ActualizaExistente(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.porProducto["prod-1"] = &entity.Inventario{ID: "inv-1", ProductoID: "prod-1", Stock: 3}

	resp, err := uc.SetStock(context.Background(), "prod-1", dto.SetStockRequest{Stock: 0})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Stock)
	assert.Equal(t, "inv-1", resp.ID)
}

func TestSetStock_ProductoInexistente(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.SetStock(context.Background(), "no-existe", dto.SetStockRequest{Stock: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetStock_NegativoInvalido(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.SetStock(context.Background(), "prod-1", dto.SetStockRequest{Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAjustar_SumaYResta(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.porProducto["prod-1"] = &entity.Inventario{ID: "inv-1", ProductoID: "prod-1", Stock: 5}

	resp, err := uc.Ajustar(context.Background(), "prod-1", dto.AjusteStockRequest{Delta: 3})
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Stock)

	resp, err = uc.Ajustar(context.Background(), "prod-1", dto.AjusteStockRequest{Delta: -8})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
}

func TestAjustar_NoPermiteStockNegativo(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.porProducto["prod-1"] = &entity.Inventario{ID: "inv-1", ProductoID: "prod-1", Stock: 2}

	_, err := uc.Ajustar(context.Background(), "prod-1", dto.AjusteStockRequest{Delta: -3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, repo.porProducto["prod-1"].Stock)
}

func TestList_ResuelveNombresDeProducto(t *testing.T) {
	uc, repo := newTestUseCase()
	repo.porProducto["prod-1"] = &entity.Inventario{ID: "inv-1", ProductoID: "prod-1", Stock: 4}

	lista, err := uc.List()
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Milan 1990", lista[0].NombreProducto)
	assert.Equal(t, 4, lista[0].Stock)
}
