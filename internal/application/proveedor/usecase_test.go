package proveedor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/dto"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/repository"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

type fakeProveedorRepo struct {
	proveedores  map[string]*entity.Proveedor
	asignaciones *fakeAsignacionRepo
}

var _ repository.ProveedorRepository = (*fakeProveedorRepo)(nil)

func (r *fakeProveedorRepo) Create(p *entity.Proveedor) error { r.proveedores[p.ID] = p; return nil }
func (r *fakeProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	return r.proveedores[id], nil
}
func (r *fakeProveedorRepo) Update(p *entity.Proveedor) error { r.proveedores[p.ID] = p; return nil }
func (r *fakeProveedorRepo) Delete(id string) error           { delete(r.proveedores, id); return nil }

func (r *fakeProveedorRepo) List() ([]*entity.Proveedor, error) {
	var result []*entity.Proveedor
	for _, p := range r.proveedores {
		result = append(result, p)
	}
	return result, nil
}

func (r *fakeProveedorRepo) TieneAsignaciones(proveedorID string) (bool, error) {
	for _, a := range r.asignaciones.asignaciones {
		if a.ProveedorID == proveedorID {
			return true, nil
		}
	}
	return false, nil
}

type fakeAsignacionRepo struct {
	asignaciones map[string]*entity.ProductoProveedor
}

var _ repository.AsignacionRepository = (*fakeAsignacionRepo)(nil)

func (r *fakeAsignacionRepo) Create(a *entity.ProductoProveedor) error {
	r.asignaciones[a.ID] = a
	return nil
}

func (r *fakeAsignacionRepo) GetByID(id string) (*entity.ProductoProveedor, error) {
	return r.asignaciones[id], nil
}

func (r *fakeAsignacionRepo) PorProducto(productoID string) ([]*entity.ProductoProveedor, error) {
	var result []*entity.ProductoProveedor
	for _, a := range r.asignaciones {
		if a.ProductoID == productoID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAsignacionRepo) PorProveedor(proveedorID string) ([]*entity.ProductoProveedor, error) {
	var result []*entity.ProductoProveedor
	for _, a := range r.asignaciones {
		if a.ProveedorID == proveedorID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAsignacionRepo) Existe(productoID, proveedorID string) (bool, error) {
	for _, a := range r.asignaciones {
		if a.ProductoID == productoID && a.ProveedorID == proveedorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAsignacionRepo) UpdatePrecio(id string, precio decimal.Decimal) error {
	if a, ok := r.asignaciones[id]; ok {
		a.PrecioCosto = precio
	}
	return nil
}

func (r *fakeAsignacionRepo) Delete(id string) error { delete(r.asignaciones, id); return nil }

type stubProductoRepo struct {
	repository.ProductoRepository
	productos map[string]*entity.Producto
}

func (r *stubProductoRepo) GetByID(id string) (*entity.Producto, error) { return r.productos[id], nil }

func newTestUseCase() *UseCase {
	asignaciones := &fakeAsignacionRepo{asignaciones: make(map[string]*entity.ProductoProveedor)}
	proveedores := &fakeProveedorRepo{
		proveedores:  make(map[string]*entity.Proveedor),
		asignaciones: asignaciones,
	}
	productos := &stubProductoRepo{productos: map[string]*entity.Producto{
		"prod-1": {ID: "prod-1", Nombre: "Milan 1990", Activo: true},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewUseCase(proveedores, asignaciones, productos, log)
}

func crearProveedor(t *testing.T, uc *UseCase) *dto.ProveedorResponse {
	t.Helper()
	p, err := uc.Create(dto.ProveedorRequest{
		RazonSocial: "Textiles Retro SAC",
		Contacto:    "Luis Paz",
		Telefono:    "999888777",
	})
	require.NoError(t, err)
	return p
}

func TestCreate_YGet(t *testing.T) {
	uc := newTestUseCase()

	creado := crearProveedor(t, uc)
	obtenido, err := uc.Get(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Textiles Retro SAC", obtenido.RazonSocial)
}

func TestDelete_BloqueadoConAsignaciones(t *testing.T) {
	uc := newTestUseCase()
	prov := crearProveedor(t, uc)

	_, err := uc.Asignar(dto.AsignacionRequest{
		ProductoID:  "prod-1",
		ProveedorID: prov.ID,
		PrecioCosto: decimal.RequireFromString("45.50"),
	})
	require.NoError(t, err)

	err = uc.Delete(prov.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete_SinAsignaciones(t *testing.T) {
	uc := newTestUseCase()
	prov := crearProveedor(t, uc)

	require.NoError(t, uc.Delete(prov.ID))

	_, err := uc.Get(prov.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAsignar_ParejaDuplicada(t *testing.T) {
	uc := newTestUseCase()
	prov := crearProveedor(t, uc)

	req := dto.AsignacionRequest{
		ProductoID:  "prod-1",
		ProveedorID: prov.ID,
		PrecioCosto: decimal.RequireFromString("45.50"),
	}
	_, err := uc.Asignar(req)
	require.NoError(t, err)

	_, err = uc.Asignar(req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAsignar_PrecioCostoInvalido(t *testing.T) {
	uc := newTestUseCase()
	prov := crearProveedor(t, uc)

	_, err := uc.Asignar(dto.AsignacionRequest{
		ProductoID:  "prod-1",
		ProveedorID: prov.ID,
		PrecioCosto: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAsignar_ProductoInexistente(t *testing.T) {
	uc := newTestUseCase()
	prov := crearProveedor(t, uc)

	_, err := uc.Asignar(dto.AsignacionRequest{
		ProductoID:  "no-existe",
		ProveedorID: prov.ID,
		PrecioCosto: decimal.RequireFromString("45.50"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePrecioCosto(t *testing.T) {
	uc := newTestUseCase()
	prov := crearProveedor(t, uc)

	a, err := uc.Asignar(dto.AsignacionRequest{
		ProductoID:  "prod-1",
		ProveedorID: prov.ID,
		PrecioCosto: decimal.RequireFromString("45.50"),
	})
	require.NoError(t, err)

	actualizada, err := uc.UpdatePrecioCosto(a.ID, dto.UpdateAsignacionRequest{
		PrecioCosto: decimal.RequireFromString("48.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "48.00", actualizada.PrecioCosto.StringFixed(2))
}

func TestAsignacionesPorProducto(t *testing.T) {
	uc := newTestUseCase()
	prov := crearProveedor(t, uc)

	_, err := uc.Asignar(dto.AsignacionRequest{
		ProductoID:  "prod-1",
		ProveedorID: prov.ID,
		PrecioCosto: decimal.RequireFromString("45.50"),
	})
	require.NoError(t, err)

	lista, err := uc.AsignacionesPorProducto("prod-1")
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, prov.ID, lista[0].ProveedorID)
}
