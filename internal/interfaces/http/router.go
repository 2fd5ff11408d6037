package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/auth"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/carrito"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/catalogo"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/inventario"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/pedido"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/proveedor"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/tasks"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/domain/entity"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	CatalogoUC     *catalogo.UseCase
	CarritoUC      *carrito.UseCase
	PedidoUC       *pedido.UseCase
	InventarioUC   *inventario.UseCase
	ProveedorUC    *proveedor.UseCase
	TasksUC        *tasks.UseCase
	Storage        *storage.LocalStorage
	StorageBaseURL string
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/recovery/request", authHandler.RequestReset)
	authGroup.Post("/recovery/unlock", authHandler.Unlock)

	// Catálogo (público, solo lectura)
	productoHandler := NewProductoHandler(deps.CatalogoUC)
	productos := api.Group("/productos")
	productos.Get("/", productoHandler.List)
	productos.Get("/categoria/:nombre", productoHandler.ListByCategoria)
	productos.Get("/:id", productoHandler.GetByID)

	categoriaHandler := NewCategoriaHandler(deps.CatalogoUC)
	categorias := api.Group("/categorias")
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)

	promocionHandler := NewPromocionHandler(deps.CatalogoUC)
	promociones := api.Group("/promociones")
	promociones.Get("/", promocionHandler.List)
	promociones.Get("/:id", promocionHandler.GetByID)

	// Archivos subidos (público, solo lectura)
	fileHandler := NewFileHandler(deps.Storage, deps.CatalogoUC, deps.StorageBaseURL)
	api.Get("/files/uploads/:nombre", fileHandler.Serve)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Carrito (protegido)
	carritoHandler := NewCarritoHandler(deps.CarritoUC)
	carritoGroup := protected.Group("/carrito")
	carritoGroup.Get("/", carritoHandler.Get)
	carritoGroup.Delete("/", carritoHandler.Vaciar)
	carritoGroup.Post("/items", carritoHandler.AddItem)
	carritoGroup.Put("/items/:id", carritoHandler.UpdateItem)
	carritoGroup.Delete("/items/:id", carritoHandler.RemoveItem)

	// Pedidos del usuario (protegido)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos := protected.Group("/pedidos")
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.ListMine)
	pedidos.Get("/:id", pedidoHandler.GetMine)
	pedidos.Get("/:id/recibo", pedidoHandler.Recibo)

	// Rutas de administración (requieren rol Administrador)
	admin := protected.Group("/admin", RequireRole(entity.RolAdministrador))

	adminProductos := admin.Group("/productos")
	adminProductos.Get("/", productoHandler.ListAdmin)
	adminProductos.Post("/", productoHandler.Create)
	adminProductos.Put("/:id", productoHandler.Update)
	adminProductos.Patch("/:id/activar", productoHandler.Activar)
	adminProductos.Patch("/:id/desactivar", productoHandler.Desactivar)
	adminProductos.Put("/:id/leyendas", productoHandler.SetLeyendas)
	adminProductos.Post("/:id/imagen", fileHandler.UploadPrincipal)
	adminProductos.Post("/:id/galeria", fileHandler.UploadGaleria)

	admin.Delete("/imagenes/:id", fileHandler.DeleteGaleria)

	adminCategorias := admin.Group("/categorias")
	adminCategorias.Post("/", categoriaHandler.Create)
	adminCategorias.Put("/:id", categoriaHandler.Update)
	adminCategorias.Delete("/:id", categoriaHandler.Delete)

	adminPromociones := admin.Group("/promociones")
	adminPromociones.Post("/", promocionHandler.Create)
	adminPromociones.Put("/:id", promocionHandler.Update)
	adminPromociones.Patch("/:id/activar", promocionHandler.Activar)
	adminPromociones.Patch("/:id/desactivar", promocionHandler.Desactivar)
	adminPromociones.Post("/:id/productos/:productoId", promocionHandler.Asociar)
	adminPromociones.Delete("/:id/productos/:productoId", promocionHandler.Desasociar)

	adminPedidos := admin.Group("/pedidos")
	adminPedidos.Get("/", pedidoHandler.ListAdmin)
	adminPedidos.Get("/:id", pedidoHandler.GetAdmin)
	adminPedidos.Put("/:id/estado", pedidoHandler.UpdateEstado)
	adminPedidos.Put("/:id/pago", pedidoHandler.UpdatePago)
	adminPedidos.Put("/:id/envio", pedidoHandler.UpdateEnvio)
	adminPedidos.Delete("/:id", pedidoHandler.Delete)

	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	adminInventario := admin.Group("/inventario")
	adminInventario.Get("/", inventarioHandler.List)
	adminInventario.Get("/:productoId", inventarioHandler.GetByProducto)
	adminInventario.Put("/:productoId", inventarioHandler.SetStock)
	adminInventario.Patch("/:productoId/ajuste", inventarioHandler.Ajustar)

	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores := admin.Group("/proveedores")
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	asignaciones := admin.Group("/asignaciones")
	asignaciones.Post("/", proveedorHandler.Asignar)
	asignaciones.Put("/:id", proveedorHandler.UpdatePrecioCosto)
	asignaciones.Delete("/:id", proveedorHandler.Desasignar)
	asignaciones.Get("/producto/:productoId", proveedorHandler.AsignacionesPorProducto)
	asignaciones.Get("/proveedor/:proveedorId", proveedorHandler.AsignacionesPorProveedor)

	tasksHandler := NewTasksHandler(deps.TasksUC)
	adminTasks := admin.Group("/tasks")
	adminTasks.Post("/cleanup-codes", tasksHandler.CleanupCodes)
	adminTasks.Post("/cancel-orders", tasksHandler.CancelOrders)
	adminTasks.Post("/sales-report", tasksHandler.SalesReport)
	adminTasks.Post("/backup", tasksHandler.Backup)
}
