package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/auth"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/carrito"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/catalogo"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/inventario"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/pedido"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/proveedor"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/application/tasks"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/infrastructure/email"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/infrastructure/healthcheck"
	infrapdf "github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/infrastructure/pdf"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/infrastructure/postgres"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/infrastructure/storage"
	httpRouter "github.com/Jitsben-Andree/OldSchoolTees-Deploy/internal/interfaces/http"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/config"
	"github.com/Jitsben-Andree/OldSchoolTees-Deploy/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	promocionRepo := postgres.NewPromocionRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	carritoRepo := postgres.NewCarritoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	asignacionRepo := postgres.NewAsignacionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := email.NewGomailSender(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	reciboGen := infrapdf.NewMarotoReciboGenerator()
	pinger := healthcheck.NewPinger(cfg.Health.BaseURL, log)

	localStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de imágenes")
	}

	authUC := auth.NewUseCase(usuarioRepo, mailer, cfg.JWT, log)
	catalogoUC := catalogo.NewUseCase(productoRepo, categoriaRepo, promocionRepo, inventarioRepo, log)
	carritoUC := carrito.NewUseCase(carritoRepo, productoRepo, inventarioRepo, promocionRepo, log)
	pedidoUC := pedido.NewUseCase(txRunner, pedidoRepo, usuarioRepo, reciboGen, log)
	inventarioUC := inventario.NewUseCase(txRunner, inventarioRepo, productoRepo, log)
	proveedorUC := proveedor.NewUseCase(proveedorRepo, asignacionRepo, productoRepo, log)
	tasksUC := tasks.NewUseCase(usuarioRepo, pedidoRepo, pinger, cfg.Health, cfg.Backup, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // subida de imágenes
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "OldSchoolTees API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CatalogoUC:     catalogoUC,
		CarritoUC:      carritoUC,
		PedidoUC:       pedidoUC,
		InventarioUC:   inventarioUC,
		ProveedorUC:    proveedorUC,
		TasksUC:        tasksUC,
		Storage:        localStorage,
		StorageBaseURL: cfg.Storage.BaseURL,
		JWTSecret:      cfg.JWT.Secret,
	})

	scheduler := tasks.NewScheduler(tasksUC, cfg.Scheduler, log)
	if cfg.Scheduler.Enabled {
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("scheduler de mantenimiento")
		}
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if cfg.Scheduler.Enabled {
		scheduler.Stop()
	}

	log.Info().Msg("aplicación detenida")
}
