package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	appanalytics "github.com/jhoicas/backoffice-admin/internal/application/analytics"
	"github.com/jhoicas/backoffice-admin/internal/application/ports"
	"github.com/jhoicas/backoffice-admin/internal/application/usecase"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	infrapdf "github.com/jhoicas/backoffice-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/backoffice-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/backoffice-admin/internal/infrastructure/restapi"
	httpRouter "github.com/jhoicas/backoffice-admin/internal/interfaces/http"
	"github.com/jhoicas/backoffice-admin/pkg/config"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
	"github.com/jhoicas/backoffice-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Cliente REST hacia la API de la tienda.
	clientOpts := []restapi.Option{
		restapi.WithTimeout(cfg.Backend.Timeout),
		restapi.WithLogger(log.Component("restapi")),
	}
	if cfg.Backend.Token != "" {
		clientOpts = append(clientOpts, restapi.WithHeader("Authorization", "Bearer "+cfg.Backend.Token))
	}
	client := restapi.NewClient(cfg.Backend.BaseURL, clientOpts...)

	productRepo := restapi.NewProductRepository(client)
	categoryRepo := restapi.NewCategoryRepository(client)
	colorRepo := restapi.NewColorRepository(client)
	roomRepo := restapi.NewRoomRepository(client)
	batchRepo := restapi.NewProductBatchRepository(client)
	couponRepo := restapi.NewCouponRepository(client)
	reviewRepo := restapi.NewReviewRepository(client)
	dashboardRepo := restapi.NewDashboardRepository(client)

	printer := locale.New(cfg.App.Locale)
	validator := validation.New(printer)

	// Bitácora de auditoría: solo con PostgreSQL configurado.
	var (
		auditRecorder ports.AuditRecorder = ports.NopAuditRecorder{}
		auditReader   ports.AuditReader
	)
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		auditRepo := postgres.NewAuditRepository(pool)
		if err := auditRepo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("crear tabla de auditoría")
		}
		auditRecorder = auditRepo
		auditReader = auditRepo
	} else {
		log.Warn().Msg("sin base de datos: bitácora de auditoría deshabilitada")
	}

	env := usecase.Env{
		Printer:   printer,
		Validator: validator,
		Audit:     auditRecorder,
		Logger:    log.Zerolog(),
	}

	loc, err := time.LoadLocation(cfg.Dashboard.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.Dashboard.TimeZone).Msg("zona horaria del dashboard")
	}

	// PDF: hoja imprimible de lotes
	sheetGenerator := infrapdf.NewMarotoPDFGenerator(cfg.PDF.FontPath)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, roomRepo, env)
	roomUC := usecase.NewRoomUseCase(roomRepo, cfg.Upload.MaxImageBytes(), env)
	batchUC := usecase.NewBatchUseCase(batchRepo, productRepo, colorRepo, sheetGenerator, env)
	couponUC := usecase.NewCouponUseCase(couponRepo, env)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, env)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, appanalytics.DashboardOptions{
		Location:     loc,
		DefaultRange: cfg.Dashboard.DefaultRange,
		Printer:      printer,
		Logger:       log.Zerolog(),
	})

	app := httpRouter.NewApp(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		// Margen sobre el límite de imagen para el resto del multipart.
		BodyLimit: int(cfg.Upload.MaxImageBytes()) + 1<<20,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.AccessLog(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Back-office Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	deps := httpRouter.RouterDeps{
		ProductUC:     productUC,
		RoomUC:        roomUC,
		BatchUC:       batchUC,
		CouponUC:      couponUC,
		ReviewUC:      reviewUC,
		DashboardUC:   dashboardUC,
		AuditReader:   auditReader,
		Validator:     validator,
		MaxImageBytes: cfg.Upload.MaxImageBytes(),
	}
	httpRouter.Router(app, deps)

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

	log.Info().Msg("aplicación detenida")
}
