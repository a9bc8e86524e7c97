package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/backoffice-admin/internal/application/analytics"
	"github.com/jhoicas/backoffice-admin/internal/application/ports"
	"github.com/jhoicas/backoffice-admin/internal/application/usecase"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	RoomUC      *usecase.RoomUseCase
	BatchUC     *usecase.BatchUseCase
	CouponUC    *usecase.CouponUseCase
	ReviewUC    *usecase.ReviewUseCase
	DashboardUC *appanalytics.DashboardUseCase
	// AuditReader nil deshabilita GET /admin/audit.
	AuditReader   ports.AuditReader
	Validator     *validation.Validator
	MaxImageBytes int64
}

// NewApp crea la aplicación fiber del back-office. Los Manager guardan ids,
// búsquedas y valores del modal entre requests, así que los strings de fiber
// tienen que ser copias y no vistas del buffer que fasthttp reutiliza.
func NewApp(cfg fiber.Config) *fiber.App {
	cfg.Immutable = true
	return fiber.New(cfg)
}

// Router registra las rutas del back-office bajo /admin.
func Router(app *fiber.App, deps RouterDeps) {
	admin := app.Group("/admin")

	NewProductHandler(deps.ProductUC).Register(admin.Group("/products"))
	NewRoomHandler(deps.RoomUC, deps.MaxImageBytes).Register(admin.Group("/rooms"))
	NewBatchHandler(deps.BatchUC).Register(admin.Group("/batches"))
	NewCouponHandler(deps.CouponUC, deps.Validator).Register(admin.Group("/coupons"))

	// Reseñas: solo lista, búsqueda y baja.
	NewResourceHandler[entity.Review, usecase.NoForm](deps.ReviewUC).RegisterList(admin.Group("/reviews"))

	admin.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).Overview)

	if deps.AuditReader != nil {
		admin.Get("/audit", NewAuditHandler(deps.AuditReader).Recent)
	} else {
		admin.Get("/audit", auditDisabled)
	}
}
