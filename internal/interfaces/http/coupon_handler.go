package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/usecase"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// CouponHandler pantalla de cupones: lista con filtro de estado y página fija
// de 10 filas, modal y activación directa.
type CouponHandler struct {
	*ResourceHandler[entity.Coupon, dto.CouponForm]
	uc        *usecase.CouponUseCase
	validator *validation.Validator
}

// NewCouponHandler construye el handler.
func NewCouponHandler(uc *usecase.CouponUseCase, v *validation.Validator) *CouponHandler {
	return &CouponHandler{
		ResourceHandler: NewResourceHandler[entity.Coupon, dto.CouponForm](uc),
		uc:              uc,
		validator:       v,
	}
}

// Register monta las rutas bajo g.
func (h *CouponHandler) Register(g fiber.Router) {
	g.Get("/", h.List)
	g.Post("/:id/toggle", h.Toggle)
	h.RegisterForm(g)
	g.Post("/submit", h.Submit)
	h.RegisterList(g)
}

// List godoc
// @Summary      Listar cupones
// @Tags         coupons
// @Produce      json
// @Param        q       query  string  false  "Búsqueda difusa por código o tipo"
// @Param        status  query  string  false  "all | active | inactive"
// @Param        page    query  int     false  "Página (10 filas)"
// @Success      200     {object}  dto.NoticeResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.NoticeResponse
// @Router       /admin/coupons [get]
func (h *CouponHandler) List(c *fiber.Ctx) error {
	var req dto.CouponListRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros de consulta inválidos")
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		return badRequest(c, "INVALID_QUERY", firstFieldError(errs))
	}
	n := h.uc.Manager.List(c.UserContext())
	return writeNotice(c, n, h.uc.View(req))
}

// Toggle godoc
// @Summary      Activar / desactivar un cupón
// @Tags         coupons
// @Produce      json
// @Param        id   path  string  true  "ID del cupón"
// @Success      200  {object}  dto.NoticeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.NoticeResponse
// @Router       /admin/coupons/{id}/toggle [post]
func (h *CouponHandler) Toggle(c *fiber.Ctx) error {
	n, err := h.uc.Toggle(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return writeNotice(c, n, h.uc.Snapshot(resourcePageAll))
}
