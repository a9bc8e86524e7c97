package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/backoffice-admin/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Resumen del dashboard listo para graficar
// @Description  Tarjetas, estados de orden en orden fijo, serie diaria (ingresos o altas) y gráficos de productos/categorías.
// @Tags         dashboard
// @Produce      json
// @Param        rd    query  string  false  "7d | 1m | 3m (por defecto el configurado)"
// @Param        view  query  string  false  "revenue | users"  default(revenue)
// @Success      200   {object}  dto.NoticeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.NoticeResponse
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	view, n, err := h.uc.Overview(c.UserContext(), c.Query("rd"), c.Query("view"))
	if err != nil {
		return writeError(c, err)
	}
	if view == nil {
		return writeNotice(c, n, nil)
	}
	return writeNotice(c, n, view)
}
