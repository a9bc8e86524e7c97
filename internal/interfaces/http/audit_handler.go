package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-admin/internal/application/ports"
	"github.com/jhoicas/backoffice-admin/internal/domain"
)

// AuditHandler consulta la bitácora de mutaciones.
type AuditHandler struct {
	reader ports.AuditReader
}

// NewAuditHandler construye el handler.
func NewAuditHandler(reader ports.AuditReader) *AuditHandler {
	return &AuditHandler{reader: reader}
}

// Recent godoc
// @Summary      Últimas entradas de la bitácora
// @Tags         audit
// @Produce      json
// @Param        limit  query  int  false  "Máximo de filas (1-200)"  default(50)
// @Success      200    {array}   object
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /admin/audit [get]
func (h *AuditHandler) Recent(c *fiber.Ctx) error {
	entries, err := h.reader.Recent(c.UserContext(), c.QueryInt("limit", 50))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entries)
}

// auditDisabled responde cuando no hay base de datos configurada.
func auditDisabled(c *fiber.Ctx) error {
	return writeError(c, domain.ErrNotFound)
}
