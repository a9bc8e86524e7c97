package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/usecase"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// BatchHandler pantalla de lotes: lista y baja comunes, sesiones de
// formulario con sus filas, y hoja imprimible.
type BatchHandler struct {
	*ResourceHandler[entity.ProductBatch, usecase.NoForm]
	uc *usecase.BatchUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *usecase.BatchUseCase) *BatchHandler {
	return &BatchHandler{ResourceHandler: NewResourceHandler[entity.ProductBatch, usecase.NoForm](uc.Manager), uc: uc}
}

// Register monta las rutas bajo g.
func (h *BatchHandler) Register(g fiber.Router) {
	forms := g.Group("/forms")
	forms.Post("/", h.OpenForm)
	forms.Get("/:fid", h.GetForm)
	forms.Delete("/:fid", h.CloseForm)
	forms.Put("/:fid/details", h.SetDetails)
	forms.Post("/:fid/catalog", h.RefreshCatalog)
	forms.Post("/:fid/rows", h.AddRow)
	forms.Delete("/:fid/rows/:row", h.RemoveRow)
	forms.Put("/:fid/rows/:row/product", h.SelectProduct)
	forms.Put("/:fid/rows/:row/color", h.SelectColor)
	forms.Put("/:fid/rows/:row/quantity", h.SetQuantity)
	forms.Post("/:fid/submit", h.SubmitForm)

	g.Get("/:id/print", h.Print)
	h.RegisterList(g)
}

// OpenForm godoc
// @Summary      Abrir un formulario de lote
// @Description  Sin batchId es alta (una fila vacía); con batchId carga el lote y los colores de cada fila.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenBatchFormRequest  false  "Lote a editar"
// @Success      201   {object}  dto.NoticeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.NoticeResponse
// @Router       /admin/batches/forms [post]
func (h *BatchHandler) OpenForm(c *fiber.Ctx) error {
	var in dto.OpenBatchFormRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "INVALID_BODY", "cuerpo inválido")
		}
	}
	f, n, err := h.uc.OpenForm(c.UserContext(), in.BatchID)
	if err != nil {
		return writeError(c, err)
	}
	if f == nil {
		return writeNotice(c, n, nil)
	}
	if n.IsZero() {
		return c.Status(fiber.StatusCreated).JSON(dto.NoticeResponse{Data: f.View()})
	}
	return writeNotice(c, n, f.View())
}

// GetForm godoc
// @Summary      Estado de un formulario de lote
// @Tags         batches
// @Produce      json
// @Param        fid  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.BatchFormView
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/batches/forms/{fid} [get]
func (h *BatchHandler) GetForm(c *fiber.Ctx) error {
	f, err := h.uc.Form(c.Params("fid"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(f.View())
}

// CloseForm godoc
// @Summary      Descartar un formulario de lote
// @Tags         batches
// @Param        fid  path  string  true  "ID de la sesión"
// @Success      204
// @Router       /admin/batches/forms/{fid} [delete]
func (h *BatchHandler) CloseForm(c *fiber.Ctx) error {
	h.uc.CloseForm(c.Params("fid"))
	return c.SendStatus(fiber.StatusNoContent)
}

// SetDetails godoc
// @Summary      Descripción y etiquetas del lote
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        fid   path  string                   true  "ID de la sesión"
// @Param        body  body  dto.BatchDetailsRequest  true  "Campos libres"
// @Success      200   {object}  dto.BatchFormView
// @Router       /admin/batches/forms/{fid}/details [put]
func (h *BatchHandler) SetDetails(c *fiber.Ctx) error {
	var in dto.BatchDetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	return h.withForm(c, func(f *usecase.BatchForm) error {
		f.SetDetails(in.Description, in.Tags)
		return nil
	})
}

// RefreshCatalog godoc
// @Summary      Recargar el catálogo de productos de la sesión
// @Description  Vuelve a pedir los productos y recalcula batchName.
// @Tags         batches
// @Produce      json
// @Param        fid  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.NoticeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.NoticeResponse
// @Router       /admin/batches/forms/{fid}/catalog [post]
func (h *BatchHandler) RefreshCatalog(c *fiber.Ctx) error {
	f, err := h.uc.Form(c.Params("fid"))
	if err != nil {
		return writeError(c, err)
	}
	return writeNotice(c, f.RefreshCatalog(c.UserContext()), f.View())
}

// AddRow godoc
// @Summary      Agregar una fila (solo alta)
// @Tags         batches
// @Produce      json
// @Param        fid  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.BatchFormView
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/batches/forms/{fid}/rows [post]
func (h *BatchHandler) AddRow(c *fiber.Ctx) error {
	return h.withForm(c, func(f *usecase.BatchForm) error { return f.AddRow() })
}

// RemoveRow godoc
// @Summary      Quitar una fila (solo alta)
// @Tags         batches
// @Produce      json
// @Param        fid  path  string  true  "ID de la sesión"
// @Param        row  path  int     true  "Índice de la fila (desde 0)"
// @Success      200  {object}  dto.BatchFormView
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/batches/forms/{fid}/rows/{row} [delete]
func (h *BatchHandler) RemoveRow(c *fiber.Ctx) error {
	return h.withRow(c, func(f *usecase.BatchForm, i int) error { return f.RemoveRow(i) })
}

// SelectProduct godoc
// @Summary      Elegir el producto de una fila
// @Description  Limpia el color y carga los colores del nuevo producto.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        fid   path  string                    true  "ID de la sesión"
// @Param        row   path  int                       true  "Índice de la fila (desde 0)"
// @Param        body  body  dto.SelectProductRequest  true  "Producto"
// @Success      200   {object}  dto.NoticeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.NoticeResponse
// @Router       /admin/batches/forms/{fid}/rows/{row}/product [put]
func (h *BatchHandler) SelectProduct(c *fiber.Ctx) error {
	var in dto.SelectProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	f, i, err := h.formRow(c)
	if err != nil {
		return writeError(c, err)
	}
	n, err := f.SelectProduct(c.UserContext(), i, in.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return writeNotice(c, n, f.View())
}

// SelectColor godoc
// @Summary      Elegir el color de una fila
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        fid   path  string                  true  "ID de la sesión"
// @Param        row   path  int                     true  "Índice de la fila (desde 0)"
// @Param        body  body  dto.SelectColorRequest  true  "Color"
// @Success      200   {object}  dto.BatchFormView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/batches/forms/{fid}/rows/{row}/color [put]
func (h *BatchHandler) SelectColor(c *fiber.Ctx) error {
	var in dto.SelectColorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	return h.withRow(c, func(f *usecase.BatchForm, i int) error { return f.SelectColor(i, in.ColorID) })
}

// SetQuantity godoc
// @Summary      Fijar la cantidad de una fila
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        fid   path  string               true  "ID de la sesión"
// @Param        row   path  int                  true  "Índice de la fila (desde 0)"
// @Param        body  body  dto.QuantityRequest  true  "Cantidad"
// @Success      200   {object}  dto.BatchFormView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /admin/batches/forms/{fid}/rows/{row}/quantity [put]
func (h *BatchHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	return h.withRow(c, func(f *usecase.BatchForm, i int) error { return f.SetQuantity(i, in.Quantity) })
}

// SubmitForm godoc
// @Summary      Enviar un formulario de lote
// @Description  Sin filas o con filas incompletas responde 422 sin llamar al backend.
// @Tags         batches
// @Produce      json
// @Param        fid  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.NoticeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.NoticeResponse
// @Failure      502  {object}  dto.NoticeResponse
// @Router       /admin/batches/forms/{fid}/submit [post]
func (h *BatchHandler) SubmitForm(c *fiber.Ctx) error {
	fid := c.Params("fid")
	n, err := h.uc.SubmitForm(c.UserContext(), fid)
	if err != nil {
		return writeError(c, err)
	}
	if n.Level == notify.LevelSuccess {
		return writeNotice(c, n, nil)
	}
	if f, err := h.uc.Form(fid); err == nil {
		return writeNotice(c, n, f.View())
	}
	return writeNotice(c, n, nil)
}

// Print godoc
// @Summary      Hoja imprimible del lote (PDF)
// @Tags         batches
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/batches/{id}/print [get]
func (h *BatchHandler) Print(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.PrintSheet(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="batch-%s.pdf"`, id))
	return c.Send(out)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (h *BatchHandler) formRow(c *fiber.Ctx) (*usecase.BatchForm, int, error) {
	f, err := h.uc.Form(c.Params("fid"))
	if err != nil {
		return nil, 0, err
	}
	i, err := c.ParamsInt("row")
	if err != nil {
		return nil, 0, fmt.Errorf("fila %q: %w", c.Params("row"), domain.ErrRowOutOfRange)
	}
	return f, i, nil
}

func (h *BatchHandler) withForm(c *fiber.Ctx, fn func(*usecase.BatchForm) error) error {
	f, err := h.uc.Form(c.Params("fid"))
	if err != nil {
		return writeError(c, err)
	}
	if err := fn(f); err != nil {
		return writeError(c, err)
	}
	return c.JSON(f.View())
}

func (h *BatchHandler) withRow(c *fiber.Ctx, fn func(*usecase.BatchForm, int) error) error {
	f, i, err := h.formRow(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := fn(f, i); err != nil {
		return writeError(c, err)
	}
	return c.JSON(f.View())
}
