package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/resource"
)

// maxPageSize tope de ?size= en los listados.
const maxPageSize = 100

// resourcePageAll vista sin paginar.
var resourcePageAll = resource.Page{}

// resourceManager operaciones del Resource Manager que expone HTTP. Lo
// implementan *resource.Manager y los casos de uso que lo embeben.
type resourceManager[T, F any] interface {
	List(ctx context.Context) notify.Notice
	Search(query string) []T
	Snapshot(page resource.Page) resource.Snapshot[T, F]
	OpenCreate() resource.FormState[F]
	OpenEdit(id string) (resource.FormState[F], error)
	UpdateForm(fn func(*F)) (resource.FormState[F], error)
	CloseForm()
	Form() resource.FormState[F]
	Submit(ctx context.Context, values F) (notify.Notice, error)
	Remove(id string) (string, error)
	Cancel(token string) error
	Confirm(ctx context.Context, token string) (notify.Notice, error)
}

// ResourceHandler rutas comunes de una pantalla de recurso: lista, modal y baja en dos pasos.
type ResourceHandler[T, F any] struct {
	m resourceManager[T, F]
}

// NewResourceHandler construye el handler.
func NewResourceHandler[T, F any](m resourceManager[T, F]) *ResourceHandler[T, F] {
	return &ResourceHandler[T, F]{m: m}
}

// RegisterList registra lista, baja y confirmaciones.
func (h *ResourceHandler[T, F]) RegisterList(g fiber.Router) {
	g.Get("/", h.List)
	g.Post("/confirmations/:token", h.Confirm)
	g.Delete("/confirmations/:token", h.Cancel)
	g.Delete("/:id", h.Remove)
}

// RegisterForm registra las rutas del modal de alta/edición, sin el envío.
func (h *ResourceHandler[T, F]) RegisterForm(g fiber.Router) {
	g.Get("/form", h.Form)
	g.Post("/form", h.OpenCreate)
	g.Post("/form/:id", h.OpenEdit)
	g.Put("/form", h.UpdateForm)
	g.Delete("/form", h.CloseForm)
}

// pageFromQuery lee ?page=&size= (size 0 = sin paginar).
func pageFromQuery(c *fiber.Ctx) (resource.Page, error) {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return resource.Page{}, err
	}
	if req.Size < 0 {
		req.Size = 0
	}
	if req.Size > maxPageSize {
		req.Size = maxPageSize
	}
	return resource.Page{Number: req.Page, Size: req.Size}, nil
}

// List godoc
// @Summary      Listar registros
// @Description  Vuelve a pedir la colección al backend y aplica la búsqueda local ?q=.
// @Tags         resources
// @Produce      json
// @Param        q     query  string  false  "Búsqueda"
// @Param        page  query  int     false  "Página (desde 1)"
// @Param        size  query  int     false  "Filas por página (0 = todas)"
// @Success      200   {object}  dto.NoticeResponse
// @Failure      502   {object}  dto.NoticeResponse
// @Router       /admin/{resource} [get]
func (h *ResourceHandler[T, F]) List(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros de consulta inválidos")
	}
	n := h.m.List(c.UserContext())
	h.m.Search(c.Query("q"))
	return writeNotice(c, n, h.m.Snapshot(page))
}

// Form godoc
// @Summary      Estado del modal
// @Tags         resources
// @Produce      json
// @Success      200  {object}  object
// @Router       /admin/{resource}/form [get]
func (h *ResourceHandler[T, F]) Form(c *fiber.Ctx) error {
	return c.JSON(h.m.Form())
}

// OpenCreate godoc
// @Summary      Abrir modal de alta
// @Tags         resources
// @Produce      json
// @Success      200  {object}  object
// @Router       /admin/{resource}/form [post]
func (h *ResourceHandler[T, F]) OpenCreate(c *fiber.Ctx) error {
	return c.JSON(h.m.OpenCreate())
}

// OpenEdit godoc
// @Summary      Abrir modal de edición pre-cargado con el registro
// @Tags         resources
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/{resource}/form/{id} [post]
func (h *ResourceHandler[T, F]) OpenEdit(c *fiber.Ctx) error {
	form, err := h.m.OpenEdit(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(form)
}

// UpdateForm godoc
// @Summary      Reemplazar los valores del modal abierto (borrador)
// @Tags         resources
// @Accept       json
// @Produce      json
// @Success      200  {object}  object
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/{resource}/form [put]
func (h *ResourceHandler[T, F]) UpdateForm(c *fiber.Ctx) error {
	var values F
	if err := c.BodyParser(&values); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	form, err := h.m.UpdateForm(func(f *F) { *f = values })
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(form)
}

// CloseForm godoc
// @Summary      Cerrar el modal sin guardar
// @Tags         resources
// @Success      204
// @Router       /admin/{resource}/form [delete]
func (h *ResourceHandler[T, F]) CloseForm(c *fiber.Ctx) error {
	h.m.CloseForm()
	return c.SendStatus(fiber.StatusNoContent)
}

// Submit godoc
// @Summary      Enviar el modal
// @Description  Valida localmente; si pasa, crea o actualiza y vuelve a pedir la lista.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.NoticeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.NoticeResponse
// @Failure      502  {object}  dto.NoticeResponse
// @Router       /admin/{resource}/submit [post]
func (h *ResourceHandler[T, F]) Submit(c *fiber.Ctx) error {
	var values F
	if err := c.BodyParser(&values); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	return h.submit(c, values)
}

func (h *ResourceHandler[T, F]) submit(c *fiber.Ctx, values F) error {
	n, err := h.m.Submit(c.UserContext(), values)
	if err != nil {
		return writeError(c, err)
	}
	return writeNotice(c, n, h.m.Form())
}

// Remove godoc
// @Summary      Pedir la baja de un registro
// @Description  Primer paso: devuelve un token; no llama al backend.
// @Tags         resources
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      202  {object}  dto.ConfirmationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/{resource}/{id} [delete]
func (h *ResourceHandler[T, F]) Remove(c *fiber.Ctx) error {
	id := c.Params("id")
	token, err := h.m.Remove(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.ConfirmationResponse{Token: token, ID: id})
}

// Confirm godoc
// @Summary      Confirmar una baja pendiente
// @Tags         resources
// @Produce      json
// @Param        token  path  string  true  "Token de confirmación"
// @Success      200    {object}  dto.NoticeResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.NoticeResponse
// @Router       /admin/{resource}/confirmations/{token} [post]
func (h *ResourceHandler[T, F]) Confirm(c *fiber.Ctx) error {
	n, err := h.m.Confirm(c.UserContext(), c.Params("token"))
	if err != nil {
		return writeError(c, err)
	}
	return writeNotice(c, n, h.m.Snapshot(resourcePageAll))
}

// Cancel godoc
// @Summary      Cancelar una baja pendiente
// @Tags         resources
// @Param        token  path  string  true  "Token de confirmación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/{resource}/confirmations/{token} [delete]
func (h *ResourceHandler[T, F]) Cancel(c *fiber.Ctx) error {
	if err := h.m.Cancel(c.Params("token")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
