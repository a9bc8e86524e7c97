package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/usecase"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// ProductHandler pantalla de productos: rutas comunes más tablas de consulta y
// la cascada categoría → subcategoría.
type ProductHandler struct {
	*ResourceHandler[entity.Product, dto.ProductForm]
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{ResourceHandler: NewResourceHandler[entity.Product, dto.ProductForm](uc), uc: uc}
}

// Register monta las rutas bajo g.
func (h *ProductHandler) Register(g fiber.Router) {
	g.Get("/lookups", h.Lookups)
	g.Get("/sub-categories/:categoryId", h.SubCategories)
	g.Put("/form/category", h.SelectCategory)
	h.RegisterForm(g)
	g.Post("/submit", h.Submit)
	h.RegisterList(g)
}

// Lookups godoc
// @Summary      Categorías y habitaciones para los selectores del formulario
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.NoticeResponse
// @Failure      502  {object}  dto.NoticeResponse
// @Router       /admin/products/lookups [get]
func (h *ProductHandler) Lookups(c *fiber.Ctx) error {
	out, n := h.uc.Lookups(c.UserContext())
	return writeNotice(c, n, out)
}

// SubCategories godoc
// @Summary      Subcategorías de una categoría
// @Tags         products
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.NoticeResponse
// @Failure      502  {object}  dto.NoticeResponse
// @Router       /admin/products/sub-categories/{categoryId} [get]
func (h *ProductHandler) SubCategories(c *fiber.Ctx) error {
	out, n := h.uc.SubCategories(c.UserContext(), c.Params("categoryId"))
	return writeNotice(c, n, out)
}

type selectCategoryRequest struct {
	CategoryID string `json:"categoryId"`
}

type selectCategoryResponse struct {
	Form          any                    `json:"form"`
	SubCategories dto.SubCategoryOptions `json:"subCategories"`
}

// SelectCategory godoc
// @Summary      Cambiar la categoría del modal abierto
// @Description  Limpia la subcategoría elegida y devuelve las opciones de la nueva categoría.
// @Tags         products
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.NoticeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.NoticeResponse
// @Router       /admin/products/form/category [put]
func (h *ProductHandler) SelectCategory(c *fiber.Ctx) error {
	var in selectCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	form, opts, n, err := h.uc.SelectCategory(c.UserContext(), in.CategoryID)
	if err != nil {
		return writeError(c, err)
	}
	return writeNotice(c, n, selectCategoryResponse{Form: form, SubCategories: opts})
}
