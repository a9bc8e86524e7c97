package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/lookup"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/resource"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

// ProductUseCase pantalla de productos: Resource Manager más las tablas de
// consulta del formulario (categorías, habitaciones y subcategorías por categoría).
type ProductUseCase struct {
	*resource.Manager[entity.Product, dto.ProductForm]

	categories    repository.CategoryRepository
	rooms         repository.RoomRepository
	subCategories *lookup.Cache[entity.SubCategory]
	env           Env
	log           zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	rooms repository.RoomRepository,
	env Env,
) *ProductUseCase {
	env = env.withDefaults()
	log := env.component("products")
	uc := &ProductUseCase{
		categories:    categories,
		rooms:         rooms,
		subCategories: lookup.New[entity.SubCategory](categories.ListSubCategories),
		env:           env,
		log:           log,
	}
	uc.Manager = resource.New(resource.Options[entity.Product, dto.ProductForm]{
		Resource: "products",
		Noun:     locale.NounProduct,
		Store:    productStore{repo: repo},
		ID:       func(p entity.Product) string { return p.ID },
		SearchFields: func(p entity.Product) []string {
			return []string{p.SKU, p.Name}
		},
		ToForm: productToForm,
		Validate: func(f dto.ProductForm) validation.FieldErrors {
			return env.Validator.Struct(f)
		},
		Amount:  func(f dto.ProductForm) *decimal.Decimal { return &f.Price },
		Audit:   env.Audit,
		Printer: env.Printer,
		Logger:  log,
		Now:     env.Now,
	})
	return uc
}

// productToForm pre-carga el modal con las referencias reducidas a ids.
func productToForm(p entity.Product) dto.ProductForm {
	return dto.ProductForm{
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		CategoryID:    p.Category.ID,
		SubCategoryID: p.SubCategory.ID,
		RoomID:        p.Room.ID,
	}
}

// Lookups carga categorías y habitaciones para los selectores del formulario.
// Un fallo deja la tabla correspondiente vacía y devuelve el aviso. Con las
// categorías recargadas se descartan las subcategorías memorizadas.
func (uc *ProductUseCase) Lookups(ctx context.Context) (dto.ProductLookups, notify.Notice) {
	out := dto.ProductLookups{Categories: []dto.Option{}, Rooms: []dto.Option{}}
	var notice notify.Notice

	cats, err := uc.categories.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("error al cargar categorías")
		notice = notify.Error(uc.env.Printer.T(locale.MsgLoadFailed, uc.env.Printer.T(locale.NounData)))
	} else {
		uc.subCategories.Forget("")
	}
	for _, c := range cats {
		out.Categories = append(out.Categories, dto.Option{Value: c.ID, Label: c.Name})
	}

	rooms, err := uc.rooms.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("error al cargar habitaciones")
		notice = notify.Error(uc.env.Printer.T(locale.MsgLoadFailed, uc.env.Printer.T(locale.NounRoom)))
	}
	for _, r := range rooms {
		out.Rooms = append(out.Rooms, dto.Option{Value: r.ID, Label: r.Name})
	}
	return out, notice
}

// SubCategories opciones de subcategoría de categoryID (memorizadas por categoría).
func (uc *ProductUseCase) SubCategories(ctx context.Context, categoryID string) (dto.SubCategoryOptions, notify.Notice) {
	out := dto.SubCategoryOptions{CategoryID: categoryID, Options: []dto.Option{}}
	subs, err := uc.subCategories.Get(ctx, categoryID)
	if err != nil {
		uc.log.Error().Err(err).Str("category_id", categoryID).Msg("error al cargar subcategorías")
		return out, notify.Error(uc.env.Printer.T(locale.MsgLoadFailed, uc.env.Printer.T(locale.NounData)))
	}
	for _, s := range subs {
		out.Options = append(out.Options, dto.Option{Value: s.ID, Label: s.Name})
	}
	out.Enabled = len(out.Options) > 0
	return out, notify.Notice{}
}

// SelectCategory cambia la categoría del modal abierto: limpia la subcategoría
// elegida y carga las opciones de la nueva categoría.
func (uc *ProductUseCase) SelectCategory(ctx context.Context, categoryID string) (resource.FormState[dto.ProductForm], dto.SubCategoryOptions, notify.Notice, error) {
	categoryID = strings.TrimSpace(categoryID)
	form, err := uc.UpdateForm(func(f *dto.ProductForm) {
		f.CategoryID = categoryID
		f.SubCategoryID = ""
	})
	if err != nil {
		return form, dto.SubCategoryOptions{}, notify.Notice{}, err
	}
	opts, notice := uc.SubCategories(ctx, categoryID)
	return form, opts, notice, nil
}

// productStore adapta ProductRepository al Store del Resource Manager.
type productStore struct {
	repo repository.ProductRepository
}

func (s productStore) List(ctx context.Context) ([]entity.Product, error) {
	return s.repo.List(ctx)
}

func (s productStore) Save(ctx context.Context, id string, f dto.ProductForm) error {
	draft := entity.ProductDraft{
		SKU:           strings.TrimSpace(f.SKU),
		Name:          strings.TrimSpace(f.Name),
		Description:   f.Description,
		Price:         f.Price,
		CategoryID:    f.CategoryID,
		SubCategoryID: f.SubCategoryID,
		RoomID:        f.RoomID,
	}
	if id == "" {
		return s.repo.Create(ctx, draft)
	}
	return s.repo.Update(ctx, id, draft)
}

func (s productStore) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
