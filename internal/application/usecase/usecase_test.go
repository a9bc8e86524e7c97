package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/resource"
	"github.com/jhoicas/backoffice-admin/internal/application/usecase"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository/mocks"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

var fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func testEnv() usecase.Env {
	return usecase.Env{
		Printer: locale.New("en"),
		Now:     func() time.Time { return fixedNow },
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_OpenEditNormalizaReferencias(t *testing.T) {
	repo := new(mocks.ProductRepository)
	cats := new(mocks.CategoryRepository)
	rooms := new(mocks.RoomRepository)
	repo.On("List", mock.Anything).Return([]entity.Product{{
		ID:          "p1",
		SKU:         "S1",
		Name:        "Mesa",
		Price:       decimal.NewFromInt(100),
		Category:    entity.Ref{ID: "c1", Name: "Muebles"},
		SubCategory: entity.Ref{ID: "s1", Name: "Mesas"},
		Room:        entity.RefTo("r1"),
	}}, nil)
	uc := usecase.NewProductUseCase(repo, cats, rooms, testEnv())
	uc.List(context.Background())

	form, err := uc.OpenEdit("p1")

	require.NoError(t, err)
	assert.Equal(t, "c1", form.Values.CategoryID)
	assert.Equal(t, "s1", form.Values.SubCategoryID)
	assert.Equal(t, "r1", form.Values.RoomID)
}

func TestProduct_SelectCategoryLimpiaSubcategoriaYMemoriza(t *testing.T) {
	repo := new(mocks.ProductRepository)
	cats := new(mocks.CategoryRepository)
	rooms := new(mocks.RoomRepository)
	cats.On("ListSubCategories", mock.Anything, "c2").
		Return([]entity.SubCategory{{ID: "s9", Name: "Sillas"}}, nil).Once()
	uc := usecase.NewProductUseCase(repo, cats, rooms, testEnv())
	uc.OpenCreate()
	_, err := uc.UpdateForm(func(f *dto.ProductForm) { f.CategoryID, f.SubCategoryID = "c1", "s1" })
	require.NoError(t, err)

	form, opts, notice, err := uc.SelectCategory(context.Background(), "c2")
	require.NoError(t, err)
	assert.True(t, notice.IsZero())
	assert.Equal(t, "c2", form.Values.CategoryID)
	assert.Empty(t, form.Values.SubCategoryID)
	assert.True(t, opts.Enabled)
	assert.Equal(t, []dto.Option{{Value: "s9", Label: "Sillas"}}, opts.Options)

	_, _, _, err = uc.SelectCategory(context.Background(), "c2")
	require.NoError(t, err)
	cats.AssertNumberOfCalls(t, "ListSubCategories", 1)
}

func TestProduct_LookupsDescartaSubcategoriasMemorizadas(t *testing.T) {
	cats := new(mocks.CategoryRepository)
	rooms := new(mocks.RoomRepository)
	cats.On("List", mock.Anything).Return([]entity.Category{{ID: "c1", Name: "Muebles"}}, nil)
	rooms.On("List", mock.Anything).Return([]entity.Room{}, nil)
	cats.On("ListSubCategories", mock.Anything, "c1").Return([]entity.SubCategory{{ID: "s1", Name: "Mesas"}}, nil)
	uc := usecase.NewProductUseCase(new(mocks.ProductRepository), cats, rooms, testEnv())

	uc.SubCategories(context.Background(), "c1")
	uc.SubCategories(context.Background(), "c1")
	cats.AssertNumberOfCalls(t, "ListSubCategories", 1)

	_, notice := uc.Lookups(context.Background())
	require.True(t, notice.IsZero())
	uc.SubCategories(context.Background(), "c1")

	cats.AssertNumberOfCalls(t, "ListSubCategories", 2)
}

func TestProduct_SubmitValidaCamposRequeridos(t *testing.T) {
	repo := new(mocks.ProductRepository)
	uc := usecase.NewProductUseCase(repo, new(mocks.CategoryRepository), new(mocks.RoomRepository), testEnv())
	uc.OpenCreate()

	n, err := uc.Submit(context.Background(), dto.ProductForm{Name: "Sin SKU", Price: decimal.NewFromInt(-1)})

	require.NoError(t, err)
	assert.Equal(t, notify.LevelWarning, n.Level)
	assert.Contains(t, n.Fields, "sku")
	assert.Contains(t, n.Fields, "categoryId")
	assert.Contains(t, n.Fields, "price")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProduct_LookupsFalloDejaTablaVacia(t *testing.T) {
	cats := new(mocks.CategoryRepository)
	rooms := new(mocks.RoomRepository)
	cats.On("List", mock.Anything).Return(nil, errors.New("down"))
	rooms.On("List", mock.Anything).Return([]entity.Room{{ID: "r1", Name: "Sala"}}, nil)
	uc := usecase.NewProductUseCase(new(mocks.ProductRepository), cats, rooms, testEnv())

	out, notice := uc.Lookups(context.Background())

	assert.Equal(t, notify.LevelError, notice.Level)
	assert.NotNil(t, out.Categories)
	assert.Empty(t, out.Categories)
	assert.Len(t, out.Rooms, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Habitaciones
// ──────────────────────────────────────────────────────────────────────────────

func roomsLoaded(t *testing.T) (*usecase.RoomUseCase, *mocks.RoomRepository) {
	t.Helper()
	repo := new(mocks.RoomRepository)
	repo.On("List", mock.Anything).Return([]entity.Room{{ID: "r1", Name: "Sala"}, {ID: "r2", Name: "Cocina"}}, nil).Once()
	uc := usecase.NewRoomUseCase(repo, 5<<20, testEnv())
	uc.List(context.Background())
	return uc, repo
}

func TestRoom_CancelarBajaNoCambiaListaNiLlamaRed(t *testing.T) {
	uc, repo := roomsLoaded(t)
	before := uc.Snapshot(resource.Page{}).Items

	token, err := uc.Remove("r1")
	require.NoError(t, err)
	require.NoError(t, uc.Cancel(token))

	assert.Equal(t, before, uc.Snapshot(resource.Page{}).Items)
	repo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestRoom_ConfirmarBajaEsDeleteYRecarga(t *testing.T) {
	uc, repo := roomsLoaded(t)
	token, err := uc.Remove("r1")
	require.NoError(t, err)
	repo.On("Deactivate", mock.Anything, "r1").Return(nil).Once()
	repo.On("List", mock.Anything).Return([]entity.Room{{ID: "r2", Name: "Cocina"}}, nil).Once()

	n, err := uc.Confirm(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, notify.LevelSuccess, n.Level)
	assert.Len(t, uc.Records(), 1)
}

func TestRoom_ImagenInvalida(t *testing.T) {
	tests := []struct {
		name  string
		image *entity.RoomImage
		want  string
	}{
		{"no es imagen", &entity.RoomImage{FileName: "a.pdf", ContentType: "application/pdf", Data: []byte("x")}, "Please upload image files only!"},
		{"muy grande", &entity.RoomImage{FileName: "a.png", ContentType: "image/png", Data: make([]byte, 5<<20)}, "Image must be smaller than 5MB!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := roomsLoaded(t)
			uc.OpenCreate()
			n, err := uc.Submit(context.Background(), dto.RoomForm{Name: "Baño", Image: tt.image})
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Fields["image"])
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRoom_CreaConImagen(t *testing.T) {
	uc, repo := roomsLoaded(t)
	img := &entity.RoomImage{FileName: "b.jpg", ContentType: "image/jpeg", Data: []byte{1, 2, 3}}
	repo.On("Create", mock.Anything, entity.RoomDraft{Name: "Baño", Image: img}).Return(nil).Once()
	repo.On("List", mock.Anything).Return([]entity.Room{}, nil).Once()
	uc.OpenCreate()

	n, err := uc.Submit(context.Background(), dto.RoomForm{Name: " Baño ", Image: img})

	require.NoError(t, err)
	assert.Equal(t, notify.LevelSuccess, n.Level)
	repo.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cupones
// ──────────────────────────────────────────────────────────────────────────────

func couponsLoaded(t *testing.T, coupons []entity.Coupon) (*usecase.CouponUseCase, *mocks.CouponRepository) {
	t.Helper()
	repo := new(mocks.CouponRepository)
	repo.On("List", mock.Anything).Return(coupons, nil).Once()
	uc := usecase.NewCouponUseCase(repo, testEnv())
	uc.List(context.Background())
	return uc, repo
}

func TestCoupon_ToggleDosVecesVuelveAlEstadoOriginal(t *testing.T) {
	active := entity.Coupon{ID: "k1", Code: "SUMMER", DiscountType: entity.DiscountFixed, IsActive: true}
	inactive := active
	inactive.IsActive = false
	uc, repo := couponsLoaded(t, []entity.Coupon{active})

	repo.On("SetActive", mock.Anything, "k1", false).Return(nil).Once()
	repo.On("List", mock.Anything).Return([]entity.Coupon{inactive}, nil).Once()
	_, err := uc.Toggle(context.Background(), "k1")
	require.NoError(t, err)
	got, _ := uc.Find("k1")
	assert.False(t, got.IsActive)

	repo.On("SetActive", mock.Anything, "k1", true).Return(nil).Once()
	repo.On("List", mock.Anything).Return([]entity.Coupon{active}, nil).Once()
	_, err = uc.Toggle(context.Background(), "k1")
	require.NoError(t, err)
	got, _ = uc.Find("k1")
	assert.True(t, got.IsActive)
	repo.AssertExpectations(t)
}

func TestCoupon_ToggleFalloNoCambiaEstado(t *testing.T) {
	uc, repo := couponsLoaded(t, []entity.Coupon{{ID: "k1", Code: "A", IsActive: true}})
	repo.On("SetActive", mock.Anything, "k1", false).Return(errors.New("500")).Once()

	n, err := uc.Toggle(context.Background(), "k1")

	require.NoError(t, err)
	assert.Equal(t, notify.LevelError, n.Level)
	got, _ := uc.Find("k1")
	assert.True(t, got.IsActive)

	_, err = uc.Toggle(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCoupon_VistaFiltraBuscaYPagina(t *testing.T) {
	var coupons []entity.Coupon
	for i := 0; i < 25; i++ {
		coupons = append(coupons, entity.Coupon{
			ID:           string(rune('a'+i)) + "id",
			Code:         "CODE" + string(rune('A'+i)),
			DiscountType: entity.DiscountPercentage,
			IsActive:     i%2 == 0,
		})
	}
	coupons = append(coupons, entity.Coupon{ID: "x", Code: "WELCOME", DiscountType: entity.DiscountFixed, IsActive: true})
	uc, _ := couponsLoaded(t, coupons)

	all := uc.View(dto.CouponListRequest{Status: dto.CouponStatusAll})
	assert.Equal(t, 26, all.Total)
	assert.Len(t, all.Items, dto.CouponPageSize)

	active := uc.View(dto.CouponListRequest{Status: dto.CouponStatusActive, Page: 2})
	assert.Equal(t, 14, active.Total)
	assert.Len(t, active.Items, 4)

	fuzzy := uc.View(dto.CouponListRequest{Query: "wlcm"})
	require.Equal(t, 1, fuzzy.Total)
	assert.Equal(t, "WELCOME", fuzzy.Items[0].Code)

	byType := uc.View(dto.CouponListRequest{Query: "fixed", Status: dto.CouponStatusInactive})
	assert.Zero(t, byType.Total)
}

func TestCoupon_BajaFiltraLocalmente(t *testing.T) {
	uc, repo := couponsLoaded(t, []entity.Coupon{{ID: "k1", Code: "A"}, {ID: "k2", Code: "B"}})
	token, err := uc.Remove("k1")
	require.NoError(t, err)
	repo.On("Deactivate", mock.Anything, "k1").Return(nil).Once()

	_, err = uc.Confirm(context.Background(), token)

	require.NoError(t, err)
	assert.Len(t, uc.Records(), 1)
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestCoupon_ValidacionPorcentajeYFechas(t *testing.T) {
	uc, repo := couponsLoaded(t, nil)
	form := uc.OpenCreate()
	assert.True(t, form.Values.IsActive, "alta activa por defecto")

	n, err := uc.Submit(context.Background(), dto.CouponForm{
		Code:           "BIG",
		DiscountType:   entity.DiscountPercentage,
		DiscountAmount: decimal.NewFromInt(150),
		MinimumPrice:   decimal.Zero,
		ValidFrom:      fixedNow,
		ValidTo:        fixedNow.Add(-time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, "Must be at most 100", n.Fields["discount_amount"])
	assert.Equal(t, "End date must not be before start date", n.Fields["valid_to"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reseñas
// ──────────────────────────────────────────────────────────────────────────────

func TestReview_YaEliminadaNoSePuedeBorrar(t *testing.T) {
	repo := new(mocks.ReviewRepository)
	repo.On("List", mock.Anything).Return([]entity.Review{
		{ID: "v1", Product: entity.Ref{ID: "p1", Name: "Sofá cama"}, IsDeleted: true},
		{ID: "v2", Product: entity.Ref{ID: "p2", Name: "Lámpara"}},
	}, nil)
	uc := usecase.NewReviewUseCase(repo, testEnv())
	uc.List(context.Background())

	_, err := uc.Remove("v1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = uc.Remove("v2")
	assert.NoError(t, err)

	found := uc.Search("sofá")
	require.Len(t, found, 1)
	assert.Equal(t, "v1", found[0].ID)
}
