package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/ports"
	"github.com/jhoicas/backoffice-admin/internal/application/resource"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

var maxPercentage = decimal.NewFromInt(100)

// CouponUseCase pantalla de cupones: búsqueda difusa por código y tipo,
// filtro por estado, paginación de 10 filas e interruptor de activación.
type CouponUseCase struct {
	*resource.Manager[entity.Coupon, dto.CouponForm]

	repo repository.CouponRepository
	env  Env
	log  zerolog.Logger
}

// NewCouponUseCase construye el caso de uso.
func NewCouponUseCase(repo repository.CouponRepository, env Env) *CouponUseCase {
	env = env.withDefaults()
	uc := &CouponUseCase{repo: repo, env: env, log: env.component("coupons")}
	uc.Manager = resource.New(resource.Options[entity.Coupon, dto.CouponForm]{
		Resource: "coupons",
		Noun:     locale.NounCoupon,
		Store:    couponStore{repo: repo},
		ID:       func(c entity.Coupon) string { return c.ID },
		SearchFields: func(c entity.Coupon) []string {
			return []string{c.Code, c.DiscountType}
		},
		Matcher: FuzzyMatcher(),
		ToForm: func(c entity.Coupon) dto.CouponForm {
			return dto.CouponForm{
				Code:           c.Code,
				DiscountType:   c.DiscountType,
				DiscountAmount: c.DiscountAmount,
				MinimumPrice:   c.MinimumPrice,
				ValidFrom:      c.ValidFrom,
				ValidTo:        c.ValidTo,
				IsActive:       c.IsActive,
			}
		},
		Validate: func(f dto.CouponForm) validation.FieldErrors {
			errs := env.Validator.Struct(f)
			if f.DiscountType == entity.DiscountPercentage && f.DiscountAmount.GreaterThan(maxPercentage) {
				if errs == nil {
					errs = validation.FieldErrors{}
				}
				if _, ok := errs["discount_amount"]; !ok {
					errs["discount_amount"] = env.Printer.T(locale.MsgMax, "100")
				}
			}
			return errs
		},
		Amount:      func(f dto.CouponForm) *decimal.Decimal { return &f.DiscountAmount },
		LocalRemove: true,
		Audit:       env.Audit,
		Printer:     env.Printer,
		Logger:      uc.log,
		Now:         env.Now,
	})
	return uc
}

// OpenCreate abre el modal con el cupón activo por defecto.
func (uc *CouponUseCase) OpenCreate() resource.FormState[dto.CouponForm] {
	uc.Manager.OpenCreate()
	form, _ := uc.UpdateForm(func(f *dto.CouponForm) { f.IsActive = true })
	return form
}

// View aplica búsqueda, filtro de estado y página, y devuelve la vista.
func (uc *CouponUseCase) View(req dto.CouponListRequest) resource.Snapshot[entity.Coupon, dto.CouponForm] {
	uc.Search(req.Query)
	uc.Filter(StatusFilter(req.Status))
	return uc.Snapshot(resource.Page{Number: req.Page, Size: dto.CouponPageSize})
}

// StatusFilter predicado del filtro de estado; "all" o vacío no filtra.
func StatusFilter(status string) func(entity.Coupon) bool {
	switch status {
	case dto.CouponStatusActive:
		return func(c entity.Coupon) bool { return c.IsActive }
	case dto.CouponStatusInactive:
		return func(c entity.Coupon) bool { return !c.IsActive }
	default:
		return nil
	}
}

// Toggle invierte isActive del cupón sin abrir el formulario y vuelve a pedir la lista.
func (uc *CouponUseCase) Toggle(ctx context.Context, id string) (notify.Notice, error) {
	c, ok := uc.Find(id)
	if !ok {
		return notify.Notice{}, fmt.Errorf("cupón %s: %w", id, domain.ErrNotFound)
	}
	err := uc.repo.SetActive(ctx, id, !c.IsActive)
	uc.Audit(ctx, ports.ActionToggle, id, err)
	if err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("error al cambiar estado del cupón")
		return notify.Error(resource.FailureMessage(uc.env.Printer, locale.MsgUpdateFailed, uc.env.Printer.T(locale.NounCoupon), err)), nil
	}
	uc.List(ctx)
	return notify.Success(uc.env.Printer.T(locale.MsgUpdateSuccess, uc.env.Printer.T(locale.NounCoupon))), nil
}

// FuzzyMatcher coincidencia difusa sin distinguir mayúsculas ni acentos; el
// rank es la distancia de edición del mejor campo.
func FuzzyMatcher() resource.Matcher {
	return func(query string, fields []string) (int, bool) {
		q := strings.TrimSpace(query)
		best := -1
		for _, f := range fields {
			r := fuzzy.RankMatchNormalizedFold(q, f)
			if r >= 0 && (best < 0 || r < best) {
				best = r
			}
		}
		return best, best >= 0
	}
}

type couponStore struct {
	repo repository.CouponRepository
}

func (s couponStore) List(ctx context.Context) ([]entity.Coupon, error) {
	return s.repo.List(ctx)
}

func (s couponStore) Save(ctx context.Context, id string, f dto.CouponForm) error {
	draft := entity.CouponDraft{
		Code:           strings.TrimSpace(f.Code),
		DiscountType:   f.DiscountType,
		DiscountAmount: f.DiscountAmount,
		MinimumPrice:   f.MinimumPrice,
		ValidFrom:      f.ValidFrom,
		ValidTo:        f.ValidTo,
		IsActive:       f.IsActive,
	}
	if id == "" {
		return s.repo.Create(ctx, draft)
	}
	return s.repo.Update(ctx, id, draft)
}

func (s couponStore) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
