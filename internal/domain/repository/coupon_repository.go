package repository

import (
	"context"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// CouponRepository puerto hacia /api/coupon.
type CouponRepository interface {
	List(ctx context.Context) ([]entity.Coupon, error)
	Create(ctx context.Context, in entity.CouponDraft) error
	Update(ctx context.Context, id string, in entity.CouponDraft) error
	// SetActive envía solo {isActive} (interruptor de la tabla).
	SetActive(ctx context.Context, id string, active bool) error
	Deactivate(ctx context.Context, id string) error
}
