package restapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
)

var _ repository.CouponRepository = (*CouponRepo)(nil)

// CouponRepo adaptador de /api/coupon.
type CouponRepo struct {
	c *Client
}

// NewCouponRepository construye el adaptador.
func NewCouponRepository(c *Client) *CouponRepo {
	return &CouponRepo{c: c}
}

// List GET /api/coupon.
func (r *CouponRepo) List(ctx context.Context) ([]entity.Coupon, error) {
	body, err := r.c.get(ctx, "/api/coupon")
	if err != nil {
		return nil, err
	}
	return DecodeCollection[entity.Coupon](body)
}

// Create POST /api/coupon.
func (r *CouponRepo) Create(ctx context.Context, in entity.CouponDraft) error {
	return r.c.sendJSON(ctx, http.MethodPost, "/api/coupon", in)
}

// Update PUT /api/coupon/:id.
func (r *CouponRepo) Update(ctx context.Context, id string, in entity.CouponDraft) error {
	return r.c.sendJSON(ctx, http.MethodPut, pathf("/api/coupon/%s", id), in)
}

// SetActive PUT /api/coupon/:id con {isActive}.
func (r *CouponRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.c.sendJSON(ctx, http.MethodPut, pathf("/api/coupon/%s", id), map[string]bool{"isActive": active})
}

// Deactivate DELETE /api/coupon/:id.
func (r *CouponRepo) Deactivate(ctx context.Context, id string) error {
	return r.c.sendJSON(ctx, http.MethodDelete, pathf("/api/coupon/%s", id), nil)
}
