package restapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo adaptador de /api/review.
type ReviewRepo struct {
	c *Client
}

// NewReviewRepository construye el adaptador.
func NewReviewRepository(c *Client) *ReviewRepo {
	return &ReviewRepo{c: c}
}

// List GET /api/review.
func (r *ReviewRepo) List(ctx context.Context) ([]entity.Review, error) {
	body, err := r.c.get(ctx, "/api/review")
	if err != nil {
		return nil, err
	}
	return DecodeCollection[entity.Review](body)
}

// Deactivate DELETE /api/review/:id (el backend marca isDeleted).
func (r *ReviewRepo) Deactivate(ctx context.Context, id string) error {
	return r.c.sendJSON(ctx, http.MethodDelete, pathf("/api/review/%s", id), nil)
}
