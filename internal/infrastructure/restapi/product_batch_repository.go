package restapi

import (
	"context"
	"net/http"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
)

var _ repository.ProductBatchRepository = (*ProductBatchRepo)(nil)

// ProductBatchRepo adaptador de /api/product-batches.
type ProductBatchRepo struct {
	c *Client
}

// NewProductBatchRepository construye el adaptador.
func NewProductBatchRepository(c *Client) *ProductBatchRepo {
	return &ProductBatchRepo{c: c}
}

// List GET /api/product-batches.
func (r *ProductBatchRepo) List(ctx context.Context) ([]entity.ProductBatch, error) {
	body, err := r.c.get(ctx, "/api/product-batches")
	if err != nil {
		return nil, err
	}
	return DecodeCollection[entity.ProductBatch](body)
}

// GetByID GET /api/product-batches/:id.
func (r *ProductBatchRepo) GetByID(ctx context.Context, id string) (*entity.ProductBatch, error) {
	body, err := r.c.get(ctx, pathf("/api/product-batches/%s", id))
	if err != nil {
		return nil, notFound(err)
	}
	return DecodeOne[entity.ProductBatch](body)
}

// Create POST /api/product-batches.
func (r *ProductBatchRepo) Create(ctx context.Context, in entity.BatchPayload) error {
	return r.c.sendJSON(ctx, http.MethodPost, "/api/product-batches", in)
}

// Update PUT /api/product-batches/:id.
func (r *ProductBatchRepo) Update(ctx context.Context, id string, in entity.BatchPayload) error {
	return r.c.sendJSON(ctx, http.MethodPut, pathf("/api/product-batches/%s", id), in)
}

// Deactivate PATCH /api/product-batches/:id/delete.
func (r *ProductBatchRepo) Deactivate(ctx context.Context, id string) error {
	return r.c.sendJSON(ctx, http.MethodPatch, pathf("/api/product-batches/%s/delete", id), nil)
}
