package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador de /api/products.
type ProductRepo struct {
	c *Client
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

// List GET /api/products.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	body, err := r.c.get(ctx, "/api/products")
	if err != nil {
		return nil, err
	}
	return DecodeCollection[entity.Product](body)
}

// GetByID GET /api/products/:id. Un 404 se traduce a domain.ErrNotFound.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	body, err := r.c.get(ctx, pathf("/api/products/%s", id))
	if err != nil {
		return nil, notFound(err)
	}
	return DecodeOne[entity.Product](body)
}

// Create POST /api/products.
func (r *ProductRepo) Create(ctx context.Context, in entity.ProductDraft) error {
	return r.c.sendJSON(ctx, http.MethodPost, "/api/products", in)
}

// Update PUT /api/products/:id.
func (r *ProductRepo) Update(ctx context.Context, id string, in entity.ProductDraft) error {
	return r.c.sendJSON(ctx, http.MethodPut, pathf("/api/products/%s", id), in)
}

// Deactivate PATCH /api/products/:id sin cuerpo (baja lógica).
func (r *ProductRepo) Deactivate(ctx context.Context, id string) error {
	return r.c.sendJSON(ctx, http.MethodPatch, pathf("/api/products/%s", id), nil)
}

// notFound traduce un 404 del backend al error de dominio.
func notFound(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, apiErr.Path)
	}
	return err
}
