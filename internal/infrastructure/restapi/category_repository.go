package restapi

import (
	"context"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ColorRepository    = (*ColorRepo)(nil)
)

// CategoryRepo adaptador de /api/categories y /api/sub-categories.
type CategoryRepo struct {
	c *Client
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(c *Client) *CategoryRepo {
	return &CategoryRepo{c: c}
}

// List GET /api/categories.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	body, err := r.c.get(ctx, "/api/categories")
	if err != nil {
		return nil, err
	}
	return DecodeCollection[entity.Category](body)
}

// ListSubCategories GET /api/sub-categories/category/:categoryId.
func (r *CategoryRepo) ListSubCategories(ctx context.Context, categoryID string) ([]entity.SubCategory, error) {
	body, err := r.c.get(ctx, pathf("/api/sub-categories/category/%s", categoryID))
	if err != nil {
		return nil, err
	}
	return DecodeCollection[entity.SubCategory](body)
}

// ColorRepo adaptador de /api/productColor.
type ColorRepo struct {
	c *Client
}

// NewColorRepository construye el adaptador.
func NewColorRepository(c *Client) *ColorRepo {
	return &ColorRepo{c: c}
}

// ListByProduct GET /api/productColor/:productId.
func (r *ColorRepo) ListByProduct(ctx context.Context, productID string) ([]entity.Color, error) {
	body, err := r.c.get(ctx, pathf("/api/productColor/%s", productID))
	if err != nil {
		return nil, err
	}
	return DecodeCollection[entity.Color](body)
}
