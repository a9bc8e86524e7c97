package repository

import (
	"context"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// CategoryRepository tablas de consulta de categorías y subcategorías (solo lectura).
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	ListSubCategories(ctx context.Context, categoryID string) ([]entity.SubCategory, error)
}

// ColorRepository colores disponibles por producto (solo lectura).
type ColorRepository interface {
	ListByProduct(ctx context.Context, productID string) ([]entity.Color, error)
}
