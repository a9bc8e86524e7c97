package repository

import (
	"context"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// ProductRepository define el puerto hacia /api/products (DIP).
// Deactivate es la baja lógica; el backend conserva el registro con isDeleted.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, in entity.ProductDraft) error
	Update(ctx context.Context, id string, in entity.ProductDraft) error
	Deactivate(ctx context.Context, id string) error
}
