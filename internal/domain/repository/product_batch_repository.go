package repository

import (
	"context"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// ProductBatchRepository puerto hacia /api/product-batches.
type ProductBatchRepository interface {
	List(ctx context.Context) ([]entity.ProductBatch, error)
	GetByID(ctx context.Context, id string) (*entity.ProductBatch, error)
	Create(ctx context.Context, in entity.BatchPayload) error
	Update(ctx context.Context, id string, in entity.BatchPayload) error
	// Deactivate: PATCH /api/product-batches/:id/delete
	Deactivate(ctx context.Context, id string) error
}
