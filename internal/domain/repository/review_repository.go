package repository

import (
	"context"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// ReviewRepository puerto hacia /api/review. Las reseñas no se crean ni editan
// desde el back-office; el DELETE del backend es una baja lógica.
type ReviewRepository interface {
	List(ctx context.Context) ([]entity.Review, error)
	Deactivate(ctx context.Context, id string) error
}
