package repository

import (
	"context"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// DashboardRepository obtiene el resumen agregado del backend.
// rangeTag es uno de 7d, 1m, 3m.
type DashboardRepository interface {
	Overview(ctx context.Context, rangeTag string) (*entity.DashboardOverview, error)
}
