package restapi

import (
	"context"
	"net/url"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo adaptador de /api/dashboard/overview.
type DashboardRepo struct {
	c *Client
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(c *Client) *DashboardRepo {
	return &DashboardRepo{c: c}
}

// Overview GET /api/dashboard/overview?rd=<rangeTag>.
func (r *DashboardRepo) Overview(ctx context.Context, rangeTag string) (*entity.DashboardOverview, error) {
	q := url.Values{"rd": {rangeTag}}
	body, err := r.c.get(ctx, "/api/dashboard/overview?"+q.Encode())
	if err != nil {
		return nil, err
	}
	return DecodeOne[entity.DashboardOverview](body)
}
