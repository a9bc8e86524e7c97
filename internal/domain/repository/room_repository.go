package repository

import (
	"context"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// RoomRepository puerto hacia /api/rooms. Create/Update viajan como multipart.
// Deactivate es un DELETE físico: las habitaciones no tienen baja lógica.
type RoomRepository interface {
	List(ctx context.Context) ([]entity.Room, error)
	Create(ctx context.Context, in entity.RoomDraft) error
	Update(ctx context.Context, id string, in entity.RoomDraft) error
	Deactivate(ctx context.Context, id string) error
}
