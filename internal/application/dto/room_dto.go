package dto

import "github.com/jhoicas/backoffice-admin/internal/domain/entity"

// RoomForm valores del modal de habitación. Image solo llega por multipart.
type RoomForm struct {
	Name     string            `json:"name" form:"name" validate:"required,max=100"`
	FileName string            `json:"fileName,omitempty"`
	Image    *entity.RoomImage `json:"-"`
}
