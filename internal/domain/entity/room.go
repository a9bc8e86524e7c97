package entity

import "time"

// Room habitación/ambiente usada para agrupar productos (con imagen opcional).
type Room struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	FileName  string    `json:"fileName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomImage archivo de imagen a enviar como multipart junto con el nombre.
type RoomImage struct {
	FileName    string
	ContentType string
	Data        []byte
}
