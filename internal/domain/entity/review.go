package entity

import "time"

// Review reseña de un cliente. Product y User llegan poblados (nombre / email).
type Review struct {
	ID        string    `json:"_id"`
	Product   Ref       `json:"productId"`
	User      Ref       `json:"userId"`
	Score     int       `json:"score"`
	Message   string    `json:"message"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"created_at"`
}
