package room

import (
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID             int            `db:"id" json:"id"`
	HotelID        int            `db:"hotel_id" json:"hotel_id"`
	Name           string         `db:"name" json:"name"`
	Description    *string        `db:"description" json:"description,omitempty"`
	PricePerNight  int64          `db:"price_per_night" json:"price_per_night"`
	TotalRooms     int            `db:"total_rooms" json:"total_rooms"`
	AvailableRooms int            `db:"available_rooms" json:"available_rooms"`
	Amenities      pq.StringArray `db:"amenities" json:"amenities"`
	Images         pq.StringArray `db:"images" json:"images"`
	IsAvailable    bool           `db:"is_available" json:"is_available"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

type CreateRoomRequest struct {
	Name          string   `json:"name" binding:"required,min=2"`
	Description   *string  `json:"description"`
	PricePerNight int64    `json:"price_per_night" binding:"required,min=0"`
	TotalRooms    int      `json:"total_rooms" binding:"required,min=1"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

type UpdateRoomRequest struct {
	Name           string   `json:"name" binding:"required,min=2"`
	Description    *string  `json:"description"`
	PricePerNight  int64    `json:"price_per_night" binding:"required,min=0"`
	TotalRooms     int      `json:"total_rooms" binding:"required,min=1"`
	AvailableRooms int      `json:"available_rooms" binding:"min=0"`
	Amenities      []string `json:"amenities"`
	Images         []string `json:"images"`
	IsAvailable    *bool    `json:"is_available"`
}
