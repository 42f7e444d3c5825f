package food

import "time"

type Category string

const (
	CategoryVeg      Category = "veg"
	CategoryNonVeg   Category = "non_veg"
	CategoryDrinks   Category = "drinks"
	CategoryDesserts Category = "desserts"
)

type Item struct {
	ID          int       `db:"id" json:"id"`
	HotelID     int       `db:"hotel_id" json:"hotel_id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Category    Category  `db:"category" json:"category"`
	Price       int64     `db:"price" json:"price"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type CreateItemRequest struct {
	Name        string   `json:"name" binding:"required,min=2"`
	Description *string  `json:"description"`
	Category    Category `json:"category" binding:"required,oneof=veg non_veg drinks desserts"`
	Price       int64    `json:"price" binding:"required,min=0"`
	ImageURL    *string  `json:"image_url"`
}

type UpdateItemRequest struct {
	Name        string   `json:"name" binding:"required,min=2"`
	Description *string  `json:"description"`
	Category    Category `json:"category" binding:"required,oneof=veg non_veg drinks desserts"`
	Price       int64    `json:"price" binding:"required,min=0"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}
