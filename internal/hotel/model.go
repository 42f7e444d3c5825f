package hotel

import (
	"time"

	"github.com/lib/pq"
)

type Category string

const (
	CategoryBudget  Category = "budget"
	CategoryPremium Category = "premium"
	CategoryResort  Category = "resort"
)

type Hotel struct {
	ID                int            `db:"id" json:"id"`
	OwnerID           int            `db:"owner_id" json:"owner_id"`
	Name              string         `db:"name" json:"name"`
	Description       *string        `db:"description" json:"description,omitempty"`
	Location          string         `db:"location" json:"location"`
	Category          Category       `db:"category" json:"category"`
	Latitude          *float64       `db:"latitude" json:"latitude,omitempty"`
	Longitude         *float64       `db:"longitude" json:"longitude,omitempty"`
	Images            pq.StringArray `db:"images" json:"images"`
	BaseCoinDeduction int64          `db:"base_coin_deduction" json:"base_coin_deduction"`
	IsVerified        bool           `db:"is_verified" json:"is_verified"`
	IsActive          bool           `db:"is_active" json:"is_active"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required,min=2"`
	Description *string  `json:"description"`
	Location    string   `json:"location" binding:"required"`
	Category    Category `json:"category" binding:"required,oneof=budget premium resort"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Images      []string `json:"images"`
}

type UpdateHotelRequest struct {
	Name        string   `json:"name" binding:"required,min=2"`
	Description *string  `json:"description"`
	Location    string   `json:"location" binding:"required"`
	Category    Category `json:"category" binding:"required,oneof=budget premium resort"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"is_active"`
}

type CoinSettingsRequest struct {
	BaseCoinDeduction int64 `json:"base_coin_deduction" binding:"min=0"`
}
