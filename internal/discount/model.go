package discount

import "time"

type Type string

const (
	TypeFlat       Type = "flat"
	TypePercentage Type = "percentage"
	TypeFreeItem   Type = "free_item"
)

type Target string

const (
	TargetRoom Target = "room"
	TargetFood Target = "food"
)

type Discount struct {
	ID            int       `db:"id" json:"id"`
	HotelID       int       `db:"hotel_id" json:"hotel_id"`
	Name          string    `db:"name" json:"name"`
	Description   *string   `db:"description" json:"description,omitempty"`
	CoinsRequired int64     `db:"coins_required" json:"coins_required"`
	Type          Type      `db:"discount_type" json:"discount_type"`
	Value         int64     `db:"discount_value" json:"discount_value"`
	Target        Target    `db:"target" json:"target"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type CreateDiscountRequest struct {
	Name          string  `json:"name" binding:"required,min=2"`
	Description   *string `json:"description"`
	CoinsRequired int64   `json:"coins_required" binding:"min=0"`
	Type          Type    `json:"discount_type" binding:"required,oneof=flat percentage free_item"`
	Value         int64   `json:"discount_value" binding:"min=0"`
	Target        Target  `json:"target" binding:"required,oneof=room food"`
}

type UpdateDiscountRequest struct {
	Name          string  `json:"name" binding:"required,min=2"`
	Description   *string `json:"description"`
	CoinsRequired int64   `json:"coins_required" binding:"min=0"`
	Type          Type    `json:"discount_type" binding:"required,oneof=flat percentage free_item"`
	Value         int64   `json:"discount_value" binding:"min=0"`
	Target        Target  `json:"target" binding:"required,oneof=room food"`
	IsActive      *bool   `json:"is_active"`
}
