package booking

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type Booking struct {
	ID              int       `db:"id" json:"id"`
	UserID          int       `db:"user_id" json:"user_id"`
	HotelID         int       `db:"hotel_id" json:"hotel_id"`
	RoomID          int       `db:"room_id" json:"room_id"`
	CheckIn         time.Time `db:"check_in" json:"check_in"`
	CheckOut        time.Time `db:"check_out" json:"check_out"`
	TotalAmount     int64     `db:"total_amount" json:"total_amount"`
	CoinsUsed       int64     `db:"coins_used" json:"coins_used"`
	DiscountID      *int      `db:"discount_id" json:"discount_id,omitempty"`
	DiscountApplied int64     `db:"discount_applied" json:"discount_applied"`
	Status          Status    `db:"status" json:"status"`
	SpecialRequests *string   `db:"special_requests" json:"special_requests,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// BookingWithDetails joins in the names an owner dashboard or a
// traveller's booking list needs without extra roundtrips.
type BookingWithDetails struct {
	Booking
	HotelName string `db:"hotel_name" json:"hotel_name"`
	RoomName  string `db:"room_name" json:"room_name"`
	UserName  string `db:"user_name" json:"user_name"`
	UserEmail string `db:"user_email" json:"user_email"`
}

type CreateBookingRequest struct {
	RoomID          int     `json:"room_id" binding:"required"`
	CheckIn         string  `json:"check_in" binding:"required,bookdate"`
	CheckOut        string  `json:"check_out" binding:"required,bookdate"`
	DiscountID      *int    `json:"discount_id"`
	SpecialRequests *string `json:"special_requests"`
}

type QuoteRequest struct {
	RoomID     int    `json:"room_id" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required,bookdate"`
	CheckOut   string `json:"check_out" binding:"required,bookdate"`
	DiscountID *int   `json:"discount_id"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=confirmed cancelled completed"`
}

type CreateBookingResponse struct {
	Booking   *Booking `json:"booking"`
	CoinsUsed int64    `json:"coins_used"`
	FreeItem  *string  `json:"free_item,omitempty"`
}
