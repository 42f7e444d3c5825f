package user

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Profile struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"user_id"`
	FullName   string    `db:"full_name" json:"full_name"`
	AvatarURL  *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	Phone      *string   `db:"phone" json:"phone,omitempty"`
	Location   *string   `db:"location" json:"location,omitempty"`
	TotalCoins int64     `db:"total_coins" json:"total_coins"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=tourist hotel_owner"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type UpdateProfileRequest struct {
	FullName  string  `json:"full_name" binding:"required,min=2"`
	AvatarURL *string `json:"avatar_url"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
}
