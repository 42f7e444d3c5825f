package user

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

// SignupBonusCoins is credited to every new profile.
const SignupBonusCoins int64 = 100

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts the user together with its profile and the signup bonus
// ledger row in one transaction.
func (r *repository) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var user User
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, role, created_at
	`, name, email, passwordHash, role).StructScan(&user)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO profiles (user_id, full_name, total_coins)
		VALUES ($1, $2, $3)
	`, user.ID, name, SignupBonusCoins)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO coin_transactions (user_id, amount, transaction_type, description, balance_after)
		VALUES ($1, $2, 'signup_bonus', 'Welcome to TourGo', $2)
	`, user.ID, SignupBonusCoins)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) GetProfile(ctx context.Context, userID int) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `
		SELECT id, user_id, full_name, avatar_url, phone, location, total_coins, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*Profile, error) {
	var p Profile
	err := r.db.QueryRowxContext(ctx, `
		UPDATE profiles
		SET full_name = $1, avatar_url = $2, phone = $3, location = $4, updated_at = NOW()
		WHERE user_id = $5
		RETURNING id, user_id, full_name, avatar_url, phone, location, total_coins, created_at, updated_at
	`, req.FullName, req.AvatarURL, req.Phone, req.Location, userID).StructScan(&p)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
