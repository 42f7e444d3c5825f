package coin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrProfileNotFound   = errors.New("profile not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBalance(ctx context.Context, userID int) (int64, error) {
	var balance int64
	err := r.db.GetContext(ctx, &balance,
		`SELECT total_coins FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrProfileNotFound
		}
		return 0, err
	}
	return balance, nil
}

// DebitForBooking subtracts the summed entry amounts from the user's
// balance and writes one ledger row per entry, all in a single
// transaction. The profile row is locked for the duration so two
// concurrent bookings cannot both pass the balance check.
func (r *repository) DebitForBooking(ctx context.Context, userID, bookingID int, entries []DebitEntry) error {
	if len(entries) == 0 {
		return nil
	}

	var total int64
	for _, e := range entries {
		total += e.Amount
	}
	if total == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var balance int64
	err = tx.QueryRowxContext(ctx,
		`SELECT total_coins FROM profiles WHERE user_id = $1 FOR UPDATE`,
		userID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProfileNotFound
		}
		return err
	}

	if balance < total {
		return ErrInsufficientCoins
	}

	running := balance
	for _, e := range entries {
		if e.Amount == 0 {
			continue
		}
		running -= e.Amount
		_, err = tx.ExecContext(ctx,
			`INSERT INTO coin_transactions (user_id, amount, transaction_type, description, booking_id, balance_after)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			userID, -e.Amount, e.Type, e.Description, bookingID, running,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE profiles SET total_coins = $1, updated_at = NOW() WHERE user_id = $2`,
		running, userID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) ListTransactions(ctx context.Context, userID int, limit, offset int) ([]Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	txs := []Transaction{}
	err := r.db.SelectContext(ctx, &txs, `
		SELECT id, user_id, amount, transaction_type, description, booking_id, balance_after, created_at
		FROM coin_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return txs, nil
}
