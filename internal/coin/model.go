package coin

import "time"

const (
	TxSignupBonus = "signup_bonus"
	TxBookingFee  = "booking_fee"
	TxRedemption  = "redemption"
)

type Transaction struct {
	ID              int       `db:"id" json:"id"`
	UserID          int       `db:"user_id" json:"user_id"`
	Amount          int64     `db:"amount" json:"amount"`
	TransactionType string    `db:"transaction_type" json:"transaction_type"`
	Description     *string   `db:"description" json:"description,omitempty"`
	BookingID       *int      `db:"booking_id" json:"booking_id,omitempty"`
	BalanceAfter    int64     `db:"balance_after" json:"balance_after"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// DebitEntry is one ledger row to write during a booking debit.
// Amount is the positive number of coins the entry costs.
type DebitEntry struct {
	Amount      int64
	Type        string
	Description string
}

type BalanceResponse struct {
	TotalCoins int64 `json:"total_coins"`
	Level      int   `json:"level"`
}
