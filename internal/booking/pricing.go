package booking

import (
	"errors"
	"time"

	"tourgo/internal/discount"
)

var ErrInvalidStay = errors.New("check-out must be after check-in")

// Quote is the price breakdown for a stay, computed before the
// booking row exists. All amounts are whole currency units.
type Quote struct {
	Nights          int     `json:"nights"`
	GrossAmount     int64   `json:"gross_amount"`
	DiscountApplied int64   `json:"discount_applied"`
	TotalAmount     int64   `json:"total_amount"`
	FreeItem        *string `json:"free_item,omitempty"`
}

// ComputeQuote prices a stay of whole nights at the given nightly
// rate, applying an optional room-target discount. Food-target and
// free_item discounts never change the room total; a free_item name
// is carried through for display only.
func ComputeQuote(pricePerNight int64, checkIn, checkOut time.Time, d *discount.Discount) (Quote, error) {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return Quote{}, ErrInvalidStay
	}

	q := Quote{
		Nights:      nights,
		GrossAmount: pricePerNight * int64(nights),
	}
	q.TotalAmount = q.GrossAmount

	if d == nil || d.Target != discount.TargetRoom {
		return q, nil
	}

	switch d.Type {
	case discount.TypeFlat:
		q.DiscountApplied = d.Value
	case discount.TypePercentage:
		q.DiscountApplied = q.GrossAmount * d.Value / 100
	case discount.TypeFreeItem:
		name := d.Name
		q.FreeItem = &name
	}

	if q.DiscountApplied > q.GrossAmount {
		q.DiscountApplied = q.GrossAmount
	}
	q.TotalAmount = q.GrossAmount - q.DiscountApplied

	return q, nil
}
