package discount

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrDiscountNotFound = errors.New("discount not found")

const discountColumns = `id, hotel_id, name, description, coins_required, discount_type,
	discount_value, target, is_active, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateDiscount(ctx context.Context, hotelID int, req CreateDiscountRequest) (*Discount, error) {
	var d Discount
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO discounts (hotel_id, name, description, coins_required, discount_type, discount_value, target)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+discountColumns+`
	`, hotelID, req.Name, req.Description, req.CoinsRequired, req.Type, req.Value, req.Target).StructScan(&d)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *repository) GetDiscountByID(ctx context.Context, id int) (*Discount, error) {
	var d Discount
	err := r.db.GetContext(ctx, &d, `
		SELECT `+discountColumns+` FROM discounts WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *repository) ListActiveByHotel(ctx context.Context, hotelID int) ([]Discount, error) {
	discounts := []Discount{}
	err := r.db.SelectContext(ctx, &discounts, `
		SELECT `+discountColumns+` FROM discounts
		WHERE hotel_id = $1 AND is_active
		ORDER BY coins_required, id
	`, hotelID)
	return discounts, err
}

func (r *repository) ListByHotel(ctx context.Context, hotelID int) ([]Discount, error) {
	discounts := []Discount{}
	err := r.db.SelectContext(ctx, &discounts, `
		SELECT `+discountColumns+` FROM discounts
		WHERE hotel_id = $1
		ORDER BY created_at DESC
	`, hotelID)
	return discounts, err
}

func (r *repository) UpdateDiscount(ctx context.Context, id int, req UpdateDiscountRequest) (*Discount, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var d Discount
	err := r.db.QueryRowxContext(ctx, `
		UPDATE discounts
		SET name = $1, description = $2, coins_required = $3, discount_type = $4,
		    discount_value = $5, target = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+discountColumns+`
	`, req.Name, req.Description, req.CoinsRequired, req.Type, req.Value, req.Target, isActive, id).StructScan(&d)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *repository) DeleteDiscount(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDiscountNotFound
	}

	return nil
}
