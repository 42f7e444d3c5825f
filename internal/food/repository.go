package food

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrItemNotFound = errors.New("food item not found")

const itemColumns = `id, hotel_id, name, description, category, price, image_url,
	is_available, created_at, updated_at`

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateItem(ctx context.Context, hotelID int, req CreateItemRequest) (*Item, error) {
	var item Item
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO food_items (hotel_id, name, description, category, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+itemColumns+`
	`, hotelID, req.Name, req.Description, req.Category, req.Price, req.ImageURL).StructScan(&item)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *Repository) GetItemByID(ctx context.Context, id int) (*Item, error) {
	var item Item
	err := r.db.GetContext(ctx, &item, `
		SELECT `+itemColumns+` FROM food_items WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *Repository) ListAvailableByHotel(ctx context.Context, hotelID int) ([]Item, error) {
	items := []Item{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+itemColumns+` FROM food_items
		WHERE hotel_id = $1 AND is_available
		ORDER BY category, name
	`, hotelID)
	return items, err
}

func (r *Repository) ListByHotel(ctx context.Context, hotelID int) ([]Item, error) {
	items := []Item{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+itemColumns+` FROM food_items
		WHERE hotel_id = $1
		ORDER BY created_at DESC
	`, hotelID)
	return items, err
}

func (r *Repository) UpdateItem(ctx context.Context, id int, req UpdateItemRequest) (*Item, error) {
	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	var item Item
	err := r.db.QueryRowxContext(ctx, `
		UPDATE food_items
		SET name = $1, description = $2, category = $3, price = $4, image_url = $5,
		    is_available = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+itemColumns+`
	`, req.Name, req.Description, req.Category, req.Price, req.ImageURL, isAvailable, id).StructScan(&item)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *Repository) DeleteItem(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM food_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
