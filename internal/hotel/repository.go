package hotel

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const hotelColumns = `id, owner_id, name, description, location, category, latitude, longitude,
	images, base_coin_deduction, is_verified, is_active, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateHotel(ctx context.Context, ownerID int, req CreateHotelRequest) (*Hotel, error) {
	var h Hotel
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO hotels (owner_id, name, description, location, category, latitude, longitude, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+hotelColumns+`
	`, ownerID, req.Name, req.Description, req.Location, req.Category,
		req.Latitude, req.Longitude, pq.StringArray(req.Images)).StructScan(&h)
	if err != nil {
		return nil, err
	}

	return &h, nil
}

func (r *repository) GetHotelByID(ctx context.Context, id int) (*Hotel, error) {
	var h Hotel
	err := r.db.GetContext(ctx, &h, `
		SELECT `+hotelColumns+` FROM hotels WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return &h, nil
}

func (r *repository) ListActiveHotels(ctx context.Context, category string) ([]Hotel, error) {
	hotels := []Hotel{}
	if category != "" {
		err := r.db.SelectContext(ctx, &hotels, `
			SELECT `+hotelColumns+` FROM hotels
			WHERE is_active AND category = $1
			ORDER BY is_verified DESC, created_at DESC
		`, category)
		return hotels, err
	}

	err := r.db.SelectContext(ctx, &hotels, `
		SELECT `+hotelColumns+` FROM hotels
		WHERE is_active
		ORDER BY is_verified DESC, created_at DESC
	`)
	return hotels, err
}

func (r *repository) ListHotelsByOwner(ctx context.Context, ownerID int) ([]Hotel, error) {
	hotels := []Hotel{}
	err := r.db.SelectContext(ctx, &hotels, `
		SELECT `+hotelColumns+` FROM hotels
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	return hotels, err
}

func (r *repository) UpdateHotel(ctx context.Context, id int, req UpdateHotelRequest) (*Hotel, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var h Hotel
	err := r.db.QueryRowxContext(ctx, `
		UPDATE hotels
		SET name = $1, description = $2, location = $3, category = $4,
		    latitude = $5, longitude = $6, images = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING `+hotelColumns+`
	`, req.Name, req.Description, req.Location, req.Category,
		req.Latitude, req.Longitude, pq.StringArray(req.Images), isActive, id).StructScan(&h)
	if err != nil {
		return nil, err
	}

	return &h, nil
}

func (r *repository) SetBaseCoinDeduction(ctx context.Context, id int, coins int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE hotels SET base_coin_deduction = $1, updated_at = NOW() WHERE id = $2
	`, coins, id)
	return err
}

func (r *repository) SetVerified(ctx context.Context, id int, verified bool) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE hotels SET is_verified = $1, updated_at = NOW() WHERE id = $2
	`, verified, id)
	return err
}
