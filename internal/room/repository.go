package room

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrRoomNotFound = errors.New("room not found")

const roomColumns = `id, hotel_id, name, description, price_per_night, total_rooms,
	available_rooms, amenities, images, is_available, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRoom(ctx context.Context, hotelID int, req CreateRoomRequest) (*Room, error) {
	var room Room
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO rooms (hotel_id, name, description, price_per_night, total_rooms, available_rooms, amenities, images)
		VALUES ($1, $2, $3, $4, $5, $5, $6, $7)
		RETURNING `+roomColumns+`
	`, hotelID, req.Name, req.Description, req.PricePerNight, req.TotalRooms,
		pq.StringArray(req.Amenities), pq.StringArray(req.Images)).StructScan(&room)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	var room Room
	err := r.db.GetContext(ctx, &room, `
		SELECT `+roomColumns+` FROM rooms WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) ListAvailableByHotel(ctx context.Context, hotelID int) ([]Room, error) {
	rooms := []Room{}
	err := r.db.SelectContext(ctx, &rooms, `
		SELECT `+roomColumns+` FROM rooms
		WHERE hotel_id = $1 AND is_available AND available_rooms > 0
		ORDER BY price_per_night ASC
	`, hotelID)
	return rooms, err
}

func (r *repository) ListByHotel(ctx context.Context, hotelID int) ([]Room, error) {
	rooms := []Room{}
	err := r.db.SelectContext(ctx, &rooms, `
		SELECT `+roomColumns+` FROM rooms
		WHERE hotel_id = $1
		ORDER BY created_at DESC
	`, hotelID)
	return rooms, err
}

func (r *repository) UpdateRoom(ctx context.Context, id int, req UpdateRoomRequest) (*Room, error) {
	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	var room Room
	err := r.db.QueryRowxContext(ctx, `
		UPDATE rooms
		SET name = $1, description = $2, price_per_night = $3, total_rooms = $4,
		    available_rooms = $5, amenities = $6, images = $7, is_available = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING `+roomColumns+`
	`, req.Name, req.Description, req.PricePerNight, req.TotalRooms, req.AvailableRooms,
		pq.StringArray(req.Amenities), pq.StringArray(req.Images), isAvailable, id).StructScan(&room)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) DeleteRoom(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRoomNotFound
	}

	return nil
}
