package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrRoomHeld = errors.New("room is being booked by someone else")

// holdTTL bounds how long a hold can outlive a crashed request.
const holdTTL = 2 * time.Minute

// RoomHold is a short-lived redis lock taken while a booking for a
// room and date span is created, so two requests racing for the same
// dates serialize instead of both passing the availability check.
type RoomHold struct {
	redis *redis.Client
}

func NewRoomHold(redisClient *redis.Client) *RoomHold {
	return &RoomHold{redis: redisClient}
}

func holdKey(roomID int, checkIn, checkOut time.Time) string {
	return fmt.Sprintf("room_hold:%d:%s:%s",
		roomID, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
}

// Acquire takes the hold for the caller. Returns ErrRoomHeld when
// another request already holds the same room and dates.
func (h *RoomHold) Acquire(ctx context.Context, userID, roomID int, checkIn, checkOut time.Time) error {
	if h.redis == nil {
		return nil
	}

	ok, err := h.redis.SetNX(ctx, holdKey(roomID, checkIn, checkOut), userID, holdTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrRoomHeld
	}

	return nil
}

// Release drops the hold. Safe to call when the hold already expired.
func (h *RoomHold) Release(ctx context.Context, roomID int, checkIn, checkOut time.Time) {
	if h.redis == nil {
		return
	}
	h.redis.Del(ctx, holdKey(roomID, checkIn, checkOut))
}
