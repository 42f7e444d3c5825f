package booking

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRoomHold_Acquire(t *testing.T) {
	client, mock := redismock.NewClientMock()
	hold := NewRoomHold(client)

	checkIn := day("2026-10-01")
	checkOut := day("2026-10-03")
	key := "room_hold:4:2026-10-01:2026-10-03"

	mock.ExpectSetNX(key, 7, 2*time.Minute).SetVal(true)
	err := hold.Acquire(context.Background(), 7, 4, checkIn, checkOut)
	assert.NoError(t, err)

	mock.ExpectSetNX(key, 8, 2*time.Minute).SetVal(false)
	err = hold.Acquire(context.Background(), 8, 4, checkIn, checkOut)
	assert.ErrorIs(t, err, ErrRoomHeld)

	mock.ExpectDel(key).SetVal(1)
	hold.Release(context.Background(), 4, checkIn, checkOut)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomHold_NilClientIsNoop(t *testing.T) {
	hold := NewRoomHold(nil)

	err := hold.Acquire(context.Background(), 7, 4, day("2026-10-01"), day("2026-10-03"))
	assert.NoError(t, err)
	hold.Release(context.Background(), 4, day("2026-10-01"), day("2026-10-03"))
}
