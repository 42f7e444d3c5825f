package booking

import (
	"testing"
	"time"

	"tourgo/internal/discount"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name         string
		rate         int64
		checkIn      string
		checkOut     string
		discount     *discount.Discount
		wantNights   int
		wantGross    int64
		wantDiscount int64
		wantTotal    int64
		wantFreeItem bool
		wantErr      error
	}{
		{
			name: "two nights no discount",
			rate: 1000, checkIn: "2026-10-01", checkOut: "2026-10-03",
			wantNights: 2, wantGross: 2000, wantTotal: 2000,
		},
		{
			name: "flat discount",
			rate: 1000, checkIn: "2026-10-01", checkOut: "2026-10-03",
			discount: &discount.Discount{
				Type: discount.TypeFlat, Value: 300, Target: discount.TargetRoom,
			},
			wantNights: 2, wantGross: 2000, wantDiscount: 300, wantTotal: 1700,
		},
		{
			name: "percentage discount",
			rate: 1000, checkIn: "2026-10-01", checkOut: "2026-10-03",
			discount: &discount.Discount{
				Type: discount.TypePercentage, Value: 20, Target: discount.TargetRoom,
			},
			wantNights: 2, wantGross: 2000, wantDiscount: 400, wantTotal: 1600,
		},
		{
			name: "free item keeps total and carries the name",
			rate: 1000, checkIn: "2026-10-01", checkOut: "2026-10-03",
			discount: &discount.Discount{
				Name: "Free Dessert", Type: discount.TypeFreeItem, Target: discount.TargetRoom,
			},
			wantNights: 2, wantGross: 2000, wantTotal: 2000, wantFreeItem: true,
		},
		{
			name: "food target discount never changes the room total",
			rate: 1000, checkIn: "2026-10-01", checkOut: "2026-10-03",
			discount: &discount.Discount{
				Type: discount.TypeFlat, Value: 300, Target: discount.TargetFood,
			},
			wantNights: 2, wantGross: 2000, wantTotal: 2000,
		},
		{
			name: "oversized flat discount floors at zero",
			rate: 100, checkIn: "2026-10-01", checkOut: "2026-10-02",
			discount: &discount.Discount{
				Type: discount.TypeFlat, Value: 5000, Target: discount.TargetRoom,
			},
			wantNights: 1, wantGross: 100, wantDiscount: 100, wantTotal: 0,
		},
		{
			name: "same day stay rejected",
			rate: 1000, checkIn: "2026-10-01", checkOut: "2026-10-01",
			wantErr: ErrInvalidStay,
		},
		{
			name: "checkout before checkin rejected",
			rate: 1000, checkIn: "2026-10-03", checkOut: "2026-10-01",
			wantErr: ErrInvalidStay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ComputeQuote(tt.rate, day(tt.checkIn), day(tt.checkOut), tt.discount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNights, q.Nights)
			assert.Equal(t, tt.wantGross, q.GrossAmount)
			assert.Equal(t, tt.wantDiscount, q.DiscountApplied)
			assert.Equal(t, tt.wantTotal, q.TotalAmount)
			if tt.wantFreeItem {
				require.NotNil(t, q.FreeItem)
				assert.Equal(t, tt.discount.Name, *q.FreeItem)
			} else {
				assert.Nil(t, q.FreeItem)
			}
		})
	}
}
