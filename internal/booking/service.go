package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourgo/internal/coin"
	"tourgo/internal/discount"
	"tourgo/internal/email"
	"tourgo/internal/events"
	"tourgo/internal/hotel"
	"tourgo/internal/logger"
	"tourgo/internal/metrics"
	"tourgo/internal/room"
	"tourgo/internal/user"
)

var (
	ErrRoomNotBookable   = errors.New("room is not available for booking")
	ErrHotelNotBookable  = errors.New("hotel is not accepting bookings")
	ErrDiscountNotUsable = errors.New("discount is not usable for this hotel")
	ErrBadDateFormat     = errors.New("dates must be in YYYY-MM-DD format")
	ErrNotBookingOwner   = errors.New("booking belongs to another user")
	ErrCancelNotAllowed  = errors.New("only pending bookings can be cancelled")
)

// InsufficientCoinsError carries the gate breakdown so the client can
// show the exact shortfall.
type InsufficientCoinsError struct {
	Requirement coin.Requirement
}

func (e *InsufficientCoinsError) Error() string {
	return fmt.Sprintf("not enough coins: need %d, have %d",
		e.Requirement.RequiredCoins, e.Requirement.Balance)
}

type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
	CreateBooking(ctx context.Context, userID int, req CreateBookingRequest) (*CreateBookingResponse, error)
	ListUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error)
	ListHotelBookings(ctx context.Context, ownerID, hotelID int) ([]BookingWithDetails, error)
	CancelOwnBooking(ctx context.Context, userID, bookingID int) error
	ChangeStatus(ctx context.Context, ownerID, bookingID int, to Status) (*Booking, error)
	GetReceiptData(ctx context.Context, userID, bookingID int) (*BookingWithDetails, error)
}

type service struct {
	repo        Repository
	roomRepo    room.Repository
	hotelSvc    hotel.Service
	discountSvc discount.Service
	coinRepo    coin.Repository
	userRepo    user.Repository
	emailSvc    *email.Service
	emitter     *events.Emitter
	hold        *RoomHold
}

func NewService(
	repo Repository,
	roomRepo room.Repository,
	hotelSvc hotel.Service,
	discountSvc discount.Service,
	coinRepo coin.Repository,
	userRepo user.Repository,
	emailSvc *email.Service,
	emitter *events.Emitter,
	hold *RoomHold,
) Service {
	return &service{
		repo:        repo,
		roomRepo:    roomRepo,
		hotelSvc:    hotelSvc,
		discountSvc: discountSvc,
		coinRepo:    coinRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		emitter:     emitter,
		hold:        hold,
	}
}

func parseDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDateFormat
	}
	out, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDateFormat
	}
	return in, out, nil
}

// resolveDiscount loads and validates an optional discount against
// the hotel it must belong to.
func (s *service) resolveDiscount(ctx context.Context, discountID *int, hotelID int) (*discount.Discount, error) {
	if discountID == nil {
		return nil, nil
	}

	d, err := s.discountSvc.GetDiscountByID(ctx, *discountID)
	if err != nil {
		return nil, ErrDiscountNotUsable
	}
	if d.HotelID != hotelID || !d.IsActive {
		return nil, ErrDiscountNotUsable
	}

	return d, nil
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	checkIn, checkOut, err := parseDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	rm, err := s.roomRepo.GetRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, room.ErrRoomNotFound
	}

	d, err := s.resolveDiscount(ctx, req.DiscountID, rm.HotelID)
	if err != nil {
		return nil, err
	}

	q, err := ComputeQuote(rm.PricePerNight, checkIn, checkOut, d)
	if err != nil {
		return nil, err
	}

	return &q, nil
}

func (s *service) CreateBooking(ctx context.Context, userID int, req CreateBookingRequest) (*CreateBookingResponse, error) {
	checkIn, checkOut, err := parseDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	rm, err := s.roomRepo.GetRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, room.ErrRoomNotFound
	}
	if !rm.IsAvailable || rm.AvailableRooms <= 0 {
		metrics.RecordBookingRejected("room_unavailable")
		return nil, ErrRoomNotBookable
	}

	h, err := s.hotelSvc.GetHotelByID(ctx, rm.HotelID)
	if err != nil {
		return nil, err
	}
	if !h.IsActive {
		metrics.RecordBookingRejected("hotel_inactive")
		return nil, ErrHotelNotBookable
	}

	d, err := s.resolveDiscount(ctx, req.DiscountID, h.ID)
	if err != nil {
		metrics.RecordBookingRejected("bad_discount")
		return nil, err
	}

	q, err := ComputeQuote(rm.PricePerNight, checkIn, checkOut, d)
	if err != nil {
		metrics.RecordBookingRejected("invalid_stay")
		return nil, err
	}

	if err := s.hold.Acquire(ctx, userID, rm.ID, checkIn, checkOut); err != nil {
		if errors.Is(err, ErrRoomHeld) {
			metrics.RecordBookingRejected("room_held")
		}
		return nil, err
	}
	defer s.hold.Release(ctx, rm.ID, checkIn, checkOut)

	var discountCost int64
	if d != nil {
		discountCost = d.CoinsRequired
	}

	balance, err := s.coinRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	gate := coin.CheckRequirement(h.BaseCoinDeduction, discountCost, balance)
	if !gate.Allowed {
		metrics.RecordBookingRejected("insufficient_coins")
		return nil, &InsufficientCoinsError{Requirement: gate}
	}

	b := &Booking{
		UserID:          userID,
		HotelID:         h.ID,
		RoomID:          rm.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		TotalAmount:     q.TotalAmount,
		CoinsUsed:       gate.RequiredCoins,
		DiscountID:      req.DiscountID,
		DiscountApplied: q.DiscountApplied,
		SpecialRequests: req.SpecialRequests,
	}

	created, err := s.repo.CreateBooking(ctx, b)
	if err != nil {
		return nil, err
	}

	if gate.RequiredCoins > 0 {
		entries := make([]coin.DebitEntry, 0, 2)
		if h.BaseCoinDeduction > 0 {
			entries = append(entries, coin.DebitEntry{
				Amount:      h.BaseCoinDeduction,
				Type:        coin.TxBookingFee,
				Description: fmt.Sprintf("Base booking fee at %s", h.Name),
			})
		}
		if d != nil && d.CoinsRequired > 0 {
			entries = append(entries, coin.DebitEntry{
				Amount:      d.CoinsRequired,
				Type:        coin.TxRedemption,
				Description: fmt.Sprintf("Redeemed %s at %s", d.Name, h.Name),
			})
		}

		if err := s.coinRepo.DebitForBooking(ctx, userID, created.ID, entries); err != nil {
			// Roll the booking row back so a failed debit never
			// leaves an unpaid booking behind.
			if delErr := s.repo.DeleteBooking(ctx, created.ID); delErr != nil {
				logger.Error("failed to compensate booking after debit failure",
					"booking_id", created.ID, "error", delErr)
			}
			if errors.Is(err, coin.ErrInsufficientCoins) {
				metrics.RecordBookingRejected("insufficient_coins")
				return nil, &InsufficientCoinsError{Requirement: gate}
			}
			return nil, err
		}

		if h.BaseCoinDeduction > 0 {
			metrics.RecordCoinsSpent(coin.TxBookingFee, h.BaseCoinDeduction)
		}
		if d != nil && d.CoinsRequired > 0 {
			metrics.RecordCoinsSpent(coin.TxRedemption, d.CoinsRequired)
		}
	}

	metrics.RecordBooking(string(h.Category))

	if u, err := s.userRepo.FindByID(ctx, userID); err == nil {
		if err := s.emailSvc.SendBookingPending(ctx, u.Email, u.Name, h.Name, rm.Name,
			checkIn, checkOut, created.TotalAmount); err != nil {
			logger.Error("failed to queue booking email", "booking_id", created.ID, "error", err)
		}
	}

	s.emitter.Emit(events.BookingEvent{
		Type:      events.EventBookingCreated,
		BookingID: created.ID,
		HotelID:   created.HotelID,
		UserID:    created.UserID,
		Status:    string(created.Status),
	})

	resp := &CreateBookingResponse{
		Booking:   created,
		CoinsUsed: created.CoinsUsed,
		FreeItem:  q.FreeItem,
	}
	return resp, nil
}

func (s *service) ListUserBookings(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListHotelBookings(ctx context.Context, ownerID, hotelID int) ([]BookingWithDetails, error) {
	if _, err := s.hotelSvc.RequireOwnership(ctx, ownerID, hotelID); err != nil {
		return nil, err
	}
	return s.repo.ListByHotel(ctx, hotelID)
}

func (s *service) CancelOwnBooking(ctx context.Context, userID, bookingID int) error {
	b, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return ErrNotBookingOwner
	}
	if !CanTransition(b.Status, StatusCancelled) {
		return ErrCancelNotAllowed
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, StatusCancelled); err != nil {
		return err
	}
	metrics.RecordBookingStatusChange(string(b.Status), string(StatusCancelled))

	if u, err := s.userRepo.FindByID(ctx, userID); err == nil {
		if h, err := s.hotelSvc.GetHotelByID(ctx, b.HotelID); err == nil {
			if err := s.emailSvc.SendCancellation(ctx, u.Email, u.Name, h.Name); err != nil {
				logger.Error("failed to queue cancellation email", "booking_id", bookingID, "error", err)
			}
		}
	}

	s.emitter.Emit(events.BookingEvent{
		Type:      events.EventBookingStatusChanged,
		BookingID: b.ID,
		HotelID:   b.HotelID,
		UserID:    b.UserID,
		Status:    string(StatusCancelled),
	})

	return nil
}

func (s *service) ChangeStatus(ctx context.Context, ownerID, bookingID int, to Status) (*Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if _, err := s.hotelSvc.RequireOwnership(ctx, ownerID, b.HotelID); err != nil {
		return nil, err
	}

	if !CanTransition(b.Status, to) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, to); err != nil {
		return nil, err
	}
	metrics.RecordBookingStatusChange(string(b.Status), string(to))

	if u, err := s.userRepo.FindByID(ctx, b.UserID); err == nil {
		if h, err := s.hotelSvc.GetHotelByID(ctx, b.HotelID); err == nil {
			if err := s.emailSvc.SendStatusChange(ctx, u.Email, u.Name, h.Name, string(to)); err != nil {
				logger.Error("failed to queue status email", "booking_id", bookingID, "error", err)
			}
		}
	}

	s.emitter.Emit(events.BookingEvent{
		Type:      events.EventBookingStatusChanged,
		BookingID: b.ID,
		HotelID:   b.HotelID,
		UserID:    b.UserID,
		Status:    string(to),
	})

	b.Status = to
	return b, nil
}

// GetReceiptData returns the booking with details, allowing only the
// booking's owner or the hotel's owner to read it.
func (s *service) GetReceiptData(ctx context.Context, userID, bookingID int) (*BookingWithDetails, error) {
	b, err := s.repo.GetWithDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.UserID == userID {
		return b, nil
	}
	if _, err := s.hotelSvc.RequireOwnership(ctx, userID, b.HotelID); err == nil {
		return b, nil
	}

	return nil, ErrNotBookingOwner
}
