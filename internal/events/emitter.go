package events

import (
	"context"
	"sync"
	"time"

	"tourgo/internal/metrics"
)

// BookingEvent is the payload pushed to SSE subscribers whenever a
// booking is created or changes status.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  int       `json:"booking_id"`
	HotelID    int       `json:"hotel_id"`
	UserID     int       `json:"user_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventBookingCreated       = "booking_created"
	EventBookingStatusChanged = "booking_status_changed"
)

// Emitter fans booking events out to connected SSE clients. Hotel
// feeds serve owner dashboards, user feeds serve the traveller's own
// booking list.
type Emitter struct {
	mu         sync.RWMutex
	hotelFeeds map[int][]chan BookingEvent
	userFeeds  map[int][]chan BookingEvent
}

func NewEmitter() *Emitter {
	return &Emitter{
		hotelFeeds: make(map[int][]chan BookingEvent),
		userFeeds:  make(map[int][]chan BookingEvent),
	}
}

// SubscribeHotel returns a channel of events for one hotel. The
// subscription is dropped and the channel closed when ctx is done.
func (e *Emitter) SubscribeHotel(ctx context.Context, hotelID int) <-chan BookingEvent {
	ch := make(chan BookingEvent, 10)

	e.mu.Lock()
	e.hotelFeeds[hotelID] = append(e.hotelFeeds[hotelID], ch)
	e.mu.Unlock()
	metrics.SSESubscribers.WithLabelValues("hotel").Inc()

	go func() {
		<-ctx.Done()
		e.removeHotelClient(hotelID, ch)
	}()

	return ch
}

// SubscribeUser returns a channel of events for one user's bookings.
func (e *Emitter) SubscribeUser(ctx context.Context, userID int) <-chan BookingEvent {
	ch := make(chan BookingEvent, 10)

	e.mu.Lock()
	e.userFeeds[userID] = append(e.userFeeds[userID], ch)
	e.mu.Unlock()
	metrics.SSESubscribers.WithLabelValues("user").Inc()

	go func() {
		<-ctx.Done()
		e.removeUserClient(userID, ch)
	}()

	return ch
}

// Emit broadcasts the event to the hotel's and the user's feeds.
// Sends are non-blocking so one stalled client never delays a booking.
// The read lock is held across the sends: channels are only closed
// under the write lock, so a disconnecting client cannot close a
// channel mid-broadcast.
func (e *Emitter) Emit(event BookingEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, ch := range e.hotelFeeds[event.HotelID] {
		select {
		case ch <- event:
		default:
		}
	}
	for _, ch := range e.userFeeds[event.UserID] {
		select {
		case ch <- event:
		default:
		}
	}
}

func (e *Emitter) removeHotelClient(hotelID int, ch chan BookingEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	clients := e.hotelFeeds[hotelID]
	for i, c := range clients {
		if c == ch {
			e.hotelFeeds[hotelID] = append(clients[:i], clients[i+1:]...)
			close(ch)
			metrics.SSESubscribers.WithLabelValues("hotel").Dec()
			break
		}
	}
	if len(e.hotelFeeds[hotelID]) == 0 {
		delete(e.hotelFeeds, hotelID)
	}
}

func (e *Emitter) removeUserClient(userID int, ch chan BookingEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	clients := e.userFeeds[userID]
	for i, c := range clients {
		if c == ch {
			e.userFeeds[userID] = append(clients[:i], clients[i+1:]...)
			close(ch)
			metrics.SSESubscribers.WithLabelValues("user").Dec()
			break
		}
	}
	if len(e.userFeeds[userID]) == 0 {
		delete(e.userFeeds, userID)
	}
}
