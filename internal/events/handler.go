package events

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"tourgo/internal/api"
	"tourgo/internal/auth"
	"tourgo/internal/hotel"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	emitter  *Emitter
	hotelSvc hotel.Service
}

func NewHandler(emitter *Emitter, hotelSvc hotel.Service) *Handler {
	return &Handler{
		emitter:  emitter,
		hotelSvc: hotelSvc,
	}
}

func setSSEHeaders(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
}

// StreamHotelBookings godoc
// @Summary      Stream booking events for an owned hotel
// @Tags         owner
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Router       /owner/hotels/{hotelID}/events [get]
func (h *Handler) StreamHotelBookings(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	hotelID, err := strconv.Atoi(c.Param("hotelID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid hotel ID"})
		return
	}

	if _, err := h.hotelSvc.RequireOwnership(c.Request.Context(), ownerID, hotelID); err != nil {
		if errors.Is(err, hotel.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Hotel not found"})
			return
		}
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not the hotel owner"})
		return
	}

	setSSEHeaders(c)
	feed := h.emitter.SubscribeHotel(c.Request.Context(), hotelID)

	c.SSEvent("connected", gin.H{"hotel_id": hotelID})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-feed:
			if !open {
				return false
			}
			c.SSEvent(event.Type, event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// StreamMyBookings godoc
// @Summary      Stream booking events for the current user
// @Tags         bookings
// @Produce      text/event-stream
// @Security     BearerAuth
// @Router       /my/events [get]
func (h *Handler) StreamMyBookings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	setSSEHeaders(c)
	feed := h.emitter.SubscribeUser(c.Request.Context(), userID)

	c.SSEvent("connected", gin.H{"user_id": userID})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-feed:
			if !open {
				return false
			}
			c.SSEvent(event.Type, event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
