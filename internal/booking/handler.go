package booking

import (
	"errors"
	"net/http"
	"strconv"

	"tourgo/internal/api"
	"tourgo/internal/auth"
	"tourgo/internal/hotel"
	"tourgo/internal/room"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func respondCreateErr(c *gin.Context, err error) {
	var coinsErr *InsufficientCoinsError

	switch {
	case errors.As(err, &coinsErr):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":       "Not enough coins for this booking",
			"requirement": coinsErr.Requirement,
		})
	case errors.Is(err, ErrBadDateFormat), errors.Is(err, ErrInvalidStay):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, room.ErrRoomNotFound), errors.Is(err, hotel.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrRoomNotBookable), errors.Is(err, ErrHotelNotBookable),
		errors.Is(err, ErrDiscountNotUsable):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrRoomHeld):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
	}
}

// Quote godoc
// @Summary      Price a stay without creating a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body QuoteRequest true "Quote payload"
// @Success      200 {object} Quote
// @Failure      400 {object} api.ErrorResponse
// @Router       /quote [post]
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	q, err := h.svc.Quote(c.Request.Context(), req)
	if err != nil {
		respondCreateErr(c, err)
		return
	}

	c.JSON(http.StatusOK, q)
}

// CreateBooking godoc
// @Summary      Book a room
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateBookingRequest true "Booking payload"
// @Success      201 {object} CreateBookingResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      402 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.svc.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		respondCreateErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListMyBookings godoc
// @Summary      List the current user's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} BookingWithDetails
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.svc.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CancelBooking godoc
// @Summary      Cancel an own pending booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        bookingID path int true "Booking ID"
// @Success      200 {object} api.MessageResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	err = h.svc.CancelOwnBooking(c.Request.Context(), userID, bookingID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking cancelled"})
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrCancelNotAllowed):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking"})
	}
}

// ListHotelBookings godoc
// @Summary      List bookings for an owned hotel
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Success      200 {array} BookingWithDetails
// @Failure      403 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/bookings [get]
func (h *Handler) ListHotelBookings(c *gin.Context) {
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

	bookings, err := h.svc.ListHotelBookings(c.Request.Context(), ownerID, hotelID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, bookings)
	case errors.Is(err, hotel.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Hotel not found"})
	case errors.Is(err, hotel.ErrNotHotelOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not the hotel owner"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
	}
}

// UpdateStatus godoc
// @Summary      Change a booking's status (hotel owner)
// @Tags         owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookingID path int true "Booking ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200 {object} Booking
// @Failure      403 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /owner/bookings/{bookingID}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.svc.ChangeStatus(c.Request.Context(), ownerID, bookingID, req.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, b)
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, hotel.ErrNotHotelOwner), errors.Is(err, hotel.ErrHotelNotFound):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not the hotel owner"})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update booking"})
	}
}

// DownloadReceipt godoc
// @Summary      Download a booking receipt as PDF
// @Tags         bookings
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        bookingID path int true "Booking ID"
// @Success      200 {file} binary
// @Failure      403 {object} api.ErrorResponse
// @Router       /bookings/{bookingID}/receipt [get]
func (h *Handler) DownloadReceipt(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	b, err := h.svc.GetReceiptData(c.Request.Context(), userID, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
			return
		}
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not allowed to read this booking"})
		return
	}

	data, filename, err := BuildReceiptPDF(b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to render receipt"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
