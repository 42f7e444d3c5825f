package discount

import (
	"errors"
	"net/http"
	"strconv"

	"tourgo/internal/api"
	"tourgo/internal/auth"
	"tourgo/internal/hotel"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc      Service
	hotelSvc hotel.Service
}

func NewHandler(svc Service, hotelSvc hotel.Service) *Handler {
	return &Handler{
		svc:      svc,
		hotelSvc: hotelSvc,
	}
}

// ListDiscounts godoc
// @Summary      List active discounts for a hotel
// @Tags         hotels
// @Produce      json
// @Param        hotelID path int true "Hotel ID"
// @Success      200 {array} Discount
// @Failure      400 {object} api.ErrorResponse
// @Router       /hotels/{hotelID}/discounts [get]
func (h *Handler) ListDiscounts(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("hotelID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid hotel ID"})
		return
	}

	discounts, err := h.svc.ListActiveByHotel(c.Request.Context(), hotelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch discounts"})
		return
	}

	c.JSON(http.StatusOK, discounts)
}

func (h *Handler) requireOwnedHotel(c *gin.Context) (int, bool) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return 0, false
	}

	hotelID, err := strconv.Atoi(c.Param("hotelID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid hotel ID"})
		return 0, false
	}

	if _, err := h.hotelSvc.RequireOwnership(c.Request.Context(), ownerID, hotelID); err != nil {
		switch {
		case errors.Is(err, hotel.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Hotel not found"})
		case errors.Is(err, hotel.ErrNotHotelOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not the hotel owner"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal error"})
		}
		return 0, false
	}

	return hotelID, true
}

// ListOwnDiscounts godoc
// @Summary      List all discounts of an owned hotel
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Success      200 {array} Discount
// @Failure      403 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/discounts [get]
func (h *Handler) ListOwnDiscounts(c *gin.Context) {
	hotelID, ok := h.requireOwnedHotel(c)
	if !ok {
		return
	}

	discounts, err := h.svc.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch discounts"})
		return
	}

	c.JSON(http.StatusOK, discounts)
}

// CreateDiscount godoc
// @Summary      Create a discount for an owned hotel
// @Tags         owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        request body CreateDiscountRequest true "Discount payload"
// @Success      201 {object} Discount
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/discounts [post]
func (h *Handler) CreateDiscount(c *gin.Context) {
	hotelID, ok := h.requireOwnedHotel(c)
	if !ok {
		return
	}

	var req CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	d, err := h.svc.CreateDiscount(c.Request.Context(), hotelID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create discount"})
		return
	}

	c.JSON(http.StatusCreated, d)
}

// UpdateDiscount godoc
// @Summary      Update a discount of an owned hotel
// @Tags         owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        discountID path int true "Discount ID"
// @Param        request body UpdateDiscountRequest true "Discount payload"
// @Success      200 {object} Discount
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/discounts/{discountID} [put]
func (h *Handler) UpdateDiscount(c *gin.Context) {
	hotelID, ok := h.requireOwnedHotel(c)
	if !ok {
		return
	}

	discountID, err := strconv.Atoi(c.Param("discountID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid discount ID"})
		return
	}

	existing, err := h.svc.GetDiscountByID(c.Request.Context(), discountID)
	if err != nil || existing.HotelID != hotelID {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Discount not found"})
		return
	}

	var req UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	d, err := h.svc.UpdateDiscount(c.Request.Context(), discountID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update discount"})
		return
	}

	c.JSON(http.StatusOK, d)
}

// DeleteDiscount godoc
// @Summary      Delete a discount of an owned hotel
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        discountID path int true "Discount ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/discounts/{discountID} [delete]
func (h *Handler) DeleteDiscount(c *gin.Context) {
	hotelID, ok := h.requireOwnedHotel(c)
	if !ok {
		return
	}

	discountID, err := strconv.Atoi(c.Param("discountID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid discount ID"})
		return
	}

	existing, err := h.svc.GetDiscountByID(c.Request.Context(), discountID)
	if err != nil || existing.HotelID != hotelID {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Discount not found"})
		return
	}

	if err := h.svc.DeleteDiscount(c.Request.Context(), discountID); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete discount"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Discount deleted"})
}
