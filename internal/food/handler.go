package food

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
	repo     *Repository
	hotelSvc hotel.Service
}

func NewHandler(repo *Repository, hotelSvc hotel.Service) *Handler {
	return &Handler{
		repo:     repo,
		hotelSvc: hotelSvc,
	}
}

// ListItems godoc
// @Summary      List available food items for a hotel
// @Tags         hotels
// @Produce      json
// @Param        hotelID path int true "Hotel ID"
// @Success      200 {array} Item
// @Failure      400 {object} api.ErrorResponse
// @Router       /hotels/{hotelID}/food [get]
func (h *Handler) ListItems(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("hotelID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid hotel ID"})
		return
	}

	items, err := h.repo.ListAvailableByHotel(c.Request.Context(), hotelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch food items"})
		return
	}

	c.JSON(http.StatusOK, items)
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

// ListOwnItems godoc
// @Summary      List all food items of an owned hotel
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Success      200 {array} Item
// @Failure      403 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/food [get]
func (h *Handler) ListOwnItems(c *gin.Context) {
	hotelID, ok := h.requireOwnedHotel(c)
	if !ok {
		return
	}

	items, err := h.repo.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch food items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem godoc
// @Summary      Add a food item to an owned hotel
// @Tags         owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        request body CreateItemRequest true "Food item payload"
// @Success      201 {object} Item
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/food [post]
func (h *Handler) CreateItem(c *gin.Context) {
	hotelID, ok := h.requireOwnedHotel(c)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.repo.CreateItem(c.Request.Context(), hotelID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create food item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem godoc
// @Summary      Update a food item of an owned hotel
// @Tags         owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        itemID path int true "Food item ID"
// @Param        request body UpdateItemRequest true "Food item payload"
// @Success      200 {object} Item
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/food/{itemID} [put]
func (h *Handler) UpdateItem(c *gin.Context) {
	hotelID, ok := h.requireOwnedHotel(c)
	if !ok {
		return
	}

	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid item ID"})
		return
	}

	existing, err := h.repo.GetItemByID(c.Request.Context(), itemID)
	if err != nil || existing.HotelID != hotelID {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Food item not found"})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.repo.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update food item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem godoc
// @Summary      Remove a food item from an owned hotel
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        itemID path int true "Food item ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/food/{itemID} [delete]
func (h *Handler) DeleteItem(c *gin.Context) {
	hotelID, ok := h.requireOwnedHotel(c)
	if !ok {
		return
	}

	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid item ID"})
		return
	}

	existing, err := h.repo.GetItemByID(c.Request.Context(), itemID)
	if err != nil || existing.HotelID != hotelID {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Food item not found"})
		return
	}

	if err := h.repo.DeleteItem(c.Request.Context(), itemID); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete food item"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Food item deleted"})
}
