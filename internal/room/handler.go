package room

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
	repo     Repository
	hotelSvc hotel.Service
}

func NewHandler(repo Repository, hotelSvc hotel.Service) *Handler {
	return &Handler{
		repo:     repo,
		hotelSvc: hotelSvc,
	}
}

func respondOwnershipErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, hotel.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Hotel not found"})
	case errors.Is(err, hotel.ErrNotHotelOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not the hotel owner"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal error"})
	}
}

// ListRooms godoc
// @Summary      List available rooms for a hotel
// @Tags         hotels
// @Produce      json
// @Param        hotelID path int true "Hotel ID"
// @Success      200 {array} Room
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /hotels/{hotelID}/rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("hotelID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid hotel ID"})
		return
	}

	rooms, err := h.repo.ListAvailableByHotel(c.Request.Context(), hotelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch rooms"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// ListOwnRooms godoc
// @Summary      List all rooms of an owned hotel
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Success      200 {array} Room
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/rooms [get]
func (h *Handler) ListOwnRooms(c *gin.Context) {
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
		respondOwnershipErr(c, err)
		return
	}

	rooms, err := h.repo.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch rooms"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// CreateRoom godoc
// @Summary      Add a room to an owned hotel
// @Tags         owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        request body CreateRoomRequest true "Room payload"
// @Success      201 {object} Room
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
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
		respondOwnershipErr(c, err)
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.repo.CreateRoom(c.Request.Context(), hotelID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// UpdateRoom godoc
// @Summary      Update a room of an owned hotel
// @Tags         owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        roomID path int true "Room ID"
// @Param        request body UpdateRoomRequest true "Room payload"
// @Success      200 {object} Room
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/rooms/{roomID} [put]
func (h *Handler) UpdateRoom(c *gin.Context) {
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

	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room ID"})
		return
	}

	if _, err := h.hotelSvc.RequireOwnership(c.Request.Context(), ownerID, hotelID); err != nil {
		respondOwnershipErr(c, err)
		return
	}

	existing, err := h.repo.GetRoomByID(c.Request.Context(), roomID)
	if err != nil || existing.HotelID != hotelID {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.repo.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update room"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom godoc
// @Summary      Remove a room from an owned hotel
// @Tags         owner
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        roomID path int true "Room ID"
// @Success      200 {object} api.MessageResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/rooms/{roomID} [delete]
func (h *Handler) DeleteRoom(c *gin.Context) {
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

	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room ID"})
		return
	}

	if _, err := h.hotelSvc.RequireOwnership(c.Request.Context(), ownerID, hotelID); err != nil {
		respondOwnershipErr(c, err)
		return
	}

	existing, err := h.repo.GetRoomByID(c.Request.Context(), roomID)
	if err != nil || existing.HotelID != hotelID {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
		return
	}

	if err := h.repo.DeleteRoom(c.Request.Context(), roomID); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete room"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Room deleted"})
}
