package hotel

import (
	"errors"
	"net/http"
	"strconv"

	"tourgo/internal/api"
	"tourgo/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func respondHotelErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrHotelNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Hotel not found"})
	case errors.Is(err, ErrNotHotelOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not the hotel owner"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal error"})
	}
}

// ListHotels godoc
// @Summary      List active hotels
// @Tags         hotels
// @Produce      json
// @Param        category query string false "Filter by category (budget|premium|resort)"
// @Success      200 {array} Hotel
// @Failure      500 {object} api.ErrorResponse
// @Router       /hotels [get]
func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.service.ListActiveHotels(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch hotels"})
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// GetHotel godoc
// @Summary      Get hotel by ID
// @Tags         hotels
// @Produce      json
// @Param        hotelID path int true "Hotel ID"
// @Success      200 {object} Hotel
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /hotels/{hotelID} [get]
func (h *Handler) GetHotel(c *gin.Context) {
	hotelID, err := strconv.Atoi(c.Param("hotelID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid hotel ID"})
		return
	}

	hotel, err := h.service.GetHotelByID(c.Request.Context(), hotelID)
	if err != nil {
		respondHotelErr(c, err)
		return
	}

	c.JSON(http.StatusOK, hotel)
}

// CreateHotel godoc
// @Summary      Create a hotel
// @Description  Hotel owners only.
// @Tags         owner,hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateHotelRequest true "Hotel payload"
// @Success      201 {object} Hotel
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /owner/hotels [post]
func (h *Handler) CreateHotel(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), ownerID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create hotel"})
		return
	}

	c.JSON(http.StatusCreated, hotel)
}

// ListOwnHotels godoc
// @Summary      List own hotels
// @Tags         owner,hotels
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Hotel
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /owner/hotels [get]
func (h *Handler) ListOwnHotels(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	hotels, err := h.service.ListOwnHotels(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch hotels"})
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// UpdateHotel godoc
// @Summary      Update own hotel
// @Tags         owner,hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        request body UpdateHotelRequest true "Hotel payload"
// @Success      200 {object} Hotel
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID} [put]
func (h *Handler) UpdateHotel(c *gin.Context) {
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

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	hotel, err := h.service.UpdateHotel(c.Request.Context(), ownerID, hotelID, req)
	if err != nil {
		respondHotelErr(c, err)
		return
	}

	c.JSON(http.StatusOK, hotel)
}

// SetCoinSettings godoc
// @Summary      Set the hotel's base coin fee
// @Tags         owner,hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelID path int true "Hotel ID"
// @Param        request body CoinSettingsRequest true "Coin settings"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /owner/hotels/{hotelID}/coin-settings [put]
func (h *Handler) SetCoinSettings(c *gin.Context) {
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

	var req CoinSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.SetCoinSettings(c.Request.Context(), ownerID, hotelID, req.BaseCoinDeduction); err != nil {
		respondHotelErr(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Coin settings updated"})
}
