package coin

import (
	"net/http"
	"strconv"

	"tourgo/internal/api"
	"tourgo/internal/auth"

	"github.com/gin-gonic/gin"
)

// CoinsPerLevel is how many lifetime coins it takes to advance one
// traveller level. Level starts at 1.
const CoinsPerLevel = 500

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// LevelFor maps a coin balance to a traveller level.
func LevelFor(totalCoins int64) int {
	if totalCoins < 0 {
		return 1
	}
	return int(totalCoins/CoinsPerLevel) + 1
}

// GetBalance godoc
// @Summary      Get the current user's coin balance and level
// @Tags         coins
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} BalanceResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /coins/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	balance, err := h.repo.GetBalance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load balance"})
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		TotalCoins: balance,
		Level:      LevelFor(balance),
	})
}

// ListTransactions godoc
// @Summary      List the current user's coin ledger entries
// @Tags         coins
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size (max 100)"
// @Param        offset query int false "Offset"
// @Success      200 {array} Transaction
// @Failure      401 {object} api.ErrorResponse
// @Router       /coins/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	txs, err := h.repo.ListTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load transactions"})
		return
	}

	c.JSON(http.StatusOK, txs)
}
