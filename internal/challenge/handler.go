package challenge

import (
	"net/http"

	"tourgo/internal/api"
	"tourgo/internal/auth"
	"tourgo/internal/coin"

	"github.com/gin-gonic/gin"
)

type Stats struct {
	TotalCoins       int64 `json:"total_coins"`
	Level            int   `json:"level"`
	CoinsThisLevel   int64 `json:"coins_this_level"`
	CoinsToNextLevel int64 `json:"coins_to_next_level"`
}

// ComputeStats derives the traveller level card from a coin balance.
func ComputeStats(totalCoins int64) Stats {
	if totalCoins < 0 {
		totalCoins = 0
	}

	level := coin.LevelFor(totalCoins)
	inLevel := totalCoins % coin.CoinsPerLevel

	return Stats{
		TotalCoins:       totalCoins,
		Level:            level,
		CoinsThisLevel:   inLevel,
		CoinsToNextLevel: coin.CoinsPerLevel - inLevel,
	}
}

type Handler struct {
	coinRepo coin.Repository
}

func NewHandler(coinRepo coin.Repository) *Handler {
	return &Handler{coinRepo: coinRepo}
}

// ListChallenges godoc
// @Summary      List active, upcoming and completed challenges
// @Tags         challenges
// @Produce      json
// @Success      200 {object} ChallengeCatalog
// @Router       /challenges [get]
func (h *Handler) ListChallenges(c *gin.Context) {
	c.JSON(http.StatusOK, challenges)
}

// ListRewards godoc
// @Summary      List redeemable rewards
// @Tags         challenges
// @Produce      json
// @Success      200 {array} Reward
// @Router       /rewards [get]
func (h *Handler) ListRewards(c *gin.Context) {
	c.JSON(http.StatusOK, rewards)
}

// Leaderboard godoc
// @Summary      Top travellers leaderboard
// @Tags         challenges
// @Produce      json
// @Success      200 {array} LeaderboardEntry
// @Router       /leaderboard [get]
func (h *Handler) Leaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, leaderboard)
}

// GetStats godoc
// @Summary      Get the current user's level and progress
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Stats
// @Failure      401 {object} api.ErrorResponse
// @Router       /stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	balance, err := h.coinRepo.GetBalance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, ComputeStats(balance))
}
