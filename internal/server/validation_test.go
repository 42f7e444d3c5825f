package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newStayRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	registerValidators()

	router := gin.New()
	router.POST("/stay", func(c *gin.Context) {
		var req struct {
			CheckIn  string `json:"check_in" binding:"required,bookdate"`
			CheckOut string `json:"check_out" binding:"required,bookdate"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestBookdateValidator_ValidDates(t *testing.T) {
	router := newStayRouter()

	body := `{"check_in": "2026-10-01", "check_out": "2026-10-03"}`
	req := httptest.NewRequest("POST", "/stay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookdateValidator_MalformedDates(t *testing.T) {
	router := newStayRouter()

	for _, body := range []string{
		`{"check_in": "01-10-2026", "check_out": "2026-10-03"}`,
		`{"check_in": "2026-10-01", "check_out": "next friday"}`,
		`{"check_in": "2026-13-40", "check_out": "2026-10-03"}`,
	} {
		req := httptest.NewRequest("POST", "/stay", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}
