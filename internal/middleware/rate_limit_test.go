package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/luckycunningwolf/HRMS/internal/middleware"
)

func TestRateLimitByUserBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/reviews",
		func(c *gin.Context) { c.Set("user_id", c.GetHeader("X-User")) },
		middleware.RateLimitByUser(1, 2),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	do := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
		req.Header.Set("X-User", user)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))

	// Each user draws from their own budget.
	assert.Equal(t, http.StatusOK, do("b"))
}

func TestRateLimitByUserSkipsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/reviews",
		middleware.RateLimitByUser(1, 1),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reviews", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
