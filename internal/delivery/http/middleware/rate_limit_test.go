package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(limit int, window time.Duration, keyPrefix string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: keyPrefix,
		KeyFunc:   func(c *gin.Context) string { return c.ClientIP() },
	}))
	r.POST("/api/contact", func(c *gin.Context) { response.OK(c) })
	return r
}

func TestRateLimit_InMemoryFallback(t *testing.T) {
	// Unique prefix per test: the fallback store is package-level
	router := newLimitedRouter(3, time.Minute, "rl:test:fallback:")

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Muitas requisições. Tente novamente em instantes."}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_WindowReset(t *testing.T) {
	router := newLimitedRouter(1, 50*time.Millisecond, "rl:test:reset:")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	time.Sleep(60 * time.Millisecond)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContactRateLimitConfig(t *testing.T) {
	cfg := &config.Config{
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 5,
	}
	rlCfg := middleware.ContactRateLimitConfig(cfg)
	assert.Equal(t, 5, rlCfg.Limit)
	assert.Equal(t, time.Minute, rlCfg.Window)
	assert.Equal(t, "rl:contact:", rlCfg.KeyPrefix)
}
