package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spvm/records-api/internal/service"
)

func TestMetricsRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metricsSvc := service.NewMetricsService()

	r := gin.New()
	r.Use(Metrics(metricsSvc))
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	r.GET("/api/ranks", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ranks", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Scrape twice: the first exposes the ranks series, the second proves
	// scrapes themselves are never counted.
	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	body := w.Body.String()
	assert.Contains(t, body, `path="/api/ranks"`)
	assert.NotContains(t, body, `path="/metrics"`)
}

func TestMetricsNilServiceIsNoop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics(nil))
	r.GET("/api/ranks", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ranks", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
