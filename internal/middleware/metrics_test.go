package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edutrack-api/internal/service"
)

func metricsRouter(svc *service.MetricsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(svc))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/metrics", ok)
	r.GET("/health", ok)
	r.GET("/ready", ok)
	r.GET("/students", ok)
	return r
}

func TestMetricsObservesAPIRequests(t *testing.T) {
	svc := service.NewMetricsService()
	r := metricsRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, uint64(1), svc.Snapshot().RequestsTotal)
}

func TestMetricsSkipsProbeEndpoints(t *testing.T) {
	svc := service.NewMetricsService()
	r := metricsRouter(svc)

	for _, path := range []string{"/metrics", "/health", "/ready"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, uint64(0), svc.Snapshot().RequestsTotal, "probe traffic stays out of the counters")
}

func TestMetricsNilServiceIsPassthrough(t *testing.T) {
	r := metricsRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
