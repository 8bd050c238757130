package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/propertyhub/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func TestHTTPMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := telemetry.NewMeterProviderWithReader(reader, zap.NewNop())

	router := gin.New()
	router.Use(HTTPMetrics(mp, zap.NewNop()))
	router.GET("/api/owners/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	for _, path := range []string{"/api/owners/1", "/api/owners/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	var sawDuration bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				if m.Name != "http_server_request_total" {
					continue
				}
				for _, dp := range data.DataPoints {
					route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
					counts[route.AsString()] += dp.Value
				}
			case metricdata.Histogram[float64]:
				if m.Name == "http_server_request_duration_seconds" {
					sawDuration = true
				}
			}
		}
	}

	assert.Equal(t, int64(2), counts["/api/owners/:id"])
	assert.Equal(t, int64(1), counts["unknown"])
	assert.True(t, sawDuration)
}

func TestHTTPMetrics_DisabledIsPassThrough(t *testing.T) {
	var mp *telemetry.MeterProvider

	router := gin.New()
	router.Use(HTTPMetrics(mp, zap.NewNop()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}
