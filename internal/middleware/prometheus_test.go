package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"art_studio/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	e := echo.New()
	e.Use(PrometheusMetrics)
	e.GET("/api/awards", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})

	okBefore := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/awards", "200"))
	teapotBefore := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/boom", "418"))

	for _, path := range []string{"/api/awards", "/api/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/awards", "200")))
	assert.Equal(t, teapotBefore+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/boom", "418")))
}
