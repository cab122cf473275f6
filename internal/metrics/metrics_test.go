package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestMetrics_Recorders(t *testing.T) {
	m := New()

	m.HostAttempt("https://de1.api.radio-browser.info", true, 20*time.Millisecond)
	m.HostAttempt("https://de2.api.radio-browser.info", false, time.Second)
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)
	m.PartialFailure("comprehensive")
	m.StationsServed("search", 5)

	body := scrape(t, m)
	assert.Contains(t, body, `radio_api_directory_host_attempts_total{host="https://de1.api.radio-browser.info",outcome="success"} 1`)
	assert.Contains(t, body, `radio_api_directory_host_attempts_total{host="https://de2.api.radio-browser.info",outcome="failure"} 1`)
	assert.Contains(t, body, `radio_api_cache_lookups_total{result="hit"} 1`)
	assert.Contains(t, body, `radio_api_cache_lookups_total{result="miss"} 2`)
	assert.Contains(t, body, `radio_api_partial_fetch_failures_total{endpoint="comprehensive"} 1`)
	assert.Contains(t, body, `radio_api_stations_served_total{endpoint="search"} 5`)
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/radios/:kind", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/radios/search", nil))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	body := scrape(t, m)
	assert.Contains(t, body, `radio_api_http_requests_total{method="GET",route="/api/radios/:kind",status="200"} 2`)
	assert.Contains(t, body, `radio_api_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.HostAttempt("h", true, time.Millisecond)
		m.CacheLookup(true)
		m.PartialFailure("variety")
		m.StationsServed("random", 1)
	})
	assert.Nil(t, m.Registry())

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
