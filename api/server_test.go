package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauiplayer/radio-api/api/types"
	"github.com/mauiplayer/radio-api/internal/database"
	"github.com/mauiplayer/radio-api/internal/metrics"
	"github.com/mauiplayer/radio-api/internal/services/counter"
	"github.com/mauiplayer/radio-api/internal/services/radios"
	"github.com/mauiplayer/radio-api/pkg/config"
)

type stubRadioService struct{}

func (stubRadioService) Search(context.Context, radios.SearchParams) ([]radios.Radio, error) {
	return []radios.Radio{{StationUUID: "s-1", IsRadio: true}}, nil
}

func (stubRadioService) TopVoted(context.Context, int) ([]radios.Radio, error) {
	return []radios.Radio{}, nil
}

func (stubRadioService) Random(context.Context, int) ([]radios.Radio, error) {
	return []radios.Radio{}, nil
}

func (stubRadioService) Variety(context.Context, radios.VarietyParams) ([]radios.Radio, error) {
	return []radios.Radio{}, nil
}

func (stubRadioService) Comprehensive(context.Context, int) ([]radios.Radio, error) {
	return []radios.Radio{}, nil
}

type stubDirectory struct{}

func (stubDirectory) PreferredHost() string { return "https://de1.api.radio-browser.info" }

func newTestServer(t *testing.T, rc RouteConfig) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	server := NewServer(":0")
	server.SetRouteConfig(rc)
	server.SetDependencies(&types.Dependencies{
		DB:             db,
		RadioService:   stubRadioService{},
		Directory:      stubDirectory{},
		CounterService: counter.NewService(counter.NewRepository(db.DB)),
		Metrics:        metrics.New(),
	})
	require.NoError(t, server.Initialize())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})
	return server
}

func serve(s *Server, method, target, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	req.RemoteAddr = "10.0.0.1:5000"
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestServer_Routes(t *testing.T) {
	server := newTestServer(t, DefaultRouteConfig())

	tests := []struct {
		method   string
		target   string
		wantCode int
		contains string
	}{
		{http.MethodGet, "/", http.StatusOK, `"Radio API"`},
		{http.MethodGet, "/health", http.StatusOK, `"preferred_host":"https://de1.api.radio-browser.info"`},
		{http.MethodGet, "/api/status", http.StatusOK, `"app":"MauiApp1"`},
		{http.MethodGet, "/api/greeting", http.StatusOK, `"title":"Welcome to Audio Media Player"`},
		{http.MethodGet, "/api/counter", http.StatusOK, `"counter":3`},
		{http.MethodPost, "/api/counter", http.StatusOK, `"counter":4`},
		{http.MethodGet, "/api/radios/search", http.StatusOK, `"stationuuid":"s-1"`},
		{http.MethodGet, "/api/radios/topvoted", http.StatusOK, `[]`},
		{http.MethodGet, "/api/radios/random", http.StatusOK, `[]`},
		{http.MethodGet, "/api/radios/variety", http.StatusOK, `[]`},
		{http.MethodGet, "/api/radios/comprehensive", http.StatusOK, `[]`},
		{http.MethodGet, "/api/nope", http.StatusNotFound, `"path":"/api/nope"`},
		{http.MethodGet, "/docs", http.StatusMovedPermanently, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := serve(server, tt.method, tt.target, "")
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	server := newTestServer(t, DefaultRouteConfig())

	serve(server, http.MethodGet, "/api/radios/random", "")
	w := serve(server, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `radio_api_http_requests_total{method="GET",route="/api/radios/random",status="200"} 1`)
}

func TestServer_CORS(t *testing.T) {
	server := newTestServer(t, DefaultRouteConfig())

	w := serve(server, http.MethodGet, "/api/status", "https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(server, http.MethodOptions, "/api/radios/search", "http://localhost")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(server, http.MethodGet, "/api/status", "https://player.azurewebsites.net")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestServer_RadiosRateLimit(t *testing.T) {
	rc := DefaultRouteConfig()
	rc.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2}
	server := newTestServer(t, rc)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(server, http.MethodGet, "/api/radios/random", "").Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// other routes are not limited
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(server, http.MethodGet, "/api/status", "").Code)
	}
}

func TestServer_OptionalRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rc := DefaultRouteConfig()
	rc.EnableRequestID = false
	server := NewServer(":0")
	server.SetRouteConfig(rc)
	require.NoError(t, server.Initialize())

	w := serve(server, http.MethodGet, "/api/radios/search", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get(RequestIDHeader))

	w = serve(server, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(server, http.MethodGet, "/api/counter", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(server, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"not configured"`))
}

func TestRouteConfigFromConfig(t *testing.T) {
	cfg := &config.Config{
		Security: config.SecurityConfig{
			CORSOrigins:        []string{"http://localhost"},
			AllowAzureWildcard: false,
			EnableRequestID:    true,
		},
		RateLimiting: config.RateLimitConfig{Enabled: true, RPS: 3, Burst: 4},
		Monitoring:   config.MonitoringConfig{Enabled: false, MetricsPath: "/metrics"},
	}

	rc := RouteConfigFromConfig(cfg)
	assert.Equal(t, []string{"http://localhost"}, rc.CORS.Origins)
	assert.False(t, rc.CORS.AllowAzureWildcard)
	assert.Equal(t, 3, rc.RateLimit.RPS)
	assert.Empty(t, rc.MetricsPath)
	assert.True(t, rc.EnableRequestID)

	cfg.Monitoring.Enabled = true
	assert.Equal(t, "/metrics", RouteConfigFromConfig(cfg).MetricsPath)
}

func TestRegisterRoutes_Errors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	err := RegisterRoutes(gin.New(), nil, DefaultRouteConfig(), nil, nil, nil)
	assert.Error(t, err)

	rc := DefaultRouteConfig()
	rc.MetricsPath = "metrics"
	err = RegisterRoutes(gin.New(), &types.Dependencies{Metrics: metrics.New()}, rc, nil, nil, nil)
	assert.Error(t, err)
}
