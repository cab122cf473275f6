package types

import "time"

// Status constants for API responses
const (
	StatusOK        = "ok"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse for the status endpoint
type StatusResponse struct {
	App        string    `json:"app"`
	API        string    `json:"api"`
	ServerTime time.Time `json:"serverTime"`
}

// GreetingResponse for the greeting endpoint
type GreetingResponse struct {
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	ServerTime time.Time `json:"serverTime"`
}

// CounterRequest is the body of a counter update. Delta stays raw so that
// numbers, numeric strings and junk can all be told apart.
type CounterRequest struct {
	Delta any `json:"delta"`
}

// HealthResponse for the health check endpoint
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Database  map[string]any `json:"database"`
	Directory map[string]any `json:"directory"`
}
