package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
)

// Get handles health check requests
// @Summary Health check
// @Description Reports database connectivity and the currently preferred directory mirror.
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthResponse
// @Failure 503 {object} types.HealthResponse
// @Router /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    types.StatusOK,
			Timestamp: time.Now().UTC(),
			Database:  map[string]any{"status": "not configured"},
			Directory: map[string]any{"status": "not configured"},
		}
		code := http.StatusOK

		if deps != nil && deps.DB != nil {
			if err := deps.DB.HealthCheck(); err != nil {
				response.Database = map[string]any{"status": "unhealthy", "error": err.Error()}
				response.Status = types.StatusUnhealthy
				code = http.StatusServiceUnavailable
			} else {
				response.Database = map[string]any{"status": "healthy"}
			}
		}

		// The directory is probed lazily; report the mirror requests go to first
		if deps != nil && deps.Directory != nil {
			response.Directory = map[string]any{
				"status":         "configured",
				"preferred_host": deps.Directory.PreferredHost(),
			}
		}

		c.JSON(code, response)
	}
}
