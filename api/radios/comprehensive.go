package radios

import (
	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
	"github.com/mauiplayer/radio-api/internal/services/radios"
)

// Comprehensive sweeps every extended genre in English and Spanish
// @Summary Get a comprehensive radio catalogue
// @Description Queries every extended genre in every supported language concurrently and returns
// @Description the shuffled, deduplicated union. Failing queries are skipped.
// @Tags radios
// @Produce json
// @Param limit query int false "Number of stations to return (1-1024)" default(1024) minimum(1) maximum(1024)
// @Success 200 {array} radios.Radio "Stations across all genres"
// @Failure 500 {object} types.ErrorResponse "Every directory query failed"
// @Router /api/radios/comprehensive [get]
func Comprehensive(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := radios.ClampLimit(c.Query("limit"), radios.DefaultComprehensiveLimit)

		stations, err := deps.RadioService.Comprehensive(c.Request.Context(), limit)
		if err != nil {
			fail(c, msgComprehensiveFailed, err)
			return
		}

		types.SendSuccess(c, stations)
	}
}
