package radios

import (
	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
	"github.com/mauiplayer/radio-api/internal/services/radios"
)

// Random returns a shuffled page of stations
// @Summary Get random radio stations
// @Description Returns an unordered page of directory stations in random order.
// @Tags radios
// @Produce json
// @Param limit query int false "Number of stations to return (1-1024)" default(10) minimum(1) maximum(1024)
// @Success 200 {array} radios.Radio "Random stations"
// @Failure 500 {object} types.ErrorResponse "Station directory unavailable"
// @Router /api/radios/random [get]
func Random(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := radios.ClampLimit(c.Query("limit"), radios.DefaultRandomLimit)

		stations, err := deps.RadioService.Random(c.Request.Context(), limit)
		if err != nil {
			fail(c, msgRandomFailed, err)
			return
		}

		types.SendSuccess(c, stations)
	}
}
