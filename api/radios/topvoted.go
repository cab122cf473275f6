package radios

import (
	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
	"github.com/mauiplayer/radio-api/internal/services/radios"
)

// TopVoted returns the most voted stations
// @Summary Get top voted radio stations
// @Description Returns the directory's most voted stations, best first.
// @Tags radios
// @Produce json
// @Param limit query int false "Number of stations to return (1-1024)" default(20) minimum(1) maximum(1024)
// @Success 200 {array} radios.Radio "Top voted stations"
// @Failure 500 {object} types.ErrorResponse "Station directory unavailable"
// @Router /api/radios/topvoted [get]
func TopVoted(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := radios.ClampLimit(c.Query("limit"), radios.DefaultTopVotedLimit)

		stations, err := deps.RadioService.TopVoted(c.Request.Context(), limit)
		if err != nil {
			fail(c, msgTopVotedFailed, err)
			return
		}

		types.SendSuccess(c, stations)
	}
}
