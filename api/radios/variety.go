package radios

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
	"github.com/mauiplayer/radio-api/internal/services/radios"
)

// Variety returns a shuffled mix across several tags
// @Summary Get a variety mix of radio stations
// @Description Fetches every tag concurrently at a random offset, adds the top voted stations
// @Description and returns the shuffled union. Failing tags are skipped.
// @Tags radios
// @Produce json
// @Param tags query string false "Comma-separated tags (e.g. 'pop,rock,jazz')"
// @Param limit query int false "Number of stations to return (1-1024)" default(50) minimum(1) maximum(1024)
// @Success 200 {array} radios.Radio "Mixed stations"
// @Failure 500 {object} types.ErrorResponse "Every directory query failed"
// @Router /api/radios/variety [get]
func Variety(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := radios.VarietyParams{
			Tags:  splitTags(c.Query("tags")),
			Limit: radios.ClampLimit(c.Query("limit"), radios.DefaultVarietyLimit),
		}

		stations, err := deps.RadioService.Variety(c.Request.Context(), params)
		if err != nil {
			fail(c, msgVarietyFailed, err)
			return
		}

		types.SendSuccess(c, stations)
	}
}

// splitTags splits a comma list, dropping blanks
func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
