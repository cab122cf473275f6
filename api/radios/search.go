package radios

import (
	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
	"github.com/mauiplayer/radio-api/internal/services/radios"
)

// Search returns stations matching a single term
// @Summary Search radio stations
// @Description Searches the radio directory by tag, name, country or language. Duplicate and
// @Description low bitrate stations are dropped; results keep the directory's order.
// @Tags radios
// @Produce json
// @Param searchterm query string false "Search term" default(jazz)
// @Param by query string false "Field to search (tag, name, country, language)" default(tag)
// @Param limit query int false "Number of stations to return (1-1024)" default(20) minimum(1) maximum(1024)
// @Success 200 {array} radios.Radio "Matching stations"
// @Failure 500 {object} types.ErrorResponse "Station directory unavailable"
// @Router /api/radios/search [get]
func Search(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := radios.SearchParams{
			SearchTerm: c.DefaultQuery("searchterm", radios.DefaultSearchTerm),
			By:         c.DefaultQuery("by", radios.DefaultSearchBy),
			Limit:      radios.ClampLimit(c.Query("limit"), radios.DefaultSearchLimit),
		}

		stations, err := deps.RadioService.Search(c.Request.Context(), params)
		if err != nil {
			fail(c, msgSearchFailed, err)
			return
		}

		types.SendSuccess(c, stations)
	}
}
