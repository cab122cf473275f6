package radios

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
	"github.com/mauiplayer/radio-api/internal/services/radiobrowser"
	apperrors "github.com/mauiplayer/radio-api/pkg/errors"
)

// Client facing messages of the radio endpoints
const (
	msgSearchFailed        = "Failed to search radio stations"
	msgTopVotedFailed      = "Failed to fetch top voted stations"
	msgRandomFailed        = "Failed to fetch random stations"
	msgVarietyFailed       = "Failed to fetch radio variety"
	msgComprehensiveFailed = "Failed to fetch comprehensive radio stations"
)

// RegisterRoutes registers the radio station routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/search", Search(deps))
	router.GET("/topvoted", TopVoted(deps))
	router.GET("/random", Random(deps))
	router.GET("/variety", Variety(deps))
	router.GET("/comprehensive", Comprehensive(deps))
}

// fail logs the cause and answers 500 with the endpoint's generic message
func fail(c *gin.Context, message string, err error) {
	if errors.Is(err, radiobrowser.ErrDirectoryUnavailable) {
		err = apperrors.Wrap(err, apperrors.ErrCodeDirectoryUnavailable, "station directory unavailable")
	}
	types.SendError(c, apperrors.EndpointFailure(message, err))
}
