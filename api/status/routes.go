package status

import (
	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
)

// RegisterRoutes registers the app status and greeting routes, plus the
// counter routes when a counter service is configured
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/status", GetStatus())
	router.GET("/greeting", GetGreeting())

	if deps == nil || deps.CounterService == nil {
		return
	}
	router.GET("/counter", GetCounter(deps))
	router.POST("/counter", PostCounter(deps))
}
