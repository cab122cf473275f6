package status

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mauiplayer/radio-api/api/types"
)

const (
	appName          = "MauiApp1"
	apiName          = "Go Gin"
	greetingTitle    = "Welcome to Audio Media Player"
	greetingSubtitle = "Your music streaming companion"
)

// now is replaced in tests
var now = func() time.Time { return time.Now().UTC() }

// GetStatus reports which app and api stack are answering
// @Summary Get API status
// @Tags status
// @Produce json
// @Success 200 {object} types.StatusResponse
// @Router /api/status [get]
func GetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendSuccess(c, types.StatusResponse{
			App:        appName,
			API:        apiName,
			ServerTime: now(),
		})
	}
}

// GetGreeting returns the home screen greeting
// @Summary Get the home screen greeting
// @Tags status
// @Produce json
// @Success 200 {object} types.GreetingResponse
// @Router /api/greeting [get]
func GetGreeting() gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendSuccess(c, types.GreetingResponse{
			Title:      greetingTitle,
			Subtitle:   greetingSubtitle,
			ServerTime: now(),
		})
	}
}
