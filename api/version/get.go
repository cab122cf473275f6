package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, set from the cmd package at startup
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// Get handles version requests
// @Summary API version information
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Radio API",
			"version":     Version,
			"commit":      GitCommit,
			"description": "Aggregated internet radio stations for the media player",
			"status":      "running",
		})
	}
}
