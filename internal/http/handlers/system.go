package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home is a small service banner in place of the original landing page.
func (a *API) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": "sleeper-booking",
		"message": "Sleeper train booking API",
	})
}

// Health is a liveness probe.
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ok",
	})
}
