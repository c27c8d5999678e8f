package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStations lists all stops on the route.
func (a *API) GetStations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"stations": a.Catalog.Stations(),
	})
}

// GetMeals lists the onboard meal options.
func (a *API) GetMeals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"meals":   a.Catalog.Meals(),
	})
}
