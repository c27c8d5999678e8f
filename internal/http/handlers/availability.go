package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CheckAvailability quotes seat availability and fare for a route
// segment.
func (a *API) CheckAvailability(c *gin.Context) {
	boarding, err1 := strconv.Atoi(c.Query("boarding"))
	dropping, err2 := strconv.Atoi(c.Query("dropping"))
	if err1 != nil || err2 != nil || boarding == 0 || dropping == 0 {
		RespondError(c, http.StatusBadRequest, "Boarding and dropping points required")
		return
	}

	quote, err := a.Availability.Check(boarding, dropping)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"available_seats": quote.AvailableSeats,
		"price_per_seat":  quote.PricePerSeat,
		"route":           quote.Route,
	})
}
