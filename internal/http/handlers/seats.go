package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSeats returns the seat map partitioned into available and booked
// labels.
func (a *API) GetSeats(c *gin.Context) {
	m := a.Reservations.SeatMap()
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"total_seats":     m.TotalSeats,
		"available_seats": m.Available,
		"booked_seats":    m.Booked,
		"available_count": m.AvailableCount,
	})
}
