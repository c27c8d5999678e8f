package handlers

import (
	"net/http"

	"sleeperbooking/internal/domain/models"
	"sleeperbooking/internal/http/middleware"
	"sleeperbooking/internal/services"
	"sleeperbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

type passengerPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// createBookingRequest enforces berth-map syntax on seat labels, which
// is stricter than the upstream service (it booked any string). Labels
// outside 1..16 U/L could never be listed or released through the seat
// map, so they are rejected before the conflict check.
type createBookingRequest struct {
	SelectedSeats []string           `json:"selectedSeats" binding:"omitempty,dive,seatlabel"`
	BoardingPoint int                `json:"boardingPoint" binding:"required"`
	DroppingPoint int                `json:"droppingPoint" binding:"required"`
	SelectedMeals []int              `json:"selectedMeals"`
	Passengers    []passengerPayload `json:"passengers"`
	TotalAmount   float64            `json:"total_amount"`
}

// CreateBooking books seats and meals.
func (a *API) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	passengers := make([]models.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, models.Passenger{Name: p.Name, Phone: p.Phone})
	}

	booking, err := a.Reservations.Create(services.CreateBookingInput{
		BoardingPoint: req.BoardingPoint,
		DroppingPoint: req.DroppingPoint,
		Seats:         req.SelectedSeats,
		Meals:         req.SelectedMeals,
		Passengers:    passengers,
		TotalAmount:   req.TotalAmount,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "create", "booking_id="+booking.BookingID)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"booking_id":  booking.BookingID,
		"total_price": booking.TotalPrice,
		"message":     "Booking confirmed successfully",
	})
}

// GetBookings lists all bookings, cancelled ones included.
func (a *API) GetBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": a.Reservations.List(),
	})
}

// GetBooking returns the full record for one booking.
func (a *API) GetBooking(c *gin.Context) {
	booking, err := a.Reservations.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

// CancelBooking frees the booking's seats and returns the refund amount.
func (a *API) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	refund, err := a.Reservations.Cancel(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "cancel", "booking_id="+id)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Booking cancelled successfully",
		"refund_amount": refund,
	})
}
