package handlers

import (
	"net/http"

	"sleeperbooking/internal/http/middleware"
	"sleeperbooking/internal/repositories"
	"sleeperbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// API bundles the shared services behind the HTTP surface. One instance
// is built at startup and handed to the router; handlers never touch
// package-level state.
type API struct {
	Reservations *services.ReservationService
	Availability services.AvailabilityService
	Estimator    services.EstimateService
	Catalog      *repositories.Catalog
}

// RespondError sends the standard failure payload. The message field is
// part of the API contract; request_id is added for tracing.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success":    false,
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	})
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "Request body required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}
