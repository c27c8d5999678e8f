package handlers

import (
	"net/http"

	"sleeperbooking/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. The typed
// errors carry contract-level messages, so err.Error() is the payload.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsSeatConflict(err),
		domain.IsAlreadyCancelled(err),
		domain.IsInvalidStation(err),
		domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
