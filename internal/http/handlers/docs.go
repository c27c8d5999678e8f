package handlers

import (
	"net/http"

	"sleeperbooking/internal/http/middleware"
	"sleeperbooking/internal/services"

	"github.com/gin-gonic/gin"
)

// GetBookingTicket streams the e-ticket PDF for a confirmed booking.
func (a *API) GetBookingTicket(c *gin.Context) {
	svc := services.DocsService{
		Reservations: a.Reservations,
		Catalog:      a.Catalog,
		RequestID:    middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
