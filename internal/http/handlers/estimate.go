package handlers

import (
	"net/http"

	"sleeperbooking/internal/services"

	"github.com/gin-gonic/gin"
)

type predictRequest struct {
	SelectedSeats []string `json:"selectedSeats"`
	BoardingPoint int      `json:"boardingPoint"`
	DroppingPoint int      `json:"droppingPoint"`
	SelectedMeals []int    `json:"selectedMeals"`
	TotalAmount   float64  `json:"totalAmount"`
}

// Predict estimates the confirmation probability for a proposed booking.
func (a *API) Predict(c *gin.Context) {
	var req predictRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	est, err := a.Estimator.Predict(c.Request.Context(), services.EstimateInput{
		SelectedSeats: req.SelectedSeats,
		BoardingPoint: req.BoardingPoint,
		DroppingPoint: req.DroppingPoint,
		SelectedMeals: req.SelectedMeals,
		TotalAmount:   req.TotalAmount,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := gin.H{
		"success":               true,
		"prediction_percentage": est.Percentage,
		"message":               est.Message,
		"factors":               est.Factors,
	}
	if est.Fallback {
		resp["fallback"] = true
	}
	c.JSON(http.StatusOK, resp)
}
