package services

import (
	"context"
	"math"
	"time"

	"sleeperbooking/internal/domain"
	"sleeperbooking/internal/domain/models"
	"sleeperbooking/internal/scoring"
	"sleeperbooking/internal/utils"
)

// FallbackPercentage is returned whenever the scorer errors or times
// out. A fixed, clearly-flagged default beats an undefined result.
const FallbackPercentage = 75.0

// EstimateService derives a feature row from a proposed booking and asks
// the injected scorer for a confirmation percentage. The scoring call is
// the only external hop in the system and gets a bounded deadline.
type EstimateService struct {
	Scorer  scoring.Scorer
	Timeout time.Duration
	Now     func() time.Time
}

// EstimateInput mirrors the predict request. Nothing here is checked
// against the catalog; only seat presence is validated.
type EstimateInput struct {
	SelectedSeats []string
	BoardingPoint int
	DroppingPoint int
	SelectedMeals []int
	TotalAmount   float64
}

// Factors echoes the derived features back to the caller.
type Factors struct {
	SeatCount        int     `json:"seat_count"`
	SeatType         string  `json:"seat_type"`
	BoardingStation  int     `json:"boarding_station"`
	DroppingStation  int     `json:"dropping_station"`
	JourneyDayOfWeek int     `json:"journey_day_of_week"`
	BookingHour      int     `json:"booking_hour"`
	HasMeal          bool    `json:"has_meal"`
	TotalAmount      float64 `json:"total_amount"`
}

// Estimate is the scored result. Fallback marks percentages that came
// from the fixed default rather than the scorer.
type Estimate struct {
	Percentage float64
	Message    string
	Factors    Factors
	Fallback   bool
}

// Predict scores a proposed booking. The feature row is derived from the
// first selected seat only (not an aggregate over all seats), matching
// how the model was trained.
func (s EstimateService) Predict(ctx context.Context, in EstimateInput) (Estimate, error) {
	if len(in.SelectedSeats) == 0 {
		return Estimate{}, domain.ValidationError{Msg: "No seats selected"}
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	at := now()

	seatType := "lower"
	if models.IsUpperBerth(in.SelectedSeats[0]) {
		seatType = "upper"
	}
	hasMeal := 0
	if len(in.SelectedMeals) > 0 {
		hasMeal = 1
	}

	features := scoring.Features{
		SeatCount:        len(in.SelectedSeats),
		SeatType:         seatType,
		BoardingStation:  in.BoardingPoint,
		DroppingStation:  in.DroppingPoint,
		JourneyDayOfWeek: mondayIndexedWeekday(at),
		BookingHour:      at.Hour(),
		HasMeal:          hasMeal,
		TotalAmount:      in.TotalAmount,
	}

	percentage, fallback := s.score(ctx, features)

	return Estimate{
		Percentage: math.Round(percentage*100) / 100,
		Message:    tierMessage(percentage),
		Factors: Factors{
			SeatCount:        features.SeatCount,
			SeatType:         features.SeatType,
			BoardingStation:  features.BoardingStation,
			DroppingStation:  features.DroppingStation,
			JourneyDayOfWeek: features.JourneyDayOfWeek,
			BookingHour:      features.BookingHour,
			HasMeal:          hasMeal == 1,
			TotalAmount:      features.TotalAmount,
		},
		Fallback: fallback,
	}, nil
}

func (s EstimateService) score(ctx context.Context, f scoring.Features) (float64, bool) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pct, err := s.Scorer.Score(ctx, f)
	if err != nil {
		scoringErr := domain.ScoringUnavailableError{Err: err}
		utils.LogEvent("", "estimate", "score_fallback", scoringErr.Error())
		return FallbackPercentage, true
	}
	return pct, false
}

// mondayIndexedWeekday maps time.Weekday (Sunday=0) to the model's
// 0=Monday..6=Sunday encoding.
func mondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func tierMessage(pct float64) string {
	switch {
	case pct >= 90:
		return "Excellent! Very high probability of confirmation"
	case pct >= 80:
		return "Good! High probability of confirmation"
	case pct >= 70:
		return "Moderate probability of confirmation"
	default:
		return "Lower probability - consider alternative options"
	}
}
