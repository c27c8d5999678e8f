// Package scoring wraps the confirmation-probability model. The model is
// an external collaborator as far as the booking core is concerned: the
// estimator only sees the Scorer interface and treats the returned
// percentage as opaque.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Features is the single-row input derived from a proposed booking.
// SeatType is "upper" or "lower"; HasMeal is encoded 1/0 the way the
// trained model expects categorical flags.
type Features struct {
	SeatCount        int     `json:"seat_count"`
	SeatType         string  `json:"seat_type"`
	BoardingStation  int     `json:"boarding_station"`
	DroppingStation  int     `json:"dropping_station"`
	JourneyDayOfWeek int     `json:"journey_day_of_week"`
	BookingHour      int     `json:"booking_hour"`
	HasMeal          int     `json:"has_meal"`
	TotalAmount      float64 `json:"total_amount"`
}

// Scorer produces a confirmation percentage, nominally 0-100.
type Scorer interface {
	Score(ctx context.Context, f Features) (float64, error)
}

// Weights parameterize the heuristic scorer. They stand in for the
// trained model artifact and can be overridden by a JSON file.
type Weights struct {
	Base           float64 `json:"base"`
	PerExtraSeat   float64 `json:"per_extra_seat"`
	LowerBerth     float64 `json:"lower_berth"`
	WeekendDay     float64 `json:"weekend_day"`
	PeakHour       float64 `json:"peak_hour"`
	MealAttached   float64 `json:"meal_attached"`
	PerFareHundred float64 `json:"per_fare_hundred"`
}

func DefaultWeights() Weights {
	return Weights{
		Base:           88,
		PerExtraSeat:   -2.5,
		LowerBerth:     3,
		WeekendDay:     -6,
		PeakHour:       -4,
		MealAttached:   2,
		PerFareHundred: -0.4,
	}
}

// LoadWeights reads a weights artifact from path. An empty path or a
// missing file falls back to the built-in weights; a malformed file is
// an error so a broken deploy fails at startup rather than scoring
// nonsense.
func LoadWeights(path string) (Weights, error) {
	if path == "" {
		return DefaultWeights(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultWeights(), nil
		}
		return Weights{}, fmt.Errorf("read weights %s: %w", path, err)
	}
	w := DefaultWeights()
	if err := json.Unmarshal(raw, &w); err != nil {
		return Weights{}, fmt.Errorf("parse weights %s: %w", path, err)
	}
	return w, nil
}

// HeuristicScorer is the in-process stand-in for the trained classifier:
// a linear score over the feature row, clamped to a plausible range.
type HeuristicScorer struct {
	weights Weights
}

func NewHeuristicScorer(w Weights) *HeuristicScorer {
	return &HeuristicScorer{weights: w}
}

func (s *HeuristicScorer) Score(ctx context.Context, f Features) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	w := s.weights
	score := w.Base

	if f.SeatCount > 1 {
		score += float64(f.SeatCount-1) * w.PerExtraSeat
	}
	if f.SeatType == "lower" {
		score += w.LowerBerth
	}
	if f.JourneyDayOfWeek >= 5 { // Saturday, Sunday in 0=Monday encoding
		score += w.WeekendDay
	}
	if f.BookingHour >= 18 && f.BookingHour <= 22 {
		score += w.PeakHour
	}
	if f.HasMeal == 1 {
		score += w.MealAttached
	}
	score += f.TotalAmount / 100 * w.PerFareHundred

	if score > 99 {
		score = 99
	}
	if score < 5 {
		score = 5
	}
	return score, nil
}
