package scoring

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestHeuristicScorerDeterministic(t *testing.T) {
	s := NewHeuristicScorer(DefaultWeights())
	f := Features{
		SeatCount:        2,
		SeatType:         "lower",
		BoardingStation:  1,
		DroppingStation:  5,
		JourneyDayOfWeek: 2,
		BookingHour:      14,
		HasMeal:          1,
		TotalAmount:      750,
	}

	a, err := s.Score(context.Background(), f)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	b, err := s.Score(context.Background(), f)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if a != b {
		t.Fatalf("scorer not deterministic: %v vs %v", a, b)
	}
	if a < 5 || a > 99 {
		t.Fatalf("score %v outside clamp range", a)
	}
}

func TestHeuristicScorerClampsExtremes(t *testing.T) {
	s := NewHeuristicScorer(DefaultWeights())

	low, err := s.Score(context.Background(), Features{
		SeatCount:        10,
		SeatType:         "upper",
		JourneyDayOfWeek: 6,
		BookingHour:      20,
		TotalAmount:      50000,
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if low != 5 {
		t.Fatalf("heavily penalized score = %v, want clamp floor 5", low)
	}
}

func TestHeuristicScorerHonorsCancelledContext(t *testing.T) {
	s := NewHeuristicScorer(DefaultWeights())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Score(ctx, Features{}); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestLoadWeights(t *testing.T) {
	if w, err := LoadWeights(""); err != nil || w != DefaultWeights() {
		t.Fatalf("empty path: w=%+v err=%v", w, err)
	}
	if w, err := LoadWeights(filepath.Join(t.TempDir(), "missing.json")); err != nil || w != DefaultWeights() {
		t.Fatalf("missing file: w=%+v err=%v", w, err)
	}

	path := filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(path, []byte(`{"base": 70, "lower_berth": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.Base != 70 || w.LowerBerth != 5 {
		t.Fatalf("overrides not applied: %+v", w)
	}
	if w.MealAttached != DefaultWeights().MealAttached {
		t.Fatalf("unset fields should keep defaults: %+v", w)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWeights(bad); err == nil {
		t.Fatal("malformed artifact must fail loading")
	}
}
