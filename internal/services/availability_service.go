package services

import (
	"fmt"

	"sleeperbooking/internal/domain"
	"sleeperbooking/internal/domain/models"
	"sleeperbooking/internal/repositories"
)

// AvailabilityService answers route-level availability and pricing.
// It deliberately uses RouteCapacity (40), not the 32-berth seat map;
// the two constants disagree upstream and are kept distinct on purpose.
type AvailabilityService struct {
	Catalog      *repositories.Catalog
	Reservations *ReservationService
}

// RouteAvailability is the quote for a boarding/dropping pair.
type RouteAvailability struct {
	AvailableSeats int
	PricePerSeat   float64
	Route          string
}

// Check validates both station ids and computes the segment fare as the
// difference of cumulative prices. The fare may be negative when the
// dropping stop precedes the boarding stop; that is left unguarded.
func (s AvailabilityService) Check(boardingID, droppingID int) (RouteAvailability, error) {
	boarding, ok := s.Catalog.StationByID(boardingID)
	if !ok {
		return RouteAvailability{}, domain.InvalidStationError{StationID: boardingID}
	}
	dropping, ok := s.Catalog.StationByID(droppingID)
	if !ok {
		return RouteAvailability{}, domain.InvalidStationError{StationID: droppingID}
	}

	return RouteAvailability{
		AvailableSeats: models.RouteCapacity - s.Reservations.BookedSeatCount(),
		PricePerSeat:   dropping.Price - boarding.Price,
		Route:          fmt.Sprintf("%s to %s", boarding.Name, dropping.Name),
	}, nil
}
