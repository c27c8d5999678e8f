package services

import (
	"sync"
	"time"

	"sleeperbooking/internal/domain"
	"sleeperbooking/internal/domain/models"
	"sleeperbooking/internal/repositories"
)

// ReservationService owns the booking ledger and the seat inventory
// behind a single lock, so a create's check-then-reserve sequence and a
// cancel's release-then-mark sequence are atomic with respect to each
// other. Constructed once at startup and shared by the handlers.
type ReservationService struct {
	mu        sync.Mutex
	inventory *repositories.SeatInventory
	ledger    *repositories.BookingLedger
	catalog   *repositories.Catalog
	now       func() time.Time
}

func NewReservationService(inv *repositories.SeatInventory, ledger *repositories.BookingLedger, catalog *repositories.Catalog, now func() time.Time) *ReservationService {
	if now == nil {
		now = time.Now
	}
	return &ReservationService{
		inventory: inv,
		ledger:    ledger,
		catalog:   catalog,
		now:       now,
	}
}

// CreateBookingInput is the caller-supplied booking request. Station and
// meal ids are opaque, and TotalAmount is trusted as-is; integrity checks
// are the caller's responsibility.
type CreateBookingInput struct {
	BoardingPoint int
	DroppingPoint int
	Seats         []string
	Meals         []int
	Passengers    []models.Passenger
	TotalAmount   float64
}

// SeatMap is the inventory snapshot for the seat-map endpoint.
// AvailableCount subtracts every booked label from the berth count,
// phantom seeds included, so it can differ from len(Available) while any
// out-of-map seed remains booked. The count never goes below zero even
// when the booked set exceeds the berth map.
type SeatMap struct {
	TotalSeats     int
	Available      []string
	Booked         []string
	AvailableCount int
}

// Create validates seat availability, assigns a booking id and reserves
// the seats, all under the service lock. The first seat already booked
// (in input order) fails the whole request; no partial reservation
// happens.
func (s *ReservationService) Create(in CreateBookingInput) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seat := range in.Seats {
		if s.inventory.IsBooked(seat) {
			return models.Booking{}, domain.SeatConflictError{Seat: seat}
		}
	}

	// Empty slices, not nil: the ledger's JSON shapes list these fields
	// as arrays even when absent from the request.
	if in.Seats == nil {
		in.Seats = []string{}
	}
	if in.Meals == nil {
		in.Meals = []int{}
	}
	if in.Passengers == nil {
		in.Passengers = []models.Passenger{}
	}

	createdAt := s.now()
	booking := &models.Booking{
		BookingID:     s.nextBookingID(createdAt),
		BoardingPoint: in.BoardingPoint,
		DroppingPoint: in.DroppingPoint,
		Seats:         in.Seats,
		Meals:         in.Meals,
		Passengers:    in.Passengers,
		TotalPrice:    in.TotalAmount,
		BookingTime:   createdAt,
		Status:        models.StatusConfirmed,
	}

	s.ledger.Append(booking)
	s.inventory.Reserve(in.Seats)

	return *booking, nil
}

// nextBookingID encodes the creation instant at second resolution,
// BK + 14 digits. Two creations inside the same second would collide, so
// the encoded instant is advanced until the id is unused; the documented
// format survives intact. Caller holds the lock.
func (s *ReservationService) nextBookingID(at time.Time) string {
	for {
		id := "BK" + at.Format("20060102150405")
		if !s.ledger.Exists(id) {
			return id
		}
		at = at.Add(time.Second)
	}
}

// List returns all bookings in creation order, cancelled ones included,
// with station names resolved lazily against the catalog.
func (s *ReservationService) List() []models.BookingSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := s.ledger.All()
	out := make([]models.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		name, contact := "N/A", "N/A"
		if len(b.Passengers) > 0 {
			name = b.Passengers[0].Name
			contact = b.Passengers[0].Phone
		}
		out = append(out, models.BookingSummary{
			BookingID:        b.BookingID,
			Boarding:         s.catalog.StationName(b.BoardingPoint),
			Dropping:         s.catalog.StationName(b.DroppingPoint),
			Seats:            b.Seats,
			PassengerName:    name,
			PassengerContact: contact,
			TotalAmount:      b.TotalPrice,
			BookingTime:      b.BookingTime,
			Status:           b.Status,
		})
	}
	return out
}

// Get returns a copy of a booking by id.
func (s *ReservationService) Get(id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.ledger.ByID(id)
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "Booking"}
	}
	return *b, nil
}

// Cancel releases the booking's seats and marks it cancelled, returning
// the full refund amount. Cancelled is terminal: a second cancel fails.
func (s *ReservationService) Cancel(id string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.ledger.ByID(id)
	if !ok {
		return 0, domain.NotFoundError{Resource: "Booking"}
	}
	if b.Status == models.StatusCancelled {
		return 0, domain.AlreadyCancelledError{BookingID: id}
	}

	s.inventory.Release(b.Seats)

	cancelledAt := s.now()
	b.Status = models.StatusCancelled
	b.CancelledAt = &cancelledAt

	return b.TotalPrice, nil
}

// SeatMap snapshots the inventory for the seat-map endpoint.
func (s *ReservationService) SeatMap() SeatMap {
	s.mu.Lock()
	defer s.mu.Unlock()

	available, booked := s.inventory.Partition()
	count := models.BerthCount - s.inventory.BookedCount()
	if count < 0 {
		count = 0
	}
	return SeatMap{
		TotalSeats:     models.BerthCount,
		Available:      available,
		Booked:         booked,
		AvailableCount: count,
	}
}

// BookedSeatCount exposes the raw booked-set size for the availability
// endpoint's capacity arithmetic.
func (s *ReservationService) BookedSeatCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.BookedCount()
}
