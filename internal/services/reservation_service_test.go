package services

import (
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"sleeperbooking/internal/domain"
	"sleeperbooking/internal/domain/models"
	"sleeperbooking/internal/repositories"
)

var bookingIDPattern = regexp.MustCompile(`^BK\d{14}$`)

func newTestReservations(now func() time.Time) *ReservationService {
	return NewReservationService(
		repositories.NewSeatInventory(models.SeedBookedSeats),
		repositories.NewBookingLedger(),
		repositories.NewCatalog(),
		now,
	)
}

func TestCreateBooking(t *testing.T) {
	svc := newTestReservations(nil)

	booking, err := svc.Create(CreateBookingInput{
		BoardingPoint: 1,
		DroppingPoint: 5,
		Seats:         []string{"1U"},
		Passengers:    []models.Passenger{{Name: "Asha", Phone: "9800000000"}},
		TotalAmount:   750,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if !bookingIDPattern.MatchString(booking.BookingID) {
		t.Fatalf("booking id %q does not match BK + 14 digits", booking.BookingID)
	}
	if booking.Status != models.StatusConfirmed {
		t.Fatalf("new booking status = %s", booking.Status)
	}

	m := svc.SeatMap()
	found := false
	for _, label := range m.Booked {
		if label == "1U" {
			found = true
		}
	}
	if !found {
		t.Fatal("1U not booked after create")
	}
}

func TestCreateBookingSeatConflict(t *testing.T) {
	svc := newTestReservations(nil)

	_, err := svc.Create(CreateBookingInput{
		BoardingPoint: 1,
		DroppingPoint: 5,
		Seats:         []string{"1U", "5U", "2U"},
		TotalAmount:   750,
	})
	if !domain.IsSeatConflict(err) {
		t.Fatalf("expected seat conflict, got %v", err)
	}
	if err.Error() != "Seat 5U is already booked" {
		t.Fatalf("conflict message = %q", err.Error())
	}

	// Fails fast: no partial reservation of 1U.
	if svc.SeatMap().AvailableCount != models.BerthCount-5 {
		t.Fatal("conflicting create reserved seats")
	}
}

func TestBookingIDUniqueWithinSameSecond(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestReservations(func() time.Time { return fixed })

	a, err := svc.Create(CreateBookingInput{BoardingPoint: 1, DroppingPoint: 5, Seats: []string{"1U"}})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	b, err := svc.Create(CreateBookingInput{BoardingPoint: 1, DroppingPoint: 5, Seats: []string{"2U"}})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if a.BookingID == b.BookingID {
		t.Fatalf("same-second bookings share id %s", a.BookingID)
	}
	if !bookingIDPattern.MatchString(b.BookingID) {
		t.Fatalf("bumped id %q broke the format", b.BookingID)
	}
}

func TestCancelRefundsAndFreesSeats(t *testing.T) {
	svc := newTestReservations(nil)

	booking, err := svc.Create(CreateBookingInput{
		BoardingPoint: 1,
		DroppingPoint: 5,
		Seats:         []string{"3U", "4U"},
		TotalAmount:   1500,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	refund, err := svc.Cancel(booking.BookingID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if refund != 1500 {
		t.Fatalf("refund = %v, want full total 1500", refund)
	}

	got, err := svc.Get(booking.BookingID)
	if err != nil {
		t.Fatalf("get after cancel: %v", err)
	}
	if got.Status != models.StatusCancelled || got.CancelledAt == nil {
		t.Fatalf("cancelled booking state: status=%s cancelled_at=%v", got.Status, got.CancelledAt)
	}

	// Seats are free again: the same labels can be rebooked.
	if _, err := svc.Create(CreateBookingInput{BoardingPoint: 1, DroppingPoint: 5, Seats: []string{"3U", "4U"}}); err != nil {
		t.Fatalf("rebooking released seats failed: %v", err)
	}
}

func TestCancelIsNotIdempotent(t *testing.T) {
	svc := newTestReservations(nil)

	booking, _ := svc.Create(CreateBookingInput{BoardingPoint: 1, DroppingPoint: 5, Seats: []string{"6U"}})
	if _, err := svc.Cancel(booking.BookingID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	_, err := svc.Cancel(booking.BookingID)
	if !domain.IsAlreadyCancelled(err) {
		t.Fatalf("second cancel: got %v, want AlreadyCancelledError", err)
	}
}

func TestCancelUnknownBooking(t *testing.T) {
	svc := newTestReservations(nil)
	_, err := svc.Cancel("BK00000000000000")
	if !domain.IsNotFound(err) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	var nf domain.NotFoundError
	if !errors.As(err, &nf) || nf.Error() != "Booking not found" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestListResolvesStationsAndFirstPassenger(t *testing.T) {
	svc := newTestReservations(nil)

	svc.Create(CreateBookingInput{
		BoardingPoint: 1,
		DroppingPoint: 5,
		Seats:         []string{"7L"},
		Passengers:    []models.Passenger{{Name: "Ravi", Phone: "111"}, {Name: "Meena", Phone: "222"}},
	})
	svc.Create(CreateBookingInput{
		BoardingPoint: 2,
		DroppingPoint: 99, // unknown station id is tolerated at creation
		Seats:         []string{"8L"},
	})

	list := svc.List()
	if len(list) != 2 {
		t.Fatalf("list length = %d", len(list))
	}
	if list[0].Boarding != "Ahmedabad" || list[0].Dropping != "Mumbai" {
		t.Fatalf("station names not resolved: %+v", list[0])
	}
	if list[0].PassengerName != "Ravi" || list[0].PassengerContact != "111" {
		t.Fatalf("first passenger not extracted: %+v", list[0])
	}
	if list[1].Dropping != "N/A" || list[1].PassengerName != "N/A" {
		t.Fatalf("N/A fallbacks missing: %+v", list[1])
	}
}

func TestListKeepsCancelledBookings(t *testing.T) {
	svc := newTestReservations(nil)

	booking, _ := svc.Create(CreateBookingInput{BoardingPoint: 1, DroppingPoint: 5, Seats: []string{"9L"}})
	svc.Cancel(booking.BookingID)

	list := svc.List()
	if len(list) != 1 {
		t.Fatalf("cancelled booking dropped from list")
	}
	if list[0].Status != models.StatusCancelled {
		t.Fatalf("listed status = %s", list[0].Status)
	}
}

func TestSeatMapFreshCounts(t *testing.T) {
	svc := newTestReservations(nil)

	m := svc.SeatMap()
	if m.TotalSeats != 32 {
		t.Fatalf("total seats = %d", m.TotalSeats)
	}
	if m.AvailableCount != 27 {
		t.Fatalf("available count = %d, want 27 (32 - 5 seeded)", m.AvailableCount)
	}
}

func TestSeatMapCountNeverNegative(t *testing.T) {
	// With the full berth map booked on top of the phantom seeds, the
	// booked set outgrows the map (35 > 32); the count clamps at zero.
	seed := append(models.SeatUniverse(), "18L", "25L", "29L")
	svc := NewReservationService(
		repositories.NewSeatInventory(seed),
		repositories.NewBookingLedger(),
		repositories.NewCatalog(),
		nil,
	)

	m := svc.SeatMap()
	if len(m.Available) != 0 {
		t.Fatalf("full coach still lists available seats: %v", m.Available)
	}
	if m.AvailableCount != 0 {
		t.Fatalf("available count = %d, want 0", m.AvailableCount)
	}
}

func TestConcurrentCreateSameSeat(t *testing.T) {
	svc := newTestReservations(nil)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(CreateBookingInput{BoardingPoint: 1, DroppingPoint: 5, Seats: []string{"10L"}})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else if !domain.IsSeatConflict(err) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("%d concurrent creates won seat 10L, want exactly 1", successes)
	}
}
