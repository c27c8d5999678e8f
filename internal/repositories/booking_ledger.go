package repositories

import "sleeperbooking/internal/domain/models"

// BookingLedger is the append-only record of bookings, in creation
// order. Entries are never removed; cancellation only flips status.
// Like SeatInventory, it relies on the reservation service's lock.
type BookingLedger struct {
	bookings []*models.Booking
}

func NewBookingLedger() *BookingLedger {
	return &BookingLedger{}
}

// Append records a new booking at the end of the ledger.
func (l *BookingLedger) Append(b *models.Booking) {
	l.bookings = append(l.bookings, b)
}

// ByID finds a booking by id. Linear scan; the ledger stays small for a
// single coach.
func (l *BookingLedger) ByID(id string) (*models.Booking, bool) {
	for _, b := range l.bookings {
		if b.BookingID == id {
			return b, true
		}
	}
	return nil, false
}

// Exists reports whether an id is already taken.
func (l *BookingLedger) Exists(id string) bool {
	_, ok := l.ByID(id)
	return ok
}

// All returns the ledger entries in insertion order. The slice is shared;
// callers must not mutate it.
func (l *BookingLedger) All() []*models.Booking {
	return l.bookings
}
