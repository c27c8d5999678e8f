package repositories

import "sleeperbooking/internal/domain/models"

// SeatInventory tracks which seat labels are currently booked. It holds
// plain set state and is not safe for concurrent use on its own: the
// reservation service owns the single lock that guards it together with
// the booking ledger, so check-then-reserve stays atomic.
type SeatInventory struct {
	booked map[string]struct{}
}

// NewSeatInventory seeds the booked set. Seed labels are taken verbatim,
// including ones outside the canonical berth map (phantom reservations
// carry no booking record but still occupy the set).
func NewSeatInventory(seed []string) *SeatInventory {
	inv := &SeatInventory{booked: make(map[string]struct{}, len(seed))}
	for _, label := range seed {
		inv.booked[label] = struct{}{}
	}
	return inv
}

// IsBooked reports membership in the booked set.
func (inv *SeatInventory) IsBooked(label string) bool {
	_, ok := inv.booked[label]
	return ok
}

// Reserve adds labels to the booked set. Callers validate availability
// first; duplicates are absorbed by set semantics.
func (inv *SeatInventory) Reserve(labels []string) {
	for _, label := range labels {
		inv.booked[label] = struct{}{}
	}
}

// Release removes labels from the booked set. Releasing an available
// label is a no-op.
func (inv *SeatInventory) Release(labels []string) {
	for _, label := range labels {
		delete(inv.booked, label)
	}
}

// BookedCount is the size of the booked set, phantom seeds included.
func (inv *SeatInventory) BookedCount() int {
	return len(inv.booked)
}

// Partition buckets the canonical seat universe into available and
// booked labels, preserving generation order (1U..16U then 1L..16L).
// Booked labels outside the universe are not listed.
func (inv *SeatInventory) Partition() (available, booked []string) {
	for _, label := range models.SeatUniverse() {
		if inv.IsBooked(label) {
			booked = append(booked, label)
		} else {
			available = append(available, label)
		}
	}
	return available, booked
}
