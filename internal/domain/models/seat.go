package models

import (
	"strconv"
	"strings"
)

const (
	// BerthCount is the size of the canonical seat map: 16 upper and 16
	// lower berths, labelled 1U..16U and 1L..16L.
	BerthCount = 32

	// RouteCapacity is the total-seat constant used by the route
	// availability endpoint. It intentionally differs from BerthCount;
	// the two values come from different parts of the product and are
	// kept separate on purpose.
	RouteCapacity = 40

	berthsPerDeck = 16
)

// SeedBookedSeats marks the coach's starting condition: phantom
// reservations with no corresponding booking record. Three of the labels
// fall outside the canonical berth map; they still occupy the booked set
// (and count against both capacity constants) but never show up in the
// seat-map listing.
var SeedBookedSeats = []string{"5U", "12U", "18L", "25L", "29L"}

// SeatUniverse returns the 32 canonical labels in generation order:
// all upper berths first, then all lower berths.
func SeatUniverse() []string {
	labels := make([]string, 0, BerthCount)
	for i := 1; i <= berthsPerDeck; i++ {
		labels = append(labels, strconv.Itoa(i)+"U")
	}
	for i := 1; i <= berthsPerDeck; i++ {
		labels = append(labels, strconv.Itoa(i)+"L")
	}
	return labels
}

// IsUpperBerth reports whether a label names an upper berth. Any label
// not ending in U is treated as lower, matching the estimator's feature
// encoding.
func IsUpperBerth(label string) bool {
	return strings.HasSuffix(label, "U")
}

