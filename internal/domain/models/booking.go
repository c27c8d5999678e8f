package models

import "time"

// Status is a booking lifecycle state. The only transition is
// confirmed -> cancelled.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Passenger carries caller-supplied contact info. Nothing beyond
// presence is validated.
type Passenger struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Booking is a ledger entry. Boarding/dropping station ids and meal ids
// are opaque here: they are not checked against the catalog at creation
// time and are resolved lazily (with N/A fallback) when listing.
// TotalPrice is the caller-supplied amount, trusted as-is.
type Booking struct {
	BookingID     string      `json:"booking_id"`
	BoardingPoint int         `json:"boarding_point"`
	DroppingPoint int         `json:"dropping_point"`
	Seats         []string    `json:"seats"`
	Meals         []int       `json:"meals"`
	Passengers    []Passenger `json:"passengers"`
	TotalPrice    float64     `json:"total_price"`
	BookingTime   time.Time   `json:"booking_time"`
	Status        Status      `json:"status"`
	CancelledAt   *time.Time  `json:"cancelled_at,omitempty"`
}

// BookingSummary is the listing shape: station ids resolved to names and
// the first passenger's contact details pulled up.
type BookingSummary struct {
	BookingID        string    `json:"booking_id"`
	Boarding         string    `json:"boarding"`
	Dropping         string    `json:"dropping"`
	Seats            []string  `json:"seats"`
	PassengerName    string    `json:"passenger_name"`
	PassengerContact string    `json:"passenger_contact"`
	TotalAmount      float64   `json:"total_amount"`
	BookingTime      time.Time `json:"booking_time"`
	Status           Status    `json:"status"`
}
