package domain

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// SeatConflictError reports the first requested seat that is already in
// the booked set. Its message is part of the API contract.
type SeatConflictError struct {
	Seat string
}

func (e SeatConflictError) Error() string {
	return fmt.Sprintf("Seat %s is already booked", e.Seat)
}

// AlreadyCancelledError rejects a second cancellation of the same
// booking; cancelled is a terminal state.
type AlreadyCancelledError struct {
	BookingID string
}

func (e AlreadyCancelledError) Error() string {
	return "Booking already cancelled"
}

// InvalidStationError reports a station id that resolves to nothing in
// the fixture catalog.
type InvalidStationError struct {
	StationID int
}

func (e InvalidStationError) Error() string {
	return "Invalid station"
}

// ScoringUnavailableError wraps a scorer failure or timeout. Callers are
// expected to substitute the fallback estimate, never to surface an
// undefined percentage.
type ScoringUnavailableError struct {
	Err error
}

func (e ScoringUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scoring unavailable: %v", e.Err)
	}
	return "scoring unavailable"
}

func (e ScoringUnavailableError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsSeatConflict(err error) bool {
	var target SeatConflictError
	return errors.As(err, &target)
}

func IsAlreadyCancelled(err error) bool {
	var target AlreadyCancelledError
	return errors.As(err, &target)
}

func IsInvalidStation(err error) bool {
	var target InvalidStationError
	return errors.As(err, &target)
}

func IsScoringUnavailable(err error) bool {
	var target ScoringUnavailableError
	return errors.As(err, &target)
}
