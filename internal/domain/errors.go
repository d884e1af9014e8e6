package domain

import (
	"errors"
	"strings"
)

var (
	ErrListingNotFound  = errors.New("hostel not found")
	ErrBedNotFound      = errors.New("bed not found")
	ErrBedAlreadyBooked = errors.New("bed is already booked")
	ErrBookingNotFound  = errors.New("booking not found")
)

// ValidationError carries every violated rule at once so the caller can
// present the complete list instead of fixing one field per attempt.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}
