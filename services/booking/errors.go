package booking

import "fmt"

// DuplicateBookingError signals that the requester already holds a booking
// for the same treatment on the same date. Recoverable and user-facing.
type DuplicateBookingError struct {
	Date string
}

func (e *DuplicateBookingError) Error() string {
	return fmt.Sprintf("You already have a booking on %s", e.Date)
}

// NotFoundError signals that a referenced booking does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// StoreUnavailableError wraps a booking-store I/O failure. Callers may retry;
// the service itself never does.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("booking store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
