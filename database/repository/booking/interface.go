package bookingRepo

import (
	"errors"

	"docportal/models"
)

// ErrDuplicate is returned by Insert when the store's unique constraint on
// (date, treatment_name, requester_email) rejects the write. It narrows the
// race window between the admitter's duplicate check and the insert.
var ErrDuplicate = errors.New("booking already exists for this date, treatment and email")

// BookingRepository defines access to stored bookings.
type BookingRepository interface {
	// Find retrieves bookings matching the filter; zero-valued filter fields are ignored.
	Find(filter models.BookingFilter) ([]models.Booking, error)
	// GetByID retrieves a booking by its unique ID, or nil when absent.
	GetByID(id string) (*models.Booking, error)
	// Insert persists a new booking. Returns ErrDuplicate on a unique-index conflict.
	Insert(b *models.Booking) error
	// UpdatePayment marks a booking's payment outcome.
	UpdatePayment(id string, paid bool, transactionID string) error
}
