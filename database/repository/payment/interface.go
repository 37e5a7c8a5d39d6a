package paymentRepo

import (
	"errors"

	"docportal/models"
)

// ErrDuplicate is returned by Insert when the store's unique constraint on
// booking_id rejects the write. A booking carries at most one payment record.
var ErrDuplicate = errors.New("payment already recorded for this booking")

// PaymentRepository defines methods for payment record access.
type PaymentRepository interface {
	// Insert persists a completed payment record. Returns ErrDuplicate on a
	// unique-index conflict.
	Insert(p *models.Payment) error
	// GetByBookingID retrieves the payment for a booking, or nil when absent.
	GetByBookingID(bookingID string) (*models.Payment, error)
}
