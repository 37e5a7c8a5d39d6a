package payment

import (
	"errors"
	"fmt"

	bookingRepo "docportal/database/repository/booking"
	paymentRepo "docportal/database/repository/payment"
	"docportal/models"
	"docportal/services/booking"
	"docportal/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates payment intents for bookings and records completed
// payments. The card processor itself is an opaque collaborator; nothing here
// retries or interprets processor-side failures.
type PaymentService interface {
	// CreateIntent asks the processor for a client secret covering the booking's fee.
	CreateIntent(bookingID string) (clientSecret string, amount int64, err error)
	// RecordPayment stores the payment and marks the booking paid. Idempotent
	// per booking: a retry returns the already-stored payment.
	RecordPayment(p models.Payment) (*models.Payment, error)
}

// DefaultPaymentService implements PaymentService against Stripe.
type DefaultPaymentService struct {
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Currency string
}

// CreateIntent asks Stripe for a PaymentIntent covering the booking's fee and
// returns its client secret.
func (s *DefaultPaymentService) CreateIntent(bookingID string) (string, int64, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return "", 0, &booking.StoreUnavailableError{Err: err}
	}
	if b == nil {
		return "", 0, &booking.NotFoundError{ID: bookingID}
	}
	if b.Price <= 0 {
		return "", 0, fmt.Errorf("booking %s has no payable fee", bookingID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(b.Price),
		Currency:           stripe.String(s.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, b.Price, nil
}

// RecordPayment stores the payment document and sets paid and the transaction
// reference on the booking. The payment insert and the booking update are
// separate store calls; a retry after a failure between them finds the stored
// payment, repairs the booking and returns the stored record instead of
// minting a second document.
func (s *DefaultPaymentService) RecordPayment(p models.Payment) (*models.Payment, error) {
	b, err := s.Bookings.GetByID(p.BookingID)
	if err != nil {
		return nil, &booking.StoreUnavailableError{Err: err}
	}
	if b == nil {
		return nil, &booking.NotFoundError{ID: p.BookingID}
	}

	stored, err := s.Payments.GetByBookingID(p.BookingID)
	if err != nil {
		return nil, &booking.StoreUnavailableError{Err: err}
	}
	if stored != nil {
		if err := s.Bookings.UpdatePayment(stored.BookingID, true, stored.TransactionID); err != nil {
			return nil, &booking.StoreUnavailableError{Err: err}
		}
		return stored, nil
	}

	p.ID = uuid.New().String()
	if err := s.Payments.Insert(&p); err != nil {
		if errors.Is(err, paymentRepo.ErrDuplicate) {
			// Lost a race with a concurrent recording; its document wins.
			if stored, getErr := s.Payments.GetByBookingID(p.BookingID); getErr == nil && stored != nil {
				return stored, nil
			}
		}
		return nil, &booking.StoreUnavailableError{Err: err}
	}

	if err := s.Bookings.UpdatePayment(p.BookingID, true, p.TransactionID); err != nil {
		return nil, &booking.StoreUnavailableError{Err: err}
	}

	utils.GetLogger().Info("payment recorded",
		zap.String("bookingID", p.BookingID),
		zap.String("transactionID", p.TransactionID))

	return &p, nil
}
