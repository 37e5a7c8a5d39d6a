package payment_test

import (
	"testing"

	paymentRepo "docportal/database/repository/payment"
	"docportal/models"
	"docportal/services/booking"
	"docportal/services/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBookingStore is a mock implementation of the BookingRepository interface.
type MockBookingStore struct {
	testifymock.Mock
}

func (m *MockBookingStore) Find(filter models.BookingFilter) ([]models.Booking, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingStore) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingStore) Insert(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBookingStore) UpdatePayment(id string, paid bool, transactionID string) error {
	args := m.Called(id, paid, transactionID)
	return args.Error(0)
}

// MockPaymentStore is a mock implementation of the PaymentRepository interface.
type MockPaymentStore struct {
	testifymock.Mock
}

func (m *MockPaymentStore) Insert(p *models.Payment) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPaymentStore) GetByBookingID(bookingID string) (*models.Payment, error) {
	args := m.Called(bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func storedBooking() *models.Booking {
	return &models.Booking{
		ID:             "b-1",
		TreatmentName:  "Cleaning",
		Date:           "2024-01-01",
		RequesterEmail: "a@x.com",
		Price:          5000,
	}
}

func TestRecordPayment(t *testing.T) {
	t.Run("stores the payment and marks the booking paid", func(t *testing.T) {
		bookings := new(MockBookingStore)
		payments := new(MockPaymentStore)
		svc := &payment.DefaultPaymentService{Bookings: bookings, Payments: payments, Currency: "usd"}

		bookings.On("GetByID", "b-1").Return(storedBooking(), nil)
		payments.On("GetByBookingID", "b-1").Return(nil, nil)
		payments.On("Insert", testifymock.AnythingOfType("*models.Payment")).Return(nil)
		bookings.On("UpdatePayment", "b-1", true, "tx-1").Return(nil)

		recorded, err := svc.RecordPayment(models.Payment{
			BookingID:     "b-1",
			Email:         "a@x.com",
			Amount:        5000,
			TransactionID: "tx-1",
		})
		require.NoError(t, err)
		require.NotNil(t, recorded)

		_, parseErr := uuid.Parse(recorded.ID)
		assert.NoError(t, parseErr, "stored payment must carry a fresh UUID")
		bookings.AssertExpectations(t)
		payments.AssertExpectations(t)
	})

	t.Run("a retry returns the stored payment without inserting again", func(t *testing.T) {
		bookings := new(MockBookingStore)
		payments := new(MockPaymentStore)
		svc := &payment.DefaultPaymentService{Bookings: bookings, Payments: payments, Currency: "usd"}

		stored := &models.Payment{ID: "p-1", BookingID: "b-1", TransactionID: "tx-1"}
		bookings.On("GetByID", "b-1").Return(storedBooking(), nil)
		payments.On("GetByBookingID", "b-1").Return(stored, nil)
		bookings.On("UpdatePayment", "b-1", true, "tx-1").Return(nil)

		recorded, err := svc.RecordPayment(models.Payment{BookingID: "b-1", TransactionID: "tx-1"})
		require.NoError(t, err)
		assert.Equal(t, stored, recorded)

		payments.AssertNotCalled(t, "Insert", testifymock.Anything)
		bookings.AssertExpectations(t)
	})

	t.Run("a lost insert race falls back to the stored payment", func(t *testing.T) {
		bookings := new(MockBookingStore)
		payments := new(MockPaymentStore)
		svc := &payment.DefaultPaymentService{Bookings: bookings, Payments: payments, Currency: "usd"}

		stored := &models.Payment{ID: "p-1", BookingID: "b-1", TransactionID: "tx-1"}
		bookings.On("GetByID", "b-1").Return(storedBooking(), nil)
		payments.On("GetByBookingID", "b-1").Return(nil, nil).Once()
		payments.On("Insert", testifymock.AnythingOfType("*models.Payment")).Return(paymentRepo.ErrDuplicate)
		payments.On("GetByBookingID", "b-1").Return(stored, nil).Once()

		recorded, err := svc.RecordPayment(models.Payment{BookingID: "b-1", TransactionID: "tx-2"})
		require.NoError(t, err)
		assert.Equal(t, stored, recorded)
	})

	t.Run("unknown booking is NotFound", func(t *testing.T) {
		bookings := new(MockBookingStore)
		payments := new(MockPaymentStore)
		svc := &payment.DefaultPaymentService{Bookings: bookings, Payments: payments, Currency: "usd"}

		bookings.On("GetByID", "missing").Return(nil, nil)

		_, err := svc.RecordPayment(models.Payment{BookingID: "missing", TransactionID: "tx-1"})
		var notFound *booking.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.ID)
	})
}

func TestCreateIntent(t *testing.T) {
	t.Run("unknown booking is NotFound", func(t *testing.T) {
		bookings := new(MockBookingStore)
		svc := &payment.DefaultPaymentService{Bookings: bookings, Payments: new(MockPaymentStore), Currency: "usd"}

		bookings.On("GetByID", "missing").Return(nil, nil)

		_, _, err := svc.CreateIntent("missing")
		var notFound *booking.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("booking without a payable fee is refused", func(t *testing.T) {
		bookings := new(MockBookingStore)
		svc := &payment.DefaultPaymentService{Bookings: bookings, Payments: new(MockPaymentStore), Currency: "usd"}

		free := storedBooking()
		free.Price = 0
		bookings.On("GetByID", "b-1").Return(free, nil)

		_, _, err := svc.CreateIntent("b-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no payable fee")
	})
}
