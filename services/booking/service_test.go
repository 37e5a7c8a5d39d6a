package booking_test

import (
	"errors"
	"testing"

	bookingRepo "docportal/database/repository/booking"
	"docportal/models"
	"docportal/services/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBookingRepo is a mock implementation of the BookingRepository interface.
type MockBookingRepo struct {
	testifymock.Mock
}

func (m *MockBookingRepo) Find(filter models.BookingFilter) ([]models.Booking, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepo) Insert(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBookingRepo) UpdatePayment(id string, paid bool, transactionID string) error {
	args := m.Called(id, paid, transactionID)
	return args.Error(0)
}

// MockAvailability records cache invalidations.
type MockAvailability struct {
	testifymock.Mock
}

func (m *MockAvailability) AvailableTreatments(date string) ([]models.TreatmentOption, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TreatmentOption), args.Error(1)
}

func (m *MockAvailability) Specialties() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAvailability) InvalidateDate(date string) {
	m.Called(date)
}

func request() models.Booking {
	return models.Booking{
		TreatmentName:  "Cleaning",
		Date:           "2024-01-01",
		RequesterEmail: "a@x.com",
		SelectedSlot:   "9am",
	}
}

func tripleFilter() models.BookingFilter {
	return models.BookingFilter{
		Date:           "2024-01-01",
		TreatmentName:  "Cleaning",
		RequesterEmail: "a@x.com",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("accepts and persists with an assigned id", func(t *testing.T) {
		repo := new(MockBookingRepo)
		avail := new(MockAvailability)
		svc := &booking.DefaultBookingService{Repo: repo, Availability: avail}

		repo.On("Find", tripleFilter()).Return([]models.Booking{}, nil)
		repo.On("Insert", testifymock.AnythingOfType("*models.Booking")).Return(nil)
		avail.On("InvalidateDate", "2024-01-01").Return()

		result, err := svc.CreateBooking(request())
		require.NoError(t, err)
		assert.True(t, result.Accepted)
		require.NotNil(t, result.Booking)

		_, parseErr := uuid.Parse(result.Booking.ID)
		assert.NoError(t, parseErr, "persisted booking must carry a fresh UUID")
		assert.Equal(t, "Cleaning", result.Booking.TreatmentName)

		repo.AssertExpectations(t)
		avail.AssertExpectations(t)
	})

	t.Run("rejects a duplicate triple without writing", func(t *testing.T) {
		repo := new(MockBookingRepo)
		svc := &booking.DefaultBookingService{Repo: repo}

		repo.On("Find", tripleFilter()).Return([]models.Booking{
			{TreatmentName: "Cleaning", Date: "2024-01-01", RequesterEmail: "a@x.com", SelectedSlot: "9am"},
		}, nil)

		req := request()
		req.SelectedSlot = "11am" // slot differs; the guard still applies
		result, err := svc.CreateBooking(req)
		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Contains(t, result.Message, "2024-01-01")

		repo.AssertNotCalled(t, "Insert", testifymock.Anything)
	})

	t.Run("maps a unique-index conflict to a duplicate rejection", func(t *testing.T) {
		repo := new(MockBookingRepo)
		svc := &booking.DefaultBookingService{Repo: repo}

		repo.On("Find", tripleFilter()).Return([]models.Booking{}, nil)
		repo.On("Insert", testifymock.AnythingOfType("*models.Booking")).Return(bookingRepo.ErrDuplicate)

		result, err := svc.CreateBooking(request())
		require.NoError(t, err)
		assert.False(t, result.Accepted)
		assert.Contains(t, result.Message, "2024-01-01")
	})

	t.Run("surfaces a store failure as StoreUnavailable", func(t *testing.T) {
		repo := new(MockBookingRepo)
		svc := &booking.DefaultBookingService{Repo: repo}

		repo.On("Find", tripleFilter()).Return(nil, errors.New("connection reset"))

		_, err := svc.CreateBooking(request())
		var unavailable *booking.StoreUnavailableError
		require.ErrorAs(t, err, &unavailable)
	})
}

func TestGetBooking(t *testing.T) {
	t.Run("returns the booking when present", func(t *testing.T) {
		repo := new(MockBookingRepo)
		svc := &booking.DefaultBookingService{Repo: repo}

		stored := request()
		stored.ID = uuid.New().String()
		repo.On("GetByID", stored.ID).Return(&stored, nil)

		got, err := svc.GetBooking(stored.ID)
		require.NoError(t, err)
		assert.Equal(t, &stored, got)
	})

	t.Run("returns NotFound when absent", func(t *testing.T) {
		repo := new(MockBookingRepo)
		svc := &booking.DefaultBookingService{Repo: repo}

		repo.On("GetByID", "missing").Return(nil, nil)

		_, err := svc.GetBooking("missing")
		var notFound *booking.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.ID)
	})
}

func TestListBookingsByEmail(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := &booking.DefaultBookingService{Repo: repo}

	stored := []models.Booking{request()}
	repo.On("Find", models.BookingFilter{RequesterEmail: "a@x.com"}).Return(stored, nil)

	got, err := svc.ListBookingsByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}
