package booking

import (
	"errors"

	bookingRepo "docportal/database/repository/booking"
	"docportal/models"
	"docportal/services/availability"
	"docportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService exposes booking admission and lookups.
type BookingService interface {
	// CreateBooking runs the duplicate guard and persists the booking on acceptance.
	CreateBooking(request models.Booking) (AdmitResult, error)
	// GetBooking retrieves a booking by ID; returns NotFoundError when absent.
	GetBooking(id string) (*models.Booking, error)
	// ListBookingsByEmail retrieves all bookings made by the given email.
	ListBookingsByEmail(email string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService on the booking store.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Availability availability.AvailabilityService
}

// CreateBooking checks for an existing booking matching the request's
// (date, treatment, requester email) triple and persists the request when
// none exists. The check and the write are separate store calls; the store's
// unique index catches the two-concurrent-admits race and is reported as the
// same duplicate rejection.
func (s *DefaultBookingService) CreateBooking(request models.Booking) (AdmitResult, error) {
	existing, err := s.Repo.Find(models.BookingFilter{
		Date:           request.Date,
		TreatmentName:  request.TreatmentName,
		RequesterEmail: request.RequesterEmail,
	})
	if err != nil {
		return AdmitResult{}, &StoreUnavailableError{Err: err}
	}

	result := Admit(request, existing)
	if !result.Accepted {
		return result, nil
	}

	persisted := *result.Booking
	persisted.ID = uuid.New().String()
	if err := s.Repo.Insert(&persisted); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicate) {
			return AdmitResult{
				Accepted: false,
				Message:  (&DuplicateBookingError{Date: request.Date}).Error(),
			}, nil
		}
		return AdmitResult{}, &StoreUnavailableError{Err: err}
	}

	if s.Availability != nil {
		s.Availability.InvalidateDate(persisted.Date)
	}

	utils.GetLogger().Info("booking admitted",
		zap.String("bookingID", persisted.ID),
		zap.String("treatment", persisted.TreatmentName),
		zap.String("date", persisted.Date))

	result.Booking = &persisted
	return result, nil
}

// GetBooking retrieves a booking by ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &StoreUnavailableError{Err: err}
	}
	if b == nil {
		return nil, &NotFoundError{ID: id}
	}
	return b, nil
}

// ListBookingsByEmail retrieves all bookings made by the given email.
func (s *DefaultBookingService) ListBookingsByEmail(email string) ([]models.Booking, error) {
	bookings, err := s.Repo.Find(models.BookingFilter{RequesterEmail: email})
	if err != nil {
		return nil, &StoreUnavailableError{Err: err}
	}
	return bookings, nil
}
