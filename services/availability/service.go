package availability

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "docportal/database/repository/booking"
	treatmentRepo "docportal/database/repository/treatment"
	"docportal/models"
	"docportal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheTTL = 1 * time.Minute

// AvailabilityService exposes per-date slot availability.
type AvailabilityService interface {
	// AvailableTreatments returns the catalogue with booked slots removed for the given date.
	AvailableTreatments(date string) ([]models.TreatmentOption, error)
	// Specialties returns the treatment names only.
	Specialties() ([]string, error)
	// InvalidateDate drops the cached availability for a date after a booking lands on it.
	InvalidateDate(date string)
}

// DefaultAvailabilityService reads the catalogue and booking stores and
// caches computed availability per date.
type DefaultAvailabilityService struct {
	TreatmentRepo treatmentRepo.TreatmentRepository
	BookingRepo   bookingRepo.BookingRepository
	Cache         *redis.Client
}

func cacheKey(date string) string {
	return "availability:" + date
}

// AvailableTreatments returns the catalogue with booked slots removed for the given date.
func (s *DefaultAvailabilityService) AvailableTreatments(date string) ([]models.TreatmentOption, error) {
	logger := utils.GetLogger()
	ctx := context.Background()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, cacheKey(date)).Result()
		if err == nil {
			var treatments []models.TreatmentOption
			if err := json.Unmarshal([]byte(cached), &treatments); err == nil {
				return treatments, nil
			}
		} else if err != redis.Nil {
			logger.Warn("availability cache read failed, falling back to store",
				zap.String("date", date), zap.Error(err))
		}
	}

	catalog, err := s.TreatmentRepo.ListTreatments()
	if err != nil {
		return nil, &StoreUnavailableError{Err: err}
	}

	booked, err := s.BookingRepo.Find(models.BookingFilter{Date: date})
	if err != nil {
		return nil, &StoreUnavailableError{Err: err}
	}

	treatments := ComputeAvailability(date, catalog, booked)

	if s.Cache != nil {
		if data, err := json.Marshal(treatments); err == nil {
			if err := s.Cache.Set(ctx, cacheKey(date), data, cacheTTL).Err(); err != nil {
				logger.Warn("availability cache write failed", zap.String("date", date), zap.Error(err))
			}
		}
	}

	return treatments, nil
}

// Specialties returns the treatment names only.
func (s *DefaultAvailabilityService) Specialties() ([]string, error) {
	names, err := s.TreatmentRepo.ListSpecialties()
	if err != nil {
		return nil, &StoreUnavailableError{Err: err}
	}
	return names, nil
}

// InvalidateDate drops the cached availability for a date.
func (s *DefaultAvailabilityService) InvalidateDate(date string) {
	if s.Cache == nil {
		return
	}
	ctx := context.Background()
	if err := s.Cache.Del(ctx, cacheKey(date)).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("date", date), zap.Error(err))
	}
}
