package doctor_test

import (
	"testing"

	"docportal/models"
	"docportal/services/doctor"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDoctorRepo is a mock implementation of the DoctorRepository interface.
type MockDoctorRepo struct {
	testifymock.Mock
}

func (m *MockDoctorRepo) GetAll() ([]models.Doctor, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepo) Insert(d *models.Doctor) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockDoctorRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockTreatmentRepo is a mock implementation of the TreatmentRepository interface.
type MockTreatmentRepo struct {
	testifymock.Mock
}

func (m *MockTreatmentRepo) ListTreatments() ([]models.TreatmentOption, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TreatmentOption), args.Error(1)
}

func (m *MockTreatmentRepo) ListSpecialties() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTreatmentRepo) GetByName(name string) (*models.TreatmentOption, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TreatmentOption), args.Error(1)
}

func TestAddDoctor(t *testing.T) {
	t.Run("rejects an unknown specialty without writing", func(t *testing.T) {
		repo := new(MockDoctorRepo)
		treatments := new(MockTreatmentRepo)
		svc := &doctor.DefaultDoctorService{Repo: repo, TreatmentRepo: treatments}

		treatments.On("GetByName", "Botany").Return(nil, nil)

		_, err := svc.AddDoctor(models.Doctor{
			Name:      "Dr. Green",
			Email:     "green@x.com",
			Specialty: "Botany",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown specialty")
		repo.AssertNotCalled(t, "Insert", testifymock.Anything)
	})

	t.Run("requires name, email and specialty", func(t *testing.T) {
		svc := &doctor.DefaultDoctorService{
			Repo:          new(MockDoctorRepo),
			TreatmentRepo: new(MockTreatmentRepo),
		}

		_, err := svc.AddDoctor(models.Doctor{Name: "Dr. Green"})
		assert.Error(t, err)
	})

	t.Run("assigns an id and persists a valid doctor", func(t *testing.T) {
		repo := new(MockDoctorRepo)
		treatments := new(MockTreatmentRepo)
		svc := &doctor.DefaultDoctorService{Repo: repo, TreatmentRepo: treatments}

		treatments.On("GetByName", "Cleaning").Return(&models.TreatmentOption{Name: "Cleaning"}, nil)
		repo.On("Insert", testifymock.AnythingOfType("*models.Doctor")).Return(nil)

		created, err := svc.AddDoctor(models.Doctor{
			Name:      "Dr. Smith",
			Email:     "smith@x.com",
			Specialty: "Cleaning",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		_, parseErr := uuid.Parse(created.ID)
		assert.NoError(t, parseErr, "persisted doctor must carry a fresh UUID")
		repo.AssertExpectations(t)
	})
}

func TestRemoveDoctor(t *testing.T) {
	repo := new(MockDoctorRepo)
	svc := &doctor.DefaultDoctorService{Repo: repo}

	repo.On("Delete", "d-1").Return(nil)

	require.NoError(t, svc.RemoveDoctor("d-1"))
	repo.AssertExpectations(t)
}
