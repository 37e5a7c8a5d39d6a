package doctor

import (
	"fmt"

	doctorRepo "docportal/database/repository/doctor"
	treatmentRepo "docportal/database/repository/treatment"
	"docportal/models"

	"github.com/google/uuid"
)

// DoctorService manages doctor records. All mutations are admin-only at the
// route layer.
type DoctorService interface {
	// AddDoctor persists a new doctor record and returns it with its assigned ID.
	AddDoctor(d models.Doctor) (*models.Doctor, error)
	// ListDoctors retrieves all doctor records.
	ListDoctors() ([]models.Doctor, error)
	// RemoveDoctor deletes a doctor record by ID.
	RemoveDoctor(id string) error
}

// DefaultDoctorService implements DoctorService on the doctor store.
type DefaultDoctorService struct {
	Repo          doctorRepo.DoctorRepository
	TreatmentRepo treatmentRepo.TreatmentRepository
}

// AddDoctor validates the specialty against the treatment catalogue, assigns
// an ID and persists the record.
func (s *DefaultDoctorService) AddDoctor(d models.Doctor) (*models.Doctor, error) {
	if d.Name == "" || d.Email == "" || d.Specialty == "" {
		return nil, fmt.Errorf("doctor name, email and specialty are required")
	}

	t, err := s.TreatmentRepo.GetByName(d.Specialty)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("unknown specialty: %s", d.Specialty)
	}

	d.ID = uuid.New().String()
	if err := s.Repo.Insert(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDoctors retrieves all doctor records.
func (s *DefaultDoctorService) ListDoctors() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

// RemoveDoctor deletes a doctor record by ID.
func (s *DefaultDoctorService) RemoveDoctor(id string) error {
	return s.Repo.Delete(id)
}
