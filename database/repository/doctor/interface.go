package doctorRepo

import "docportal/models"

// DoctorRepository defines methods for doctor record access.
type DoctorRepository interface {
	// GetAll retrieves all doctor records.
	GetAll() ([]models.Doctor, error)
	// Insert persists a new doctor record.
	Insert(d *models.Doctor) error
	// Delete removes a doctor record by its ID.
	Delete(id string) error
}
