package treatmentRepo

import "docportal/models"

// TreatmentRepository defines read access to the treatment catalogue.
// The catalogue is managed externally; the engine never writes to it.
type TreatmentRepository interface {
	// ListTreatments retrieves all treatment options in catalogue order.
	ListTreatments() ([]models.TreatmentOption, error)
	// ListSpecialties retrieves only the treatment names.
	ListSpecialties() ([]string, error)
	// GetByName retrieves a single treatment option, or nil when absent.
	GetByName(name string) (*models.TreatmentOption, error)
}
