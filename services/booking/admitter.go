package booking

import (
	"fmt"

	"docportal/models"
)

// AdmitResult is the outcome of an admission decision.
type AdmitResult struct {
	Accepted bool            `json:"accepted"`
	Booking  *models.Booking `json:"booking,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// Admit decides whether a booking request may proceed. The existing slice must
// hold the stored bookings that share the request's (date, treatment,
// requester email) triple; any such booking means the user already holds an
// appointment for that treatment on that day and the request is rejected,
// even when the selected slot differs. The accepted booking is returned
// unmodified; identifier assignment and persistence happen at the store.
func Admit(request models.Booking, existing []models.Booking) AdmitResult {
	if len(existing) > 0 {
		return AdmitResult{
			Accepted: false,
			Message:  fmt.Sprintf("You already have a booking on %s", request.Date),
		}
	}
	return AdmitResult{
		Accepted: true,
		Booking:  &request,
	}
}
