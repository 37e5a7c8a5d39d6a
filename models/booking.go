package models

import "time"

// Booking represents a confirmed appointment booking. Date is the
// caller-supplied calendar date string, used purely as an opaque equality key.
// Paid and TransactionID are set only after payment confirmation; a booking
// is otherwise immutable once admitted.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	TreatmentName  string    `bson:"treatment_name" json:"treatmentName"`
	Date           string    `bson:"date" json:"date"`
	RequesterEmail string    `bson:"requester_email" json:"requesterEmail"`
	PatientName    string    `bson:"patient_name,omitempty" json:"patientName,omitempty"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	SelectedSlot   string    `bson:"selected_slot" json:"selectedSlot"`
	Price          int64     `bson:"price" json:"price"`
	Paid           bool      `bson:"paid" json:"paid"`
	TransactionID  string    `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// BookingFilter narrows Booking Store queries. Zero-valued fields are ignored.
type BookingFilter struct {
	Date           string
	TreatmentName  string
	RequesterEmail string
}
