package models

// TreatmentOption represents a treatment offered by the clinic together with
// the full set of appointment slots it can be booked into on any given day.
// The slot list is fixed catalogue data; availability for a concrete date is
// computed by subtracting already-booked slots.
type TreatmentOption struct {
	Name  string   `bson:"name" json:"name"`   // unique treatment name
	Slots []string `bson:"slots" json:"slots"` // offered slot labels, in display order
	Price int64    `bson:"price" json:"price"` // fee in minor currency units
}
