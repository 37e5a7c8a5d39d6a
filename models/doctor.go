package models

import "time"

// Doctor represents a doctor record managed by administrators.
// Specialty references a TreatmentOption name from the catalogue.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Specialty string    `bson:"specialty" json:"specialty"`
	ImageURL  string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
