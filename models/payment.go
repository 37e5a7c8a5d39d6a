package models

import "time"

// Payment records a completed card payment for a booking. Amount is in
// minor currency units.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"booking_id" json:"bookingId"`
	Email         string    `bson:"email" json:"email"`
	Amount        int64     `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	TransactionID string    `bson:"transaction_id" json:"transactionId"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// PaymentIntentRequest asks the payment processor for a client secret
// covering the given booking's fee.
type PaymentIntentRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}
