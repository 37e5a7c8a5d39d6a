package handlers

import (
	"errors"
	"net/http"

	"docportal/models"
	"docportal/services/booking"
	"docportal/services/payment"
	"docportal/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves payment-intent creation and payment recording.
type PaymentHandler struct {
	Service  payment.PaymentService
	Bookings booking.BookingService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, bookings booking.BookingService) *PaymentHandler {
	return &PaymentHandler{Service: svc, Bookings: bookings}
}

// ownsBooking verifies the authenticated email made the booking. Writes the
// refusal response itself and reports whether the caller may proceed.
func (ph *PaymentHandler) ownsBooking(c *gin.Context, bookingID string) bool {
	b, err := ph.Bookings.GetBooking(bookingID)
	if err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return false
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return false
	}
	if b.RequesterEmail != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return false
	}
	return true
}

// CreateIntentHandler asks the payment processor for a client secret covering
// the booking's fee.
func (ph *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	var input models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if !ph.ownsBooking(c, input.BookingID) {
		return
	}

	clientSecret, amount, err := ph.Service.CreateIntent(input.BookingID)
	if err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Payment intent creation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret, "amount": amount})
}

type recordPaymentInput struct {
	BookingID     string `json:"bookingId" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
	Currency      string `json:"currency"`
}

// RecordPaymentHandler stores a completed payment and marks the booking paid.
func (ph *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var input recordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if !ph.ownsBooking(c, input.BookingID) {
		return
	}

	recorded, err := ph.Service.RecordPayment(models.Payment{
		BookingID:     input.BookingID,
		Email:         c.GetString("email"),
		Amount:        input.Amount,
		Currency:      input.Currency,
		TransactionID: input.TransactionID,
	})
	if err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, recorded)
}
