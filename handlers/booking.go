package handlers

import (
	"errors"
	"net/http"

	"docportal/models"
	"docportal/services/booking"
	"docportal/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves booking creation and lookups.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

type createBookingInput struct {
	TreatmentName  string `json:"treatmentName" binding:"required"`
	Date           string `json:"date" binding:"required"`
	SelectedSlot   string `json:"selectedSlot" binding:"required"`
	RequesterEmail string `json:"requesterEmail" binding:"required"`
	PatientName    string `json:"patientName"`
	Phone          string `json:"phone"`
	Price          int64  `json:"price"`
}

// CreateBookingHandler admits a booking request. A duplicate booking for the
// same treatment and date is surfaced as {accepted:false, message}.
func (bh *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	// The booking is always made on behalf of the authenticated identity.
	if input.RequesterEmail != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	result, err := bh.Service.CreateBooking(models.Booking{
		TreatmentName:  input.TreatmentName,
		Date:           input.Date,
		SelectedSlot:   input.SelectedSlot,
		RequesterEmail: input.RequesterEmail,
		PatientName:    input.PatientName,
		Phone:          input.Phone,
		Price:          input.Price,
	})
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	if !result.Accepted {
		c.JSON(http.StatusConflict, gin.H{"accepted": false, "message": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accepted": true, "booking": result.Booking})
}

// GetBookingHandler returns a single booking, for the payment page.
func (bh *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")

	b, err := bh.Service.GetBooking(id)
	if err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}

	if b.RequesterEmail != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler returns the authenticated user's bookings. The email
// query must match the token's email claim.
func (bh *BookingHandler) ListBookingsHandler(c *gin.Context) {
	email := c.Query("email")
	if email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	bookings, err := bh.Service.ListBookingsByEmail(email)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}
