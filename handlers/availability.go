package handlers

import (
	"net/http"

	"docportal/services/availability"
	"docportal/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves per-date treatment availability.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetTreatmentsHandler returns the treatment catalogue with booked slots
// removed for the requested date.
func (ah *AvailabilityHandler) GetTreatmentsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	treatments, err := ah.Service.AvailableTreatments(date)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, treatments)
}

// GetSpecialtiesHandler returns the treatment names only, for the add-doctor form.
func (ah *AvailabilityHandler) GetSpecialtiesHandler(c *gin.Context) {
	names, err := ah.Service.Specialties()
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, names)
}
