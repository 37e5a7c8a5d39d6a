package handlers

import (
	"net/http"

	"docportal/models"
	"docportal/services/doctor"
	"docportal/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves admin-level doctor record management.
type DoctorHandler struct {
	Service doctor.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// GetDoctorsHandler returns all doctor records.
func (dh *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := dh.Service.ListDoctors()
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

type addDoctorInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty" binding:"required"`
	ImageURL  string `json:"imageUrl"`
}

// AddDoctorHandler creates a doctor record.
func (dh *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	var input addDoctorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := dh.Service.AddDoctor(models.Doctor{
		Name:      input.Name,
		Email:     input.Email,
		Specialty: input.Specialty,
		ImageURL:  input.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteDoctorHandler removes a doctor record by ID.
func (dh *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	if err := dh.Service.RemoveDoctor(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
