package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinicpro-backend/models"
	"clinicpro-backend/store"
	"clinicpro-backend/utils"
)

// AppointmentInput defines the expected JSON structure for creating or
// updating an appointment. The client's display fields are denormalized
// from the referenced record at write time and do not track later edits.
type AppointmentInput struct {
	ClientID          string   `json:"clientId" binding:"required"`
	Date              string   `json:"date" binding:"required"` // yyyy-MM-dd
	Time              string   `json:"time" binding:"required"` // HH:mm
	Services          []string `json:"services" binding:"required,min=1"`
	ProviderID        string   `json:"providerId"`
	ProviderName      string   `json:"providerName"`
	Notes             string   `json:"notes"`
	Status            string   `json:"status" binding:"omitempty,oneof=confirmed pending"`
	RemainingPayments float64  `json:"remainingPayments" binding:"min=0"`
}

type AppointmentController struct {
	db *store.DB
}

func NewAppointmentController(db *store.DB) *AppointmentController {
	return &AppointmentController{db: db}
}

func (ac *AppointmentController) appointmentFromInput(id string, input AppointmentInput) (models.Appointment, bool) {
	client, ok := ac.db.Clients.Get(input.ClientID)
	if !ok {
		return models.Appointment{}, false
	}

	appt := models.Appointment{
		ID:                id,
		ClientID:          client.ID,
		ClientName:        client.Name,
		PhoneNumber:       client.PhoneNumber,
		Email:             client.Email,
		Date:              input.Date,
		Time:              input.Time,
		Services:          input.Services,
		ProviderID:        input.ProviderID,
		ProviderName:      input.ProviderName,
		Notes:             input.Notes,
		Status:            input.Status,
		RemainingPayments: input.RemainingPayments,
	}
	if appt.ProviderID == "" {
		appt.ProviderID = "1"
	}
	if appt.ProviderName == "" {
		appt.ProviderName = models.DefaultProviderName
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentPending
	}
	return appt, true
}

// CreateAppointment books a new appointment
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, ok := ac.appointmentFromInput(uuid.New().String(), input)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		return
	}

	created, err := ac.db.Appointments.Add(appt)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAppointments lists appointments, filtered by ?date= or ?clientId=
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		c.JSON(http.StatusOK, ac.db.Appointments.GetByDate(date))
		return
	}
	if clientID := c.Query("clientId"); clientID != "" {
		c.JSON(http.StatusOK, ac.db.Appointments.GetByClientID(clientID))
		return
	}
	c.JSON(http.StatusOK, ac.db.Appointments.GetAll())
}

// GetAppointment retrieves a specific appointment by ID
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	appt, ok := ac.db.Appointments.Get(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointment replaces an appointment wholesale, re-denormalizing the
// client fields from the currently selected client.
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, ok := ac.appointmentFromInput(c.Param("id"), input)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		return
	}

	found, err := ac.db.Appointments.Update(appt)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, appt)
}

// DeleteAppointment removes an appointment permanently
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	removed, err := ac.db.Appointments.Delete(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
