package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicpro-backend/models"
	"clinicpro-backend/store"
	"clinicpro-backend/utils"
)

type DashboardController struct {
	db *store.DB
}

func NewDashboardController(db *store.DB) *DashboardController {
	return &DashboardController{db: db}
}

// GetDashboardOverview summarises the clinic's current state: record
// counts, today's schedule and the financial position across invoices.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	appointments := dc.db.Appointments.GetAll()
	clients := dc.db.Clients.GetAll()
	services := dc.db.Services.GetAll()
	invoices := dc.db.Invoices.GetAll()

	today := dc.db.Appointments.GetByDate(utils.Today())

	pending := 0
	for _, a := range appointments {
		if a.Status == models.AppointmentPending {
			pending++
		}
	}

	var totalRevenue, totalPaid, totalOutstanding float64
	for _, inv := range invoices {
		totalRevenue += inv.TotalAmount
		totalPaid += inv.AmountPaid
		totalOutstanding += inv.AmountRemaining
	}

	c.JSON(http.StatusOK, gin.H{
		"counts": gin.H{
			"appointments": len(appointments),
			"clients":      len(clients),
			"services":     len(services),
			"invoices":     len(invoices),
		},
		"todayAppointments":   today,
		"pendingAppointments": pending,
		"financials": gin.H{
			"totalRevenue":     totalRevenue,
			"totalPaid":        totalPaid,
			"totalOutstanding": totalOutstanding,
		},
	})
}
