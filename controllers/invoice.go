// controllers/invoice.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinicpro-backend/models"
	"clinicpro-backend/pricing"
	"clinicpro-backend/store"
	"clinicpro-backend/utils"
)

// InvoiceInput defines the expected JSON structure for creating or updating
// an invoice. Totals are never taken from the input: they are recomputed
// against the current catalog on every write, so a service whose pricing
// mode changed since the invoice was opened reprices here. amountPaid is
// only honoured for installment invoices; cash forces it to the total.
type InvoiceInput struct {
	ClientID        string         `json:"clientId" binding:"required"`
	AppointmentID   string         `json:"appointmentId"`
	Date            string         `json:"date"` // yyyy-MM-dd, defaults to today
	Time            string         `json:"time"` // HH:mm, defaults to now
	Services        []string       `json:"services" binding:"required,min=1"`
	Shots           map[string]int `json:"shots"`
	PaymentMethod   string         `json:"paymentMethod" binding:"required,oneof=cash installment"`
	AmountPaid      float64        `json:"amountPaid" binding:"min=0"`
	CreatedBy       string         `json:"createdBy"`
	ServiceProvider string         `json:"serviceProvider"`
}

// QuoteInput carries the fields a form recomputes totals from while an
// invoice is being composed.
type QuoteInput struct {
	Services      []string       `json:"services" binding:"required"`
	Shots         map[string]int `json:"shots"`
	PaymentMethod string         `json:"paymentMethod" binding:"required,oneof=cash installment"`
	AmountPaid    float64        `json:"amountPaid" binding:"min=0"`
}

type InvoiceController struct {
	db *store.DB
}

func NewInvoiceController(db *store.DB) *InvoiceController {
	return &InvoiceController{db: db}
}

func (ic *InvoiceController) invoiceFromInput(c *gin.Context, id string, input InvoiceInput) (models.Invoice, bool) {
	client, ok := ic.db.Clients.Get(input.ClientID)
	if !ok {
		return models.Invoice{}, false
	}

	quote := pricing.Compute(ic.db.Services.GetAll(), input.Services, input.Shots, input.PaymentMethod, input.AmountPaid)

	inv := models.Invoice{
		ID:              id,
		ClientID:        client.ID,
		ClientName:      client.Name,
		PhoneNumber:     client.PhoneNumber,
		AppointmentID:   input.AppointmentID,
		Date:            input.Date,
		Time:            input.Time,
		Services:        input.Services,
		PaymentMethod:   input.PaymentMethod,
		AmountPaid:      quote.AmountPaid,
		AmountRemaining: quote.AmountRemaining,
		CreatedBy:       input.CreatedBy,
		ServiceProvider: input.ServiceProvider,
		TotalAmount:     quote.TotalAmount,
	}
	if inv.Date == "" {
		inv.Date = utils.Today()
	}
	if inv.Time == "" {
		inv.Time = time.Now().Format(utils.TimeLayout)
	}
	if inv.CreatedBy == "" {
		inv.CreatedBy = c.GetString("username")
	}
	return inv, true
}

// Quote recomputes totals for an invoice being composed without persisting
// anything. Service names missing from the catalog contribute zero.
func (ic *InvoiceController) Quote(c *gin.Context) {
	var input QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	quote := pricing.Compute(ic.db.Services.GetAll(), input.Services, input.Shots, input.PaymentMethod, input.AmountPaid)
	c.JSON(http.StatusOK, quote)
}

// CreateInvoice creates a new invoice with server-derived totals
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var input InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	inv, ok := ic.invoiceFromInput(c, uuid.New().String(), input)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		return
	}

	created, err := ic.db.Invoices.Add(inv)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetInvoices lists invoices, filtered by ?clientId=
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	if clientID := c.Query("clientId"); clientID != "" {
		c.JSON(http.StatusOK, ic.db.Invoices.GetByClientID(clientID))
		return
	}
	c.JSON(http.StatusOK, ic.db.Invoices.GetAll())
}

// GetInvoice retrieves a specific invoice by ID
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	inv, ok := ic.db.Invoices.Get(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateInvoice replaces an invoice wholesale, recomputing its totals
// against the catalog as it stands now.
func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	var input InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	inv, ok := ic.invoiceFromInput(c, c.Param("id"), input)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		return
	}

	found, err := ic.db.Invoices.Update(inv)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, inv)
}

// DeleteInvoice removes an invoice permanently
func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	removed, err := ic.db.Invoices.Delete(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
