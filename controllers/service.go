// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinicpro-backend/models"
	"clinicpro-backend/store"
	"clinicpro-backend/utils"
)

// ServiceInput defines the expected JSON structure for creating or updating
// a catalog service. The two pricing modes are mutually exclusive: when
// dynamicPricing is set the stored price is forced to zero and the charge
// comes from per-invoice shot counts instead.
type ServiceInput struct {
	Name           string  `json:"name" binding:"required"`
	Price          float64 `json:"price" binding:"min=0"`
	DynamicPricing bool    `json:"dynamicPricing"`
}

type ServiceController struct {
	db *store.DB
}

func NewServiceController(db *store.DB) *ServiceController {
	return &ServiceController{db: db}
}

func serviceFromInput(id string, input ServiceInput) models.Service {
	svc := models.Service{
		ID:             id,
		Name:           input.Name,
		Price:          input.Price,
		DynamicPricing: input.DynamicPricing,
	}
	if svc.DynamicPricing {
		svc.Price = 0
	}
	return svc
}

// CreateService adds a service to the catalog
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.db.Services.Add(serviceFromInput(uuid.New().String(), input))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices lists the catalog
func (sc *ServiceController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, sc.db.Services.GetAll())
}

// GetService retrieves a specific service by ID
func (sc *ServiceController) GetService(c *gin.Context) {
	service, ok := sc.db.Services.Get(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

// UpdateService replaces a catalog entry wholesale. Open invoices resolve
// services by name at edit time, so a mode or price change here shows up in
// their next recomputation.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := serviceFromInput(c.Param("id"), input)
	found, err := sc.db.Services.Update(service)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service permanently. Appointments and invoices
// that reference the name keep it; the name simply stops pricing.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	removed, err := sc.db.Services.Delete(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
