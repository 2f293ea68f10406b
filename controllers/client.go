package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinicpro-backend/models"
	"clinicpro-backend/store"
	"clinicpro-backend/utils"
)

// ClientInput defines the expected JSON structure for creating or updating
// a client. Updates replace the record wholesale, so the same shape serves
// both. Phone numbers are opaque strings here; the original never validated
// their format and search matches on the raw value.
type ClientInput struct {
	Name              string   `json:"name" binding:"required"`
	PhoneNumber       string   `json:"phoneNumber" binding:"required"`
	Email             string   `json:"email"`
	HairType          string   `json:"hairType"`
	HairColor         string   `json:"hairColor"`
	SkinType          string   `json:"skinType"`
	Allergies         string   `json:"allergies"`
	CurrentSessions   int      `json:"currentSessions" binding:"min=0"`
	RemainingSessions int      `json:"remainingSessions" binding:"min=0"`
	FavoriteServices  []string `json:"favoriteServices"`
	RemainingPayments float64  `json:"remainingPayments" binding:"min=0"`
	Notes             string   `json:"notes"`
}

type ClientController struct {
	db *store.DB
}

func NewClientController(db *store.DB) *ClientController {
	return &ClientController{db: db}
}

func clientFromInput(id string, input ClientInput) models.Client {
	return models.Client{
		ID:                id,
		Name:              input.Name,
		PhoneNumber:       input.PhoneNumber,
		Email:             input.Email,
		HairType:          input.HairType,
		HairColor:         input.HairColor,
		SkinType:          input.SkinType,
		Allergies:         input.Allergies,
		CurrentSessions:   input.CurrentSessions,
		RemainingSessions: input.RemainingSessions,
		FavoriteServices:  input.FavoriteServices,
		RemainingPayments: input.RemainingPayments,
		Notes:             input.Notes,
	}
}

// CreateClient creates a new client record
func (cc *ClientController) CreateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client, err := cc.db.Clients.Add(clientFromInput(uuid.New().String(), input))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients lists all clients, or the matches for ?q=
func (cc *ClientController) GetClients(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		c.JSON(http.StatusOK, cc.db.Clients.Search(query))
		return
	}
	c.JSON(http.StatusOK, cc.db.Clients.GetAll())
}

// GetClient retrieves a specific client by ID
func (cc *ClientController) GetClient(c *gin.Context) {
	client, ok := cc.db.Clients.Get(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient replaces an existing client wholesale
func (cc *ClientController) UpdateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client := clientFromInput(c.Param("id"), input)
	found, err := cc.db.Clients.Update(client)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client permanently
func (cc *ClientController) DeleteClient(c *gin.Context) {
	removed, err := cc.db.Clients.Delete(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
