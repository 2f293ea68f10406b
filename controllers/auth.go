// controllers/auth.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/utils"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type account struct {
	role         string
	passwordHash string
}

// AuthController authenticates against the two fixed clinic accounts. The
// original stored their passwords in plaintext; here they come from the
// environment and are bcrypt-hashed at startup.
type AuthController struct {
	accounts map[string]account
}

func NewAuthController(cfg config.Config) (*AuthController, error) {
	adminHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	userHash, err := utils.HashPassword(cfg.UserPassword)
	if err != nil {
		return nil, err
	}
	return &AuthController{
		accounts: map[string]account{
			"admin": {role: models.RoleAdmin, passwordHash: adminHash},
			"user1": {role: models.RoleUser, passwordHash: userHash},
		},
	}, nil
}

func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	acct, ok := ac.accounts[input.Username]
	if !ok || !utils.CheckPasswordHash(input.Password, acct.passwordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(input.Username, acct.role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": models.User{
			Username: input.Username,
			Role:     acct.role,
		},
	})
}

func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": utils.CurrentUser(c)})
}
