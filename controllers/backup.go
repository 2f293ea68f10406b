package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicpro-backend/store"
	"clinicpro-backend/utils"
)

type BackupController struct {
	db *store.DB
}

func NewBackupController(db *store.DB) *BackupController {
	return &BackupController{db: db}
}

// CreateBackup exports all collections as one downloadable blob
func (bc *BackupController) CreateBackup(c *gin.Context) {
	blob, err := bc.db.CreateBackup()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create backup")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="clinic-backup.json"`)
	c.Data(http.StatusOK, "application/json", []byte(blob))
}

// RestoreBackup overwrites collections from an uploaded blob. A blob that
// does not parse as the backup structure writes nothing and returns 400.
func (bc *BackupController) RestoreBackup(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read backup data")
		return
	}

	if !bc.db.RestoreBackup(string(body)) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid backup data")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup restored successfully"})
}
