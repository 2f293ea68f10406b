package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicpro-backend/config"
	"clinicpro-backend/routes"
	"clinicpro-backend/services"
	"clinicpro-backend/store"
)

func main() {
	cfg := config.Load()
	config.InitLogger()
	defer config.Log.Sync()

	db, err := store.Open(cfg.DataDir)
	if err != nil {
		config.Log.Fatal("Failed to open store", zap.Error(err))
	}

	// Seed the default catalog on first run; a no-op once any service exists
	if err := db.Services.InitializeDefault(); err != nil {
		config.Log.Fatal("Failed to seed service catalog", zap.Error(err))
	}

	services.NewReminderService(db).StartScheduler(cfg.ReminderCron)
	services.NewBackupService(db, cfg.BackupDir).StartScheduler(cfg.BackupCron)

	r, err := routes.SetupRouter(cfg, db)
	if err != nil {
		config.Log.Fatal("Failed to set up router", zap.Error(err))
	}
	printRoutes(r)

	config.Log.Info("Listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		config.Log.Fatal("Server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
