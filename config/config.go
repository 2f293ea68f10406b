package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DataDir       string
	BackupDir     string
	BackupCron    string
	ReminderCron  string
	AdminPassword string
	UserPassword  string
	CORSOrigins   []string
}

// Load reads .env if present and resolves the environment. Twilio settings
// stay in the environment and are read by the reminder service directly.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return Config{
		Port:          getEnv("PORT", "8080"),
		DataDir:       getEnv("DATA_DIR", "data"),
		BackupDir:     getEnv("BACKUP_DIR", "backups"),
		BackupCron:    getEnv("BACKUP_CRON", "0 0 * * *"),
		ReminderCron:  getEnv("REMINDER_CRON", "0 9 * * *"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		UserPassword:  getEnv("USER_PASSWORD", "user1"),
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
