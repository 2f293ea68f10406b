package services

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"clinicpro-backend/config"
	"clinicpro-backend/store"
)

// BackupService writes timestamped backup blobs to a directory on a
// schedule, alongside the manual export endpoint.
type BackupService struct {
	db  *store.DB
	dir string
}

func NewBackupService(db *store.DB, dir string) *BackupService {
	return &BackupService{db: db, dir: dir}
}

func (s *BackupService) StartScheduler(spec string) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if _, err := s.WriteBackup(); err != nil {
			config.Log.Error("Scheduled backup failed", zap.Error(err))
		}
	}); err != nil {
		config.Log.Error("Failed to schedule backups", zap.Error(err))
		return
	}
	c.Start()
	config.Log.Info("Backup scheduler started", zap.String("cron", spec))
}

// WriteBackup exports the current state to a new timestamped file and
// returns its path.
func (s *BackupService) WriteBackup() (string, error) {
	blob, err := s.db.CreateBackup()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := "backup-" + time.Now().UTC().Format("20060102-150405") + ".json"
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		return "", err
	}

	config.Log.Info("Backup written", zap.String("path", path))
	return path, nil
}
