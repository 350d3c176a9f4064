package logging

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/jordanveksler/stayspot-backend/internal/models"
)

const defaultRetentionDays = 30

// StartCleanup prunes system_logs past the retention window
// (LOG_RETENTION_DAYS, default 30): once at startup, then daily, until done
// is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	days := defaultRetentionDays
	if v, err := strconv.Atoi(os.Getenv("LOG_RETENTION_DAYS")); err == nil && v > 0 {
		days = v
	}

	go func() {
		sweep(db, days)

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweep(db, days)
			case <-done:
				return
			}
		}
	}()
}

func sweep(db *gorm.DB, days int) {
	cutoff := time.Now().AddDate(0, 0, -days)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected, "retention_days", days)
	}
}
