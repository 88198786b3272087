// Package jobs runs periodic maintenance tasks.
package jobs

import (
	"log"
	"time"

	"lezzet-api/config"
	"lezzet-api/models"

	"github.com/robfig/cron/v3"
)

// Start schedules the background jobs and returns the running scheduler.
func Start() *cron.Cron {
	c := cron.New()
	// Hourly purge of dead password-reset tokens
	_, err := c.AddFunc("@hourly", PurgeResetTokens)
	if err != nil {
		log.Fatal("Failed to schedule cleanup job:", err)
	}
	c.Start()
	return c
}

// PurgeResetTokens deletes password-reset tokens that are expired or
// already used.
func PurgeResetTokens() {
	res := config.DB.
		Where("used = ? OR expires_at < ?", true, time.Now()).
		Delete(&models.PasswordResetToken{})
	if res.Error != nil {
		log.Println("reset token purge failed:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("purged %d stale password-reset tokens", res.RowsAffected)
	}
}
