package utils

import (
	"log"
	"time"

	"coursehub/database"
	"coursehub/models"

	"github.com/robfig/cron/v3"
)

func logScheduler(message string) {
	log.Printf("[PERIOD-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RefreshPeriodStatuses recomputes and persists the status of every
// registration period from today's date.
func RefreshPeriodStatuses() {
	db := database.Database.Db
	today := time.Now()

	var periods []models.RegistrationPeriod
	if err := db.Find(&periods).Error; err != nil {
		logScheduler("Error fetching registration periods: " + err.Error())
		return
	}

	for _, period := range periods {
		status := models.ComputePeriodStatus(period.StartDate, period.EndDate, today)
		if status == period.Status {
			continue
		}
		if err := db.Model(&models.RegistrationPeriod{}).Where("id = ?", period.ID).
			Update("status", status).Error; err != nil {
			logScheduler("Error updating period status: " + err.Error())
			continue
		}
		logScheduler("Period " + period.PeriodName + " moved to " + status)
	}
}

// StartPeriodScheduler refreshes period statuses once at startup and then
// every day shortly after midnight.
func StartPeriodScheduler() *cron.Cron {
	RefreshPeriodStatuses()

	c := cron.New()
	if _, err := c.AddFunc("5 0 * * *", RefreshPeriodStatuses); err != nil {
		logScheduler("Error scheduling period refresh: " + err.Error())
		return c
	}
	c.Start()

	logScheduler("Registration period scheduler started")
	return c
}
