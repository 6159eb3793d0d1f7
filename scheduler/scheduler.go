package scheduler

import (
	"log"
	"time"
	"zenitmanager/connection"
	"zenitmanager/services"

	"github.com/robfig/cron/v3"
)

// StartScheduler runs the hourly due-date reminder job.
func StartScheduler() {
	c := cron.New()

	DB, err := connection.DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	_, err = c.AddFunc("0 * * * *", func() {
		log.Println("Running due-date reminder job...")
		reminded, err := services.RemindDueTasks(DB, time.Now())
		if err != nil {
			log.Printf("Reminder job failed: %v", err)
			return
		}
		log.Printf("Reminder job done, %d tasks reminded", reminded)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")
}
