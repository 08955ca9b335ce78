package utils

import (
	"fmt"
	"log"
	"time"

	"helpti/database"
	"helpti/models"

	"github.com/robfig/cron/v3"
)

// Stale-ticket thresholds.
const (
	escalationAge = 48 * time.Hour
	abandonAge    = 14 * 24 * time.Hour
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[TICKET-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// recordSystemNote appends a system-authored note to a ticket.
func recordSystemNote(ticketID uint, text string) {
	note := models.Note{
		TicketID:   ticketID,
		Text:       text,
		AuthorName: "system",
		AuthorType: models.AuthorSystem,
	}
	database.Database.Db.Create(&note)
}

// escalateStaleTickets bumps the priority of OPEN tickets that nobody
// touched for escalationAge, one step per run, capped at CRITICAL.
func escalateStaleTickets() {
	db := database.Database.Db
	cutoff := time.Now().Add(-escalationAge)

	var tickets []models.Ticket
	if err := db.Where("status = ? AND priority <> ? AND updated_at <= ? AND is_deleted = false",
		models.TicketOpen, models.PriorityCritical, cutoff).
		Find(&tickets).Error; err != nil {
		logScheduler("Error fetching stale open tickets: " + err.Error())
		return
	}

	for _, ticket := range tickets {
		previous := ticket.Priority
		ticket.Priority = models.NextPriority(ticket.Priority)
		if err := db.Save(&ticket).Error; err != nil {
			logScheduler(fmt.Sprintf("Error escalating ticket %d: %v", ticket.ID, err))
			continue
		}

		recordSystemNote(ticket.ID, fmt.Sprintf("Priority escalated from %s to %s after %d hours without attendance.",
			previous, ticket.Priority, int(escalationAge.Hours())))
		logScheduler(fmt.Sprintf("Ticket %d escalated %s -> %s", ticket.ID, previous, ticket.Priority))
	}
}

// cancelAbandonedTickets cancels AWAITING_CLIENT tickets idle beyond
// abandonAge. Cancellation carries no resolution; that requirement binds
// only the CLOSED state.
func cancelAbandonedTickets() {
	db := database.Database.Db
	cutoff := time.Now().Add(-abandonAge)

	var tickets []models.Ticket
	if err := db.Where("status = ? AND updated_at <= ? AND is_deleted = false",
		models.TicketAwaitingClient, cutoff).
		Find(&tickets).Error; err != nil {
		logScheduler("Error fetching abandoned tickets: " + err.Error())
		return
	}

	for _, ticket := range tickets {
		ticket.Status = models.TicketCanceled
		if err := db.Save(&ticket).Error; err != nil {
			logScheduler(fmt.Sprintf("Error canceling ticket %d: %v", ticket.ID, err))
			continue
		}

		recordSystemNote(ticket.ID, "Ticket canceled automatically: no client response for 14 days.")
		logScheduler(fmt.Sprintf("Ticket %d auto-canceled after client silence", ticket.ID))
	}
}

// StartMaintenanceScheduler runs the stale-ticket sweep every hour
func StartMaintenanceScheduler(c *cron.Cron) {
	c.AddFunc("0 * * * *", func() {
		escalateStaleTickets()
		cancelAbandonedTickets()
	})
	logScheduler("Maintenance scheduler started - runs hourly")
}

// InitializeTicketSchedulers initializes all ticket schedulers
func InitializeTicketSchedulers() *cron.Cron {
	logScheduler("Initializing ticket schedulers...")

	c := cron.New()

	StartMaintenanceScheduler(c)

	c.Start()

	logScheduler("All ticket schedulers initialized successfully")
	return c
}
