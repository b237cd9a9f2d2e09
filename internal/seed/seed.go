package seed

import (
	"fmt"
	"log"

	"octoview/internal/models"

	"gorm.io/gorm"
)

// Run populates the database with demo profiles and push events. Existing
// rows are left alone; logins are random so re-running adds more data.
func Run(db *gorm.DB, opts SeedOptions) error {
	if opts.Users <= 0 {
		opts.Users = 10
	}
	if opts.EventsPerUser <= 0 {
		opts.EventsPerUser = 5
	}

	factory := NewFactory(db, opts)

	for i := 0; i < opts.Users; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}

		events := make([]*models.Event, 0, opts.EventsPerUser)
		for j := 0; j < opts.EventsPerUser; j++ {
			events = append(events, factory.BuildPushEvent(user))
		}
		if err := factory.CreateEventsBatch(events); err != nil {
			return fmt.Errorf("seed events for %s: %w", user.Login, err)
		}
	}

	log.Printf("Seeded %d users with %d events each", opts.Users, opts.EventsPerUser)
	return nil
}
