// Command main seeds the database with demo profiles and push events.
package main

import (
	"flag"
	"log"

	"octoview/internal/config"
	"octoview/internal/database"
	"octoview/internal/seed"
)

func main() {
	users := flag.Int("users", 10, "number of demo users to create")
	events := flag.Int("events", 5, "push events per user")
	dryRun := flag.Bool("dry-run", false, "build entities without writing to the database")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.SeedOptions{
		Users:         *users,
		EventsPerUser: *events,
		DryRun:        *dryRun,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
