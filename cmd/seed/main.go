// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"warbler/internal/config"
	"warbler/internal/database"
	"warbler/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numMessages := flag.Int("messages", 200, "Number of messages to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	maxDays := flag.Int("max-days", 90, "Spread message timestamps over this many days")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumMessages: *numMessages,
		ShouldClean: *shouldClean,
		MaxDays:     *maxDays,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
