// Command migrate applies the database schema and exits. Production deploys
// run this explicitly; development relies on AutoMigrate at startup.
package main

import (
	"log"

	"kehilla/internal/config"
	"kehilla/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
