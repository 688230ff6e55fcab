// Command seed populates the database with demo data: the canonical sample
// community plus optional generated volume.
package main

import (
	"flag"
	"log"

	"kehilla/internal/config"
	"kehilla/internal/database"
	"kehilla/internal/seed"
)

func main() {
	extraUsers := flag.Int("users", 0, "number of generated users beyond the canonical sample set")
	postsPerUser := flag.Int("posts", 3, "generated posts per generated user")
	sessions := flag.Int("sessions", 5, "number of generated study sessions")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	if *extraUsers > 0 {
		factory := seed.NewFactory(db)
		for i := 0; i < *extraUsers; i++ {
			user, err := factory.CreateUser()
			if err != nil {
				log.Fatalf("Failed to create user: %v", err)
			}
			for j := 0; j < *postsPerUser; j++ {
				if _, err := factory.CreatePost(user); err != nil {
					log.Fatalf("Failed to create post: %v", err)
				}
			}
			if i < *sessions {
				if _, err := factory.CreateSession(user); err != nil {
					log.Fatalf("Failed to create session: %v", err)
				}
			}
		}
		log.Printf("Generated %d users with %d posts each", *extraUsers, *postsPerUser)
	}

	log.Println("Seed complete")
}
