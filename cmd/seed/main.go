// Command main runs the database seeder for the bloglist backend.
package main

import (
	"flag"
	"log"

	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	blogsPerUser := flag.Int("blogs", 5, "Maximum number of blogs per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Seed(seed.Options{
		NumUsers:     *numUsers,
		BlogsPerUser: *blogsPerUser,
		ShouldClean:  *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All done. Seeded users log in with the password %q.", seed.DefaultPassword)
}
