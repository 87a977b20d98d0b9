package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"petshop/internal/database"
	"petshop/internal/pkg/clock"
	"petshop/internal/repository"
)

// One-shot sweeper for stale pre-bookings. Intended to run from cron; the
// UPDATE predicate is self-limiting, so overlapping runs are safe.
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repository.NewAppointmentRepository(db)
	count, err := repo.ExpireDue(ctx, clock.NewSystem().Now())
	if err != nil {
		log.Fatalf("expire sweep failed: %v", err)
	}

	log.Printf("expire sweep completed: appointments=%d", count)
}
