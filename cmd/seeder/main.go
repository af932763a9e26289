package main

import (
	"fmt"
	"log"

	"medequip-backend/config"
	"medequip-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Starting database seeding...")

	// Load .env manually since this is a separate entrypoint
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables.")
	}

	cfg := config.Load()
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal(err)
	}

	database.SeedAll(db)

	fmt.Println("Seeding finished!")
}
