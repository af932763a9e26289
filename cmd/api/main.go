package main

import (
	"fmt"
	"log"

	"medequip-backend/config"
	"medequip-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Starting up... loading .env")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: no .env file found, using system environment variables.")
	}
	cfg := config.Load()

	fmt.Println("2. Connecting to database...")
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("3. Database connected! Setting up routes...")

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())   // So the app frontend can call the API from another origin
	app.Use(logger.New()) // Request log in the terminal (debugging)

	routes.SetupPredictionRoutes(app, db, cfg)
	routes.SetupTechnicianRoutes(app, db, cfg)

	fmt.Println("4. Server ready! Listening on port :" + cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
