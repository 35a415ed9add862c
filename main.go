package main

import (
	"log"
	"os"

	"cornerstore/db"
	"cornerstore/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, otherwise rely on the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	// Initialize database and demo data
	db.InitDatabase()
	db.Seed()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))

	// Setup routes
	routes.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
