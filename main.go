package main

import (
	"log"

	"storerate/config"
	"storerate/database"
	adminRoutes "storerate/routers/adminRoutes"
	authRoutes "storerate/routers/authRoutes"
	ownerRoutes "storerate/routers/ownerRoutes"
	storeRoutes "storerate/routers/storeRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if err := database.SeedAdmin(); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	storeRoutes.SetupStoreRoutes(app)
	ownerRoutes.SetupOwnerRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
