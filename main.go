package main

import (
	"log"

	"trainhub/config"
	"trainhub/database"
	adminRoutes "trainhub/routers/adminRoutes"
	authRoutes "trainhub/routers/authRoutes"
	batchRoutes "trainhub/routers/batchRoutes"
	insightRoutes "trainhub/routers/insightRoutes"
	reportRoutes "trainhub/routers/reportRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the static frontend from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	batchRoutes.SetupBatchRoutes(app)
	reportRoutes.SetupReportRoutes(app)
	insightRoutes.SetupInsightRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
