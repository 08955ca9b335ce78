package main

import (
	"log"

	"helpti/config"
	"helpti/database"
	authRoutes "helpti/routers/authRoutes"
	categoryRoutes "helpti/routers/categoryRoutes"
	clientRoutes "helpti/routers/clientRoutes"
	companyRoutes "helpti/routers/companyRoutes"
	paymentRoutes "helpti/routers/paymentRoutes"
	technicianRoutes "helpti/routers/technicianRoutes"
	ticketRoutes "helpti/routers/ticketRoutes"
	"helpti/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // multipart intake carries photos
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Uploaded ticket photos are served straight from disk.
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	ticketRoutes.SetupTicketRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	technicianRoutes.SetupTechnicianRoutes(app)
	clientRoutes.SetupClientRoutes(app)
	companyRoutes.SetupCompanyRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)

	utils.InitializeTicketSchedulers()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
