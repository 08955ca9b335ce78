package clientRoutes

import (
	controllers "helpti/controllers/client"
	"helpti/middleware"
	validators "helpti/validators/client"

	"github.com/gofiber/fiber/v2"
)

func SetupClientRoutes(app *fiber.App) {
	clientGroup := app.Group("/api/clients")

	clientGroup.Get("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageClients), controllers.ClientList)
	clientGroup.Post("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageClients), validators.CreateClient(), controllers.CreateClient)
}
