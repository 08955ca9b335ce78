package technicianRoutes

import (
	controllers "helpti/controllers/technician"
	"helpti/middleware"
	validators "helpti/validators/technician"

	"github.com/gofiber/fiber/v2"
)

func SetupTechnicianRoutes(app *fiber.App) {
	technicianGroup := app.Group("/api/technicians")

	technicianGroup.Get("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageTechnicians), controllers.TechnicianList)
	technicianGroup.Get("/active", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapAssignTicket), controllers.ActiveTechnicianList)
	technicianGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageTechnicians), controllers.GetTechnician)
	technicianGroup.Post("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageTechnicians), validators.CreateTechnician(), controllers.CreateTechnician)
	technicianGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageTechnicians), controllers.DeleteTechnician)
}
