package ticketRoutes

import (
	controllers "helpti/controllers/ticket"
	"helpti/middleware"
	validators "helpti/validators/ticket"

	"github.com/gofiber/fiber/v2"
)

func SetupTicketRoutes(app *fiber.App) {
	ticketGroup := app.Group("/api/tickets")

	ticketGroup.Post("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapCreateTicket), validators.CreateTicket(), controllers.CreateTicket)
	ticketGroup.Get("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapViewOwnTickets), validators.TicketList(), controllers.TicketList)

	ticketGroup.Get("/company/:id", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapViewCompanyTickets), validators.TicketList(), controllers.CompanyTicketList)
	ticketGroup.Get("/company/:id/dashboard", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapViewDashboard), controllers.CompanyDashboard)
	ticketGroup.Get("/technician/:id/dashboard", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapViewDashboard), controllers.TechnicianDashboard)

	ticketGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapViewOwnTickets), controllers.GetTicket)
	ticketGroup.Post("/:id/notes", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapAddNote), validators.AddNote(), controllers.AddNote)
	ticketGroup.Put("/:id/transfer", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapTransferTicket), validators.TransferTicket(), controllers.TransferTicket)
	ticketGroup.Put("/:id/assign", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapAssignTicket), validators.TransferTicket(), controllers.AssignTicket)
	ticketGroup.Put("/:id/close", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapCloseTicket), validators.CloseTicket(), controllers.CloseTicket)
}
