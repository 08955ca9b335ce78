package paymentRoutes

import (
	controllers "helpti/controllers/payment"
	"helpti/middleware"
	validators "helpti/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	ticketGroup := app.Group("/api/tickets")

	ticketGroup.Get("/technician/:id/pending", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapViewPayments), controllers.PendingByTechnician)
	ticketGroup.Post("/technician/:id/pay", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapSettlePayments), validators.SettlePayment(), controllers.SettleTechnician)

	ticketGroup.Get("/company/:id/pending", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapViewPayments), controllers.PendingByCompany)
	ticketGroup.Post("/company/:id/pay", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapSettlePayments), validators.SettlePayment(), controllers.SettleCompany)

	paymentGroup := app.Group("/api/payments")
	paymentGroup.Get("/technician/:id", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapViewPayments), controllers.PaymentHistory)
}
