package companyRoutes

import (
	controllers "helpti/controllers/company"
	"helpti/middleware"
	validators "helpti/validators/company"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanyRoutes(app *fiber.App) {
	companyGroup := app.Group("/api/companies")

	companyGroup.Get("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageCompanies), controllers.CompanyList)
	companyGroup.Post("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageCompanies), validators.CreateCompany(), controllers.CreateCompany)
}
