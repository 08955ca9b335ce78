package categoryRoutes

import (
	controllers "helpti/controllers/category"
	"helpti/middleware"
	validators "helpti/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/api/categories")

	// Subcategory routes go first so "subcategories" never matches a param.
	categoryGroup.Get("/subcategories", middleware.JWTMiddleware, controllers.SubCategoryList)
	categoryGroup.Post("/subcategories", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageCategories), validators.CreateSubCategory(), controllers.CreateSubCategory)

	categoryGroup.Get("/", middleware.JWTMiddleware, controllers.CategoryList)
	categoryGroup.Post("/", middleware.JWTMiddleware, middleware.RequireCapability(middleware.CapManageCategories), validators.CreateCategory(), controllers.CreateCategory)
}
