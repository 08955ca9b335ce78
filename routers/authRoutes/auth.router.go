package authRoutes

import (
	controllers "helpti/controllers/auth"
	"helpti/middleware"
	validators "helpti/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/login", validators.Login(), controllers.Login)
	api.Post("/auth/register", validators.Register(), controllers.Register)
	api.Post("/forgot-password", validators.ForgotPassword(), controllers.ForgotPassword)
	api.Post("/reset-password", validators.ResetPassword(), controllers.ResetPassword)
	api.Post("/change-password", middleware.JWTMiddleware, validators.ChangePassword(), controllers.ChangePassword)

	api.Get("/session/menu", middleware.JWTMiddleware, controllers.Menu)
}
