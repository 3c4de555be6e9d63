package routes

import (
	"github.com/findit-app/findit-backend/src/controllers"
	"github.com/gofiber/fiber/v2"
)

// AuthRoutes sets up registration, login, current user and password reset routes
func AuthRoutes(app *fiber.App, auth *controllers.AuthController, protect fiber.Handler) {
	group := app.Group("/api/v1/auth")

	group.Post("/register", auth.Register)
	group.Post("/login", auth.Login)
	group.Get("/me", protect, auth.GetCurrentUser)
	group.Post("/forgot-password", auth.ForgotPassword)
	group.Get("/reset-password/:token", auth.VerifyResetToken)
	group.Post("/reset-password/:token", auth.ResetPassword)
}
