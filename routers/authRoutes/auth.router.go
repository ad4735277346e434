package authRoutes

import (
	authController "finsim/controllers/auth"
	"finsim/middleware"
	"finsim/session"
	authValidator "finsim/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller, sessions session.Store) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), ctrl.Register)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
	authGroup.Post("/logout", middleware.SessionAuth(sessions), ctrl.Logout)
}
