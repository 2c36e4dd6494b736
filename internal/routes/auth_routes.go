package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/internal/controllers"
	"inventory-api/internal/token"
)

// SetupAuth registers the login routes. These sit in front of the auth
// middleware: they are how a token is obtained.
func SetupAuth(app *fiber.App, tm *token.Manager) {
	app.Post("/login/admin", controllers.AdminLogin(tm))
	app.Post("/login/staff", controllers.StaffLogin(tm))
}
