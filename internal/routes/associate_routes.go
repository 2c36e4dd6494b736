package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/internal/controllers"
)

func SetupAssociateRoutes(app *fiber.App) {
	app.Post("/admin/associates", controllers.CreateAssociate())
	app.Get("/associates", controllers.GetAssociates())

	app.Get("/admin/associates/deleted", controllers.GetDeletedAssociates())
	app.Post("/admin/associates/deleted/:staffId/restore", controllers.RestoreAssociate())
	app.Delete("/admin/associates/:staffId", controllers.DeleteAssociate())

	app.Get("/associates/:staffId", controllers.GetAssociate())
	app.Put("/associates/:staffId", controllers.UpdateAssociate())
}
