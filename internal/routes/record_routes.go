package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/internal/controllers"
)

func SetupRecordRoutes(app *fiber.App) {
	app.Post("/records", controllers.CreateRecord())
	app.Get("/records", controllers.GetRecords())

	// static segments first so "deleted" is not captured as :id
	app.Get("/records/deleted", controllers.GetDeletedRecords())
	app.Post("/records/deleted/:id/restore", controllers.RestoreRecord())

	app.Get("/records/:id", controllers.GetRecord())
	app.Put("/records/:id", controllers.UpdateRecord())
	app.Delete("/records/:id", controllers.DeleteRecord())
}
