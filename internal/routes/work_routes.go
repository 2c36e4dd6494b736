package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/internal/controllers"
)

func SetupWorkRoutes(app *fiber.App) {
	app.Post("/work", controllers.CreateWork())
	app.Get("/work", controllers.GetWorkItems())

	app.Get("/work/deleted", controllers.GetDeletedWorkItems())
	app.Post("/work/deleted/:workId/restore", controllers.RestoreWork())

	app.Get("/work/:workId", controllers.GetWork())
	app.Put("/work/:workId", controllers.UpdateWork())
	app.Put("/work/:workId/progress", controllers.UpdateWorkProgress())
	app.Put("/work/:workId/delay", controllers.SetWorkDelayReason())
	app.Delete("/work/:workId", controllers.DeleteWork())
}
