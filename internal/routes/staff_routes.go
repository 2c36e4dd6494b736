package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/internal/controllers"
)

func SetupStaffRoutes(app *fiber.App) {
	app.Post("/admin/staff", controllers.CreateStaff())
	app.Get("/admin/staff", controllers.GetStaff())

	app.Get("/admin/staff/deleted", controllers.GetDeletedStaff())
	app.Post("/admin/staff/deleted/:staffId/restore", controllers.RestoreStaff())

	app.Put("/admin/staff/:staffId", controllers.UpdateStaff())
	app.Delete("/admin/staff/:staffId", controllers.DeleteStaff())
}
