package routes

import (
	"github.com/gofiber/fiber/v2"

	"inventory-api/internal/controllers"
	"inventory-api/internal/storage"
)

func SetupDocumentRoutes(app *fiber.App, store *storage.Client) {
	app.Post("/records/:id/documents", controllers.UploadRecordDocument(store))
	app.Get("/records/:id/documents", controllers.GetRecordDocuments())
	app.Delete("/documents/:documentId", controllers.DeleteRecordDocument())

	app.Post("/work/:workId/documents", controllers.UploadWorkDocument(store))
	app.Get("/work/:workId/documents", controllers.GetWorkDocuments())
	app.Delete("/work-documents/:documentId", controllers.DeleteWorkDocument())
}
