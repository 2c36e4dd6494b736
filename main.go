// @title Inventory Backend API
// @version 1.0
// @description Role-scoped PR/PO and work tracking backend.
// @host localhost:8000
// @BasePath /

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"inventory-api/bootstrap"
	"inventory-api/config"
	"inventory-api/database"
	"inventory-api/internal/middleware"
	"inventory-api/internal/routes"
	"inventory-api/internal/storage"
	"inventory-api/internal/token"
)

func main() {
	cfg := config.LoadConfig()

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(nil)

	if err := bootstrap.EnsureIndexes(database.DB); err != nil {
		logrus.Fatalf("ensure indexes failed: %v", err)
	}

	tm := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	store := storage.NewClient(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Inventory Backend Running"})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Get JWT with login
	routes.SetupAuth(app, tm)

	app.Use(middleware.RequireAuth(tm))

	// Routes
	routes.SetupRecordRoutes(app)
	routes.SetupStaffRoutes(app)
	routes.SetupAssociateRoutes(app)
	routes.SetupWorkRoutes(app)
	routes.SetupDocumentRoutes(app, store)

	// RUN SERVER
	logrus.Fatal(app.Listen(":" + cfg.Port))
}
