package routes

import (
	"github.com/findit-app/findit-backend/src/controllers"
	"github.com/gofiber/fiber/v2"
)

type Controllers struct {
	Auth          *controllers.AuthController
	Items         *controllers.ItemController
	Messages      *controllers.MessageController
	Notifications *controllers.NotificationController
	Match         *controllers.MatchController
	Reports       *controllers.ReportController
}

// Register mounts every route group plus the health check on app.
func Register(app *fiber.App, ctrl Controllers, protect fiber.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Server is running"})
	})

	AuthRoutes(app, ctrl.Auth, protect)
	ItemRoutes(app, ctrl.Items, protect)
	MessageRoutes(app, ctrl.Messages, protect)
	NotificationRoutes(app, ctrl.Notifications, protect)
	MatchRoutes(app, ctrl.Match, ctrl.Reports)
}
