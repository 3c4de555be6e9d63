package routes

import (
	"github.com/findit-app/findit-backend/src/controllers"
	"github.com/gofiber/fiber/v2"
)

// ItemRoutes sets up lost and found report routes
func ItemRoutes(app *fiber.App, items *controllers.ItemController, protect fiber.Handler) {
	group := app.Group("/api/v1/items", protect)

	group.Post("/lost", items.ReportLost)
	group.Post("/found", items.ReportFound)
	group.Get("/mine", items.GetMyItems)
	group.Get("/lost/:id", items.GetLost)
	group.Get("/found/:id", items.GetFound)
}
