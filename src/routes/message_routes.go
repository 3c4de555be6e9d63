package routes

import (
	"github.com/findit-app/findit-backend/src/controllers"
	"github.com/gofiber/fiber/v2"
)

// MessageRoutes sets up the chat routes between matched users
func MessageRoutes(app *fiber.App, messages *controllers.MessageController, protect fiber.Handler) {
	group := app.Group("/api/v1/messages", protect)

	group.Post("/", messages.SendMessage)
	group.Get("/unread/count", messages.CountUnread)
	group.Get("/:userId", messages.GetConversation)
	group.Put("/:userId/read", messages.MarkConversationRead)
}
