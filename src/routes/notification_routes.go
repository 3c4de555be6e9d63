package routes

import (
	"github.com/findit-app/findit-backend/src/controllers"
	"github.com/gofiber/fiber/v2"
)

// NotificationRoutes sets up notification routes for listing, counting, marking as read and deleting
func NotificationRoutes(app *fiber.App, notifications *controllers.NotificationController, protect fiber.Handler) {
	group := app.Group("/api/v1/notifications", protect)

	group.Get("/", notifications.GetUserNotifications)
	group.Post("/", notifications.CreateNotification)
	group.Get("/unread/count", notifications.CountUnread)
	group.Put("/read-all", notifications.MarkAllAsRead)
	group.Put("/:id/read", notifications.MarkNotificationAsRead)
	group.Delete("/:id", notifications.DeleteNotification)
}
