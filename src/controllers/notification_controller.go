package controllers

import (
	"errors"
	"strconv"

	"github.com/findit-app/findit-backend/src/lib"
	"github.com/findit-app/findit-backend/src/middleware"
	"github.com/findit-app/findit-backend/src/models"
	"github.com/findit-app/findit-backend/src/store"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationController struct {
	Notifications NotificationRepository
}

// GetUserNotifications returns the caller's notifications, newest first. ?read=true|false filters them
func (n *NotificationController) GetUserNotifications(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}

	var read *bool
	if raw := c.Query("read"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return lib.BadRequest("read must be true or false")
		}
		read = &v
	}

	notifications, err := n.Notifications.ListForUser(c.Context(), user.Id.Hex(), read)
	if err != nil {
		return lib.Internal(err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return c.Status(fiber.StatusOK).JSON(notifications)
}

func (n *NotificationController) CountUnread(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}
	count, err := n.Notifications.CountUnread(c.Context(), user.Id.Hex())
	if err != nil {
		return lib.Internal(err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// CreateNotification stores a notification addressed to the caller
func (n *NotificationController) CreateNotification(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}

	var body struct {
		Type        models.NotificationType `json:"type"`
		Title       string                  `json:"title"`
		Message     string                  `json:"message"`
		LostItemId  string                  `json:"lostItemId"`
		FoundItemId string                  `json:"foundItemId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return lib.BadRequest("Invalid request body")
	}
	if body.Type == "" {
		body.Type = models.NotificationTypeSystem
	}

	notification := models.Notification{
		UserId:  user.Id.Hex(),
		Type:    body.Type,
		Title:   body.Title,
		Message: body.Message,
	}
	var err error
	if notification.LostItemId, err = optionalObjectID(body.LostItemId); err != nil {
		return lib.BadRequest("Invalid lost item ID format")
	}
	if notification.FoundItemId, err = optionalObjectID(body.FoundItemId); err != nil {
		return lib.BadRequest("Invalid found item ID format")
	}

	if err := n.Notifications.Insert(c.Context(), &notification); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(notification)
}

// MarkNotificationAsRead marks one of the caller's notifications as read
func (n *NotificationController) MarkNotificationAsRead(c *fiber.Ctx) error {
	notificationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return lib.BadRequest("Invalid notification ID format")
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}

	updated, err := n.Notifications.MarkRead(c.Context(), notificationID, user.Id.Hex())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return lib.NotFound("Notification not found or you don't have permission to update it")
		}
		return lib.Internal(err)
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}

func (n *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}
	updated, err := n.Notifications.MarkAllRead(c.Context(), user.Id.Hex())
	if err != nil {
		return lib.Internal(err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read", "updated": updated})
}

// DeleteNotification deletes one of the caller's notifications
func (n *NotificationController) DeleteNotification(c *fiber.Ctx) error {
	notificationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return lib.BadRequest("Invalid notification ID format")
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}

	if err := n.Notifications.Delete(c.Context(), notificationID, user.Id.Hex()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return lib.NotFound("Notification not found or you don't have permission to delete it")
		}
		return lib.Internal(err)
	}
	return c.Status(fiber.StatusOK).JSON(lib.MessageResponse("Notification deleted successfully"))
}

func optionalObjectID(hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
