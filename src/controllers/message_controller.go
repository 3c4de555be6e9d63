package controllers

import (
	"strings"

	"github.com/findit-app/findit-backend/src/lib"
	"github.com/findit-app/findit-backend/src/logger"
	"github.com/findit-app/findit-backend/src/middleware"
	"github.com/findit-app/findit-backend/src/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const messagePreviewLen = 80

type MessageController struct {
	Messages      MessageRepository
	Notifications NotificationRepository
}

// SendMessage stores a message from the authenticated user and notifies the receiver
func (m *MessageController) SendMessage(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}

	var body struct {
		ReceiverID string `json:"receiverId" form:"receiverId"`
		Text       string `json:"text" form:"text"`
	}
	if err := c.BodyParser(&body); err != nil {
		return lib.BadRequest("Invalid request body")
	}

	receiverID, err := primitive.ObjectIDFromHex(body.ReceiverID)
	if err != nil {
		return lib.BadRequest("Invalid receiver ID format")
	}
	if receiverID == user.Id {
		return lib.BadRequest("You can't send a message to yourself")
	}

	message := models.Match{
		SenderId:   user.Id,
		ReceiverId: receiverID,
		Text:       strings.TrimSpace(body.Text),
	}
	if err := m.Messages.Insert(c.Context(), &message); err != nil {
		return err
	}

	notification := models.Notification{
		UserId:  receiverID.Hex(),
		Type:    models.NotificationTypeMessageReceived,
		Title:   "New message from " + user.Name,
		Message: preview(message.Text),
	}
	if err := m.Notifications.Insert(c.Context(), &notification); err != nil {
		logger.Warn().Err(err).Str("receiver_id", receiverID.Hex()).Msg("Could not create message notification")
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetConversation returns the messages exchanged with another user, oldest first
func (m *MessageController) GetConversation(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}
	otherID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return lib.BadRequest("Invalid user ID format")
	}

	messages, err := m.Messages.Conversation(c.Context(), user.Id, otherID)
	if err != nil {
		return lib.Internal(err)
	}
	if messages == nil {
		messages = []models.Match{}
	}
	return c.JSON(messages)
}

// MarkConversationRead marks the messages another user sent to the caller as read
func (m *MessageController) MarkConversationRead(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}
	senderID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return lib.BadRequest("Invalid user ID format")
	}

	updated, err := m.Messages.MarkRead(c.Context(), senderID, user.Id)
	if err != nil {
		return lib.Internal(err)
	}
	return c.JSON(fiber.Map{"message": "Messages marked as read", "updated": updated})
}

func (m *MessageController) CountUnread(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}
	count, err := m.Messages.CountUnread(c.Context(), user.Id)
	if err != nil {
		return lib.Internal(err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= messagePreviewLen {
		return text
	}
	return string(runes[:messagePreviewLen]) + "..."
}
