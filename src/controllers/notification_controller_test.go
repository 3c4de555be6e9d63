package controllers

import (
	"context"
	"testing"

	"github.com/findit-app/findit-backend/src/middleware"
	"github.com/findit-app/findit-backend/src/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newNotificationFixture(t *testing.T) *fixture {
	f := newFixture(t)
	ctrl := &NotificationController{Notifications: f.notifications}
	group := f.app.Group("/api/v1/notifications", middleware.ProtectRoute(f.users, testSecret))
	group.Get("/", ctrl.GetUserNotifications)
	group.Post("/", ctrl.CreateNotification)
	group.Get("/unread/count", ctrl.CountUnread)
	group.Put("/read-all", ctrl.MarkAllAsRead)
	group.Put("/:id/read", ctrl.MarkNotificationAsRead)
	group.Delete("/:id", ctrl.DeleteNotification)
	return f
}

func seedNotification(t *testing.T, f *fixture, userID, title string) models.Notification {
	t.Helper()
	n := models.Notification{UserId: userID, Type: models.NotificationTypeMatchFound, Title: title, Message: "Possible match"}
	require.NoError(t, f.notifications.Insert(context.Background(), &n))
	return n
}

func TestCreateNotification(t *testing.T) {
	f := newNotificationFixture(t)
	user, token := f.addUser(t, "Sana", "sana@example.com")
	lost := primitive.NewObjectID()

	resp := f.do(t, "POST", "/api/v1/notifications", token,
		`{"type":"match_found","title":"Match","message":"Your wallet may be found","lostItemId":"`+lost.Hex()+`"}`)
	require.Equal(t, fiber.StatusCreated, resp.status, string(resp.body))

	var n models.Notification
	resp.decode(t, &n)
	assert.Equal(t, user.Id.Hex(), n.UserId)
	assert.False(t, n.Read)
	require.NotNil(t, n.LostItemId)
	assert.Equal(t, lost, *n.LostItemId)
	assert.Nil(t, n.FoundItemId)

	system := f.do(t, "POST", "/api/v1/notifications", token, `{"title":"Hello","message":"Test"}`)
	require.Equal(t, fiber.StatusCreated, system.status)
	assert.Contains(t, string(system.body), `"type":"system"`)
}

func TestCreateNotificationRejectsUnknownType(t *testing.T) {
	f := newNotificationFixture(t)
	_, token := f.addUser(t, "Sana", "sana@example.com")

	resp := f.do(t, "POST", "/api/v1/notifications", token, `{"type":"friend_request","title":"Hi","message":"There"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.status)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	resp.decode(t, &body)
	assert.Contains(t, body.Errors, "type")
	assert.Empty(t, f.notifications.items)

	badRef := f.do(t, "POST", "/api/v1/notifications", token, `{"title":"Hi","message":"There","foundItemId":"xyz"}`)
	assert.Equal(t, fiber.StatusBadRequest, badRef.status)
}

func TestListAndReadNotifications(t *testing.T) {
	f := newNotificationFixture(t)
	sana, token := f.addUser(t, "Sana", "sana@example.com")
	ali, _ := f.addUser(t, "Ali", "ali@example.com")

	first := seedNotification(t, f, sana.Id.Hex(), "first")
	seedNotification(t, f, sana.Id.Hex(), "second")
	seedNotification(t, f, ali.Id.Hex(), "not mine")

	var list []models.Notification
	f.do(t, "GET", "/api/v1/notifications", token, "").decode(t, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)

	var count struct {
		Count int64 `json:"count"`
	}
	f.do(t, "GET", "/api/v1/notifications/unread/count", token, "").decode(t, &count)
	assert.EqualValues(t, 2, count.Count)

	resp := f.do(t, "PUT", "/api/v1/notifications/"+first.Id.Hex()+"/read", token, "")
	require.Equal(t, fiber.StatusOK, resp.status)
	var updated models.Notification
	resp.decode(t, &updated)
	assert.True(t, updated.Read)

	f.do(t, "GET", "/api/v1/notifications?read=true", token, "").decode(t, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].Title)

	f.do(t, "GET", "/api/v1/notifications?read=false", token, "").decode(t, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Title)

	assert.Equal(t, fiber.StatusBadRequest, f.do(t, "GET", "/api/v1/notifications?read=maybe", token, "").status)

	all := f.do(t, "PUT", "/api/v1/notifications/read-all", token, "")
	require.Equal(t, fiber.StatusOK, all.status)
	assert.Contains(t, string(all.body), `"updated":1`)

	f.do(t, "GET", "/api/v1/notifications/unread/count", token, "").decode(t, &count)
	assert.Zero(t, count.Count)
}

func TestNotificationOwnership(t *testing.T) {
	f := newNotificationFixture(t)
	_, token := f.addUser(t, "Sana", "sana@example.com")
	ali, _ := f.addUser(t, "Ali", "ali@example.com")
	theirs := seedNotification(t, f, ali.Id.Hex(), "not mine")

	read := f.do(t, "PUT", "/api/v1/notifications/"+theirs.Id.Hex()+"/read", token, "")
	assert.Equal(t, fiber.StatusNotFound, read.status)

	del := f.do(t, "DELETE", "/api/v1/notifications/"+theirs.Id.Hex(), token, "")
	assert.Equal(t, fiber.StatusNotFound, del.status)

	bad := f.do(t, "DELETE", "/api/v1/notifications/not-an-id", token, "")
	assert.Equal(t, fiber.StatusBadRequest, bad.status)
	assert.Equal(t, "Invalid notification ID format", bad.message(t))
}

func TestDeleteNotification(t *testing.T) {
	f := newNotificationFixture(t)
	sana, token := f.addUser(t, "Sana", "sana@example.com")
	n := seedNotification(t, f, sana.Id.Hex(), "bye")

	resp := f.do(t, "DELETE", "/api/v1/notifications/"+n.Id.Hex(), token, "")
	require.Equal(t, fiber.StatusOK, resp.status)
	assert.Equal(t, "Notification deleted successfully", resp.message(t))
	assert.Empty(t, f.notifications.items)

	again := f.do(t, "DELETE", "/api/v1/notifications/"+n.Id.Hex(), token, "")
	assert.Equal(t, fiber.StatusNotFound, again.status)
}
